package hook

import "github.com/hookmap/hookmap/internal/keys"

// comboEmitter adapts a per-key sender into an Emitter. Key-downs go out in
// canonical combo order; key-ups in reverse order, the way a user would
// release a chord (non-modifiers first, then modifiers).
type comboEmitter struct {
	send func(vk keys.VK, up bool) error
}

func (e comboEmitter) Emit(combo keys.Combo, release bool) error {
	codes := combo.Keys()
	if release {
		for i := len(codes) - 1; i >= 0; i-- {
			if err := e.send(codes[i], true); err != nil {
				return err
			}
		}
		return nil
	}
	for _, vk := range codes {
		if err := e.send(vk, false); err != nil {
			return err
		}
	}
	return nil
}
