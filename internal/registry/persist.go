package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// ErrMalformed is returned by LoadFile when the document cannot be decoded.
// The registry is left untouched in that case.
var ErrMalformed = errors.New("malformed rules document")

// ruleDoc is the on-disk shape: two ordered lists with all key fields in
// their textual "+"-joined form.
type ruleDoc struct {
	Mappings []MappingInfo `json:"mappings" yaml:"mappings" toml:"mappings"`
	Blocked  []BlockInfo   `json:"blocked_keys" yaml:"blocked_keys" toml:"blocked_keys"`
}

// docFormat picks the encoding from the file extension. JSON is the
// default for unknown extensions.
func docFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	default:
		return "json"
	}
}

// SaveFile writes the current rules to path, encoded per the file
// extension (.json default, .yaml/.yml, .toml).
func (r *Registry) SaveFile(path string) error {
	doc := ruleDoc{Mappings: r.Mappings(), Blocked: r.Blocked()}

	var data []byte
	var err error
	switch docFormat(path) {
	case "yaml":
		data, err = yaml.Marshal(doc)
	case "toml":
		data, err = toml.Marshal(doc)
	default:
		data, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode rules: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write rules file: %w", err)
	}
	return nil
}

// LoadFile replaces the registry contents with the rules in path. Each
// entry is re-added through the normal add path, so key text is
// re-validated; entries that no longer parse are skipped. A document that
// cannot be decoded yields ErrMalformed and leaves the registry untouched.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read rules file: %w", err)
	}

	var doc ruleDoc
	switch docFormat(path) {
	case "yaml":
		err = yaml.Unmarshal(data, &doc)
	case "toml":
		err = toml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	// Stage into a fresh registry first so a half-valid document never
	// becomes visible to the hook callback.
	staging := New()
	for _, m := range doc.Mappings {
		if err := staging.AddMapping(m.Source, m.Target, m.Description); err != nil {
			continue
		}
		if !m.Enabled {
			_ = staging.ToggleMapping(m.Source)
		}
	}
	for _, b := range doc.Blocked {
		if err := staging.Block(b.Key, b.Description); err != nil {
			continue
		}
		if !b.Enabled {
			_ = staging.ToggleBlock(b.Key)
		}
	}

	r.replaceFrom(staging)
	return nil
}
