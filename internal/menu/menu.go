// Package menu implements the interactive terminal menu for editing
// rules and controlling the remapper.
package menu

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hookmap/hookmap/internal/registry"
)

// Config wires the menu to the rule registry and the hook lifecycle.
type Config struct {
	Rules *registry.Registry
	Path  string

	Start   func() error
	Stop    func()
	Running func() bool

	Elevated bool
}

type screen int

const (
	screenList screen = iota
	screenAddMapping
	screenAddBlock
)

type ruleItem struct {
	block bool
	key   string
	title string
	desc  string
}

func (i ruleItem) Title() string       { return i.title }
func (i ruleItem) Description() string { return i.desc }
func (i ruleItem) FilterValue() string { return i.key }

type toastMsg struct{ text string }

func toastCmd(text string) tea.Cmd {
	return func() tea.Msg { return toastMsg{text: text} }
}

// Model is the bubbletea model for the menu.
type Model struct {
	cfg    Config
	styles styles
	keys   keyMap

	width  int
	height int

	scr   screen
	rules list.Model

	source textinput.Model
	target textinput.Model
	field  int

	toast      string
	toastUntil time.Time
}

// Run starts the menu and blocks until the user quits.
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func New(cfg Config) Model {
	s := newStyles()
	km := newKeyMap()

	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Rules"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = l.Styles.Title.Foreground(lipgloss.Color("81")).Bold(true)
	l.Styles.PaginationStyle = l.Styles.PaginationStyle.Foreground(lipgloss.Color("244"))

	src := textinput.New()
	src.Placeholder = "source, e.g. capslock or ctrl+a"
	src.Prompt = "from: "
	src.CharLimit = 64

	dst := textinput.New()
	dst.Placeholder = "target, e.g. escape"
	dst.Prompt = "to:   "
	dst.CharLimit = 64

	m := Model{
		cfg:    cfg,
		styles: s,
		keys:   km,
		scr:    screenList,
		rules:  l,
		source: src,
		target: dst,
	}
	m.rebuildList()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if t, ok := msg.(toastMsg); ok {
		m.toast = t.text
		m.toastUntil = time.Now().Add(2 * time.Second)
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	case tea.KeyMsg:
		if m.scr == screenList {
			return m.updateList(msg)
		}
		return m.updateForm(msg)
	}

	var cmd tea.Cmd
	m.rules, cmd = m.rules.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.cfg.Stop != nil && m.running() {
			m.cfg.Stop()
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.AddMap):
		m.scr = screenAddMapping
		m.openForm()
		return m, nil
	case key.Matches(msg, m.keys.AddBlock):
		m.scr = screenAddBlock
		m.openForm()
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		it, ok := m.rules.SelectedItem().(ruleItem)
		if !ok {
			return m, nil
		}
		var err error
		if it.block {
			err = m.cfg.Rules.Unblock(it.key)
		} else {
			err = m.cfg.Rules.RemoveMapping(it.key)
		}
		if err != nil {
			return m, toastCmd(err.Error())
		}
		m.rebuildList()
		return m, toastCmd("deleted " + it.key)
	case key.Matches(msg, m.keys.Toggle):
		it, ok := m.rules.SelectedItem().(ruleItem)
		if !ok {
			return m, nil
		}
		var err error
		if it.block {
			err = m.cfg.Rules.ToggleBlock(it.key)
		} else {
			err = m.cfg.Rules.ToggleMapping(it.key)
		}
		if err != nil {
			return m, toastCmd(err.Error())
		}
		m.rebuildList()
		return m, toastCmd("toggled " + it.key)
	case key.Matches(msg, m.keys.StartStop):
		if m.running() {
			m.cfg.Stop()
			return m, toastCmd("remapping stopped")
		}
		if err := m.cfg.Start(); err != nil {
			return m, toastCmd(err.Error())
		}
		return m, toastCmd("remapping active")
	case key.Matches(msg, m.keys.Save):
		if err := m.cfg.Rules.SaveFile(m.cfg.Path); err != nil {
			return m, toastCmd("save failed: " + err.Error())
		}
		return m, toastCmd("saved " + m.cfg.Path)
	case key.Matches(msg, m.keys.Reload):
		if err := m.cfg.Rules.LoadFile(m.cfg.Path); err != nil {
			return m, toastCmd("reload failed: " + err.Error())
		}
		m.rebuildList()
		return m, toastCmd("reloaded " + m.cfg.Path)
	}

	var cmd tea.Cmd
	m.rules, cmd = m.rules.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.scr = screenList
		m.source.Blur()
		m.target.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Next):
		if m.scr == screenAddMapping {
			m.field = (m.field + 1) % 2
			if m.field == 0 {
				m.source.Focus()
				m.target.Blur()
			} else {
				m.source.Blur()
				m.target.Focus()
			}
		}
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m.submitForm()
	}

	var cmd tea.Cmd
	if m.scr == screenAddMapping && m.field == 1 {
		m.target, cmd = m.target.Update(msg)
	} else {
		m.source, cmd = m.source.Update(msg)
	}
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	src := m.source.Value()
	var err error
	var done string
	if m.scr == screenAddBlock {
		err = m.cfg.Rules.Block(src, "")
		done = "blocked " + src
	} else {
		dst := m.target.Value()
		err = m.cfg.Rules.AddMapping(src, dst, "")
		done = "mapped " + src + " -> " + dst
	}
	if err != nil {
		return m, toastCmd(err.Error())
	}
	m.scr = screenList
	m.source.Blur()
	m.target.Blur()
	m.rebuildList()
	return m, toastCmd(done)
}

func (m *Model) openForm() {
	m.source.SetValue("")
	m.target.SetValue("")
	m.field = 0
	m.source.Focus()
	m.target.Blur()
}

func (m *Model) rebuildList() {
	mappings := m.cfg.Rules.Mappings()
	blocked := m.cfg.Rules.Blocked()

	items := make([]list.Item, 0, len(mappings)+len(blocked))
	for _, r := range mappings {
		desc := r.Description
		if !r.Enabled {
			desc = "disabled"
		}
		items = append(items, ruleItem{
			key:   r.Source,
			title: fmt.Sprintf("%s -> %s", r.Source, r.Target),
			desc:  desc,
		})
	}
	for _, b := range blocked {
		desc := b.Description
		if !b.Enabled {
			desc = "disabled"
		}
		items = append(items, ruleItem{
			block: true,
			key:   b.Key,
			title: fmt.Sprintf("block %s", b.Key),
			desc:  desc,
		})
	}
	m.rules.SetItems(items)
}

func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	contentW := m.width - m.styles.app.GetHorizontalPadding()
	contentH := m.height - m.styles.app.GetVerticalPadding()
	if contentW < 20 {
		contentW = 20
	}
	if contentH < 10 {
		contentH = 10
	}
	m.rules.SetSize(contentW, contentH-5)
	m.source.Width = contentW - 10
	m.target.Width = contentW - 10
}

func (m Model) running() bool {
	return m.cfg.Running != nil && m.cfg.Running()
}

func (m Model) View() string {
	if m.scr != screenList {
		return m.viewForm()
	}

	header := m.viewHeader()
	body := m.styles.border.Render(m.rules.View())
	footer := m.viewFooter()
	return m.styles.app.Render(lipgloss.JoinVertical(lipgloss.Left, header, body, footer))
}

func (m Model) viewForm() string {
	title := "Add mapping"
	hint := "enter confirm | tab next field | esc back"
	if m.scr == screenAddBlock {
		title = "Block key"
		hint = "enter confirm | esc back"
	}
	header := lipgloss.JoinHorizontal(lipgloss.Left,
		m.styles.title.Render(title),
		" ",
		m.styles.dim.Render(hint),
	)

	form := m.source.View()
	if m.scr == screenAddMapping {
		form = lipgloss.JoinVertical(lipgloss.Left, m.source.View(), m.target.View())
	}
	body := m.styles.border.Render(form)
	return m.styles.app.Render(lipgloss.JoinVertical(lipgloss.Left, header, body, m.viewFooter()))
}

func (m Model) viewHeader() string {
	badge := m.styles.badgeOff.Render("STOPPED")
	if m.running() {
		badge = m.styles.badgeOn.Render("REMAPPING")
	}
	title := m.styles.title.Render("hookmap")

	mappings, blocked := m.cfg.Rules.Counts()
	counts := m.styles.dim.Render(fmt.Sprintf("%d mappings, %d blocked | %s", mappings, blocked, m.cfg.Path))

	parts := []string{title, " ", badge, "  ", counts}
	if !m.cfg.Elevated {
		parts = append(parts, "  ", m.styles.badgeWarn.Render("NOT ELEVATED"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, parts...)
}

func (m Model) viewFooter() string {
	if m.toast != "" && time.Now().Before(m.toastUntil) {
		return m.renderBar(m.styles.status, m.toast)
	}
	if m.scr != screenList {
		return m.renderBar(m.styles.statusDim, "enter confirm | tab next field | esc back")
	}
	return m.renderBar(m.styles.statusDim, "a add | b block | t toggle | d delete | s start/stop | w save | l reload | q quit")
}

func (m Model) renderBar(s lipgloss.Style, text string) string {
	w := m.width - m.styles.app.GetHorizontalPadding()
	if w < 0 {
		w = 0
	}
	return s.Width(w).Render(text)
}
