// Package config loads menu definitions from YAML files. A definition
// carries the question, the choice list, and the optional prompt tuning
// (loop, page size, search mode, action keybindings).
package config

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/robottwo/chooser/pkg/choice"
	"github.com/robottwo/chooser/pkg/prompt"
)

// DefaultLast is the sentinel default value that asks for the answer
// recorded by the previous invocation of the same menu.
const DefaultLast = "last"

// Menu is one YAML menu definition.
type Menu struct {
	// ID identifies the menu in the answer history. Falls back to the
	// message when empty.
	ID      string `yaml:"id"`
	Message string `yaml:"message"`

	// Default selects the initially active entry by value. The special
	// value "last" resolves to the previously recorded answer.
	Default any `yaml:"default"`

	Loop     *bool  `yaml:"loop"`
	PageSize int    `yaml:"page_size"`
	Search   string `yaml:"search"`

	Choices []Entry     `yaml:"choices"`
	Actions []ActionDef `yaml:"actions"`
}

// Entry is one list row in a menu definition.
type Entry struct {
	Value       any    `yaml:"value"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Disabled    bool   `yaml:"disabled"`
	Reason      string `yaml:"reason"`
	Separator   bool   `yaml:"separator"`
}

// ActionDef is an alternate confirmation keybinding in a menu definition.
type ActionDef struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
	Name  string `yaml:"name"`
}

// Load reads and parses a menu definition from disk.
func Load(path string) (*Menu, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadFS reads and parses a menu definition from the given filesystem,
// typically the embedded default menu.
func LoadFS(fsys fs.FS, path string) (*Menu, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse unmarshals and validates a menu definition.
func Parse(data []byte) (*Menu, error) {
	var menu Menu
	if err := yaml.Unmarshal(data, &menu); err != nil {
		return nil, fmt.Errorf("failed to parse menu definition: %w", err)
	}
	if err := menu.validate(); err != nil {
		return nil, err
	}
	return &menu, nil
}

func (m *Menu) validate() error {
	if m.Message == "" {
		return fmt.Errorf("menu definition has no message")
	}
	if len(m.Choices) == 0 {
		return fmt.Errorf("menu definition has no choices")
	}
	switch m.Search {
	case "", "prefix", "fuzzy":
	default:
		return fmt.Errorf("unknown search mode %q", m.Search)
	}
	if _, bad := lo.Find(m.Actions, func(a ActionDef) bool { return a.Key == "" || a.Value == "" }); bad {
		return fmt.Errorf("every action needs both a key and a value")
	}
	return nil
}

// HistoryID returns the key under which this menu's answers are
// recorded.
func (m *Menu) HistoryID() string {
	if m.ID != "" {
		return m.ID
	}
	return m.Message
}

// WantsLastAnswer reports whether the default should be resolved from
// the answer history.
func (m *Menu) WantsLastAnswer() bool {
	s, ok := m.Default.(string)
	return ok && s == DefaultLast
}

// ChoiceList converts the definition's entries into prompt choices.
func (m *Menu) ChoiceList() []choice.Choice {
	return lo.Map(m.Choices, func(e Entry, _ int) choice.Choice {
		if e.Separator {
			return choice.Separator(e.Name)
		}
		return choice.Choice{
			Value:          e.Value,
			Name:           e.Name,
			Description:    e.Description,
			Disabled:       e.Disabled,
			DisabledReason: e.Reason,
		}
	})
}

// PromptOptions builds the prompt configuration for this menu. The
// default value is left unset here when it refers to the history; the
// caller resolves it and passes the result.
func (m *Menu) PromptOptions() prompt.Options {
	opts := prompt.NewOptions()
	opts.Message = m.Message
	if !m.WantsLastAnswer() {
		opts.Default = m.Default
	}
	if m.Loop != nil {
		opts.Loop = *m.Loop
	}
	if m.PageSize > 0 {
		opts.PageSize = m.PageSize
	}
	if m.Search == "fuzzy" {
		opts.SearchMode = choice.MatchModeFuzzy
	}
	opts.Actions = lo.Map(m.Actions, func(a ActionDef, _ int) prompt.Action {
		return prompt.Action{Key: a.Key, Value: a.Value, Name: a.Name}
	})
	return opts
}
