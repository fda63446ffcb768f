package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robottwo/chooser/pkg/choice"
)

const sampleMenu = `
id: deploy-target
message: Pick a deploy target
default: staging
loop: false
page_size: 5
search: fuzzy
choices:
  - separator: true
    name: environments
  - value: staging
    name: Staging
    description: shared test environment
  - value: production
    name: Production
    disabled: true
    reason: requires approval
actions:
  - key: o
    value: open
    name: open in browser
`

func TestParse(t *testing.T) {
	menu, err := Parse([]byte(sampleMenu))
	require.NoError(t, err)

	assert.Equal(t, "deploy-target", menu.HistoryID())
	assert.Equal(t, "Pick a deploy target", menu.Message)
	assert.False(t, menu.WantsLastAnswer())
	require.Len(t, menu.Choices, 3)
	assert.True(t, menu.Choices[0].Separator)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no message", "choices:\n  - value: a\n"},
		{"no choices", "message: hi\n"},
		{"bad search mode", "message: hi\nsearch: regex\nchoices:\n  - value: a\n"},
		{"action without key", "message: hi\nchoices:\n  - value: a\nactions:\n  - value: open\n"},
		{"not yaml", "{{{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestMenu_ChoiceList(t *testing.T) {
	menu, err := Parse([]byte(sampleMenu))
	require.NoError(t, err)

	choices := menu.ChoiceList()
	require.Len(t, choices, 3)

	assert.True(t, choices[0].IsSeparator)
	assert.Equal(t, "environments", choices[0].Text())

	assert.Equal(t, "staging", choices[1].Value)
	assert.Equal(t, "shared test environment", choices[1].Description)
	assert.True(t, choices[1].Selectable())

	assert.False(t, choices[2].Selectable())
	assert.Equal(t, "requires approval", choices[2].DisabledReason)
}

func TestMenu_PromptOptions(t *testing.T) {
	menu, err := Parse([]byte(sampleMenu))
	require.NoError(t, err)

	opts := menu.PromptOptions()
	assert.Equal(t, "Pick a deploy target", opts.Message)
	assert.Equal(t, "staging", opts.Default)
	assert.False(t, opts.Loop)
	assert.Equal(t, 5, opts.PageSize)
	assert.Equal(t, choice.MatchModeFuzzy, opts.SearchMode)
	require.Len(t, opts.Actions, 1)
	assert.Equal(t, "o", opts.Actions[0].Key)
}

func TestMenu_LastAnswerDefault(t *testing.T) {
	menu, err := Parse([]byte("message: hi\ndefault: last\nchoices:\n  - value: a\n"))
	require.NoError(t, err)

	assert.True(t, menu.WantsLastAnswer())
	assert.Nil(t, menu.PromptOptions().Default, "history defaults are resolved by the caller")
}

func TestMenu_HistoryIDFallsBackToMessage(t *testing.T) {
	menu, err := Parse([]byte("message: hi\nchoices:\n  - value: a\n"))
	require.NoError(t, err)
	assert.Equal(t, "hi", menu.HistoryID())
}
