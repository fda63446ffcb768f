package prompt

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/robottwo/chooser/pkg/choice"
)

// ErrInterrupted is returned when the user cancels the prompt with
// Esc or Ctrl+C.
var ErrInterrupted = errors.New("prompt interrupted by user")

// debounceMsg fires when an armed search-reset timer expires. The id is
// matched against the machine's live timer; stale ids are discarded.
type debounceMsg struct {
	id uint64
}

type appModel struct {
	machine *Machine
	choices []choice.Choice
	opts    Options
	logger  *zap.Logger

	// textInput is the line-editing collaborator holding the type-ahead
	// search buffer. It is never rendered with a visible cursor; the list
	// view echoes its value on the search line instead.
	textInput textinput.Model

	width       int
	interrupted bool
	result      *Result

	// helpDismissed tracks whether the user has interacted yet. It is
	// owned by this invocation; nothing survives across prompts.
	helpDismissed bool
}

// tiEditor adapts a bubbles textinput to the machine's LineEditor.
type tiEditor struct {
	input *textinput.Model
}

func (e tiEditor) Value() string { return e.input.Value() }
func (e tiEditor) Reset()        { e.input.Reset() }

func newAppModel(choices []choice.Choice, opts Options) (appModel, error) {
	if opts.PageSize <= 0 {
		opts.PageSize = defaultPageSize
	}
	if opts.DebounceInterval <= 0 {
		opts.DebounceInterval = 700 * time.Millisecond
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	machine, err := NewMachine(choices, opts)
	if err != nil {
		return appModel{}, err
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.Focus()

	return appModel{
		machine:   machine,
		choices:   choices,
		opts:      opts,
		logger:    logger,
		textInput: ti,
	}, nil
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.textInput.Width = msg.Width
		return m, nil

	case debounceMsg:
		m.machine.HandleDebounceElapsed(msg.id, tiEditor{&m.textInput})
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.interrupted = true
		return m, tea.Quit
	case "esc":
		// Esc cancels unless the caller explicitly bound an action to it.
		if m.machine.actionForKey("esc") == nil {
			m.interrupted = true
			return m, tea.Quit
		}
	}

	// Printable keys must reach the line editor before the machine runs,
	// so the search branch matches against the updated buffer. Navigation
	// keys are absorbed here too; the machine resets the line anyway.
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace || msg.Type == tea.KeyBackspace {
		m.textInput, _ = m.textInput.Update(msg)
	}

	m.helpDismissed = true
	effect := m.machine.HandleKey(msg.String(), tiEditor{&m.textInput})
	return m.applyEffect(effect)
}

func (m appModel) applyEffect(effect Effect) (tea.Model, tea.Cmd) {
	if effect.Result != nil {
		m.result = effect.Result
		m.logger.Debug("prompt completed",
			zap.String("action", effect.Result.Action),
		)
		return m, tea.Quit
	}

	if effect.ArmDebounce {
		id := effect.DebounceID
		return m, tea.Tick(m.opts.DebounceInterval, func(time.Time) tea.Msg {
			return debounceMsg{id: id}
		})
	}

	return m, nil
}

// Run displays the prompt on the terminal and blocks until the user
// confirms a choice or cancels. It fails fast, before any rendering,
// when the choice list has no selectable entry.
func Run(choices []choice.Choice, opts Options) (Result, error) {
	model, err := newAppModel(choices, opts)
	if err != nil {
		return Result{}, err
	}

	p := tea.NewProgram(model)
	out, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	final, ok := out.(appModel)
	if !ok {
		return Result{}, errors.New("prompt: unexpected final model type")
	}

	if final.interrupted {
		return Result{}, ErrInterrupted
	}
	if final.result == nil {
		// The program ended without a completion event (e.g. the runtime
		// was killed); report it the same way as a cancel.
		return Result{}, ErrInterrupted
	}

	return *final.result, nil
}
