package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	runewidth "github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/robottwo/chooser/internal/styles"
)

var (
	pointerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	descriptionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).PaddingLeft(2)
)

func (m appModel) View() string {
	if m.interrupted {
		return styles.MESSAGE("? "+m.opts.Message) + " ^C\n"
	}
	if m.result != nil {
		return m.finalView()
	}

	var b strings.Builder

	b.WriteString(styles.MESSAGE("? " + m.opts.Message))
	if !m.helpDismissed {
		b.WriteString(" " + styles.HELP("(Use arrow keys or type to search)"))
	}
	b.WriteRune('\n')

	active := m.machine.ActiveIndex()
	for _, idx := range window(len(m.choices), active, m.opts.PageSize, m.opts.Loop) {
		b.WriteString(m.renderRow(idx, idx == active))
		b.WriteRune('\n')
	}

	if desc := m.choices[active].Description; desc != "" {
		b.WriteString(descriptionStyle.Render(desc))
		b.WriteRune('\n')
	}

	if term := m.textInput.Value(); term != "" {
		b.WriteString(m.clipStyled(styles.HELP("search: ") + term))
		b.WriteRune('\n')
	}

	if help := m.actionHelp(); help != "" {
		b.WriteString(m.clipStyled(help))
		b.WriteRune('\n')
	}

	return b.String()
}

// renderRow decides text and style for one list row; layout beyond
// clipping to the terminal width is left to the terminal.
func (m appModel) renderRow(idx int, isActive bool) string {
	c := m.choices[idx]

	if c.IsSeparator {
		label := c.Text()
		if label == "" {
			label = strings.Repeat("─", 8)
		}
		return "  " + styles.SEPARATOR(m.clipPlain(label))
	}

	if !c.Selectable() {
		reason := c.DisabledReason
		if reason == "" {
			reason = "disabled"
		}
		return "  " + styles.DISABLED(m.clipPlain(fmt.Sprintf("- %s (%s)", c.Text(), reason)))
	}

	text := m.clipPlain(c.Text())
	if isActive {
		return pointerStyle.Render("❯ ") + styles.HIGHLIGHT(text)
	}
	return "  " + text
}

// actionHelp renders the alternate confirmation keys, e.g.
// "<o> open  <e> edit".
func (m appModel) actionHelp() string {
	if len(m.opts.Actions) == 0 {
		return ""
	}
	parts := make([]string, 0, len(m.opts.Actions))
	for _, a := range m.opts.Actions {
		label := a.Name
		if label == "" {
			label = a.Value
		}
		parts = append(parts, styles.KEY("<"+a.Key+">")+" "+styles.HELP(label))
	}
	return strings.Join(parts, "  ")
}

func (m appModel) finalView() string {
	answer := m.choices[m.machine.ActiveIndex()].Text()
	line := styles.MESSAGE("? "+m.opts.Message) + " " + styles.ANSWER(answer)
	if a := m.machine.SelectedAction(); a != nil {
		label := a.Name
		if label == "" {
			label = a.Value
		}
		line += " " + styles.HELP("("+label+")")
	}
	return line + "\n"
}

// clipPlain truncates unstyled text to the terminal width, leaving room
// for the two-column pointer gutter.
func (m appModel) clipPlain(s string) string {
	if m.width <= 4 {
		return s
	}
	return runewidth.Truncate(s, m.width-4, "…")
}

// clipStyled truncates a line that already carries ANSI styling.
func (m appModel) clipStyled(s string) string {
	if m.width <= 0 || ansi.PrintableRuneWidth(s) <= m.width {
		return s
	}
	return truncate.String(s, uint(m.width))
}
