package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	switch m.state {
	case stateAddHabit, stateEditHabit, stateAddMood:
		return docStyle.Render(m.form.View())
	}

	var b strings.Builder
	b.WriteString(m.tabBar())
	b.WriteString("\n\n")

	if m.state == stateMoods {
		b.WriteString(m.moodList.View())
		b.WriteString("\n")
		b.WriteString(helpLine(m.keys.moodBindings()))
	} else {
		b.WriteString(m.habitList.View())
		b.WriteString("\n")
		b.WriteString(helpLine(m.keys.habitBindings()))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
	} else if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	return docStyle.Render(b.String())
}

func (m *Model) tabBar() string {
	habits := inactiveTabStyle.Render("Habits")
	moods := inactiveTabStyle.Render("Mood Journal")
	if m.state == stateMoods {
		moods = activeTabStyle.Render("Mood Journal")
	} else {
		habits = activeTabStyle.Render("Habits")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, habits, " ", moods)
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return inactiveTabStyle.Render(strings.Join(parts, " • "))
}
