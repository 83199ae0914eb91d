package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"wellspring/internal/validation"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		h, v := docStyle.GetFrameSize()
		m.habitList.SetSize(msg.Width-h, msg.Height-v-2)
		m.moodList.SetSize(msg.Width-h, msg.Height-v-2)
		return m, nil
	}

	switch m.state {
	case stateAddHabit, stateEditHabit:
		return m.updateHabitForm(msg)
	case stateAddMood:
		return m.updateMoodForm(msg)
	case stateMoods:
		return m.updateMoods(msg)
	default:
		return m.updateHabits(msg)
	}
}

func (m *Model) updateHabits(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		m.status = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = stateMoods
			return m, nil
		case key.Matches(msg, m.keys.Add):
			m.habitForm = &habitFormModel{}
			m.form = newHabitForm(m.habitForm)
			m.state = stateAddHabit
			return m, m.form.Init()
		case key.Matches(msg, m.keys.Edit):
			if habit, ok := m.selectedHabit(); ok {
				m.habitForm = &habitFormModel{
					ID:     habit.ID,
					Name:   habit.Name,
					Target: intString(habit.TargetCount),
				}
				m.form = newHabitForm(m.habitForm)
				m.state = stateEditHabit
				return m, m.form.Init()
			}
		case key.Matches(msg, m.keys.Increment):
			if habit, ok := m.selectedHabit(); ok {
				updated, completed, err := m.tracker.Increment(habit.ID)
				if err != nil {
					m.err = err
					return m, nil
				}
				if completed {
					m.status = updated.Name + " completed! 🎉"
				}
				m.refreshHabits()
			}
		case key.Matches(msg, m.keys.Delete):
			if habit, ok := m.selectedHabit(); ok {
				if err := m.tracker.Delete(habit.ID); err != nil {
					m.err = err
					return m, nil
				}
				m.refreshHabits()
			}
		}
	}

	var cmd tea.Cmd
	m.habitList, cmd = m.habitList.Update(msg)
	return m, cmd
}

func (m *Model) updateMoods(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		m.status = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = stateHabits
			return m, nil
		case key.Matches(msg, m.keys.Add):
			m.moodForm = &moodFormModel{}
			m.form = newMoodForm(m.moodForm)
			m.state = stateAddMood
			return m, m.form.Init()
		case key.Matches(msg, m.keys.Delete):
			if entry, ok := m.selectedMood(); ok {
				if err := m.journal.Delete(entry.ID); err != nil {
					m.err = err
					return m, nil
				}
				m.refreshMoods()
			}
		case key.Matches(msg, m.keys.Share):
			summary, err := m.journal.Summary()
			if err != nil {
				m.status = err.Error()
				return m, nil
			}
			m.status = summary
		}
	}

	var cmd tea.Cmd
	m.moodList, cmd = m.moodList.Update(msg)
	return m, cmd
}

func (m *Model) updateHabitForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = stateHabits
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		target, err := validation.TargetCount(m.habitForm.Target)
		if err != nil {
			m.form.State = huh.StateNormal
			return m, cmd
		}
		if m.state == stateEditHabit {
			_, err = m.tracker.Edit(m.habitForm.ID, m.habitForm.Name, target)
		} else {
			_, err = m.tracker.Add(m.habitForm.Name, target)
		}
		if err != nil {
			m.form.State = huh.StateNormal
			return m, cmd
		}
		m.refreshHabits()
		m.state = stateHabits
	case huh.StateAborted:
		m.state = stateHabits
	}
	return m, cmd
}

func (m *Model) updateMoodForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = stateMoods
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if _, err := m.journal.Log(m.moodForm.Emoji, m.moodForm.Note); err != nil {
			m.form.State = huh.StateNormal
			return m, cmd
		}
		m.refreshMoods()
		m.state = stateMoods
	case huh.StateAborted:
		m.state = stateMoods
	}
	return m, cmd
}

func intString(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
