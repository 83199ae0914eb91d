// Package tui is the interactive dashboard: a habits tab with progress bars
// and a mood journal tab, with huh forms standing in for the original app's
// add/edit dialogs.
package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"wellspring/internal/journal"
	"wellspring/internal/models"
	"wellspring/internal/prefs"
	"wellspring/internal/storage"
	"wellspring/internal/tracker"
)

type sessionState int

const (
	stateHabits sessionState = iota
	stateMoods
	stateAddHabit
	stateEditHabit
	stateAddMood
)

type habitFormModel struct {
	ID     string
	Name   string
	Target string
}

type moodFormModel struct {
	Emoji string
	Note  string
}

type Model struct {
	store   storage.Provider
	prefs   *prefs.Store
	tracker *tracker.Service
	journal *journal.Service

	state     sessionState
	keys      keyMap
	habitList list.Model
	moodList  list.Model

	form      *huh.Form
	habitForm *habitFormModel
	moodForm  *moodFormModel

	status string
	err    error
	width  int
	height int
}

func New(store storage.Provider, p *prefs.Store) *Model {
	habitList := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	habitList.Title = "Habits"
	habitList.SetShowHelp(false)

	moodList := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	moodList.Title = "Mood Journal"
	moodList.SetShowHelp(false)

	return &Model{
		store:     store,
		prefs:     p,
		tracker:   tracker.New(store),
		journal:   journal.New(store),
		state:     stateHabits,
		keys:      defaultKeyMap(),
		habitList: habitList,
		moodList:  moodList,
	}
}

func (m *Model) Init() tea.Cmd {
	m.refreshHabits()
	m.refreshMoods()
	return nil
}

func (m *Model) refreshHabits() {
	habits, err := m.tracker.Habits()
	if err != nil {
		m.err = err
		return
	}
	items := make([]list.Item, len(habits))
	for i, h := range habits {
		items[i] = habitItem{habit: h}
	}
	m.habitList.SetItems(items)
}

func (m *Model) refreshMoods() {
	entries, err := m.journal.Entries()
	if err != nil {
		m.err = err
		return
	}
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = moodItem{entry: e}
	}
	m.moodList.SetItems(items)
}

func (m *Model) selectedHabit() (models.Habit, bool) {
	item, ok := m.habitList.SelectedItem().(habitItem)
	if !ok {
		return models.Habit{}, false
	}
	return item.habit, true
}

func (m *Model) selectedMood() (models.MoodEntry, bool) {
	item, ok := m.moodList.SelectedItem().(moodItem)
	if !ok {
		return models.MoodEntry{}, false
	}
	return item.entry, true
}
