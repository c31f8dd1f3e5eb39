package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Search        key.Binding
	ClearSearch   key.Binding
	SwitchPane    key.Binding
	Open          key.Binding
	Parent        key.Binding
	ToggleGlobal  key.Binding
	ToggleMark    key.Binding
	MarkAll       key.Binding
	ClearMarks    key.Binding
	Delete        key.Binding
	Refresh       key.Binding
	SortName      key.Binding
	SortSize      key.Binding
	SortType      key.Binding
	ToggleOrder   key.Binding
	ToggleConfirm key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open folder"),
		),
		Parent: key.NewBinding(
			key.WithKeys("backspace", "-"),
			key.WithHelp("backspace", "parent"),
		),
		ToggleGlobal: key.NewBinding(
			key.WithKeys("ctrl+g", "S"),
			key.WithHelp("S", "global search"),
		),
		ToggleMark: key.NewBinding(
			key.WithKeys("space", " "),
			key.WithHelp("space", "select"),
		),
		MarkAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "select all"),
		),
		ClearMarks: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "clear selection"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		SortName: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "sort name"),
		),
		SortSize: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "sort size"),
		),
		SortType: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "sort type"),
		),
		ToggleOrder: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "toggle order"),
		),
		ToggleConfirm: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "toggle confirm"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.SwitchPane, k.ToggleMark, k.Delete, k.ToggleGlobal, k.Refresh, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.ClearSearch, k.ToggleGlobal, k.SwitchPane, k.Open, k.Parent},
		{k.ToggleMark, k.MarkAll, k.ClearMarks, k.Delete, k.ToggleConfirm},
		{k.SortName, k.SortSize, k.SortType, k.ToggleOrder, k.Refresh, k.Help, k.Quit},
	}
}
