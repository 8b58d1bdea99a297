package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Search     key.Binding
	Apply      key.Binding
	Cancel     key.Binding
	NextAxis   key.Binding
	Category   key.Binding
	Difficulty key.Binding
	NextPage   key.Binding
	PrevPage   key.Binding
	Clear      key.Binding
	Refresh    key.Binding
	Quit       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Apply:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		NextAxis:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next axis")),
		Category:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cycle category")),
		Difficulty: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "difficulty")),
		NextPage:   key.NewBinding(key.WithKeys("n", "right"), key.WithHelp("→/n", "next page")),
		PrevPage:   key.NewBinding(key.WithKeys("p", "left"), key.WithHelp("←/p", "prev page")),
		Clear:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filters")),
		Refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.NextAxis, k.Category, k.Difficulty, k.NextPage, k.PrevPage, k.Clear, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.Apply, k.Cancel},
		{k.NextAxis, k.Category, k.Difficulty},
		{k.NextPage, k.PrevPage, k.Clear, k.Refresh, k.Quit},
	}
}
