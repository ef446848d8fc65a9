package editor

import "github.com/charmbracelet/bubbles/key"

type editorKeyMap struct {
	save          key.Binding
	quit          key.Binding
	togglePreview key.Binding
	toggleType    key.Binding
	toggleFollow  key.Binding
	forceSync     key.Binding
	grammar       key.Binding
	images        key.Binding
	switchFocus   key.Binding
	closePanel    key.Binding
	submit        key.Binding
}

func newEditorKeyMap() *editorKeyMap {
	return &editorKeyMap{
		save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		quit: key.NewBinding(
			key.WithKeys("ctrl+q", "ctrl+c"),
			key.WithHelp("ctrl+q", "quit"),
		),
		togglePreview: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "preview"),
		),
		toggleType: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "typewriter"),
		),
		toggleFollow: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "follow scroll"),
		),
		forceSync: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "re-sync"),
		),
		grammar: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "grammar"),
		),
		images: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "images"),
		),
		switchFocus: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "switch pane"),
		),
		closePanel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "insert"),
		),
	}
}
