package notes

import "github.com/charmbracelet/bubbles/key"

type listKeyMap struct {
	toggleTitleBar   key.Binding
	toggleStatusBar  key.Binding
	togglePagination key.Binding
	toggleHelpMenu   key.Binding
	openNote         key.Binding
	changeView       key.Binding
	rename           key.Binding
	create           key.Binding
	submitAltView    key.Binding
	exitAltView      key.Binding
	toggleDetails    key.Binding
	switchToDefault  key.Binding
	switchToArchive  key.Binding
	switchToTrash    key.Binding
	sortByTitle      key.Binding
	sortBySubdir     key.Binding
	sortByModifiedAt key.Binding
	sortAscending    key.Binding
	sortDescending   key.Binding
}

func newListKeyMap() *listKeyMap {
	return &listKeyMap{
		toggleTitleBar: key.NewBinding(
			key.WithKeys("B"),
			key.WithHelp("B", "toggle title"),
		),
		toggleStatusBar: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "toggle status"),
		),
		togglePagination: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "toggle pagination"),
		),
		toggleHelpMenu: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "toggle help"),
		),
		toggleDetails: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "details"),
		),
		openNote: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "open"),
		),
		changeView: key.NewBinding(
			key.WithKeys("V"),
			key.WithHelp("V", "view"),
		),
		rename: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "rename"),
		),
		create: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "create"),
		),
		submitAltView: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "submit (alt view)"),
		),
		exitAltView: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "exit alt view"),
		),
		switchToDefault: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "switch to default view"),
		),
		switchToArchive: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "switch to archive view"),
		),
		switchToTrash: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "switch to trash view"),
		),
		sortByTitle: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "sort by title"),
		),
		sortBySubdir: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "sort by subdirectory"),
		),
		sortByModifiedAt: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("f3", "sort by modified"),
		),
		sortAscending: key.NewBinding(
			key.WithKeys("f5"),
			key.WithHelp("f5", "ascending sort"),
		),
		sortDescending: key.NewBinding(
			key.WithKeys("f6"),
			key.WithHelp("f6", "descending sort"),
		),
	}
}

func (m listKeyMap) fullHelp() []key.Binding {
	return []key.Binding{
		m.toggleTitleBar,
		m.toggleStatusBar,
		m.togglePagination,
		m.toggleHelpMenu,
		m.toggleDetails,
		m.openNote,
		m.rename,
		m.create,
		m.changeView,
		m.switchToDefault,
		m.switchToArchive,
		m.switchToTrash,
		m.exitAltView,
		m.submitAltView,
		m.sortByTitle,
		m.sortBySubdir,
		m.sortByModifiedAt,
	}
}
