package notes

import (
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/scribe-md/scribe/internal/handler"
)

func newItemDelegate(
	keys *delegateKeyMap,
	h *handler.FileHandler,
	view string,
) list.DefaultDelegate {
	d := list.NewDefaultDelegate()

	d.Styles.SelectedTitle = selectedItemStyle
	d.Styles.SelectedDesc = selectedItemStyle

	d.UpdateFunc = func(msg tea.Msg, m *list.Model) tea.Cmd {
		var (
			n string
			p string
		)

		if i, ok := m.SelectedItem().(ListItem); ok {
			n = i.fileName
			p = i.path
		} else {
			return nil
		}

		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, keys.archive):
				if view == "default" {
					if err := h.Archive(p); err != nil {
						return m.NewStatusMessage(statusStyle("Failed to archive " + n))
					}
					removeItemByPath(m, p)
					return m.NewStatusMessage(statusStyle("Archived " + n))
				}

			case key.Matches(msg, keys.delete):
				if view == "trash" {
					if err := os.Remove(p); err != nil {
						return m.NewStatusMessage(statusStyle("Failed to delete " + n))
					}
					removeItemByPath(m, p)
					return m.NewStatusMessage(statusStyle("Deleted " + n))
				}

			case key.Matches(msg, keys.trash):
				if err := h.Trash(p); err != nil {
					return m.NewStatusMessage(statusStyle("Failed to move " + n + " to trash"))
				}
				removeItemByPath(m, p)
				return m.NewStatusMessage(statusStyle("Moved " + n + " to trash"))

			case key.Matches(msg, keys.undo):
				switch view {
				case "archive":
					if err := h.Unarchive(p); err != nil {
						return m.NewStatusMessage(statusStyle("Failed to unarchive " + n))
					}
					removeItemByPath(m, p)
					return m.NewStatusMessage(statusStyle("Restored " + n))

				case "trash":
					if err := h.Untrash(p); err != nil {
						return m.NewStatusMessage(statusStyle("Failed to restore " + n))
					}
					removeItemByPath(m, p)
					return m.NewStatusMessage(statusStyle("Restored " + n))
				}
			}
		}

		return nil
	}

	var (
		longHelp  [][]key.Binding
		shortHelp []key.Binding
	)

	switch view {
	case "archive":
		shortHelp = []key.Binding{keys.trash, keys.undo}
		longHelp = [][]key.Binding{{keys.trash, keys.undo}}
	case "trash":
		shortHelp = []key.Binding{keys.delete, keys.undo}
		longHelp = [][]key.Binding{{keys.delete, keys.undo}}
	default:
		shortHelp = []key.Binding{keys.trash, keys.archive}
		longHelp = [][]key.Binding{{keys.trash, keys.archive}}
	}

	d.ShortHelpFunc = func() []key.Binding {
		return shortHelp
	}

	d.FullHelpFunc = func() [][]key.Binding {
		return longHelp
	}
	return d
}

func removeItemByPath(m *list.Model, path string) {
	if path == "" {
		return
	}

	for idx, item := range m.Items() {
		li, ok := item.(ListItem)
		if !ok {
			continue
		}
		if li.path == path {
			m.RemoveItem(idx)
			return
		}
	}
}

type delegateKeyMap struct {
	archive key.Binding
	undo    key.Binding
	delete  key.Binding
	trash   key.Binding
}

func newDelegateKeyMap() *delegateKeyMap {
	return &delegateKeyMap{
		archive: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "archive"),
		),
		undo: key.NewBinding(
			key.WithKeys("U"),
			key.WithHelp("U", "undo"),
		),
		delete: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "del"),
		),
		trash: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "trash"),
		),
	}
}
