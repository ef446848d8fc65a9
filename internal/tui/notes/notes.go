// Package notes is the vault browser: a filterable note list with a
// rendered markdown preview beside it.
package notes

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scribe-md/scribe/internal/frontmatter"
	"github.com/scribe-md/scribe/internal/render"
	"github.com/scribe-md/scribe/internal/state"
	"github.com/scribe-md/scribe/internal/tui/notes/submodels"
)

type NoteListModel struct {
	list         list.Model
	keys         *listKeyMap
	delegateKeys *delegateKeyMap
	state        *state.State
	renderer     *render.Renderer
	inputModel   submodels.InputModel
	preview      string
	viewName     string
	selected     string
	width        int
	height       int
	renaming     bool
	creating     bool
	showDetails  bool
	sortField    sortField
	sortOrder    sortOrder
}

func NewNoteListModel(s *state.State, viewName string) (*NoteListModel, error) {
	if viewName == "" {
		viewName = "default"
	}

	files, err := filesForView(s, viewName)
	if err != nil {
		return nil, err
	}

	items := parseNoteFiles(files, s.Vault, false)
	sortedItems := sortItems(items, sortByModifiedAt, descending)

	dkeys := newDelegateKeyMap()
	lkeys := newListKeyMap()
	delegate := newItemDelegate(dkeys, s.Handler, viewName)

	l := list.New(sortedItems, delegate, 0, 0)
	l.Title = titleForView(viewName)
	l.Styles.Title = titleStyle

	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{
			lkeys.openNote,
			lkeys.changeView,
		}
	}
	l.AdditionalFullHelpKeys = lkeys.fullHelp

	renderer, err := render.NewRenderer(80, s.Config.Editor.PreviewStyle)
	if err != nil {
		return nil, fmt.Errorf("failed to create preview renderer: %w", err)
	}

	return &NoteListModel{
		state:        s,
		list:         l,
		renderer:     renderer,
		viewName:     viewName,
		keys:         lkeys,
		delegateKeys: dkeys,
		inputModel:   submodels.NewInputModel(),
		sortField:    sortByModifiedAt,
		sortOrder:    descending,
	}, nil
}

func (m *NoteListModel) Init() tea.Cmd {
	return nil
}

// Selected returns the path chosen with open, empty when the browser was
// quit without a pick.
func (m *NoteListModel) Selected() string {
	return m.selected
}

func (m *NoteListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var retCmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := appStyle.GetFrameSize()
		m.list.SetSize(msg.Width/2-h, msg.Height-v)
		_ = m.renderer.SetWidth(msg.Width/2 - h)

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case m.renaming:
			return m.handleRenameUpdate(msg)
		case m.creating:
			return m.handleCreationUpdate(msg)
		default:
			_, retCmd = m.handleDefaultUpdate(msg)
			if m.selected != "" {
				return m, retCmd
			}
		}
	}

	nl, cmd := m.list.Update(msg)
	m.list = nl
	cmds = append(cmds, cmd, retCmd)

	m.handlePreview()
	return m, tea.Batch(cmds...)
}

func (m *NoteListModel) handleRenameUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.exitAltView) {
		m.toggleRename()
		return m, nil
	}

	if key.Matches(msg, m.keys.submitAltView) {
		if err := renameFile(m); err != nil {
			m.list.NewStatusMessage(
				statusStyle(fmt.Sprintf("Error renaming file: %v", err)),
			)
		} else {
			m.toggleRename()
			m.refresh()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputModel, cmd = m.inputModel.Update(msg)
	return m, cmd
}

func (m *NoteListModel) handleCreationUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.exitAltView) {
		m.toggleCreation()
		return m, nil
	}

	if key.Matches(msg, m.keys.submitAltView) {
		path, err := createNote(m)
		if err != nil {
			m.list.NewStatusMessage(
				statusStyle(fmt.Sprintf("Error creating note: %v", err)),
			)
			return m, nil
		}
		m.toggleCreation()
		m.selected = path
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.inputModel, cmd = m.inputModel.Update(msg)
	return m, cmd
}

func (m *NoteListModel) handleDefaultUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "q", msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.openNote):
		return m, m.openNote()

	case key.Matches(msg, m.keys.toggleTitleBar):
		m.toggleTitleBar()

	case key.Matches(msg, m.keys.toggleStatusBar):
		m.list.SetShowStatusBar(!m.list.ShowStatusBar())

	case key.Matches(msg, m.keys.togglePagination):
		m.list.SetShowPagination(!m.list.ShowPagination())

	case key.Matches(msg, m.keys.toggleHelpMenu):
		m.list.SetShowHelp(!m.list.ShowHelp())

	case key.Matches(msg, m.keys.toggleDetails):
		return m, m.toggleDetails()

	case key.Matches(msg, m.keys.changeView):
		return m, m.cycleView()

	case key.Matches(msg, m.keys.switchToDefault):
		return m, m.swapView("default")

	case key.Matches(msg, m.keys.switchToArchive):
		return m, m.swapView("archive")

	case key.Matches(msg, m.keys.switchToTrash):
		return m, m.swapView("trash")

	case key.Matches(msg, m.keys.rename):
		m.toggleRename()

	case key.Matches(msg, m.keys.create):
		m.toggleCreation()

	case key.Matches(msg, m.keys.sortByTitle):
		m.sortField = sortByTitle
		return m, m.refreshSort()

	case key.Matches(msg, m.keys.sortBySubdir):
		m.sortField = sortBySubdir
		return m, m.refreshSort()

	case key.Matches(msg, m.keys.sortByModifiedAt):
		m.sortField = sortByModifiedAt
		return m, m.refreshSort()

	case key.Matches(msg, m.keys.sortAscending):
		m.sortOrder = ascending
		return m, m.refreshSort()

	case key.Matches(msg, m.keys.sortDescending):
		m.sortOrder = descending
		return m, m.refreshSort()
	}

	return m, nil
}

func (m *NoteListModel) View() string {
	list := listStyle.Width(m.width / 2).Render(m.list.View())

	if m.creating {
		textPrompt := textPromptStyle.Render(
			lipgloss.NewStyle().
				Height(m.list.Height()).
				MaxHeight(m.list.Height()).
				Padding(0, 2).
				Render(fmt.Sprintf(
					"%s\n\n%s\n\n%s",
					titleStyle.Render("New note"),
					m.inputModel.View(),
					helpStyle.Render("subdir/name, without file extension"),
				)),
		)

		layout := lipgloss.JoinHorizontal(lipgloss.Top, list, textPrompt)
		return appStyle.Render(layout)
	}

	if m.renaming {
		textPrompt := textPromptStyle.Render(
			lipgloss.NewStyle().
				Height(m.list.Height()).
				MaxHeight(m.list.Height()).
				Padding(0, 2).
				Render(fmt.Sprintf(
					"%s\n\n%s",
					titleStyle.Render("Rename note"),
					m.inputModel.View(),
				)),
		)

		layout := lipgloss.JoinHorizontal(lipgloss.Top, list, textPrompt)
		return appStyle.Render(layout)
	}

	preview := previewStyle.Render(
		lipgloss.NewStyle().
			Height(m.list.Height()).
			MaxHeight(m.list.Height()).
			Render(fmt.Sprintf("%s\n%s", titleStyle.Render("Preview"), m.preview)),
	)

	layout := lipgloss.JoinHorizontal(lipgloss.Top, list, preview)
	return appStyle.Render(layout)
}

// Run shows the browser and blocks until the user opens a note or quits.
// It returns the chosen note path, empty when none was picked.
func Run(s *state.State, viewName string) (string, error) {
	m, err := NewNoteListModel(s, viewName)
	if err != nil {
		return "", err
	}

	final, err := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithAltScreen()).Run()
	if err != nil {
		return "", fmt.Errorf("error running notes browser: %w", err)
	}

	if nm, ok := final.(*NoteListModel); ok {
		return nm.Selected(), nil
	}
	return "", nil
}

func (m *NoteListModel) handlePreview() {
	s, ok := m.list.SelectedItem().(ListItem)
	if !ok {
		m.preview = ""
		return
	}

	content, err := os.ReadFile(s.path)
	if err != nil {
		m.preview = "Error reading file"
		return
	}

	// The renderer caches by content hash, so reselecting a note is free.
	res, err := m.renderer.RenderResult(frontmatter.Strip(string(content)))
	if err != nil {
		m.preview = "Error rendering markdown"
		return
	}

	body := res.Body
	if max := m.list.Height(); max > 0 {
		lines := strings.Split(body, "\n")
		if len(lines) > max {
			body = strings.Join(lines[:max], "\n")
		}
	}
	m.preview = body
}

func (m *NoteListModel) refresh() tea.Cmd {
	m.list.Title = titleForView(m.viewName)
	m.list.ResetFilter()
	m.refreshDelegate()
	cmd := m.refreshItems()
	m.list.ResetSelected()
	m.handlePreview()
	return cmd
}

func (m *NoteListModel) refreshItems() tea.Cmd {
	files, _ := filesForView(m.state, m.viewName)
	items := parseNoteFiles(files, m.state.Vault, m.showDetails)
	return m.list.SetItems(sortItems(items, m.sortField, m.sortOrder))
}

func (m *NoteListModel) refreshDelegate() {
	m.delegateKeys = newDelegateKeyMap()
	m.list.SetDelegate(newItemDelegate(m.delegateKeys, m.state.Handler, m.viewName))
}

func (m *NoteListModel) refreshSort() tea.Cmd {
	m.list.Title = titleForView(m.viewName)
	m.list.ResetFilter()
	items := castToListItems(m.list.Items())
	m.list.ResetSelected()
	cmd := m.list.SetItems(sortItems(items, m.sortField, m.sortOrder))
	m.handlePreview()
	return cmd
}

func (m *NoteListModel) openNote() tea.Cmd {
	if i, ok := m.list.SelectedItem().(ListItem); ok {
		m.selected = i.path
		return tea.Quit
	}
	return nil
}

func (m *NoteListModel) toggleTitleBar() {
	v := !m.list.ShowTitle()
	m.list.SetShowTitle(v)
	m.list.SetShowFilter(v)
	m.list.SetFilteringEnabled(v)
}

func (m *NoteListModel) toggleDetails() tea.Cmd {
	m.showDetails = !m.showDetails
	return m.refreshItems()
}

func (m *NoteListModel) cycleView() tea.Cmd {
	switch m.viewName {
	case "default":
		m.viewName = "archive"
	case "archive":
		m.viewName = "trash"
	default:
		m.viewName = "default"
	}

	return m.refresh()
}

func (m *NoteListModel) swapView(newView string) tea.Cmd {
	m.viewName = newView
	return m.refresh()
}

func (m *NoteListModel) toggleRename() {
	if m.renaming {
		m.renaming = false
		m.inputModel.Input.Blur()
		return
	}

	m.renaming = true
	m.inputModel.Input.Focus()
	if s, ok := m.list.SelectedItem().(ListItem); ok {
		m.inputModel.Input.SetValue(strings.TrimSuffix(s.fileName, ".md"))
	}
}

func (m *NoteListModel) toggleCreation() {
	if m.creating {
		m.creating = false
		m.inputModel.Input.Blur()
		return
	}

	m.creating = true
	m.inputModel.Input.SetValue("")
	m.inputModel.Input.Focus()
}
