package settings

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/erikgeiser/promptkit/selection"

	"github.com/scribe-md/scribe/internal/config"
)

const (
	itemVaultDir     = "VaultDir"
	itemPreviewStyle = "PreviewStyle"
	itemTypewriter   = "Typewriter"
	itemSyncScroll   = "SyncScroll"
	itemWordWrap     = "WordWrap"
	itemGrammar      = "GrammarEnabled"
	itemGrammarModel = "GrammarModel"
)

type ListItem struct {
	title       string
	description string
}

func (i ListItem) Title() string       { return i.title }
func (i ListItem) Description() string { return i.description }
func (i ListItem) FilterValue() string { return i.title }

type listKeyMap struct {
	toggleTitleBar   key.Binding
	toggleStatusBar  key.Binding
	togglePagination key.Binding
	toggleHelpMenu   key.Binding
	toggleEditItem   key.Binding
	exitInputMode    key.Binding
}

func newListKeyMap() *listKeyMap {
	return &listKeyMap{
		toggleTitleBar: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "toggle title"),
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
		toggleEditItem: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit item"),
		),
		exitInputMode: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "exit input mode"),
		),
	}
}

type ListModel struct {
	list            list.Model
	keys            *listKeyMap
	config          *config.Config
	input           textinput.Model
	inputActive     bool
	selectModel     *selection.Model[string]
	selectActive    bool
	editingItem     string
	onOffSelections []string
	styleSelections []string
}

func configItems(cfg *config.Config) []list.Item {
	return []list.Item{
		ListItem{title: itemVaultDir, description: cfg.VaultDir},
		ListItem{title: itemPreviewStyle, description: cfg.Editor.PreviewStyle},
		ListItem{title: itemTypewriter, description: onOff(cfg.Editor.Typewriter)},
		ListItem{title: itemSyncScroll, description: onOff(cfg.Editor.SyncScroll)},
		ListItem{title: itemWordWrap, description: strconv.Itoa(cfg.Editor.WordWrap)},
		ListItem{title: itemGrammar, description: onOff(cfg.Grammar.Enable)},
		ListItem{title: itemGrammarModel, description: cfg.Grammar.Model},
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func NewListModel(cfg *config.Config) ListModel {
	listKeys := newListKeyMap()

	input := textinput.New()
	input.Cursor.Style = cursorStyle
	input.PromptStyle = focusedStyle
	input.TextStyle = focusedStyle

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedItemStyle
	delegate.Styles.SelectedDesc = selectedItemStyle

	configList := list.New(configItems(cfg), delegate, 0, 0)
	configList.Title = "Settings"
	configList.Styles.Title = titleStyle
	configList.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{
			listKeys.toggleTitleBar,
			listKeys.toggleStatusBar,
			listKeys.togglePagination,
			listKeys.toggleHelpMenu,
		}
	}

	return ListModel{
		list:            configList,
		keys:            listKeys,
		config:          cfg,
		input:           input,
		onOffSelections: []string{"on", "off"},
		styleSelections: []string{"dracula", "dark", "light", "notty", "ascii", "pink", "auto"},
	}
}

func (m ListModel) Init() tea.Cmd {
	return nil
}

func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := appStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		if m.selectActive {
			return m.handleSelectUpdate(msg)
		}

		if m.inputActive {
			return m.handleInputUpdate(msg)
		}

		switch {
		case key.Matches(msg, m.keys.toggleEditItem):
			return m.beginEdit()

		case key.Matches(msg, m.keys.toggleTitleBar):
			v := !m.list.ShowTitle()
			m.list.SetShowTitle(v)
			m.list.SetShowFilter(v)
			m.list.SetFilteringEnabled(v)
			return m, nil

		case key.Matches(msg, m.keys.toggleStatusBar):
			m.list.SetShowStatusBar(!m.list.ShowStatusBar())
			return m, nil

		case key.Matches(msg, m.keys.togglePagination):
			m.list.SetShowPagination(!m.list.ShowPagination())
			return m, nil

		case key.Matches(msg, m.keys.toggleHelpMenu):
			m.list.SetShowHelp(!m.list.ShowHelp())
			return m, nil
		}
	}

	newListModel, cmd := m.list.Update(msg)
	m.list = newListModel
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m ListModel) beginEdit() (tea.Model, tea.Cmd) {
	i, ok := m.list.SelectedItem().(ListItem)
	if !ok {
		return m, nil
	}

	m.editingItem = i.Title()

	switch m.editingItem {
	case itemPreviewStyle:
		sel := selection.New("Select a preview style.", m.styleSelections)
		sel.Filter = nil
		m.selectModel = selection.NewModel(sel)
		m.selectActive = true
		return m, m.selectModel.Init()

	case itemTypewriter, itemSyncScroll, itemGrammar:
		sel := selection.New(fmt.Sprintf("Turn %s on or off.", m.editingItem), m.onOffSelections)
		sel.Filter = nil
		m.selectModel = selection.NewModel(sel)
		m.selectActive = true
		return m, m.selectModel.Init()

	default:
		m.inputActive = true
		m.input.SetValue(i.Description())
		m.input.Focus()
		return m, nil
	}
}

func (m ListModel) handleSelectUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.exitInputMode) {
		m.selectActive = false
		return m, nil
	}

	var cmd tea.Cmd
	_, cmd = m.selectModel.Update(msg)

	if key.Matches(msg, m.keys.toggleEditItem) {
		value, err := m.selectModel.Value()
		if err != nil {
			return m, nil
		}
		return m.applyValue(value)
	}

	return m, cmd
}

func (m ListModel) handleInputUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.exitInputMode) {
		m.input.Blur()
		m.inputActive = false
		return m, nil
	}

	if key.Matches(msg, m.keys.toggleEditItem) {
		value := m.input.Value()
		m.input.Reset()
		m.input.Blur()
		m.inputActive = false
		return m.applyValue(value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m ListModel) applyValue(value string) (tea.Model, tea.Cmd) {
	m.selectActive = false

	var err error
	switch m.editingItem {
	case itemVaultDir:
		m.config.VaultDir = value
		err = m.config.Save()
	case itemPreviewStyle:
		err = m.config.ChangeStyle(value)
	case itemTypewriter:
		err = m.config.SetTypewriter(value == "on")
	case itemSyncScroll:
		err = m.config.SetSyncScroll(value == "on")
	case itemWordWrap:
		wrap, convErr := strconv.Atoi(value)
		if convErr != nil || wrap <= 0 {
			m.list.NewStatusMessage(statusMessageStyle("word wrap must be a positive number"))
			return m, nil
		}
		m.config.Editor.WordWrap = wrap
		err = m.config.Save()
	case itemGrammar:
		m.config.Grammar.Enable = value == "on"
		err = m.config.Save()
	case itemGrammarModel:
		m.config.Grammar.Model = value
		err = m.config.Save()
	}

	if err != nil {
		m.list.NewStatusMessage(statusMessageStyle(err.Error()))
		return m, nil
	}

	m.list.SetItems(configItems(m.config))
	m.list.NewStatusMessage(statusMessageStyle("Updated and Saved: " + m.editingItem))
	return m, nil
}

func (m ListModel) View() string {
	if m.inputActive {
		return appStyle.Render(inputStyle.Render(m.input.View()))
	}
	if m.selectActive {
		return appStyle.Render(m.selectModel.View())
	}
	return appStyle.Render(m.list.View())
}

func Run(c *config.Config) error {
	if _, err := tea.NewProgram(NewListModel(c), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running settings: %w", err)
	}

	return nil
}
