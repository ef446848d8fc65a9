// Package editor is the split-pane markdown editor: a plain text buffer
// on the left, a glamour-rendered preview on the right, kept aligned by
// the scroll synchronization engine.
package editor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scribe-md/scribe/internal/grammar"
	"github.com/scribe-md/scribe/internal/note"
	"github.com/scribe-md/scribe/internal/pathutil"
	"github.com/scribe-md/scribe/internal/render"
	"github.com/scribe-md/scribe/internal/state"
	engine "github.com/scribe-md/scribe/internal/sync"
	"github.com/scribe-md/scribe/internal/tui/editorpane"
)

const frameInterval = 16 * time.Millisecond

type paneFocus int

const (
	focusEditor paneFocus = iota
	focusPreview
)

type renderTickMsg struct{ seq int }
type settleTickMsg struct{ seq int }

type grammarMsg struct {
	issues []grammar.Issue
	err    error
}

var (
	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF")).
			Bold(true)

	statusInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cba6f7"))

	paneBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#334455")).
			PaddingLeft(1)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF")).
			Bold(true)

	issueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCC"))
)

type Model struct {
	state    *state.State
	keys     *editorKeyMap
	pane     editorpane.Model
	preview  viewport.Model
	renderer *render.Renderer
	orch     *engine.Orchestrator
	provider grammar.Provider
	session  session

	path        string
	title       string
	previewBody string

	width  int
	height int

	focus          paneFocus
	previewVisible bool
	dirty          bool
	status         string

	lastVersion int
	lastCursor  int

	grammarOpen bool
	grammarBusy bool
	issues      []grammar.Issue

	imagesOpen bool
	imageList  list.Model
}

type imageItem struct {
	rel  string
	path string
}

func (i imageItem) Title() string       { return filepath.Base(i.path) }
func (i imageItem) Description() string { return i.rel }
func (i imageItem) FilterValue() string { return i.rel }

// NewModel opens path in the editor. The note must exist on disk.
func NewModel(s *state.State, path string) (*Model, error) {
	content, err := note.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load note: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	renderer, err := render.NewRenderer(s.Config.Editor.WordWrap, s.Config.Editor.PreviewStyle)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	m := &Model{
		state:          s,
		keys:           newEditorKeyMap(),
		pane:           editorpane.New(0, 0),
		preview:        viewport.New(0, 0),
		renderer:       renderer,
		path:           path,
		title:          note.Title(path, content),
		previewVisible: true,
	}

	m.pane.SetContent(content)
	m.pane.Center = s.Config.Editor.Typewriter
	m.pane.Focus()
	m.session.setOriginal(content, info.ModTime())

	m.orch = engine.NewOrchestrator(
		bufferAdapter{m},
		previewAdapter{m},
		renderer,
		engine.Options{
			BottomPadding: s.Config.Editor.BottomPadding,
			SyncScroll:    s.Config.Editor.SyncScroll,
			Typewriter:    s.Config.Editor.Typewriter,
		},
	)

	if s.Config.Grammar.Enable {
		if apiKey := os.Getenv(s.Config.Grammar.APIKeyEnv); apiKey != "" {
			m.provider = grammar.NewAnthropicProvider(apiKey, s.Config.Grammar.Model)
		}
	}

	m.lastVersion = m.pane.Version()
	m.lastCursor = m.pane.CursorOffset()

	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return m.scheduleRender()
}

func (m *Model) scheduleRender() tea.Cmd {
	seq, delay, ok := m.orch.HandleEdit()
	if !ok {
		return nil
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return renderTickMsg{seq: seq}
	})
}

func settleCmd(seq int) tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return settleTickMsg{seq: seq}
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, m.scheduleRender()

	case renderTickMsg:
		if m.orch.FireRender(msg.seq) {
			return m, settleCmd(msg.seq)
		}
		return m, nil

	case settleTickMsg:
		if m.orch.SettleTick(msg.seq) {
			return m, settleCmd(msg.seq)
		}
		return m, nil

	case grammarMsg:
		m.grammarBusy = false
		if msg.err != nil {
			m.status = fmt.Sprintf("grammar check failed: %v", msg.err)
			m.grammarOpen = false
		} else {
			m.issues = msg.issues
			if len(m.issues) == 0 {
				m.status = "no grammar issues found"
				m.grammarOpen = false
			}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		if m.dirty && !m.session.pendingDiscard {
			m.session.pendingDiscard = true
			m.status = "unsaved changes; quit again to discard"
			return m, nil
		}
		m.orch.Teardown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.save):
		m.save()
		return m, nil

	case key.Matches(msg, m.keys.togglePreview):
		m.previewVisible = !m.previewVisible
		m.resize(m.width, m.height)
		if m.previewVisible {
			m.orch.PreviewShown()
			return m, m.scheduleRender()
		}
		return m, nil

	case key.Matches(msg, m.keys.toggleType):
		on := !m.orch.Typewriter()
		m.orch.SetTypewriter(on)
		m.pane.Center = on
		if err := m.state.Config.SetTypewriter(on); err != nil {
			m.status = fmt.Sprintf("failed to save config: %v", err)
		} else if on {
			m.status = "typewriter on"
		} else {
			m.status = "typewriter off"
		}
		return m, nil

	case key.Matches(msg, m.keys.toggleFollow):
		on := !m.orch.SyncScroll()
		m.orch.SetSyncScroll(on)
		if err := m.state.Config.SetSyncScroll(on); err != nil {
			m.status = fmt.Sprintf("failed to save config: %v", err)
		} else if on {
			m.status = "scroll sync on"
		} else {
			m.status = "scroll sync off"
		}
		return m, nil

	case key.Matches(msg, m.keys.forceSync):
		m.orch.ForceSync()
		return m, nil

	case key.Matches(msg, m.keys.grammar):
		return m, m.startGrammarCheck()

	case key.Matches(msg, m.keys.images):
		return m, m.openImagePicker()

	case key.Matches(msg, m.keys.switchFocus):
		m.toggleFocus()
		return m, nil

	case key.Matches(msg, m.keys.closePanel):
		if m.grammarOpen || m.imagesOpen {
			m.grammarOpen = false
			m.imagesOpen = false
			return m, nil
		}
		if m.focus == focusPreview {
			m.toggleFocus()
			return m, nil
		}
	}

	if m.imagesOpen {
		return m.handleImagePickerKey(msg)
	}

	if m.focus == focusPreview {
		before := m.preview.YOffset
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		if m.preview.YOffset != before {
			m.orch.HandlePreviewScroll()
		}
		return m, cmd
	}

	m.pane.Update(msg)
	return m, m.afterPaneUpdate()
}

// afterPaneUpdate turns pane changes into engine events: edits schedule a
// debounced render, bare cursor movement maps straight to scroll.
func (m *Model) afterPaneUpdate() tea.Cmd {
	if v := m.pane.Version(); v != m.lastVersion {
		m.lastVersion = v
		m.lastCursor = m.pane.CursorOffset()
		m.dirty = m.pane.Content() != m.session.originalContent
		m.session.pendingDiscard = false
		return m.scheduleRender()
	}

	if c := m.pane.CursorOffset(); c != m.lastCursor {
		m.lastCursor = c
		m.orch.HandleCursorMove()
	}
	return nil
}

func (m *Model) toggleFocus() {
	if !m.previewVisible {
		return
	}
	if m.focus == focusEditor {
		m.focus = focusPreview
		m.pane.Blur()
	} else {
		m.focus = focusEditor
		m.pane.Focus()
	}
}

func (m *Model) startGrammarCheck() tea.Cmd {
	if m.provider == nil {
		m.status = "grammar checking is not configured"
		return nil
	}
	if m.grammarBusy {
		return nil
	}

	m.grammarBusy = true
	m.grammarOpen = true
	m.issues = nil

	content := m.pane.Content()
	provider := m.provider
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		issues, err := provider.Check(ctx, content)
		return grammarMsg{issues: issues, err: err}
	}
}

func (m *Model) openImagePicker() tea.Cmd {
	images, err := m.state.Handler.ListImages([]string{"trash"})
	if err != nil {
		m.status = fmt.Sprintf("failed to list images: %v", err)
		return nil
	}
	if len(images) == 0 {
		m.status = "no images in the vault"
		return nil
	}

	items := make([]list.Item, 0, len(images))
	for _, img := range images {
		rel, err := pathutil.VaultRelative(m.state.Vault, img)
		if err != nil {
			rel = img
		}
		items = append(items, imageItem{rel: rel, path: img})
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, m.sideWidth(), m.paneHeight())
	l.Title = "Insert image"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)

	m.imageList = l
	m.imagesOpen = true
	return nil
}

func (m *Model) handleImagePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.submit) && m.imageList.FilterState() != list.Filtering {
		if item, ok := m.imageList.SelectedItem().(imageItem); ok {
			alt := strings.TrimSuffix(filepath.Base(item.rel), filepath.Ext(item.rel))
			m.pane.InsertText(fmt.Sprintf("![%s](%s)", alt, item.rel))
			m.imagesOpen = false
			return m, m.afterPaneUpdate()
		}
	}

	var cmd tea.Cmd
	m.imageList, cmd = m.imageList.Update(msg)
	return m, cmd
}

func (m *Model) save() {
	content := m.pane.Content()

	if info, err := os.Stat(m.path); err == nil {
		if !info.ModTime().Equal(m.session.originalModTime) {
			data, readErr := os.ReadFile(m.path)
			if readErr == nil && !m.session.checksumMatches(data) && !m.session.allowOverwrite {
				m.session.allowOverwrite = true
				m.status = "note changed on disk; save again to overwrite"
				return
			}
		}
	}

	if err := note.Save(m.path, content); err != nil {
		m.status = fmt.Sprintf("failed to save: %v", err)
		return
	}

	modTime := time.Now()
	if info, err := os.Stat(m.path); err == nil {
		modTime = info.ModTime()
	}
	m.session.setOriginal(content, modTime)
	m.dirty = false
	m.status = "saved"
}

func (m *Model) sideWidth() int {
	if m.width == 0 {
		return 0
	}
	return m.width/2 - 2
}

func (m *Model) paneHeight() int {
	// One row each for the title bar and the status line.
	h := m.height - 2
	if h < 0 {
		h = 0
	}
	return h
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	h := m.paneHeight()
	if m.previewVisible {
		m.pane.SetSize(m.sideWidth(), h)
		m.preview.Width = m.sideWidth()
		m.preview.Height = h
		_ = m.renderer.SetWidth(m.sideWidth())
	} else {
		m.pane.SetSize(width, h)
		if m.focus == focusPreview {
			m.toggleFocus()
		}
	}

	if m.imagesOpen {
		m.imageList.SetSize(m.sideWidth(), h)
	}
}

func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}

	left := m.pane.View()
	body := left
	if side := m.sidePane(); side != "" {
		body = lipgloss.JoinHorizontal(
			lipgloss.Top,
			lipgloss.NewStyle().Width(m.width/2).Render(left),
			paneBorderStyle.Render(side),
		)
	}

	return strings.Join(
		[]string{m.titleBar(), body, m.statusLine()},
		"\n",
	)
}

func (m *Model) sidePane() string {
	switch {
	case m.imagesOpen:
		return m.imageList.View()
	case m.grammarOpen:
		return m.grammarPanel()
	case m.previewVisible:
		return m.preview.View()
	default:
		return ""
	}
}

func (m *Model) grammarPanel() string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Grammar"))
	b.WriteString("\n\n")

	if m.grammarBusy {
		b.WriteString(issueStyle.Render("checking..."))
		return b.String()
	}

	for i, issue := range m.issues {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s\n", issueStyle.Render("✗ "+issue.Original))
		fmt.Fprintf(&b, "%s\n", issueStyle.Render("✓ "+issue.Suggestion))
		if issue.Explanation != "" {
			fmt.Fprintf(&b, "%s\n", statusInfoStyle.Render("  "+issue.Explanation))
		}
	}
	return b.String()
}

func (m *Model) titleBar() string {
	title := m.title
	if m.dirty {
		title += " •"
	}

	var flags []string
	if m.orch.Typewriter() {
		flags = append(flags, "typewriter")
	}
	if m.orch.SyncScroll() {
		flags = append(flags, "sync")
	}

	bar := statusBarStyle.Render(title)
	if len(flags) > 0 {
		bar += statusInfoStyle.Render("  [" + strings.Join(flags, " ") + "]")
	}
	return bar
}

func (m *Model) statusLine() string {
	if m.status != "" {
		return statusInfoStyle.Render(m.status)
	}
	return statusInfoStyle.Render(
		"ctrl+s save · ctrl+p preview · ctrl+t typewriter · ctrl+f follow · ctrl+g grammar · ctrl+y images · ctrl+q quit",
	)
}

// Run opens the editor on a note and blocks until it quits.
func Run(s *state.State, path string) error {
	m, err := NewModel(s, path)
	if err != nil {
		return err
	}

	if _, err := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running editor: %w", err)
	}
	return nil
}
