package editorpane

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap holds the editing keybindings for the pane.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Home      key.Binding
	End       key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Backspace key.Binding
	Delete    key.Binding
	Enter     key.Binding
	KillLine  key.Binding
	CutLine   key.Binding
	Paste     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up")),
		Down:      key.NewBinding(key.WithKeys("down")),
		Left:      key.NewBinding(key.WithKeys("left")),
		Right:     key.NewBinding(key.WithKeys("right")),
		Home:      key.NewBinding(key.WithKeys("home", "ctrl+a")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+e")),
		PageUp:    key.NewBinding(key.WithKeys("pgup")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown")),
		Backspace: key.NewBinding(key.WithKeys("backspace")),
		Delete:    key.NewBinding(key.WithKeys("delete", "ctrl+d")),
		Enter:     key.NewBinding(key.WithKeys("enter")),
		KillLine:  key.NewBinding(key.WithKeys("ctrl+k")),
		CutLine:   key.NewBinding(key.WithKeys("ctrl+u")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v")),
	}
}

// Model is a plain line-based text editing pane. Unlike the stock
// textarea it exposes its scroll offset, which the preview
// synchronization needs to steer the pane from outside.
type Model struct {
	KeyMap KeyMap

	// Center keeps the cursor row vertically centered while typing.
	Center bool
	// ScrollMargin is the minimum number of rows kept visible around the
	// cursor when Center is off.
	ScrollMargin int

	CursorStyle lipgloss.Style

	lines   []string
	row     int
	col     int // rune index within the row
	yOffset int
	width   int
	height  int
	focused bool
	version int
}

func New(width, height int) Model {
	return Model{
		KeyMap:       DefaultKeyMap(),
		ScrollMargin: 2,
		CursorStyle:  lipgloss.NewStyle().Reverse(true),
		lines:        []string{""},
		width:        width,
		height:       height,
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureVisible()
}

func (m *Model) SetContent(content string) {
	m.lines = strings.Split(content, "\n")
	if len(m.lines) == 0 {
		m.lines = []string{""}
	}
	m.clampCursor()
	m.version++
	m.ensureVisible()
}

func (m *Model) Content() string {
	return strings.Join(m.lines, "\n")
}

// Version increments on every text mutation, letting the host model
// detect edits without diffing content.
func (m *Model) Version() int { return m.version }

func (m *Model) Focus()          { m.focused = true }
func (m *Model) Blur()           { m.focused = false }
func (m *Model) Focused() bool   { return m.focused }
func (m *Model) CursorLine() int { return m.row }

// CursorOffset returns the byte offset of the cursor in Content().
func (m *Model) CursorOffset() int {
	offset := 0
	for i := 0; i < m.row; i++ {
		offset += len(m.lines[i]) + 1
	}
	runes := []rune(m.lines[m.row])
	col := m.col
	if col > len(runes) {
		col = len(runes)
	}
	return offset + len(string(runes[:col]))
}

func (m *Model) ScrollOffset() int { return m.yOffset }

func (m *Model) SetScrollOffset(offset int) {
	max := len(m.lines) - 1
	if offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	m.yOffset = offset
}

func (m *Model) ContentHeight() int  { return len(m.lines) }
func (m *Model) ViewportHeight() int { return m.height }

// MoveCursorTo places the cursor on a row, clamping into range.
func (m *Model) MoveCursorTo(row int) {
	if row < 0 {
		row = 0
	}
	if row > len(m.lines)-1 {
		row = len(m.lines) - 1
	}
	m.row = row
	m.clampCol()
	m.ensureVisible()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return nil
	}

	switch {
	case key.Matches(keyMsg, m.KeyMap.Up):
		m.moveVertical(-1)
	case key.Matches(keyMsg, m.KeyMap.Down):
		m.moveVertical(1)
	case key.Matches(keyMsg, m.KeyMap.Left):
		m.moveLeft()
	case key.Matches(keyMsg, m.KeyMap.Right):
		m.moveRight()
	case key.Matches(keyMsg, m.KeyMap.Home):
		m.col = 0
	case key.Matches(keyMsg, m.KeyMap.End):
		m.col = len([]rune(m.lines[m.row]))
	case key.Matches(keyMsg, m.KeyMap.PageUp):
		m.moveVertical(-m.height)
	case key.Matches(keyMsg, m.KeyMap.PageDown):
		m.moveVertical(m.height)
	case key.Matches(keyMsg, m.KeyMap.Backspace):
		m.backspace()
	case key.Matches(keyMsg, m.KeyMap.Delete):
		m.deleteForward()
	case key.Matches(keyMsg, m.KeyMap.Enter):
		m.insertNewline()
	case key.Matches(keyMsg, m.KeyMap.KillLine):
		m.killToEnd()
	case key.Matches(keyMsg, m.KeyMap.CutLine):
		m.cutLine()
	case key.Matches(keyMsg, m.KeyMap.Paste):
		m.paste()
	default:
		switch keyMsg.Type {
		case tea.KeyRunes:
			m.insertRunes(keyMsg.Runes)
		case tea.KeySpace:
			m.insertRunes([]rune{' '})
		case tea.KeyTab:
			m.insertRunes([]rune("    "))
		}
	}

	m.ensureVisible()
	return nil
}

func (m *Model) moveVertical(delta int) {
	m.row += delta
	if m.row < 0 {
		m.row = 0
	}
	if m.row > len(m.lines)-1 {
		m.row = len(m.lines) - 1
	}
	m.clampCol()
}

func (m *Model) moveLeft() {
	if m.col > 0 {
		m.col--
		return
	}
	if m.row > 0 {
		m.row--
		m.col = len([]rune(m.lines[m.row]))
	}
}

func (m *Model) moveRight() {
	if m.col < len([]rune(m.lines[m.row])) {
		m.col++
		return
	}
	if m.row < len(m.lines)-1 {
		m.row++
		m.col = 0
	}
}

func (m *Model) insertRunes(runes []rune) {
	line := []rune(m.lines[m.row])
	m.clampCol()
	updated := make([]rune, 0, len(line)+len(runes))
	updated = append(updated, line[:m.col]...)
	updated = append(updated, runes...)
	updated = append(updated, line[m.col:]...)
	m.lines[m.row] = string(updated)
	m.col += len(runes)
	m.version++
}

func (m *Model) insertNewline() {
	line := []rune(m.lines[m.row])
	m.clampCol()
	before := string(line[:m.col])
	after := string(line[m.col:])

	m.lines[m.row] = before
	rest := append([]string{after}, m.lines[m.row+1:]...)
	m.lines = append(m.lines[:m.row+1], rest...)

	m.row++
	m.col = 0
	m.version++
}

func (m *Model) backspace() {
	if m.col > 0 {
		line := []rune(m.lines[m.row])
		m.clampCol()
		m.lines[m.row] = string(line[:m.col-1]) + string(line[m.col:])
		m.col--
		m.version++
		return
	}
	if m.row == 0 {
		return
	}

	prev := []rune(m.lines[m.row-1])
	m.lines[m.row-1] = string(prev) + m.lines[m.row]
	m.lines = append(m.lines[:m.row], m.lines[m.row+1:]...)
	m.row--
	m.col = len(prev)
	m.version++
}

func (m *Model) deleteForward() {
	line := []rune(m.lines[m.row])
	m.clampCol()
	if m.col < len(line) {
		m.lines[m.row] = string(line[:m.col]) + string(line[m.col+1:])
		m.version++
		return
	}
	if m.row == len(m.lines)-1 {
		return
	}

	m.lines[m.row] += m.lines[m.row+1]
	m.lines = append(m.lines[:m.row+1], m.lines[m.row+2:]...)
	m.version++
}

func (m *Model) killToEnd() {
	line := []rune(m.lines[m.row])
	m.clampCol()
	if m.col == len(line) {
		m.deleteForward()
		return
	}
	_ = clipboard.WriteAll(string(line[m.col:]))
	m.lines[m.row] = string(line[:m.col])
	m.version++
}

func (m *Model) cutLine() {
	_ = clipboard.WriteAll(m.lines[m.row])
	if len(m.lines) == 1 {
		m.lines[0] = ""
	} else {
		m.lines = append(m.lines[:m.row], m.lines[m.row+1:]...)
		if m.row > len(m.lines)-1 {
			m.row = len(m.lines) - 1
		}
	}
	m.col = 0
	m.version++
}

func (m *Model) paste() {
	text, err := clipboard.ReadAll()
	if err != nil || text == "" {
		return
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")

	parts := strings.Split(text, "\n")
	m.insertRunes([]rune(parts[0]))
	for _, part := range parts[1:] {
		m.insertNewline()
		m.insertRunes([]rune(part))
	}
}

// InsertText inserts text at the cursor, splitting on newlines.
func (m *Model) InsertText(text string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(text, "\n")
	m.insertRunes([]rune(parts[0]))
	for _, part := range parts[1:] {
		m.insertNewline()
		m.insertRunes([]rune(part))
	}
	m.ensureVisible()
}

func (m *Model) clampCursor() {
	if m.row > len(m.lines)-1 {
		m.row = len(m.lines) - 1
	}
	if m.row < 0 {
		m.row = 0
	}
	m.clampCol()
}

func (m *Model) clampCol() {
	max := len([]rune(m.lines[m.row]))
	if m.col > max {
		m.col = max
	}
	if m.col < 0 {
		m.col = 0
	}
}

// ensureVisible scrolls just enough to keep the cursor inside the
// viewport, or recenters it outright in Center mode.
func (m *Model) ensureVisible() {
	if m.height <= 0 {
		return
	}

	if m.Center {
		m.SetScrollOffset(m.row - m.height/2)
		return
	}

	margin := m.ScrollMargin
	if margin*2 >= m.height {
		margin = 0
	}

	if m.row < m.yOffset+margin {
		m.SetScrollOffset(m.row - margin)
	} else if m.row > m.yOffset+m.height-1-margin {
		m.SetScrollOffset(m.row - m.height + 1 + margin)
	}
}

func (m *Model) View() string {
	if m.height <= 0 || m.width <= 0 {
		return ""
	}

	var b strings.Builder
	for i := 0; i < m.height; i++ {
		if i > 0 {
			b.WriteString("\n")
		}

		idx := m.yOffset + i
		if idx >= len(m.lines) {
			continue
		}

		b.WriteString(m.renderLine(idx))
	}
	return b.String()
}

func (m *Model) renderLine(idx int) string {
	runes := []rune(m.lines[idx])

	if idx != m.row || !m.focused {
		if len(runes) > m.width {
			runes = runes[:m.width]
		}
		return string(runes)
	}

	// Slide a horizontal window so the cursor stays on screen.
	start := 0
	if m.col >= m.width {
		start = m.col - m.width + 1
	}
	end := start + m.width
	if end > len(runes) {
		end = len(runes)
	}
	visible := runes[start:end]
	cursor := m.col - start

	var b strings.Builder
	if cursor > 0 {
		b.WriteString(string(visible[:cursor]))
	}
	if cursor < len(visible) {
		b.WriteString(m.CursorStyle.Render(string(visible[cursor])))
		b.WriteString(string(visible[cursor+1:]))
	} else {
		b.WriteString(m.CursorStyle.Render(" "))
	}
	return b.String()
}
