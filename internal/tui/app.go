// Package tui is the interactive terminal front end. The Model reads the
// session Store from a board.Board and sends every edit back through it;
// dialog visibility, drafts, focus and scroll position live only here.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/dateboard/internal/board"
	"github.com/idilsaglam/dateboard/internal/logging"
	"github.com/idilsaglam/dateboard/internal/ui"
)

const pageTitle = "Tambahkan Ide Date"

type focusArea int

const (
	focusContent focusArea = iota
	focusSidebar
)

// Options tune the TUI.
type Options struct {
	SidebarExpanded bool
	Mono            bool // no colors, ASCII check boxes
	Logger          *log.Logger
}

// Model is the Bubble Tea model for a session.
type Model struct {
	board *board.Board
	log   *log.Logger
	keys  keyMap
	help  help.Model
	nav   list.Model
	vp    viewport.Model

	focus    focusArea
	expanded bool

	rows   []row
	cursor int

	// Inline add item
	adding string            // section whose add-item input is open, "" when none
	drafts map[string]string // unsent add-item text per section
	input  textinput.Model

	// Add section dialog
	dialogOpen bool
	dialog     textinput.Model

	width, height int
}

// New builds the model around b.
func New(b *board.Board, opt Options) Model {
	if opt.Mono {
		plain()
	}
	l := opt.Logger
	if l == nil {
		l = logging.Discard()
	}
	m := Model{
		board:    b,
		log:      l,
		keys:     newKeyMap(),
		help:     help.New(),
		expanded: opt.SidebarExpanded,
		drafts:   map[string]string{},
		width:    80,
		height:   24,
	}
	m.nav = newSidebar(b.Store(), m.expanded)
	m.vp = viewport.New(0, 0)

	m.input = textinput.New()
	m.input.Prompt = "+ "
	m.input.Placeholder = "Enter new item..."
	m.input.CharLimit = 200

	m.dialog = textinput.New()
	m.dialog.Prompt = "> "
	m.dialog.Placeholder = "Enter section title..."
	m.dialog.CharLimit = 200

	m.resize()
	m.refresh()
	return m
}

// Run starts the program and blocks until the user quits. Nothing is saved:
// the store ends with the session.
func Run(ctx context.Context, b *board.Board, opt Options) error {
	p := tea.NewProgram(New(b, opt), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd { return tea.SetWindowTitle("dateboard") }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.dialogOpen {
			return m.updateDialog(msg)
		}
		if m.adding != "" {
			return m.updateInput(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Focus):
			m.switchFocus()
			return m, nil
		case key.Matches(msg, m.keys.Collapse):
			m.expanded = !m.expanded
			setExpanded(&m.nav, m.expanded)
			m.resize()
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.AddSection):
			return m, m.openDialog()
		case key.Matches(msg, m.keys.Top):
			m.cursor = 0
			m.refresh()
			m.vp.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.cursor = len(m.rows) - 1
			m.refresh()
			m.vp.GotoBottom()
			return m, nil
		}
		if m.focus == focusSidebar {
			return m.updateSidebar(msg)
		}
		return m.updateContent(msg)
	}

	// cursor blink and friends
	var cmd tea.Cmd
	switch {
	case m.dialogOpen:
		m.dialog, cmd = m.dialog.Update(msg)
	case m.adding != "":
		m.input, cmd = m.input.Update(msg)
		m.refresh()
	}
	return m, cmd
}

func (m Model) updateContent(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	r, ok := m.current()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if !ok {
			return m, nil
		}
		if r.isHeader() {
			return m, m.openInput(r.key)
		}
		m.reject(m.board.Toggle(r.key, m.itemID(r)))
	case key.Matches(msg, m.keys.DeleteItem):
		if ok && !r.isHeader() {
			m.reject(m.board.DeleteItem(r.key, m.itemID(r)))
		}
	case key.Matches(msg, m.keys.DeleteSection):
		if ok {
			m.deleteSection(r.key)
		}
	case key.Matches(msg, m.keys.AddItem):
		if ok {
			return m, m.openInput(r.key)
		}
	}
	m.refresh()
	return m, nil
}

func (m Model) updateSidebar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Jump):
		if k, ok := selectedKey(m.nav); ok {
			m.focus = focusContent
			m.jumpTo(k)
		}
		return m, nil
	case key.Matches(msg, m.keys.DeleteSection):
		if k, ok := selectedKey(m.nav); ok {
			m.deleteSection(k)
			m.refresh()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.nav, cmd = m.nav.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		if _, err := m.board.AddItem(m.adding, m.input.Value()); err != nil {
			m.reject(err)
			return m, nil
		}
		delete(m.drafts, m.adding)
		m.closeInput()
		m.refresh()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.drafts[m.adding] = m.input.Value()
		m.closeInput()
		m.refresh()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.drafts[m.adding] = m.input.Value()
	m.refresh()
	return m, cmd
}

func (m Model) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		k, err := m.board.AddSection(m.dialog.Value())
		if err != nil {
			m.reject(err)
			return m, nil
		}
		m.closeDialog()
		m.refresh()
		m.jumpTo(k)
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.closeDialog()
		return m, nil
	}
	var cmd tea.Cmd
	m.dialog, cmd = m.dialog.Update(msg)
	return m, cmd
}

// reject drops a refused edit. The user sees no change and no message.
func (m *Model) reject(err error) {
	if err != nil {
		m.log.Debug("edit ignored", "err", err)
	}
}

func (m *Model) current() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

func (m *Model) itemID(r row) string {
	sec, ok := m.board.Store().Get(r.key)
	if !ok || r.item >= len(sec.Items) {
		return ""
	}
	return sec.Items[r.item].ID
}

func (m *Model) switchFocus() {
	if m.focus == focusSidebar {
		m.focus = focusContent
		return
	}
	m.focus = focusSidebar
	m.syncNav()
}

func (m *Model) deleteSection(k string) {
	if err := m.board.DeleteSection(k); err != nil {
		m.reject(err)
		return
	}
	delete(m.drafts, k)
	if m.adding == k {
		m.closeInput()
	}
}

func (m *Model) jumpTo(k string) {
	i := headerRow(m.rows, k)
	if i < 0 {
		return
	}
	m.cursor = i
	m.refresh()
	m.vp.SetYOffset(m.rows[i].line)
}

func (m *Model) openInput(k string) tea.Cmd {
	m.adding = k
	m.input.SetValue(m.drafts[k])
	m.input.CursorEnd()
	cmd := m.input.Focus()
	m.refresh()
	return cmd
}

func (m *Model) closeInput() {
	m.adding = ""
	m.input.Blur()
	m.input.SetValue("")
}

func (m *Model) openDialog() tea.Cmd {
	m.dialogOpen = true
	m.dialog.SetValue("")
	return m.dialog.Focus()
}

func (m *Model) closeDialog() {
	m.dialogOpen = false
	m.dialog.Blur()
	m.dialog.SetValue("")
}

// refresh re-renders the content from the board and keeps the cursor on
// screen. Call it after anything that changes the store or the layout.
func (m *Model) refresh() {
	s := m.board.Store()
	inputView := ""
	if m.adding != "" {
		inputView = m.input.View()
	}
	lines, rows := layout(s, m.cursor, m.adding, inputView, m.vp.Width)
	if clamped := clamp(m.cursor, len(rows)); clamped != m.cursor {
		m.cursor = clamped
		lines, rows = layout(s, m.cursor, m.adding, inputView, m.vp.Width)
	}
	m.rows = rows
	m.vp.SetContent(strings.Join(lines, "\n"))
	m.follow()

	m.nav.SetItems(navItems(s))
	if m.focus == focusContent {
		m.syncNav()
	} else if n := len(m.nav.Items()); m.nav.Index() >= n && n > 0 {
		m.nav.Select(n - 1)
	}
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// follow scrolls the viewport so the cursor row is visible.
func (m *Model) follow() {
	r, ok := m.current()
	if !ok {
		return
	}
	switch {
	case r.line < m.vp.YOffset:
		m.vp.SetYOffset(r.line)
	case r.line >= m.vp.YOffset+m.vp.Height:
		m.vp.SetYOffset(r.line - m.vp.Height + 1)
	}
}

// syncNav highlights the cursor's section in the sidebar.
func (m *Model) syncNav() {
	r, ok := m.current()
	if !ok {
		return
	}
	for i, k := range m.board.Store().Keys() {
		if k == r.key {
			m.nav.Select(i)
			return
		}
	}
}

func (m *Model) resize() {
	m.help.Width = m.width
	helpH := lipgloss.Height(m.helpView())
	bodyH := max(m.height-1-helpH-2, 3) // title line, help, pane borders

	sw := sidebarWidth(m.expanded)
	m.nav.SetSize(sw, max(bodyH-3, 1)) // footer lines

	m.vp.Width = max(m.width-(sw+4)-4, 10)
	m.vp.Height = bodyH
}

func (m Model) View() string {
	if m.dialogOpen {
		return m.dialogView()
	}
	bodyH := m.vp.Height

	sideStyle, contentStyle := paneStyle, focusedPaneStyle
	if m.focus == focusSidebar {
		sideStyle, contentStyle = focusedPaneStyle, paneStyle
	}
	side := sideStyle.Width(sidebarWidth(m.expanded) + 2).Height(bodyH).
		Render(m.nav.View() + "\n\n" + sidebarFooter(m.expanded))
	content := contentStyle.Width(m.vp.Width + 2).Height(bodyH).Render(m.vp.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		m.titleLine(),
		lipgloss.JoinHorizontal(lipgloss.Top, side, content),
		m.helpView(),
	)
}

func (m Model) titleLine() string {
	checked, total := m.board.Store().Stats()
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d  %s",
		titleStyle.Render(pageTitle),
		successStyle.Render("✔"), checked,
		pendingStyle.Render("•"), total-checked,
		accentStyle.Render("Total"), total,
		mutedStyle.Render(ui.ProgressBar(checked, total, 20)),
	)
}

func (m Model) helpView() string {
	var km help.KeyMap = contentHelp{m.keys}
	switch {
	case m.dialogOpen || m.adding != "":
		km = inputHelp{m.keys}
	case m.focus == focusSidebar:
		km = sidebarHelp{m.keys}
	}
	return helpStyle.Render(m.help.View(km))
}

func (m Model) dialogView() string {
	body := strings.Join([]string{
		titleStyle.Render("Add New Section"),
		"",
		mutedStyle.Render("Section Title"),
		m.dialog.View(),
		"",
		m.helpView(),
	}, "\n")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialogStyle.Render(body))
}
