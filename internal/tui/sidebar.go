package tui

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/idilsaglam/dateboard/internal/model"
)

const (
	sidebarExpandedWidth  = 28
	sidebarCollapsedWidth = 5
)

// navItem adapts a store entry to bubbles/list.Item.
type navItem struct {
	Key   string
	Label string
}

func (i navItem) Title() string       { return i.Label }
func (i navItem) Description() string { return "" }
func (i navItem) FilterValue() string { return i.Label }

// navDelegate renders one line per section. Collapsed, only the first
// letter of the title is shown.
type navDelegate struct {
	expanded bool
	width    int
}

func (d navDelegate) Height() int                               { return 1 }
func (d navDelegate) Spacing() int                              { return 0 }
func (d navDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d navDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(navItem)
	label := initial(it.Label)
	if d.expanded {
		label = runewidth.Truncate(it.Label, d.width-2, "…")
	}
	prefix := "  "
	if index == m.Index() {
		prefix = "> "
		label = selectedStyle.Render(label)
	}
	fmt.Fprint(w, prefix+label)
}

func initial(s string) string {
	s = strings.TrimSpace(s)
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return "?"
	}
	return strings.ToUpper(string(r))
}

func newSidebar(s model.Store, expanded bool) list.Model {
	l := list.New(navItems(s), navDelegate{expanded: expanded, width: sidebarWidth(expanded)}, sidebarWidth(expanded), 10)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = helpStyle
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.DisableQuitKeybindings()
	setExpanded(&l, expanded)
	return l
}

func setExpanded(l *list.Model, expanded bool) {
	l.SetDelegate(navDelegate{expanded: expanded, width: sidebarWidth(expanded)})
	l.Title = "Navigation"
	if !expanded {
		l.Title = "≡"
	}
}

func navItems(s model.Store) []list.Item {
	out := make([]list.Item, 0, s.Len())
	for _, e := range s.Entries() {
		out = append(out, navItem{Key: e.Key, Label: e.Section.Title})
	}
	return out
}

func sidebarWidth(expanded bool) int {
	if expanded {
		return sidebarExpandedWidth
	}
	return sidebarCollapsedWidth
}

// selectedKey is the section key under the sidebar cursor.
func selectedKey(l list.Model) (string, bool) {
	it, ok := l.SelectedItem().(navItem)
	if !ok {
		return "", false
	}
	return it.Key, true
}

func sidebarFooter(expanded bool) string {
	if !expanded {
		return mutedStyle.Render("g ↑\nG ↓")
	}
	return mutedStyle.Render("g  Back to top\nG  Go to bottom")
}
