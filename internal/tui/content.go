package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/idilsaglam/dateboard/internal/model"
)

const emptySectionText = `No items yet. Press "a" to add one.`

// row is a cursor stop: a section header (item < 0) or one of its items.
type row struct {
	key  string
	item int
	line int // first line of the row in the rendered content
}

func (r row) isHeader() bool { return r.item < 0 }

// layout renders the store into content lines and the cursor stops on them.
// addingKey names the section showing the add-item input; inputView is what
// that input renders as.
func layout(s model.Store, cursor int, addingKey, inputView string, width int) ([]string, []row) {
	var (
		lines []string
		rows  []row
	)
	textWidth := width - 6
	if textWidth < 10 {
		textWidth = 10
	}
	for si, e := range s.Entries() {
		if si > 0 {
			lines = append(lines, "")
		}
		c, n := e.Section.Stats()
		header := fmt.Sprintf("%s  %s", headerStyle.Render(e.Section.Title), accentStyle.Render(fmt.Sprintf("%d/%d", c, n)))
		rows = append(rows, row{key: e.Key, item: -1, line: len(lines)})
		lines = append(lines, marker(len(rows)-1 == cursor)+header)
		lines = append(lines, mutedStyle.Render("  "+strings.Repeat("─", max(width-4, 4))))

		if e.Key == addingKey {
			lines = append(lines, "  "+inputView)
		}
		if n == 0 {
			lines = append(lines, "  "+emptyStyle.Render(emptySectionText))
			continue
		}
		for i, it := range e.Section.Items {
			rows = append(rows, row{key: e.Key, item: i, line: len(lines)})
			lines = append(lines, marker(len(rows)-1 == cursor)+itemLine(it, textWidth))
		}
	}
	if len(rows) == 0 {
		lines = append(lines, emptyStyle.Render(`No sections. Press "n" to add one.`))
	}
	return lines, rows
}

func marker(selected bool) string {
	if selected {
		return selectedStyle.Render(">") + " "
	}
	return "  "
}

func itemLine(it model.Item, width int) string {
	text := runewidth.Truncate(it.Text, width, "…")
	if it.Checked {
		return successStyle.Render(boxChecked) + " " + doneStyle.Render(text)
	}
	return mutedStyle.Render(boxUnchecked) + " " + text
}

// headerRow returns the index of key's header row.
func headerRow(rows []row, key string) int {
	for i, r := range rows {
		if r.key == key && r.isHeader() {
			return i
		}
	}
	return -1
}
