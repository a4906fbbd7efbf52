package ui

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/idilsaglam/dateboard/internal/model"
)

const maxTextWidth = 80

// Header is the counts line shown above a store listing.
func Header(title string, checked, total int) string {
	t := Current()
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		C(t.Title, title),
		C(t.Success, t.SymDone), checked,
		C(t.Pending, t.SymUnchecked), total-checked,
		C(t.Accent, "Total"), total,
	)
}

// StoreLines renders every section of s, in order, as panel lines.
// With group set, each section lists pending items before done ones.
func StoreLines(s model.Store, group bool) []string {
	checked, total := s.Stats()
	lines := []string{
		Header("Date Ideas", checked, total),
		C(Current().Muted, ProgressBar(checked, total, 28)),
	}
	if s.Len() == 0 {
		return append(lines, "", C(Current().Muted, "no sections"))
	}
	for _, e := range s.Entries() {
		lines = append(lines, "")
		lines = append(lines, SectionLines(e.Key, e.Section, group)...)
	}
	return lines
}

// SectionLines renders one section: title, key and items.
func SectionLines(key string, sec model.Section, group bool) []string {
	t := Current()
	c, n := sec.Stats()
	lines := []string{
		fmt.Sprintf("%s %s  %s", C(t.Title, sec.Title), C(t.Muted, "#"+key), C(t.Accent, fmt.Sprintf("%d/%d", c, n))),
	}
	if group {
		return append(lines, groupLines(sec.Items)...)
	}
	return append(lines, flatLines(sec.Items)...)
}

func flatLines(items []model.Item) []string {
	if len(items) == 0 {
		return []string{C(Current().Muted, "  No items yet.")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		out = append(out, itemLine(i, it))
	}
	return out
}

func itemLine(i int, it model.Item) string {
	t := Current()
	idx := fmt.Sprintf("%2d.", i+1)
	box, color, text := t.BoxUnchecked, t.Muted, runewidth.Truncate(it.Text, maxTextWidth, "...")
	if it.Checked {
		box, color = t.BoxChecked, t.Success
		text = C(t.Done, text)
	}
	return fmt.Sprintf("  %s %s %s %s", C(dim, idx), C(color, box), text, C(t.Muted, "("+it.ID+")"))
}

func groupLines(items []model.Item) []string {
	var pend, done []model.Item
	for _, it := range items {
		if it.Checked {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	var lines []string
	lines = append(lines, C(Current().Accent, "  Pending"))
	if len(pend) == 0 {
		lines = append(lines, C(Current().Muted, "  (none)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, C(Current().Accent, "  Done"))
	if len(done) == 0 {
		lines = append(lines, C(Current().Muted, "  (none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}
