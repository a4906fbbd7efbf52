package model

import "strings"

// Normalize derives a key from a title or item text: lowercase, with every
// run of whitespace collapsed to a single hyphen.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}

// ToggleItem flips Checked on every item in sectionKey whose ID is itemID.
// Missing section or item leaves the store as it was.
func ToggleItem(s Store, sectionKey, itemID string) Store {
	i := s.find(sectionKey)
	if i < 0 {
		return s
	}
	sec := s.entries[i].Section
	hits := sec.index(itemID)
	if len(hits) == 0 {
		return s
	}
	items := make([]Item, len(sec.Items))
	copy(items, sec.Items)
	for _, j := range hits {
		items[j].Checked = !items[j].Checked
	}
	sec.Items = items
	return s.with(i, sec)
}

// AddSection inserts an empty section keyed by Normalize(title).
// If the key already exists the entry is replaced where it stands and its
// items are dropped (last write wins). Blank titles are ignored.
func AddSection(s Store, title string) Store {
	title = strings.TrimSpace(title)
	if title == "" {
		return s
	}
	key := Normalize(title)
	sec := Section{Title: title, Items: []Item{}}
	if i := s.find(key); i >= 0 {
		return s.with(i, sec)
	}
	entries := make([]Entry, len(s.entries), len(s.entries)+1)
	copy(entries, s.entries)
	return Store{entries: append(entries, Entry{Key: key, Section: sec})}
}

// DeleteSection removes sectionKey and all of its items.
func DeleteSection(s Store, sectionKey string) Store {
	i := s.find(sectionKey)
	if i < 0 {
		return s
	}
	entries := make([]Entry, 0, len(s.entries)-1)
	entries = append(entries, s.entries[:i]...)
	entries = append(entries, s.entries[i+1:]...)
	return Store{entries: entries}
}

// AddItem appends an unchecked item with ID Normalize(text) to sectionKey.
// Text is trimmed; blank text or an unknown section is a no-op. Items with a
// repeated ID are accepted and keep independent checked state.
func AddItem(s Store, sectionKey, text string) Store {
	text = strings.TrimSpace(text)
	if text == "" {
		return s
	}
	i := s.find(sectionKey)
	if i < 0 {
		return s
	}
	sec := s.entries[i].Section
	items := make([]Item, len(sec.Items), len(sec.Items)+1)
	copy(items, sec.Items)
	sec.Items = append(items, Item{ID: Normalize(text), Text: text})
	return s.with(i, sec)
}

// DeleteItem removes every item in sectionKey whose ID is itemID.
func DeleteItem(s Store, sectionKey, itemID string) Store {
	i := s.find(sectionKey)
	if i < 0 {
		return s
	}
	sec := s.entries[i].Section
	if len(sec.index(itemID)) == 0 {
		return s
	}
	items := make([]Item, 0, len(sec.Items))
	for _, it := range sec.Items {
		if it.ID != itemID {
			items = append(items, it)
		}
	}
	sec.Items = items
	return s.with(i, sec)
}
