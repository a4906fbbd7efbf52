package model

// Entry pairs a section key with its section.
type Entry struct {
	Key     string
	Section Section
}

// Store is an ordered mapping from section key to Section.
// A Store is a value: the mutation functions in this package return a new
// Store and never write through to the one they were given.
type Store struct {
	entries []Entry
}

// NewStore builds a Store from entries in the given order. A repeated key
// overwrites the earlier entry in place, the same rule AddSection follows.
func NewStore(entries ...Entry) Store {
	var s Store
	for _, e := range entries {
		if i := s.find(e.Key); i >= 0 {
			s.entries[i] = e
			continue
		}
		s.entries = append(s.entries, e)
	}
	return s
}

// Len is the number of sections.
func (s Store) Len() int { return len(s.entries) }

// Keys returns the section keys in display order.
func (s Store) Keys() []string {
	keys := make([]string, len(s.entries))
	for i, e := range s.entries {
		keys[i] = e.Key
	}
	return keys
}

// Get looks up a section by key.
func (s Store) Get(key string) (Section, bool) {
	if i := s.find(key); i >= 0 {
		return s.entries[i].Section, true
	}
	return Section{}, false
}

// Has reports whether key is present.
func (s Store) Has(key string) bool { return s.find(key) >= 0 }

// Entries returns a copy of the entries in display order.
// The Items slices are shared; callers must treat them as read-only.
func (s Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Stats counts checked items and the total across every section.
func (s Store) Stats() (checked, total int) {
	for _, e := range s.entries {
		c, t := e.Section.Stats()
		checked += c
		total += t
	}
	return checked, total
}

// Equal reports deep equality, including order.
func (s Store) Equal(o Store) bool {
	if len(s.entries) != len(o.entries) {
		return false
	}
	for i := range s.entries {
		a, b := s.entries[i], o.entries[i]
		if a.Key != b.Key || a.Section.Title != b.Section.Title || len(a.Section.Items) != len(b.Section.Items) {
			return false
		}
		for j := range a.Section.Items {
			if a.Section.Items[j] != b.Section.Items[j] {
				return false
			}
		}
	}
	return true
}

func (s Store) find(key string) int {
	for i, e := range s.entries {
		if e.Key == key {
			return i
		}
	}
	return -1
}

// with returns a copy of s whose entry at i carries sec.
func (s Store) with(i int, sec Section) Store {
	entries := make([]Entry, len(s.entries))
	copy(entries, s.entries)
	entries[i].Section = sec
	return Store{entries: entries}
}
