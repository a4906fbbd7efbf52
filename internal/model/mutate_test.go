package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diffStores(a, b Store) string {
	return cmp.Diff(a.Entries(), b.Entries(), cmpopts.EquateEmpty())
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Museum Date", "museum-date"},
		{"museum   date", "museum-date"},
		{"Spa Day", "spa-day"},
		{"Sunset Walk", "sunset-walk"},
		{"tab\tand\nnewline", "tab-and-newline"},
		{"Offroad/Rafting", "offroad/rafting"},
		{"single", "single"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Normalize(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Normalize(tt.in), "Normalize must be deterministic")
		})
	}
	assert.Equal(t, Normalize("Museum Date"), Normalize("museum   date"))
}

func TestToggleItemInvolution(t *testing.T) {
	s := Seed()
	for _, e := range s.Entries() {
		for _, it := range e.Section.Items {
			twice := ToggleItem(ToggleItem(s, e.Key, it.ID), e.Key, it.ID)
			if d := diffStores(s, twice); d != "" {
				t.Fatalf("toggle twice %s/%s not identity (-want +got):\n%s", e.Key, it.ID, d)
			}
		}
	}
}

func TestToggleItemOnlyTarget(t *testing.T) {
	s := Seed()
	fun, ok := s.Get("fun-date")
	require.True(t, ok)
	require.Len(t, fun.Items, 16)
	for _, it := range fun.Items {
		require.False(t, it.Checked)
	}

	next := ToggleItem(s, "fun-date", "dufan")
	fun, _ = next.Get("fun-date")
	checked := 0
	for _, it := range fun.Items {
		if it.Checked {
			checked++
			assert.Equal(t, "dufan", it.ID)
		}
	}
	assert.Equal(t, 1, checked)

	// the input store is untouched
	orig, _ := s.Get("fun-date")
	for _, it := range orig.Items {
		assert.False(t, it.Checked, "input store mutated at %s", it.ID)
	}
}

func TestMissingKeysAreNoOps(t *testing.T) {
	s := Seed()
	ops := map[string]func(Store) Store{
		"toggle missing section": func(s Store) Store { return ToggleItem(s, "nope", "dufan") },
		"toggle missing item":    func(s Store) Store { return ToggleItem(s, "fun-date", "nope") },
		"delete missing item":    func(s Store) Store { return DeleteItem(s, "fun-date", "nope") },
		"delete item in missing": func(s Store) Store { return DeleteItem(s, "nope", "dufan") },
		"delete missing section": func(s Store) Store { return DeleteSection(s, "nope") },
		"add item to missing":    func(s Store) Store { return AddItem(s, "nope", "Anything") },
		"add blank item":         func(s Store) Store { return AddItem(s, "fun-date", "   ") },
		"add blank section":      func(s Store) Store { return AddSection(s, " \t ") },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			if d := diffStores(s, op(s)); d != "" {
				t.Fatalf("expected no-op (-want +got):\n%s", d)
			}
		})
	}
}

func TestAddSection(t *testing.T) {
	s := Seed()
	next := AddSection(s, "Spa Day")

	require.Equal(t, s.Len()+1, next.Len())
	assert.Equal(t, "spa-day", next.Keys()[next.Len()-1])
	sec, ok := next.Get("spa-day")
	require.True(t, ok)
	assert.Equal(t, "Spa Day", sec.Title)
	assert.Empty(t, sec.Items)
	assert.False(t, s.Has("spa-day"), "input store mutated")
}

func TestAddSectionDeleteSectionRoundTrip(t *testing.T) {
	for _, title := range []string{"Spa Day", "Picnic", "Late  Night   Food"} {
		s := Seed()
		back := DeleteSection(AddSection(s, title), Normalize(title))
		if d := diffStores(s, back); d != "" {
			t.Errorf("%q round trip (-want +got):\n%s", title, d)
		}
		assert.True(t, s.Equal(back))
	}
}

func TestAddSectionCollisionOverwritesInPlace(t *testing.T) {
	s := Seed()
	next := AddSection(s, "art  SPACE")

	assert.Equal(t, s.Keys(), next.Keys(), "key order must not change")
	sec, _ := next.Get("art-space")
	assert.Equal(t, "art  SPACE", sec.Title)
	assert.Empty(t, sec.Items, "colliding add discards the existing items")

	orig, _ := s.Get("art-space")
	assert.Len(t, orig.Items, 3)
}

func TestDeleteSectionKeepsOrder(t *testing.T) {
	s := Seed()
	next := DeleteSection(s, "art-space")

	assert.False(t, next.Has("art-space"))
	assert.Equal(t, []string{"museum-date", "beach-date", "fun-date"}, next.Keys())
	for _, key := range next.Keys() {
		want, _ := s.Get(key)
		got, _ := next.Get(key)
		assert.Equal(t, want, got)
	}
	assert.True(t, s.Has("art-space"))
}

func TestAddItem(t *testing.T) {
	s := Seed()
	before, _ := s.Get("beach-date")

	next := AddItem(s, "beach-date", "  Sunset Walk  ")
	after, _ := next.Get("beach-date")

	require.Len(t, after.Items, len(before.Items)+1)
	assert.Equal(t, Item{ID: "sunset-walk", Text: "Sunset Walk", Checked: false}, after.Items[len(after.Items)-1])
	assert.Equal(t, before.Items, after.Items[:len(before.Items)])

	unchanged, _ := s.Get("beach-date")
	assert.Len(t, unchanged.Items, len(before.Items))
}

func TestAddItemPermitsDuplicateIDs(t *testing.T) {
	s := AddItem(AddItem(Seed(), "art-space", "Jazz Night"), "art-space", "jazz  night")
	sec, _ := s.Get("art-space")
	require.Len(t, sec.Items, 5)
	assert.Equal(t, "jazz-night", sec.Items[3].ID)
	assert.Equal(t, "jazz-night", sec.Items[4].ID)

	// toggling by id flips every duplicate, deleting by id removes all of them
	toggled, _ := ToggleItem(s, "art-space", "jazz-night").Get("art-space")
	assert.True(t, toggled.Items[3].Checked)
	assert.True(t, toggled.Items[4].Checked)

	deleted, _ := DeleteItem(s, "art-space", "jazz-night").Get("art-space")
	assert.Len(t, deleted.Items, 3)
}

func TestDeleteItem(t *testing.T) {
	s := Seed()
	next := DeleteItem(s, "museum-date", "gedung-sate")
	sec, _ := next.Get("museum-date")
	require.Len(t, sec.Items, 6)
	for _, it := range sec.Items {
		assert.NotEqual(t, "gedung-sate", it.ID)
	}
	assert.Equal(t, "art-gallery", sec.Items[3].ID)
}

func TestStats(t *testing.T) {
	s := ToggleItem(ToggleItem(Seed(), "fun-date", "dufan"), "art-space", "nuart")
	checked, total := s.Stats()
	assert.Equal(t, 2, checked)
	assert.Equal(t, 31, total)

	c, n := AddSection(s, "Empty").Stats()
	assert.Equal(t, 2, c)
	assert.Equal(t, 31, n)
}

func TestNewStoreRepeatedKeyOverwrites(t *testing.T) {
	s := NewStore(
		Entry{Key: "a", Section: Section{Title: "A"}},
		Entry{Key: "b", Section: Section{Title: "B"}},
		Entry{Key: "a", Section: Section{Title: "A2"}},
	)
	assert.Equal(t, []string{"a", "b"}, s.Keys())
	sec, _ := s.Get("a")
	assert.Equal(t, "A2", sec.Title)
}
