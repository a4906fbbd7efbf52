package model

// Item is a single checklist entry.
// ID is derived from Text once at creation and never recomputed.
type Item struct {
	ID      string `json:"id" yaml:"id"`
	Text    string `json:"text" yaml:"text"`
	Checked bool   `json:"checked" yaml:"checked"`
}

// Section is a named, ordered group of items. Display order is insertion order.
type Section struct {
	Title string `json:"title" yaml:"title"`
	Items []Item `json:"items" yaml:"items"`
}

// Stats counts checked items and the total.
func (s Section) Stats() (checked, total int) {
	for _, it := range s.Items {
		if it.Checked {
			checked++
		}
	}
	return checked, len(s.Items)
}

// index returns the positions of every item carrying id.
func (s Section) index(id string) []int {
	var out []int
	for i, it := range s.Items {
		if it.ID == id {
			out = append(out, i)
		}
	}
	return out
}
