package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/dateboard/internal/model"
)

func TestLayoutRows(t *testing.T) {
	s := model.NewStore(
		model.Entry{Key: "picnic", Section: model.Section{Title: "Picnic", Items: []model.Item{
			{ID: "blanket", Text: "Blanket"},
			{ID: "fruit", Text: "Fruit", Checked: true},
		}}},
		model.Entry{Key: "spa-day", Section: model.Section{Title: "Spa Day", Items: []model.Item{}}},
	)

	lines, rows := layout(s, 1, "", "", 60)
	require.Len(t, rows, 4)
	assert.Equal(t, row{key: "picnic", item: -1, line: 0}, rows[0])
	assert.Equal(t, row{key: "picnic", item: 0, line: 2}, rows[1])
	assert.Equal(t, row{key: "spa-day", item: -1, line: 5}, rows[3])

	assert.True(t, strings.HasPrefix(lines[rows[1].line], ">"))
	assert.Contains(t, lines[rows[0].line], "1/2")
	assert.Contains(t, strings.Join(lines, "\n"), emptySectionText)
	assert.Equal(t, 3, headerRow(rows, "spa-day"))
	assert.Equal(t, -1, headerRow(rows, "nope"))
}

func TestLayoutInputUnderHeader(t *testing.T) {
	s := model.NewStore(model.Entry{Key: "picnic", Section: model.Section{Title: "Picnic", Items: []model.Item{
		{ID: "blanket", Text: "Blanket"},
	}}})

	lines, rows := layout(s, 0, "picnic", "+ Cheese", 60)
	assert.Equal(t, "  + Cheese", lines[2])
	assert.Equal(t, 3, rows[1].line)
}

func TestLayoutEmptyStore(t *testing.T) {
	lines, rows := layout(model.NewStore(), 0, "", "", 60)
	assert.Empty(t, rows)
	assert.Equal(t, []string{`No sections. Press "n" to add one.`}, lines)
}

func TestInitial(t *testing.T) {
	assert.Equal(t, "M", initial("museum Date"))
	assert.Equal(t, "É", initial("  école"))
	assert.Equal(t, "?", initial(""))
}
