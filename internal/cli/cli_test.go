package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/dateboard/internal/board"
	"github.com/idilsaglam/dateboard/internal/store/snapshot"
	"github.com/idilsaglam/dateboard/internal/tui"
	"github.com/idilsaglam/dateboard/internal/ui"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func noTUI(context.Context, *board.Board, tui.Options) error { return nil }

// runCLI runs the command line in an empty working directory with no config
// file and colors off.
func runCLI(t *testing.T, stdin string, runTUI tuiRunner, args ...string) result {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("DATEBOARD_CONFIG", filepath.Join(dir, "missing.toml"))
	t.Setenv("DATEBOARD_UI_COLOR", "never")
	t.Cleanup(func() {
		ui.SetOutput(os.Stdout, os.Stderr)
		ui.SetColorMode("auto")
		ui.SetTheme("classic")
	})
	if runTUI == nil {
		runTUI = noTUI
	}
	var out, errOut bytes.Buffer
	code := run(args, strings.NewReader(stdin), &out, &errOut, runTUI)
	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

func decode(t *testing.T, s string) snapshot.Document {
	t.Helper()
	var doc snapshot.Document
	require.NoError(t, json.Unmarshal([]byte(s), &doc))
	return doc
}

func TestListJSON(t *testing.T) {
	r := runCLI(t, "", nil, "ls", "--format", "json")
	require.Equal(t, ExitOK, r.code, r.stderr)

	doc := decode(t, r.stdout)
	require.Len(t, doc.Sections, 4)
	assert.Equal(t, "museum-date", doc.Sections[0].Key)
	assert.Equal(t, "Fun Date", doc.Sections[3].Title)
}

func TestListSection(t *testing.T) {
	r := runCLI(t, "", nil, "ls", "fun-date", "--group")
	require.Equal(t, ExitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, "Fun Date")
	assert.Contains(t, r.stdout, "#fun-date")
	assert.NotContains(t, r.stdout, "Museum Date")
}

func TestListMarkdown(t *testing.T) {
	r := runCLI(t, "", nil, "ls", "-f", "md")
	require.Equal(t, ExitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, "Date Ideas")
	assert.Contains(t, r.stdout, "Art Space")
}

func TestListUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"typo suggests key", []string{"ls", "fun-dat"}, `Did you mean "fun-date"?`},
		{"no close key", []string{"ls", "zzzzzzzzzzzz"}, "dateboard ls"},
		{"bad format", []string{"ls", "--format", "xml"}, "unknown format"},
		{"too many args", []string{"ls", "a", "b"}, "accepts at most 1 arg"},
		{"unknown flag", []string{"ls", "--nope"}, "unknown flag"},
		{"unknown command", []string{"bogus"}, "unknown command"},
		{"bad theme", []string{"ls", "--theme", "pink"}, "unknown theme"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := runCLI(t, "", nil, tc.args...)
			assert.Equal(t, ExitUsage, r.code)
			assert.Contains(t, r.stderr, tc.want)
		})
	}
}

func TestApplyFromStdin(t *testing.T) {
	script := `# plan the weekend
add-section Spa Day
add-item spa-day Couples massage
toggle nope nothing
`
	r := runCLI(t, script, nil, "apply", "--format", "json")
	assert.Equal(t, ExitError, r.code)
	assert.Contains(t, r.stderr, "rejected: line 4")

	doc := decode(t, r.stdout)
	require.Len(t, doc.Sections, 5)
	spa := doc.Sections[4]
	assert.Equal(t, "Spa Day", spa.Title)
	require.Len(t, spa.Items, 1)
	assert.Equal(t, "Couples massage", spa.Items[0].Text)
}

func TestApplyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edits.txt")
	require.NoError(t, os.WriteFile(path, []byte("delete-section art-space\n"), 0o644))

	r := runCLI(t, "", nil, "apply", path, "-f", "json")
	require.Equal(t, ExitOK, r.code, r.stderr)
	doc := decode(t, r.stdout)
	assert.Len(t, doc.Sections, 3)
	for _, s := range doc.Sections {
		assert.NotEqual(t, "art-space", s.Key)
	}
}

func TestApplyBadOp(t *testing.T) {
	r := runCLI(t, "add-section Picnic\nfrobnicate x\n", nil, "apply")
	assert.Equal(t, ExitUsage, r.code)
	assert.Contains(t, r.stderr, "line 2")
	assert.Empty(t, r.stdout)
}

func TestApplyMissingFile(t *testing.T) {
	r := runCLI(t, "", nil, "apply", "does-not-exist.txt")
	assert.Equal(t, ExitError, r.code)
	assert.Contains(t, r.stderr, "open script")
}

func TestSeedFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	seed := `sections:
  - title: Road Trip
    items:
      - text: Pack snacks
        checked: true
`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))

	r := runCLI(t, "", nil, "ls", "--seed", path, "--format", "json")
	require.Equal(t, ExitOK, r.code, r.stderr)
	doc := decode(t, r.stdout)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "road-trip", doc.Sections[0].Key)
	assert.Equal(t, "pack-snacks", doc.Sections[0].Items[0].ID)
	assert.True(t, doc.Sections[0].Items[0].Checked)
}

func TestInvalidSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"sections":[{"items":[]}]}`), 0o644))

	r := runCLI(t, "", nil, "ls", "--seed", path)
	assert.Equal(t, ExitError, r.code)
	assert.Contains(t, r.stderr, "seed")
}

func TestConfigCommand(t *testing.T) {
	r := runCLI(t, "", nil, "config", "--theme", "neon", "--log-level", "debug")
	require.Equal(t, ExitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, `theme = "neon"`)
	assert.Contains(t, r.stdout, `level = "debug"`)
	assert.Contains(t, r.stdout, `color = "never"`)
}

func TestRootRunsBoard(t *testing.T) {
	var (
		got     tui.Options
		started *board.Board
	)
	fake := func(ctx context.Context, b *board.Board, opt tui.Options) error {
		got, started = opt, b
		return ctx.Err()
	}
	r := runCLI(t, "", fake, "--theme", "mono")
	require.Equal(t, ExitOK, r.code, r.stderr)

	require.NotNil(t, started)
	assert.Equal(t, 4, started.Store().Len())
	assert.True(t, got.Mono)
	assert.True(t, got.SidebarExpanded)
	assert.NotNil(t, got.Logger)
}
