// Package snapshot reads seed files and writes renderings of a Store.
// Nothing here is read back by the program: a seed file is input only and
// an exported snapshot is output only.
package snapshot

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/dateboard/internal/model"
)

//go:embed schema.json
var schemaJSON string

const schemaURL = "dateboard-seed.schema.json"

// seedFileNames are looked up in the working directory when no path is given.
var seedFileNames = []string{"dateboard.json", "dateboard.yaml", "dateboard.yml"}

// Format selects an output encoding.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML, FormatMarkdown:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, json, yaml or markdown)", s)
}

// Document is the on-disk shape of a seed file.
type Document struct {
	Sections []SectionDoc `json:"sections" yaml:"sections"`
}

// SectionDoc is one section. Key defaults to the normalized title.
type SectionDoc struct {
	Key   string    `json:"key,omitempty" yaml:"key,omitempty"`
	Title string    `json:"title" yaml:"title"`
	Items []ItemDoc `json:"items" yaml:"items"`
}

// ItemDoc is one item. ID defaults to the normalized text.
type ItemDoc struct {
	ID      string `json:"id,omitempty" yaml:"id,omitempty"`
	Text    string `json:"text" yaml:"text"`
	Checked bool   `json:"checked" yaml:"checked"`
}

// ValidationError wraps a schema violation in a seed file.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid seed %s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Resolve picks the seed for a session. An explicit path must load. With no
// path the working directory is searched for a seed file, and the built-in
// seed is used when there is none. The second result names the source.
func Resolve(path string) (model.Store, string, error) {
	if path != "" {
		s, err := Load(path)
		return s, path, err
	}
	wd, err := os.Getwd()
	if err != nil {
		return model.Store{}, "", fmt.Errorf("getwd: %w", err)
	}
	for _, name := range seedFileNames {
		p := filepath.Join(wd, name)
		if _, err := os.Stat(p); err == nil {
			s, err := Load(p)
			return s, p, err
		} else if !errors.Is(err, os.ErrNotExist) {
			return model.Store{}, "", fmt.Errorf("stat %s: %w", p, err)
		}
	}
	return model.Seed(), "built-in", nil
}

// Load reads and validates a JSON or YAML seed file.
func Load(path string) (model.Store, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return model.Store{}, fmt.Errorf("read file: %w", err)
	}

	raw, err := toJSON(path, b)
	if err != nil {
		return model.Store{}, err
	}
	if err := validate(raw); err != nil {
		return model.Store{}, &ValidationError{Path: path, Err: err}
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.Store{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return doc.Store(), nil
}

// toJSON turns the file contents into JSON so one schema covers both formats.
func toJSON(path string, b []byte) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var v any
		if err := yaml.Unmarshal(b, &v); err != nil {
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
		out, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("yaml to json: %w", err)
		}
		return out, nil
	case ".json", "":
		return b, nil
	}
	return nil, fmt.Errorf("unsupported seed file type %q", filepath.Ext(path))
}

func validate(raw []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("json unmarshal: %w", err)
	}
	return schema.Validate(v)
}

// Store converts the document, filling in derived keys and ids.
func (d Document) Store() model.Store {
	entries := make([]model.Entry, 0, len(d.Sections))
	for _, sd := range d.Sections {
		title := strings.TrimSpace(sd.Title)
		key := strings.TrimSpace(sd.Key)
		if key == "" {
			key = model.Normalize(title)
		}
		items := make([]model.Item, 0, len(sd.Items))
		for _, id := range sd.Items {
			text := strings.TrimSpace(id.Text)
			itemID := strings.TrimSpace(id.ID)
			if itemID == "" {
				itemID = model.Normalize(text)
			}
			items = append(items, model.Item{ID: itemID, Text: text, Checked: id.Checked})
		}
		entries = append(entries, model.Entry{Key: key, Section: model.Section{Title: title, Items: items}})
	}
	return model.NewStore(entries...)
}

// FromStore builds a document carrying every key and id explicitly.
func FromStore(s model.Store) Document {
	doc := Document{Sections: make([]SectionDoc, 0, s.Len())}
	for _, e := range s.Entries() {
		sd := SectionDoc{Key: e.Key, Title: e.Section.Title, Items: make([]ItemDoc, 0, len(e.Section.Items))}
		for _, it := range e.Section.Items {
			sd.Items = append(sd.Items, ItemDoc{ID: it.ID, Text: it.Text, Checked: it.Checked})
		}
		doc.Sections = append(doc.Sections, sd)
	}
	return doc
}

// Write encodes s to w. FormatText is rendered by the ui package, not here.
func Write(w io.Writer, s model.Store, f Format) error {
	doc := FromStore(s)
	switch f {
	case FormatJSON:
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		b = append(b, '\n')
		_, err = w.Write(b)
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("yaml marshal: %w", err)
		}
		return enc.Close()
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(s))
		return err
	}
	return fmt.Errorf("write: unsupported format %q", f)
}

// Markdown renders s as a task-list document.
func Markdown(s model.Store) string {
	var buf bytes.Buffer
	checked, total := s.Stats()
	fmt.Fprintf(&buf, "# Date Ideas\n\n%d of %d done\n", checked, total)
	for _, e := range s.Entries() {
		c, n := e.Section.Stats()
		fmt.Fprintf(&buf, "\n## %s (%d/%d)\n\n", e.Section.Title, c, n)
		if n == 0 {
			buf.WriteString("_No items yet._\n")
			continue
		}
		for _, it := range e.Section.Items {
			box := " "
			if it.Checked {
				box = "x"
			}
			fmt.Fprintf(&buf, "- [%s] %s\n", box, it.Text)
		}
	}
	return buf.String()
}
