package board

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// OpKind names a scripted operation.
type OpKind string

const (
	OpToggle        OpKind = "toggle"
	OpAddSection    OpKind = "add-section"
	OpDeleteSection OpKind = "delete-section"
	OpAddItem       OpKind = "add-item"
	OpDeleteItem    OpKind = "delete-item"
)

// Op is one parsed script line. Section and Arg are used per kind:
//
//	toggle         <section> <item-id>
//	add-section    <title...>          (title in Arg)
//	delete-section <section>
//	add-item       <section> <text...>
//	delete-item    <section> <item-id>
type Op struct {
	Kind    OpKind
	Section string
	Arg     string
}

func (o Op) String() string {
	return strings.TrimSpace(strings.Join([]string{string(o.Kind), o.Section, o.Arg}, " "))
}

// ParseOp parses a single script line.
func ParseOp(line string) (Op, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Op{}, badOp("empty op")
	}
	kind, args := OpKind(fields[0]), fields[1:]
	switch kind {
	case OpToggle, OpDeleteItem:
		if len(args) != 2 {
			return Op{}, badOp("usage: %s <section-key> <item-id>", kind)
		}
		return Op{Kind: kind, Section: args[0], Arg: args[1]}, nil
	case OpDeleteSection:
		if len(args) != 1 {
			return Op{}, badOp("usage: %s <section-key>", kind)
		}
		return Op{Kind: kind, Section: args[0]}, nil
	case OpAddSection:
		if len(args) == 0 {
			return Op{}, badOp("usage: %s <title...>", kind)
		}
		return Op{Kind: kind, Arg: rest(line, 1)}, nil
	case OpAddItem:
		if len(args) < 2 {
			return Op{}, badOp("usage: %s <section-key> <text...>", kind)
		}
		return Op{Kind: kind, Section: args[0], Arg: rest(line, 2)}, nil
	}
	return Op{}, badOp("unknown op %q", fields[0])
}

// ErrBadOp marks a script line that does not parse.
var ErrBadOp = errors.New("bad op")

func badOp(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrBadOp, fmt.Sprintf(format, args...))
}

// rest returns line with its first n whitespace-separated fields removed,
// keeping the spacing of what remains.
func rest(line string, n int) string {
	s := strings.TrimSpace(line)
	for i := 0; i < n; i++ {
		idx := strings.IndexFunc(s, unicode.IsSpace)
		if idx < 0 {
			return ""
		}
		s = strings.TrimLeftFunc(s[idx:], unicode.IsSpace)
	}
	return s
}

// Apply runs one op against the board.
func (b *Board) Apply(op Op) error {
	var err error
	switch op.Kind {
	case OpToggle:
		err = b.Toggle(op.Section, op.Arg)
	case OpAddSection:
		_, err = b.AddSection(op.Arg)
	case OpDeleteSection:
		err = b.DeleteSection(op.Section)
	case OpAddItem:
		_, err = b.AddItem(op.Section, op.Arg)
	case OpDeleteItem:
		err = b.DeleteItem(op.Section, op.Arg)
	default:
		err = fmt.Errorf("unknown op %q", op.Kind)
	}
	return err
}

// LineError reports a script line that could not be parsed.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }
func (e *LineError) Unwrap() error { return e.Err }

// ApplyScript applies one op per line from r. Blank lines and lines starting
// with '#' are skipped. The script stops at the first line that does not
// parse; ops the board rejects are collected and returned together once every
// line has run.
func (b *Board) ApplyScript(r io.Reader) error {
	sc := bufio.NewScanner(r)
	var rejected []error
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		op, err := ParseOp(line)
		if err != nil {
			return &LineError{Line: n, Err: err}
		}
		if err := b.Apply(op); err != nil {
			rejected = append(rejected, &LineError{Line: n, Err: err})
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return errors.Join(rejected...)
}
