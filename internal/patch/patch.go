// Package patch applies idempotent, pattern-anchored edits to text files.
//
// The engine performs no parsing of the target language: every edit is a
// pure text-to-text function over the file's current content, guarded by a
// probe substring whose presence means "already applied". This keeps the
// patcher simple and language-independent at the cost of fragility when the
// target files drift from the expected anchors; a missing anchor skips the
// edit with a warning instead of failing the run.
package patch

import (
	"regexp"
	"strings"
)

// Outcome reports what applying a transform did to the text.
type Outcome int

const (
	// Applied means the text was changed.
	Applied Outcome = iota
	// AlreadyApplied means the probe was present and the text was left alone.
	AlreadyApplied
	// AnchorMissing means the insertion anchor was not found; the text was
	// left alone and the caller should surface a warning.
	AnchorMissing
)

// Mode declares where an Edit splices its text relative to the anchor.
type Mode int

const (
	// InsertBefore splices the text immediately before the anchor match.
	InsertBefore Mode = iota
	// InsertAfter splices the text immediately after the anchor match.
	InsertAfter
	// Append splices the text at end-of-file; no anchor is consulted.
	Append
)

// Transform is one named, pure text-to-text edit. A file's edit set is an
// ordered list of transforms folded over its content; later transforms see
// the output of earlier ones.
type Transform interface {
	Name() string
	Apply(text string) (string, Outcome)
}

// Edit is a pattern-anchored splice. Probe and Find are literal substrings
// unless Regexp is set, in which case Find is a regular expression. When
// the anchor matches more than once, the first occurrence wins.
type Edit struct {
	Label  string // names the edit in warnings and logs
	Probe  string // literal substring; present ⇒ edit already applied
	Find   string // anchor locating the insertion point (unused for Append)
	Regexp bool   // interpret Find as a regular expression
	Mode   Mode
	Text   string // rendered snippet to splice in
}

func (e Edit) Name() string { return e.Label }

// Apply implements Transform.
func (e Edit) Apply(text string) (string, Outcome) {
	if strings.Contains(text, e.Probe) {
		return text, AlreadyApplied
	}

	if e.Mode == Append {
		return text + e.Text, Applied
	}

	start, end, ok := e.findAnchor(text)
	if !ok {
		return text, AnchorMissing
	}

	switch e.Mode {
	case InsertAfter:
		return text[:end] + e.Text + text[end:], Applied
	default: // InsertBefore
		return text[:start] + e.Text + text[start:], Applied
	}
}

func (e Edit) findAnchor(text string) (start, end int, ok bool) {
	if e.Regexp {
		loc := regexp.MustCompile(e.Find).FindStringIndex(text)
		if loc == nil {
			return 0, 0, false
		}
		return loc[0], loc[1], true
	}

	idx := strings.Index(text, e.Find)
	if idx < 0 {
		return 0, 0, false
	}
	return idx, idx + len(e.Find), true
}

// Func wraps an arbitrary rewrite under the same probe guard as Edit. Used
// where a splice isn't enough (e.g. renumbering dispatch cases in place).
type Func struct {
	Label string
	Probe string // literal substring; present ⇒ rewrite already applied
	Fn    func(text string) (string, Outcome)
}

func (f Func) Name() string { return f.Label }

// Apply implements Transform.
func (f Func) Apply(text string) (string, Outcome) {
	if f.Probe != "" && strings.Contains(text, f.Probe) {
		return text, AlreadyApplied
	}
	return f.Fn(text)
}
