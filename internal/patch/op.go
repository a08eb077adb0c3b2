package patch

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// Report accumulates edit outcomes across every patched file in one run.
// Anchor misses are warnings, not errors: the run continues and the
// summary tells the user which changes to apply by hand.
type Report struct {
	applied  int
	skipped  int
	warnings []string
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{}
}

func (r *Report) record(outcome Outcome, path, label string) {
	switch outcome {
	case Applied:
		r.applied++
	case AlreadyApplied:
		r.skipped++
	case AnchorMissing:
		r.warnings = append(r.warnings, fmt.Sprintf("%s: anchor for %s not found; apply this change by hand", path, label))
	}
}

// Applied returns how many edits changed a file.
func (r *Report) Applied() int { return r.applied }

// Skipped returns how many edits were already present (expected on re-run).
func (r *Report) Skipped() int { return r.skipped }

// Warnings returns the anchor-miss messages in the order they occurred.
func (r *Report) Warnings() []string {
	return append([]string(nil), r.warnings...)
}

// FileOp patches one coordinator file: read in full, fold the edit list
// over the content, write back if anything changed. Implements the
// generator Operation interface.
//
// There is no cross-file transaction; each file is edited independently
// and a fatal error leaves earlier files modified.
type FileOp struct {
	Path   string
	Label  string // e.g. "module registry"
	Edits  []Transform
	Report *Report
}

// Validate checks the target file exists. A missing coordinator file is
// fatal for the whole run, surfaced before any file is written.
func (op *FileOp) Validate(ctx context.Context, force bool) error {
	info, err := os.Stat(op.Path)
	if err != nil {
		return fmt.Errorf("target file %s: %w", op.Path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("target file %s is a directory", op.Path)
	}
	return nil
}

// Execute applies the edits and writes the file back when changed.
func (op *FileOp) Execute(ctx context.Context) error {
	content, err := op.transform()
	if err != nil {
		return err
	}
	if content == nil {
		return nil // nothing changed
	}
	if err := os.WriteFile(op.Path, content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", op.Path, err)
	}
	return nil
}

// Preview applies the edits without writing, returning the old and new
// content for diffing. Outcomes are recorded in the report exactly as a
// real run would record them.
func (op *FileOp) Preview(ctx context.Context) (old, newer []byte, err error) {
	old, err = os.ReadFile(op.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", op.Path, err)
	}

	text := op.applyAll(string(old))
	return old, []byte(text), nil
}

// transform returns the new content, or nil when no edit changed the file.
func (op *FileOp) transform() ([]byte, error) {
	original, err := os.ReadFile(op.Path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", op.Path, err)
	}

	text := op.applyAll(string(original))
	if text == string(original) {
		return nil, nil
	}
	return []byte(text), nil
}

func (op *FileOp) applyAll(text string) string {
	for _, edit := range op.Edits {
		var outcome Outcome
		text, outcome = edit.Apply(text)

		switch outcome {
		case Applied:
			log.Debug("edit applied", "file", op.Path, "edit", edit.Name())
		case AlreadyApplied:
			log.Debug("edit already present", "file", op.Path, "edit", edit.Name())
		case AnchorMissing:
			log.Warn("anchor not found", "file", op.Path, "edit", edit.Name())
		}

		if op.Report != nil {
			op.Report.record(outcome, op.Path, edit.Name())
		}
	}
	return text
}

// Description implements the generator Operation interface.
func (op *FileOp) Description() string {
	return fmt.Sprintf("Patch %s (%s)", op.Path, op.Label)
}
