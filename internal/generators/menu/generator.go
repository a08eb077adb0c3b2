// Package menu generates a new menu state and wires it into the target
// application's coordinator files.
package menu

import (
	"embed"
	"fmt"

	"github.com/arenaworks/menugen/internal/generator"
	"github.com/arenaworks/menugen/internal/naming"
	"github.com/arenaworks/menugen/internal/patch"
	"github.com/arenaworks/menugen/internal/project"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// defaultOptions are the placeholder labels a new menu starts with; the
// "Back to Main Menu" entry is always appended after them.
var defaultOptions = []string{"Option 1", "Option 2", "Option 3"}

// Options configures menu generation.
type Options struct {
	// OptionLabels replaces the default placeholder labels. The
	// "Back to Main Menu" entry is appended regardless.
	OptionLabels []string
}

// Generator builds the operation list for one new menu.
type Generator struct {
	project  *project.Project
	name     naming.Name
	options  []string
	renderer *generator.Renderer
	report   *patch.Report
}

// New creates a menu generator.
func New(p *project.Project, name naming.Name, opts Options) *Generator {
	labels := opts.OptionLabels
	if len(labels) == 0 {
		labels = defaultOptions
	}

	return &Generator{
		project:  p,
		name:     name,
		options:  labels,
		renderer: generator.NewRenderer(),
		report:   patch.NewReport(),
	}
}

// Report returns the shared patch report. It is populated during
// execution (or preview) of the returned operations.
func (g *Generator) Report() *patch.Report {
	return g.report
}

// templateData is the parameter set every template and snippet sees.
type templateData struct {
	Ident    string
	TypeName string
	Options  []string
}

func (g *Generator) data() templateData {
	return templateData{
		Ident:    g.name.Ident,
		TypeName: g.name.TypeName,
		Options:  g.options,
	}
}

// Generate returns the full operation list, in execution order: state
// file, module registry, renderer, input dispatcher, main menu, docs.
// Each coordinator file appears exactly once, carrying every edit that
// targets it.
func (g *Generator) Generate() ([]generator.Operation, error) {
	var ops []generator.Operation

	stateOp, err := g.stateFileOp()
	if err != nil {
		return nil, fmt.Errorf("generating state file: %w", err)
	}
	ops = append(ops, stateOp)

	registryOp, err := g.registryOp()
	if err != nil {
		return nil, fmt.Errorf("building registry edits: %w", err)
	}
	ops = append(ops, registryOp)

	rendererOp, err := g.rendererOp()
	if err != nil {
		return nil, fmt.Errorf("building renderer edits: %w", err)
	}
	ops = append(ops, rendererOp)

	inputOp, err := g.inputOp()
	if err != nil {
		return nil, fmt.Errorf("building input handler edits: %w", err)
	}
	ops = append(ops, inputOp)

	mainMenuOp, err := g.mainMenuOp()
	if err != nil {
		return nil, fmt.Errorf("building main menu edits: %w", err)
	}
	ops = append(ops, mainMenuOp)

	docsOp, err := g.docsOp()
	if err != nil {
		return nil, fmt.Errorf("generating docs: %w", err)
	}
	ops = append(ops, docsOp)

	return ops, nil
}

// snippet renders a small inline template against the menu's data.
func (g *Generator) snippet(name, tmpl string) (string, error) {
	out, err := g.renderer.RenderString(name, tmpl, g.data())
	if err != nil {
		return "", err
	}
	return string(out), nil
}
