package menu

import (
	"github.com/arenaworks/menugen/internal/generator"
)

// stateFileOp renders the new state module. The file is rewritten
// unconditionally on re-runs; only the coordinator files are guarded by
// probes. That asymmetry is deliberate: the state module is wholly owned
// by the generator until the user starts editing it.
func (g *Generator) stateFileOp() (generator.Operation, error) {
	content, err := g.renderer.RenderFS(templatesFS, "templates/state.rs.tmpl", g.data())
	if err != nil {
		return nil, err
	}

	return &generator.OverwriteFileOp{
		Path:    g.project.StateFile(g.name.Ident),
		Content: content,
		Mode:    0644,
	}, nil
}
