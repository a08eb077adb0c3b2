package menu

import (
	"fmt"

	"github.com/arenaworks/menugen/internal/generator"
)

// docsOp emits the manual-procedure documentation. The content is static
// and always overwritten; no anchors are involved.
func (g *Generator) docsOp() (generator.Operation, error) {
	content, err := templatesFS.ReadFile("templates/menu_creation.md.tmpl")
	if err != nil {
		return nil, fmt.Errorf("reading docs template: %w", err)
	}

	return &generator.OverwriteFileOp{
		Path:    g.project.DocsFile(),
		Content: content,
		Mode:    0644,
	}, nil
}
