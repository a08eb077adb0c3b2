package menu

import (
	"github.com/arenaworks/menugen/internal/generator"
	"github.com/arenaworks/menugen/internal/patch"
)

// Anchors in src/ui/renderer.rs.
const (
	anchorHeaderArm  = "        AppState::Help => ("
	anchorContentArm = "        AppState::Help => draw_help_content(f, area, app),"
	anchorDrawFooter = "fn draw_footer"
)

const headerArmText = `        AppState::{{.TypeName}} => (
            "Arena - {{.TypeName}}",
            "{{.TypeName}} menu: Arrow keys to navigate, Enter to select"
        ),
`

const contentArmText = `        AppState::{{.TypeName}} => draw_{{.Ident}}_content(f, area, app),
`

// rendererOp adds the new state's arms to the header and content dispatch
// and appends the draw function ahead of draw_footer. The draw function
// lays out three vertical regions: title, option list with the selected
// entry inverted, and an info panel showing the menu's custom data.
func (g *Generator) rendererOp() (generator.Operation, error) {
	headerProbe, err := g.snippet("header arm probe", "AppState::{{.TypeName}} => (")
	if err != nil {
		return nil, err
	}
	headerText, err := g.snippet("header arm text", headerArmText)
	if err != nil {
		return nil, err
	}

	contentProbe, err := g.snippet("content arm probe", "AppState::{{.TypeName}} => draw_{{.Ident}}_content")
	if err != nil {
		return nil, err
	}
	contentText, err := g.snippet("content arm text", contentArmText)
	if err != nil {
		return nil, err
	}

	drawProbe, err := g.snippet("draw function probe", "fn draw_{{.Ident}}_content")
	if err != nil {
		return nil, err
	}
	drawFn, err := g.renderer.RenderFS(templatesFS, "templates/draw_content.rs.tmpl", g.data())
	if err != nil {
		return nil, err
	}

	edits := []patch.Transform{
		patch.Edit{
			Label: "header dispatch arm",
			Probe: headerProbe,
			Find:  anchorHeaderArm,
			Mode:  patch.InsertBefore,
			Text:  headerText,
		},
		patch.Edit{
			Label: "content dispatch arm",
			Probe: contentProbe,
			Find:  anchorContentArm,
			Mode:  patch.InsertBefore,
			Text:  contentText,
		},
		patch.Edit{
			Label: "draw function",
			Probe: drawProbe,
			Find:  anchorDrawFooter,
			Mode:  patch.InsertBefore,
			Text:  string(drawFn) + "\n",
		},
	}

	return &patch.FileOp{
		Path:   g.project.RendererFile(),
		Label:  "renderer",
		Edits:  edits,
		Report: g.report,
	}, nil
}
