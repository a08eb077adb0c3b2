package menu

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/arenaworks/menugen/internal/generator"
	"github.com/arenaworks/menugen/internal/patch"
)

// Anchor in src/ui/input_handler.rs.
const anchorInputArm = "        AppState::Help => handle_help_input(app, &key_event),"

const inputArmText = `        AppState::{{.TypeName}} => handle_{{.Ident}}_input(app, &key_event),
`

// mainMenuCasesRe matches the trailing Help and Quit cases of the main
// menu's selection handler, capturing the leading whitespace and both
// case numbers.
var mainMenuCasesRe = regexp.MustCompile(`(\s+)(\d+) => \{\s+// Help\s+app\.switch_to_help\(\);\s+\}\s+(\d+) => \{\s+// Quit\s+app\.quit\(\);\s+\}`)

// inputOp carries every edit against the input dispatcher: the routing
// arm for the new state, the appended navigation and selection handlers,
// and the renumbered main-menu selection cases. The file is read,
// transformed, and written exactly once.
func (g *Generator) inputOp() (generator.Operation, error) {
	armProbe, err := g.snippet("input arm probe", "AppState::{{.TypeName}} => handle_{{.Ident}}_input")
	if err != nil {
		return nil, err
	}
	armText, err := g.snippet("input arm text", inputArmText)
	if err != nil {
		return nil, err
	}

	handlersProbe, err := g.snippet("input handlers probe", "fn handle_{{.Ident}}_input")
	if err != nil {
		return nil, err
	}
	handlers, err := g.renderer.RenderFS(templatesFS, "templates/input_handlers.rs.tmpl", g.data())
	if err != nil {
		return nil, err
	}

	renumber, err := g.renumberTransform()
	if err != nil {
		return nil, err
	}

	edits := []patch.Transform{
		patch.Edit{
			Label: "input dispatch arm",
			Probe: armProbe,
			Find:  anchorInputArm,
			Mode:  patch.InsertBefore,
			Text:  armText,
		},
		patch.Edit{
			Label: "input handler functions",
			Probe: handlersProbe,
			Mode:  patch.Append,
			Text:  "\n\n" + string(handlers),
		},
		renumber,
	}

	return &patch.FileOp{
		Path:   g.project.InputHandlerFile(),
		Label:  "input dispatcher",
		Edits:  edits,
		Report: g.report,
	}, nil
}

// renumberTransform rewrites the main-menu selection handler: the new
// menu takes the case number previously bound to Help, and Help and Quit
// move down by one and two. The numbers are read from the file rather
// than assumed, so the rewrite stays correct however many menus have
// been inserted before.
func (g *Generator) renumberTransform() (patch.Transform, error) {
	probe, err := g.snippet("main menu case probe", "app.switch_to_{{.Ident}}();")
	if err != nil {
		return nil, err
	}

	ident := g.name.Ident
	typeName := g.name.TypeName

	fn := func(text string) (string, patch.Outcome) {
		m := mainMenuCasesRe.FindStringSubmatchIndex(text)
		if m == nil {
			return text, patch.AnchorMissing
		}

		indent := text[m[2]:m[3]]
		helpNum, err := strconv.Atoi(text[m[4]:m[5]])
		if err != nil {
			return text, patch.AnchorMissing
		}

		replacement := fmt.Sprintf(
			"%s%d => {\n            // %s\n            app.switch_to_%s();\n        }\n"+
				"        %d => {\n            // Help\n            app.switch_to_help();\n        }\n"+
				"        %d => {\n            // Quit\n            app.quit();\n        }",
			indent, helpNum, typeName, ident, helpNum+1, helpNum+2)

		return text[:m[0]] + replacement + text[m[1]:], patch.Applied
	}

	return patch.Func{
		Label: "main menu selection case",
		Probe: probe,
		Fn:    fn,
	}, nil
}
