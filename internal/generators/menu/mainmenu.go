package menu

import (
	"github.com/arenaworks/menugen/internal/generator"
	"github.com/arenaworks/menugen/internal/patch"
)

// Anchor in src/ui/states/main_menu.rs: the Help label is the sentinel
// the new option slots in front of.
const anchorMainMenuHelp = `                "Help".to_string(),`

const mainMenuOptionText = `                {{quote .TypeName}}.to_string(),
`

// mainMenuOp inserts the new option label into the top-level menu's
// option list. The matching selection-handler renumbering lives in
// inputOp, since it targets the input dispatcher file.
func (g *Generator) mainMenuOp() (generator.Operation, error) {
	probe, err := g.snippet("main menu option probe", "{{quote .TypeName}}")
	if err != nil {
		return nil, err
	}
	text, err := g.snippet("main menu option text", mainMenuOptionText)
	if err != nil {
		return nil, err
	}

	edits := []patch.Transform{
		patch.Edit{
			Label: "main menu option",
			Probe: probe,
			Find:  anchorMainMenuHelp,
			Mode:  patch.InsertBefore,
			Text:  text,
		},
	}

	return &patch.FileOp{
		Path:   g.project.MainMenuFile(),
		Label:  "main menu",
		Edits:  edits,
		Report: g.report,
	}, nil
}
