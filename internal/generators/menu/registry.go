package menu

import (
	"github.com/arenaworks/menugen/internal/generator"
	"github.com/arenaworks/menugen/internal/patch"
)

// Anchors in src/ui/states/mod.rs. The help menu is the sentinel: every
// new menu is wired in immediately around it.
const (
	anchorModDecl  = "pub mod help;"
	anchorReexport = "pub use help::HelpState;"

	anchorEnumVariant = `    /// Help/instructions screen
    Help,`

	anchorStructField = "    pub help: HelpState,"
	anchorCtorField   = "            help: HelpState::new(),"

	anchorAppSwitch = `    pub fn switch_to_help(&mut self) {
        self.state_manager.switch_to_help();
    }`

	anchorManagerSwitch = `    pub fn switch_to_help(&mut self) {
        self.switch_to(AppState::Help);
    }`
)

// registryOp wires the new state into the module registry: declaration,
// re-export, enum variant, struct field, constructor field, and the two
// switch-to delegation methods (App and StateManager).
//
// The two methods carry distinct probes (the delegation call inside each
// body); probing on the shared `fn switch_to_<name>` signature would mark
// the second method as already applied the moment the first one lands.
func (g *Generator) registryOp() (generator.Operation, error) {
	type editSpec struct {
		label string
		probe string
		find  string
		mode  patch.Mode
		text  string
	}

	specs := []editSpec{
		{
			label: "module declaration",
			probe: "pub mod {{.Ident}};",
			find:  anchorModDecl,
			mode:  patch.InsertAfter,
			text:  "\npub mod {{.Ident}};",
		},
		{
			label: "re-export",
			probe: "pub use {{.Ident}}::{{.TypeName}}State;",
			find:  anchorReexport,
			mode:  patch.InsertAfter,
			text:  "\npub use {{.Ident}}::{{.TypeName}}State;",
		},
		{
			label: "AppState enum variant",
			probe: "/// {{.TypeName}} menu",
			find:  anchorEnumVariant,
			mode:  patch.InsertBefore,
			text: `    /// {{.TypeName}} menu
    {{.TypeName}},
`,
		},
		{
			label: "App struct field",
			probe: "pub {{.Ident}}: {{.TypeName}}State,",
			find:  anchorStructField,
			mode:  patch.InsertBefore,
			text: `    /// {{.Ident}} state
    pub {{.Ident}}: {{.TypeName}}State,
`,
		},
		{
			label: "App constructor field",
			probe: "{{.Ident}}: {{.TypeName}}State::new(),",
			find:  anchorCtorField,
			mode:  patch.InsertBefore,
			text: `            {{.Ident}}: {{.TypeName}}State::new(),
`,
		},
		{
			label: "App switch method",
			probe: "self.state_manager.switch_to_{{.Ident}}();",
			find:  anchorAppSwitch,
			mode:  patch.InsertAfter,
			text: `

    /// Switch to {{.Ident}}
    pub fn switch_to_{{.Ident}}(&mut self) {
        self.state_manager.switch_to_{{.Ident}}();
    }`,
		},
		{
			label: "StateManager switch method",
			probe: "self.switch_to(AppState::{{.TypeName}});",
			find:  anchorManagerSwitch,
			mode:  patch.InsertAfter,
			text: `

    /// Switch to {{.Ident}}
    pub fn switch_to_{{.Ident}}(&mut self) {
        self.switch_to(AppState::{{.TypeName}});
    }`,
		},
	}

	var edits []patch.Transform
	for _, s := range specs {
		probe, err := g.snippet(s.label+" probe", s.probe)
		if err != nil {
			return nil, err
		}
		text, err := g.snippet(s.label+" text", s.text)
		if err != nil {
			return nil, err
		}

		edits = append(edits, patch.Edit{
			Label: s.label,
			Probe: probe,
			Find:  s.find,
			Mode:  s.mode,
			Text:  text,
		})
	}

	return &patch.FileOp{
		Path:   g.project.StatesModFile(),
		Label:  "module registry",
		Edits:  edits,
		Report: g.report,
	}, nil
}
