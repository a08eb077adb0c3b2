// Package project locates the target application's coordinator files.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// Paths holds the coordinator file locations, relative to the project root.
type Paths struct {
	StatesDir    string // directory for generated state modules
	StatesMod    string // module registry (mod.rs)
	Renderer     string
	InputHandler string
	MainMenu     string
	Docs         string
}

// DefaultPaths returns the standard arena-app layout.
func DefaultPaths() Paths {
	return Paths{
		StatesDir:    "src/ui/states",
		StatesMod:    "src/ui/states/mod.rs",
		Renderer:     "src/ui/renderer.rs",
		InputHandler: "src/ui/input_handler.rs",
		MainMenu:     "src/ui/states/main_menu.rs",
		Docs:         "docs/menu_creation.md",
	}
}

// Project is the target application menugen operates on.
type Project struct {
	Root  string
	Paths Paths
	Crate string // crate name from Cargo.toml, "" when not detected
}

// Detect resolves the project at root: optional menugen.yml overrides the
// coordinator paths, and Cargo.toml (when present) names the crate.
func Detect(root string) (*Project, error) {
	paths, err := loadPaths(root)
	if err != nil {
		return nil, err
	}

	p := &Project{Root: root, Paths: paths}
	if name, err := crateName(root); err == nil {
		p.Crate = name
	}
	return p, nil
}

// loadPaths reads menugen.yml when it exists; a missing config file means
// the default layout.
func loadPaths(root string) (Paths, error) {
	paths := DefaultPaths()

	if _, err := os.Stat(filepath.Join(root, "menugen.yml")); os.IsNotExist(err) {
		return paths, nil
	}

	v := viper.New()
	v.SetConfigName("menugen")
	v.SetConfigType("yaml")
	v.AddConfigPath(root)

	v.SetDefault("paths.states_dir", paths.StatesDir)
	v.SetDefault("paths.states_mod", paths.StatesMod)
	v.SetDefault("paths.renderer", paths.Renderer)
	v.SetDefault("paths.input_handler", paths.InputHandler)
	v.SetDefault("paths.main_menu", paths.MainMenu)
	v.SetDefault("paths.docs", paths.Docs)

	if err := v.ReadInConfig(); err != nil {
		return Paths{}, fmt.Errorf("failed to read menugen.yml: %w", err)
	}

	return Paths{
		StatesDir:    v.GetString("paths.states_dir"),
		StatesMod:    v.GetString("paths.states_mod"),
		Renderer:     v.GetString("paths.renderer"),
		InputHandler: v.GetString("paths.input_handler"),
		MainMenu:     v.GetString("paths.main_menu"),
		Docs:         v.GetString("paths.docs"),
	}, nil
}

// crateName parses Cargo.toml for the package name.
func crateName(root string) (string, error) {
	data, err := os.ReadFile(filepath.Join(root, "Cargo.toml"))
	if err != nil {
		return "", err
	}

	var manifest struct {
		Package struct {
			Name string `toml:"name"`
		} `toml:"package"`
	}
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return "", fmt.Errorf("parsing Cargo.toml: %w", err)
	}
	return manifest.Package.Name, nil
}

// StateFile returns the absolute path of the state module for ident.
func (p *Project) StateFile(ident string) string {
	return filepath.Join(p.Root, p.Paths.StatesDir, ident+".rs")
}

// StatesModFile returns the absolute path of the module registry.
func (p *Project) StatesModFile() string { return filepath.Join(p.Root, p.Paths.StatesMod) }

// RendererFile returns the absolute path of the renderer.
func (p *Project) RendererFile() string { return filepath.Join(p.Root, p.Paths.Renderer) }

// InputHandlerFile returns the absolute path of the input dispatcher.
func (p *Project) InputHandlerFile() string { return filepath.Join(p.Root, p.Paths.InputHandler) }

// MainMenuFile returns the absolute path of the top-level menu state.
func (p *Project) MainMenuFile() string { return filepath.Join(p.Root, p.Paths.MainMenu) }

// DocsFile returns the absolute path of the generated documentation.
func (p *Project) DocsFile() string { return filepath.Join(p.Root, p.Paths.Docs) }
