package menu_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arenaworks/menugen/internal/generator"
	"github.com/arenaworks/menugen/internal/generators/menu"
	"github.com/arenaworks/menugen/internal/naming"
	"github.com/arenaworks/menugen/internal/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statesModFixture = `//! UI state registry

pub mod main_menu;
pub mod help;

pub use main_menu::MainMenuState;
pub use help::HelpState;

/// Application states
#[derive(Debug, Clone, PartialEq)]
pub enum AppState {
    /// Main menu
    MainMenu,
    /// Help/instructions screen
    Help,
}

/// Top-level application state
pub struct App {
    pub state_manager: StateManager,
    pub main_menu: MainMenuState,
    pub help: HelpState,
}

impl App {
    pub fn new() -> Self {
        Self {
            state_manager: StateManager::new(),
            main_menu: MainMenuState::new(),
            help: HelpState::new(),
        }
    }

    pub fn switch_to_main_menu(&mut self) {
        self.state_manager.switch_to_main_menu();
    }

    pub fn switch_to_help(&mut self) {
        self.state_manager.switch_to_help();
    }

    pub fn quit(&mut self) {
        self.state_manager.should_quit = true;
    }
}

pub struct StateManager {
    pub current: AppState,
    pub should_quit: bool,
}

impl StateManager {
    pub fn switch_to(&mut self, state: AppState) {
        self.current = state;
    }

    pub fn switch_to_main_menu(&mut self) {
        self.switch_to(AppState::MainMenu);
    }

    pub fn switch_to_help(&mut self) {
        self.switch_to(AppState::Help);
    }
}
`

const rendererFixture = `use ratatui::prelude::*;

pub fn draw(f: &mut Frame, app: &App) {
    let (title, hint) = match app.state_manager.current {
        AppState::MainMenu => (
            "Arena",
            "Arrow keys to navigate, Enter to select"
        ),
        AppState::Help => (
            "Arena - Help",
            "Press Esc to return"
        ),
    };

    let area = f.area();
    match app.state_manager.current {
        AppState::MainMenu => draw_main_menu_content(f, area, app),
        AppState::Help => draw_help_content(f, area, app),
    }
}

fn draw_main_menu_content(f: &mut Frame, area: Rect, app: &App) {
}

fn draw_help_content(f: &mut Frame, area: Rect, app: &App) {
}

fn draw_footer(f: &mut Frame, area: Rect) {
}
`

const inputHandlerFixture = `use crossterm::event::KeyCode;

pub fn handle_key_event(app: &mut App, key_event: crossterm::event::KeyEvent) {
    match app.state_manager.current {
        AppState::MainMenu => handle_main_menu_input(app, &key_event),
        AppState::Help => handle_help_input(app, &key_event),
    }
}

fn handle_main_menu_input(app: &mut App, key_event: &crossterm::event::KeyEvent) {
    match key_event.code {
        KeyCode::Up => app.main_menu.select_up(),
        KeyCode::Down => app.main_menu.select_down(),
        KeyCode::Enter => handle_main_menu_selection(app),
        _ => {}
    }
}

fn handle_main_menu_selection(app: &mut App) {
    match app.main_menu.selected_option {
        0 => {
            // Start Game
            app.start_game();
        }
        1 => {
            // Help
            app.switch_to_help();
        }
        2 => {
            // Quit
            app.quit();
        }
        _ => {}
    }
}

fn handle_help_input(app: &mut App, key_event: &crossterm::event::KeyEvent) {
}
`

const mainMenuFixture = `//! Main menu state

pub struct MainMenuState {
    pub selected_option: usize,
    pub options: Vec<String>,
}

impl MainMenuState {
    pub fn new() -> Self {
        Self {
            selected_option: 0,
            options: vec![
                "Start Game".to_string(),
                "Help".to_string(),
                "Quit".to_string(),
            ],
        }
    }
}
`

// setupProject writes a minimal target application into a temp dir.
func setupProject(t *testing.T) *project.Project {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		"src/ui/states/mod.rs":       statesModFixture,
		"src/ui/renderer.rs":         rendererFixture,
		"src/ui/input_handler.rs":    inputHandlerFixture,
		"src/ui/states/main_menu.rs": mainMenuFixture,
	}
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	return &project.Project{Root: root, Paths: project.DefaultPaths()}
}

// runPipeline generates and executes every operation for one menu name.
func runPipeline(t *testing.T, proj *project.Project, rawName string, opts menu.Options) *menu.Generator {
	t.Helper()

	name, err := naming.Derive(rawName)
	require.NoError(t, err)

	gen := menu.New(proj, name, opts)
	ops, err := gen.Generate()
	require.NoError(t, err)

	require.NoError(t, generator.Execute(context.Background(), ops, generator.ExecuteOptions{Writer: io.Discard}))
	return gen
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestGenerate_RegistryRoundTrip(t *testing.T) {
	proj := setupProject(t)
	runPipeline(t, proj, "battle", menu.Options{})

	registry := readFile(t, proj.StatesModFile())

	assert.Contains(t, registry, "pub mod battle;")
	assert.Contains(t, registry, "pub use battle::BattleState;")

	// The new variant, field, and constructor line all land immediately
	// before their help counterparts.
	assert.Less(t,
		strings.Index(registry, "    Battle,"),
		strings.Index(registry, "    Help,"))
	assert.Less(t,
		strings.Index(registry, "pub battle: BattleState,"),
		strings.Index(registry, "pub help: HelpState,"))
	assert.Less(t,
		strings.Index(registry, "battle: BattleState::new(),"),
		strings.Index(registry, "help: HelpState::new(),"))

	// Both delegation methods are present.
	assert.Contains(t, registry, "self.state_manager.switch_to_battle();")
	assert.Contains(t, registry, "self.switch_to(AppState::Battle);")
}

func TestGenerate_StateFile(t *testing.T) {
	proj := setupProject(t)
	runPipeline(t, proj, "battle", menu.Options{})

	state := readFile(t, proj.StateFile("battle"))

	assert.Contains(t, state, "pub struct BattleState {")
	assert.Contains(t, state, `"Option 1".to_string(),`)
	assert.Contains(t, state, `"Back to Main Menu".to_string(),`)

	// Wraparound navigation in both directions.
	assert.Contains(t, state, "self.options.len() - 1")
	assert.Contains(t, state, "(self.selected_option + 1) % self.options.len()")

	// The custom action stamps its data with a time marker.
	assert.Contains(t, state, "std::time::Instant::now()")
}

func TestGenerate_CustomOptionLabels(t *testing.T) {
	proj := setupProject(t)
	runPipeline(t, proj, "battle", menu.Options{OptionLabels: []string{"Attack", "Defend"}})

	state := readFile(t, proj.StateFile("battle"))
	assert.Contains(t, state, `"Attack".to_string(),`)
	assert.Contains(t, state, `"Defend".to_string(),`)
	assert.NotContains(t, state, `"Option 1"`)

	// With two custom options, "Back to Main Menu" sits at index 2.
	input := readFile(t, proj.InputHandlerFile())
	assert.Contains(t, input, "        2 => {\n            // Back to Main Menu\n            app.switch_to_main_menu();")
}

func TestGenerate_Renderer(t *testing.T) {
	proj := setupProject(t)
	runPipeline(t, proj, "battle", menu.Options{})

	rendered := readFile(t, proj.RendererFile())

	assert.Contains(t, rendered, `AppState::Battle => (
            "Arena - Battle",`)
	assert.Contains(t, rendered, "AppState::Battle => draw_battle_content(f, area, app),")

	// The draw function is inserted ahead of draw_footer.
	assert.Less(t,
		strings.Index(rendered, "fn draw_battle_content"),
		strings.Index(rendered, "fn draw_footer"))
	assert.Contains(t, rendered, "Custom Data: {}")
}

func TestGenerate_InputDispatch(t *testing.T) {
	proj := setupProject(t)
	runPipeline(t, proj, "battle", menu.Options{})

	input := readFile(t, proj.InputHandlerFile())

	assert.Contains(t, input, "AppState::Battle => handle_battle_input(app, &key_event),")
	assert.Contains(t, input, "fn handle_battle_input(app: &mut App, key_event: &crossterm::event::KeyEvent)")

	// Default menu: 3 placeholder options, then "Back to Main Menu" at 3.
	assert.Contains(t, input, "        3 => {\n            // Back to Main Menu\n            app.switch_to_main_menu();")

	// Out-of-range selection warns instead of crashing.
	assert.Contains(t, input, "eprintln!(\"Invalid selection: {}\", app.battle.selected_option);")
}

func TestGenerate_MainMenuRenumbering(t *testing.T) {
	proj := setupProject(t)
	runPipeline(t, proj, "battle", menu.Options{})

	mainMenu := readFile(t, proj.MainMenuFile())
	assert.Less(t,
		strings.Index(mainMenu, `"Battle".to_string(),`),
		strings.Index(mainMenu, `"Help".to_string(),`))

	input := readFile(t, proj.InputHandlerFile())

	// The new menu takes Help's old case number; Help and Quit move down
	// by one and two. The leading case keeps its number.
	assert.Contains(t, input, "        0 => {\n            // Start Game")
	assert.Contains(t, input, "1 => {\n            // Battle\n            app.switch_to_battle();")
	assert.Contains(t, input, "        2 => {\n            // Help\n            app.switch_to_help();")
	assert.Contains(t, input, "        3 => {\n            // Quit\n            app.quit();")
	assert.NotContains(t, input, "1 => {\n            // Help")
}

// Running the full pipeline twice leaves every coordinator file
// byte-identical to its state after the first run.
func TestGenerate_Idempotent(t *testing.T) {
	proj := setupProject(t)
	runPipeline(t, proj, "battle", menu.Options{})

	coordinators := []string{
		proj.StatesModFile(),
		proj.RendererFile(),
		proj.InputHandlerFile(),
		proj.MainMenuFile(),
		proj.StateFile("battle"),
	}

	first := make(map[string]string, len(coordinators))
	for _, path := range coordinators {
		first[path] = readFile(t, path)
	}

	gen := runPipeline(t, proj, "battle", menu.Options{})

	for _, path := range coordinators {
		assert.Equal(t, first[path], readFile(t, path), "file changed on re-run: %s", path)
	}

	report := gen.Report()
	assert.Zero(t, report.Applied(), "edits reapplied on re-run")
	assert.Empty(t, report.Warnings())
	assert.NotZero(t, report.Skipped())
}

// A file whose anchor is missing is never mutated and never aborts the
// run; the skipped edit surfaces as a warning.
func TestGenerate_AnchorIsolation(t *testing.T) {
	proj := setupProject(t)

	// Remove the draw_footer anchor from the renderer.
	broken := strings.Replace(rendererFixture, "fn draw_footer", "fn draw_status_bar", 1)
	require.NoError(t, os.WriteFile(proj.RendererFile(), []byte(broken), 0644))

	gen := runPipeline(t, proj, "battle", menu.Options{})

	rendered := readFile(t, proj.RendererFile())
	assert.NotContains(t, rendered, "fn draw_battle_content")
	// The other renderer edits still land.
	assert.Contains(t, rendered, "AppState::Battle => draw_battle_content(f, area, app),")

	warnings := gen.Report().Warnings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "draw function")

	// The rest of the pipeline was unaffected.
	assert.Contains(t, readFile(t, proj.StatesModFile()), "pub mod battle;")
}

// A missing coordinator file fails validation before anything is written.
func TestGenerate_MissingCoordinatorIsFatal(t *testing.T) {
	proj := setupProject(t)
	require.NoError(t, os.Remove(proj.RendererFile()))

	name, err := naming.Derive("battle")
	require.NoError(t, err)

	gen := menu.New(proj, name, menu.Options{})
	ops, err := gen.Generate()
	require.NoError(t, err)

	err = generator.Execute(context.Background(), ops, generator.ExecuteOptions{Writer: io.Discard})
	require.Error(t, err)

	// Validate-all-first means the registry was not touched.
	assert.Equal(t, statesModFixture, readFile(t, proj.StatesModFile()))
}

func TestGenerate_DocsAlwaysWritten(t *testing.T) {
	proj := setupProject(t)
	runPipeline(t, proj, "battle", menu.Options{})

	docs := readFile(t, proj.DocsFile())
	assert.Contains(t, docs, "# Adding Custom Menus")
	assert.Contains(t, docs, "menugen menu battle")

	// Overwritten verbatim on re-run.
	require.NoError(t, os.WriteFile(proj.DocsFile(), []byte("edited by hand"), 0644))
	runPipeline(t, proj, "battle", menu.Options{})
	assert.Contains(t, readFile(t, proj.DocsFile()), "# Adding Custom Menus")
}
