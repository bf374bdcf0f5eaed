package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/subitlab-buf/subboard-mng-gui/internal/backend"
	"github.com/subitlab-buf/subboard-mng-gui/internal/config"
	"github.com/subitlab-buf/subboard-mng-gui/internal/debug"
	"github.com/subitlab-buf/subboard-mng-gui/internal/ui"
)

func main() {
	versionFlag := flag.Bool("version", false, "Print version information and exit")
	debugFlag := flag.Bool("debug", false, "Write a debug log under ~/"+debug.LogDirName)
	configFlag := flag.String("config", "", "Path to a config file (overrides the default lookup)")
	refreshSecondsFlag := flag.Int("refresh-seconds", 0, "Refresh interval in seconds (overrides poll_seconds)")
	themeFlag := flag.String("theme", "", "Color theme name (overrides the configured theme)")
	flag.Parse()

	if *versionFlag {
		printVersion()
		os.Exit(0)
	}

	if err := debug.Init(*debugFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing debug log: %v\n", err)
		os.Exit(1)
	}
	defer debug.Close()

	var opts []config.Option
	if *configFlag != "" {
		opts = append(opts, config.WithConfigFile(*configFlag))
	}
	if err := config.Initialize(opts...); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Provide the backend settings in %s or via SUBBOARD_* environment variables.\n", config.FileDescription())
		os.Exit(1)
	}

	runtime := computeRuntimeOptions(runtimeFlags{
		refreshSeconds: refreshSecondsFlag,
		theme:          themeFlag,
	}, visitedFlags())

	endpoints := backend.BuildEndpoints(
		config.GetString(config.KeyHostURL),
		config.GetString(config.KeyGlobalMapping),
		config.GetString(config.KeyPendingMapping),
		config.GetString(config.KeyProcessMapping),
	)
	debug.Logf("endpoints: pending=%s process=%s", endpoints.PendingPapers, endpoints.ProcessPaper)

	appCfg := ui.Config{
		Client:       backend.NewHTTPClient(endpoints),
		PollInterval: runtime.pollInterval,
		Theme:        runtime.theme,
		Version:      Version,
	}

	if err := runProgram(appCfg, ui.NewApp, func(app *ui.App) programRunner {
		return tea.NewProgram(app, tea.WithAltScreen())
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.App) programRunner

func runProgram(cfg ui.Config, builder func(ui.Config) *ui.App, factory programFactory) error {
	app := builder(cfg)
	if factory == nil {
		return fmt.Errorf("program factory is nil")
	}
	prog := factory(app)
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}

type runtimeFlags struct {
	refreshSeconds *int
	theme          *string
}

type runtimeOptions struct {
	pollInterval time.Duration
	theme        string
}

// computeRuntimeOptions merges config values with explicitly set
// flags. A flag only overrides its config key when the user actually
// passed it, so the configured value survives a plain invocation.
func computeRuntimeOptions(flags runtimeFlags, visited map[string]struct{}) runtimeOptions {
	seconds := sanitizeRefreshSeconds(config.GetInt(config.KeyPollSeconds))
	if flagWasExplicitlySet("refresh-seconds", visited) {
		seconds = sanitizeRefreshSeconds(*flags.refreshSeconds)
	}

	theme := config.GetString(config.KeyTheme)
	if flagWasExplicitlySet("theme", visited) {
		theme = *flags.theme
	}

	return runtimeOptions{
		pollInterval: time.Duration(seconds) * time.Second,
		theme:        theme,
	}
}

func visitedFlags() map[string]struct{} {
	visited := map[string]struct{}{}
	flag.CommandLine.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})
	return visited
}

func flagWasExplicitlySet(name string, visited map[string]struct{}) bool {
	_, ok := visited[name]
	return ok
}

func sanitizeRefreshSeconds(seconds int) int {
	if seconds <= 0 {
		return config.DefaultPollSeconds
	}
	return seconds
}
