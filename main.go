// pulse-line renders a one-line, terminal-width-aware status line for the
// Claude Code status bar.
//
// The host pipes a JSON session snapshot on stdin; pulse-line converts it
// into ordered display segments, styles them with the active theme, fits the
// result into the detected terminal width, and prints exactly one line to
// stdout.
//
// Usage:
//
//	pulse-line [flags] < snapshot.json
//
// Flags:
//
//	-config string  Path to configuration file (default: ~/.config/pulse-line/config.yaml)
//	-theme string   Theme override for this run
//	-init           Write the default configuration file and exit
//	-check          Validate the configuration and exit
//	-print-config   Print the effective configuration and exit
//	-verbose        Enable debug logging
//	-version        Print version and exit
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"gitlab.com/tinyland/lab/pulse-line/pkg/components"
	"gitlab.com/tinyland/lab/pulse-line/pkg/config"
	"gitlab.com/tinyland/lab/pulse-line/pkg/render"
	"gitlab.com/tinyland/lab/pulse-line/pkg/segments"
	"gitlab.com/tinyland/lab/pulse-line/pkg/terminal"
	"gitlab.com/tinyland/lab/pulse-line/pkg/theme"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		themeName   = flag.String("theme", "", "Theme override for this run")
		runInit     = flag.Bool("init", false, "Write the default configuration file and exit")
		runCheck    = flag.Bool("check", false, "Validate the configuration and exit")
		printConfig = flag.Bool("print-config", false, "Print the effective configuration and exit")
		verbose     = flag.Bool("verbose", false, "Enable debug logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("pulse-line %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelDebug
	}
	// stdout carries only the status line; all logging goes to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if *runInit {
		res, err := config.Init()
		if err != nil {
			fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
			os.Exit(1)
		}
		if res.Created {
			fmt.Printf("Created config at %s\n", res.Path)
		} else {
			fmt.Printf("Config already exists at %s\n", res.Path)
		}
		os.Exit(0)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *themeName != "" {
		cfg.Theme = *themeName
	}

	if *runCheck {
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✓ Configuration valid")
		os.Exit(0)
	}

	if *printConfig {
		if err := cfg.Print(); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	// Nothing piped means the host did not invoke us; print usage instead
	// of blocking on a terminal read.
	if isatty.IsTerminal(os.Stdin.Fd()) {
		fmt.Fprintln(os.Stderr, "No input data provided.")
		fmt.Fprintln(os.Stderr, "Usage: echo '{...}' | pulse-line")
		fmt.Fprintln(os.Stderr, "   or: pulse-line -help")
		os.Exit(0)
	}

	input, err := config.DecodeInput(os.Stdin)
	if err != nil {
		logger.Error("failed to decode input", "error", err)
		os.Exit(1)
	}

	if err := theme.LoadUserThemes(config.ThemeDirs()); err != nil {
		logger.Warn("skipping unusable user theme", "error", err)
	}

	results := segments.CollectAll(cfg, input)
	line := render.New(theme.Get(cfg.Theme)).Line(results)
	line = components.TruncateToWidth(line, terminal.Budget(cfg.Width.Percent))
	fmt.Println(line)
}

// loadConfig loads from an explicit path when given, otherwise from the
// standard search paths.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}
