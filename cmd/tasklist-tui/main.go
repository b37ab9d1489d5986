// Package main is the entry point for the task list TUI.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hy4ri/tasklist-tui/internal/config"
	"github.com/hy4ri/tasklist-tui/internal/logging"
	"github.com/hy4ri/tasklist-tui/internal/tui"
)

const version = "0.1.0"

const helpText = `tasklist-tui - A small terminal TODO list

USAGE:
    tasklist-tui [OPTIONS]

OPTIONS:
    -h, --help      Show this help message
    -v, --version   Show version information
    --init          Create a template config file

Tasks live only while the program runs; nothing is saved on exit.

CONFIGURATION (optional):
    Config file: ~/.config/tasklist-tui/config.yaml

KEYBINDINGS:
    Task list:
        a           Add new task
        Enter       Edit selected task
        Space       Mark done/undone
        Up/Down     Move selection
        d           Delete selected task
        y           Copy description to clipboard
        ?           Show help
        q           Quit

    New/Edit item:
        Enter       Save
        Esc         Cancel
        Ctrl+v      Paste
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("tasklist-tui version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	return runApp()
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		// A read error (EOF, empty line) counts as "no".
		var response string
		if _, err := fmt.Scanln(&response); err != nil || (response != "y" && response != "Y") {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := config.WriteTemplate(path); err != nil {
		return err
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// runApp starts the interactive session.
func runApp() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, closer, err := logging.FromConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer closer.Close()

	logger.Info("session starting", "version", version)
	app := tui.NewApp(cfg, logger)

	// Draw on stderr so stdout stays free for pipes.
	if err := tui.Run(context.Background(), app, tui.Options{Output: os.Stderr}); err != nil {
		logger.Error("session failed", "err", err)
		return err
	}

	logger.Info("session ended", "tasks", len(app.State().Items))
	return nil
}
