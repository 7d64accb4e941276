// Package cli implements the starrating command-line interface.
//
// The commands build a star-rating widget from flags and an optional config
// file, replay a pointer script against it and show the result:
//   - render: write the widget as a PNG
//   - ops: print the recorded draw operations as YAML
//   - tui: run the widget interactively in the terminal
//
// All commands support --verbose (-v) for debug-level logging. The same
// charmbracelet logger receives the widget library's slog output.
package cli

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/starrating"
)

// appName is the application name used for display.
const appName = "starrating"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var version = "dev"

// SetVersion sets the version displayed by --version.
func SetVersion(v string) {
	version = v
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Starrating draws and drives a star-rating widget",
		Long:         `Starrating renders a row of rating stars, replays pointer input against it and runs it interactively in the terminal.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			starrating.SetLogger(slog.New(c.Logger))
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.opsCommand())
	root.AddCommand(c.tuiCommand())

	return root
}
