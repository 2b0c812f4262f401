package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	xterm "github.com/charmbracelet/x/term"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pastel-todo/app"
	"pastel-todo/config"
	"pastel-todo/store"
	"pastel-todo/tui"
)

const debugEnv = "PASTEL_TODO_DEBUG"

var ErrTerminalTooSmall = errors.New("terminal too small")

type options struct {
	ConfigPath string
	TasksFile  string
	Folder     string
}

func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "pastel-todo",
		Short:         "Pastel todo list in a fixed 60x30 terminal frame",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  pastel-todo

  # Print the tasks of a folder without the TUI
  pastel-todo list --folder work
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default <config dir>/pastel_todo/config.toml)")
	cmd.PersistentFlags().StringVar(&opts.TasksFile, "file", "", "task file, overrides tasks_file from the config")
	cmd.PersistentFlags().StringVar(&opts.Folder, "folder", "", "folder to start in")

	cmd.AddCommand(newListCmd(opts))
	return cmd
}

// PrintError reports a command failure on w in red.
func PrintError(w io.Writer, err error) {
	_, _ = color.New(color.FgRed).Fprintf(w, "Error: %v\n", err)
}

func runTUI(opts *options) error {
	width, height, err := xterm.GetSize(os.Stdout.Fd())
	if err != nil {
		return fmt.Errorf("query terminal size: %w", err)
	}
	if err := checkSize(width, height); err != nil {
		return err
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()

	svc, err := openService(opts, cfg)
	if err != nil {
		return err
	}
	return tui.Run(svc)
}

// checkSize enforces the fixed frame size; there is no smaller layout.
func checkSize(width, height int) error {
	if width < tui.FrameWidth || height < tui.FrameHeight {
		return fmt.Errorf("%w: must be at least %dx%d (current: %dx%d)",
			ErrTerminalTooSmall, tui.FrameWidth, tui.FrameHeight, width, height)
	}
	return nil
}

func loadConfig(opts *options) (config.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
	}
	cfg, err := config.LoadOrCreate(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if opts.TasksFile != "" {
		cfg.TasksFile = opts.TasksFile
	}
	return cfg, nil
}

// openService loads the task file into a service that saves back to it.
// A task file that cannot be read is logged and treated as empty.
func openService(opts *options, cfg config.Config) (*app.Service, error) {
	path, err := cfg.TasksPath()
	if err != nil {
		return nil, err
	}
	tasks, err := store.Load(path)
	if err != nil {
		log.Printf("load tasks from %s: %v", path, err)
	}

	svc := app.NewService(tasks, cfg.DefaultFolder, store.File{Path: path})
	if opts.Folder != "" {
		if err := svc.SetFolder(opts.Folder); err != nil {
			return nil, err
		}
	}
	return svc, nil
}

// setupLogging sends the standard logger to a file so it never draws over
// the frame. Without a file logging is discarded.
func setupLogging(path string) (func(), error) {
	if path == "" && os.Getenv(debugEnv) != "" {
		path = "debug.log"
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "pastel-todo")
	if err != nil {
		return nil, err
	}
	return func() { _ = f.Close() }, nil
}
