package cli

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tasktrack/internal/config"
	"tasktrack/internal/location"
	"tasktrack/internal/logs"
	"tasktrack/internal/notify"
	"tasktrack/internal/tasks/data"
	"tasktrack/internal/tasks/filter"
	"tasktrack/internal/tasks/store"
	"tasktrack/internal/tui"
)

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	seedFile   string
	logDir     string
	logLevel   string
	timezone   string
}

func (g *globalFlags) cliFlags() config.CLIFlags {
	return config.CLIFlags{
		ConfigPath:  g.configPath,
		SeedFile:    g.seedFile,
		LogDir:      g.logDir,
		LogLevel:    g.logLevel,
		DayTimezone: g.timezone,
	}
}

// NewRootCmd builds the command tree. Running the root command launches the TUI.
func NewRootCmd(version string) *cobra.Command {
	g := &globalFlags{}
	var url, date string

	rootCmd := &cobra.Command{
		Use:   "tasktrack",
		Short: "Track tasks in the terminal",
		Long: `tasktrack keeps a session-only task list. Tasks can be added, edited and
marked done, and the list can be narrowed by a search text and a calendar day.

Running tasktrack without a command launches the interactive TUI.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := g.cliFlags()
			flags.InitialURL = url
			return runTUI(cmd.OutOrStdout(), flags, date)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "Config file (default ~/.config/tasktrack/config.toml)")
	pf.StringVar(&g.seedFile, "seed", "", "Seed file with the initial tasks (JSON or YAML)")
	pf.StringVar(&g.logDir, "log-dir", "", "Directory for debug.log")
	pf.StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&g.timezone, "timezone", "", "Time zone used to decide a task's calendar day")

	rootCmd.Flags().StringVar(&url, "url", "", "Initial location, e.g. /?search=milk")
	rootCmd.Flags().StringVar(&date, "date", "", "Initial date filter (yyyy-MM-dd)")

	rootCmd.AddCommand(newListCmd(g))
	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.Version = version
	return rootCmd
}

// Execute runs the root command
func Execute(version string) error {
	if err := NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// session is what every command needs before it can look at tasks.
type session struct {
	cfg   *config.Config
	tasks []data.Task
}

func openSession(flags config.CLIFlags) (*session, error) {
	cfg, err := config.Load(flags)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if flags.ConfigPath == "" {
		if err := config.EnsureConfigFile(cfg.ConfigPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file: %v\n", err)
		}
	}

	logs.SetLevel(cfg.LogLevel)
	if err := logs.Initialize(cfg.LogDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
	}

	var tasks []data.Task
	if cfg.SeedFile != "" {
		tasks, err = data.LoadSeedFile(cfg.SeedFile)
	} else {
		tasks, err = data.DefaultSeed()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load seed: %w", err)
	}
	logs.Logger.Infof("Loaded %d seed tasks", len(tasks))

	return &session{cfg: cfg, tasks: tasks}, nil
}

func runTUI(out io.Writer, flags config.CLIFlags, date string) error {
	filterDate, err := filter.ParseDate(date)
	if err != nil {
		return err
	}

	s, err := openSession(flags)
	if err != nil {
		return err
	}
	defer logs.Close()

	dayLoc, err := s.cfg.DayLocation()
	if err != nil {
		return err
	}
	mem, err := location.NewMemory(s.cfg.InitialURL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}

	queue := notify.NewQueue()
	notifier := notify.Multi{queue, notify.LogNotifier{}}
	st := store.New(s.tasks, notifier)

	logs.Logger.Info("Starting app in TUI mode")
	app := tui.NewAppModel(st, tui.Options{
		Location:      mem,
		Queue:         queue,
		Notifier:      notifier,
		DayLocation:   dayLoc,
		DateFilter:    filterDate,
		ToastDuration: s.cfg.ToastDuration(),
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	if m, ok := final.(tui.AppModel); ok {
		fmt.Fprintln(out, m.CurrentLocation())
	}
	return nil
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tasktrack %s\n", version)
		},
	}
}
