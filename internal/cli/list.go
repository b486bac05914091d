package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tasktrack/internal/config"
	"tasktrack/internal/location"
	"tasktrack/internal/logs"
	"tasktrack/internal/tasks/data"
	"tasktrack/internal/tasks/filter"
)

const listTimeLayout = "2006-01-02 15:04"

type listOptions struct {
	url        string
	search     string
	date       string
	allDetails bool
}

func newListCmd(g *globalFlags) *cobra.Command {
	opts := &listOptions{}
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "Print the tasks visible for a location and date",
		Example: `  tasktrack list
  tasktrack list --search milk
  tasktrack list --url "/?search=report" --date 2024-07-02 --all-details`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := g.cliFlags()
			flags.InitialURL = opts.url
			return runList(cmd.OutOrStdout(), flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.url, "url", "", "Location to read the search text from")
	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "Search text (overrides the one in --url)")
	cmd.Flags().StringVarP(&opts.date, "date", "d", "", "Only tasks last updated on this day (yyyy-MM-dd)")
	cmd.Flags().BoolVarP(&opts.allDetails, "all-details", "a", false, "Also print descriptions")
	return cmd
}

func runList(out io.Writer, flags config.CLIFlags, opts *listOptions) error {
	filterDate, err := filter.ParseDate(opts.date)
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
	query := location.NewQuerySync(mem, location.SearchParam)
	if opts.search != "" {
		if err := query.SetSearch(opts.search); err != nil {
			return err
		}
	}

	tasks := filter.VisibleIn(s.tasks, query.Search(), filterDate, dayLoc)
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks found.")
		return nil
	}

	for _, t := range tasks {
		printTask(out, t, dayLoc, opts.allDetails)
	}

	_, done := data.CountCompleted(tasks)
	fmt.Fprintf(out, "\n%d task(s), %d done\n", len(tasks), done)
	return nil
}

func printTask(out io.Writer, t data.Task, loc *time.Location, details bool) {
	status := " "
	if t.Completed {
		status = "x"
	}

	fmt.Fprintf(out, "[%d] %s %s  (%s)\n", t.ID, status, t.Title, t.LastUpdated.In(loc).Format(listTimeLayout))

	if details {
		for _, line := range strings.Split(data.PlainText(t.Description), "\n") {
			if line == "" {
				continue
			}
			fmt.Fprintf(out, "        %s\n", line)
		}
	}
}
