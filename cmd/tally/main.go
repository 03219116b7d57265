package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tally/internal/bootstrap"
	exportdto "tally/internal/modules/export/dto"
	reportdto "tally/internal/modules/report/dto"
	"tally/internal/platform/config"
	"tally/internal/platform/timefmt"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataPath string

	root := &cobra.Command{
		Use:           "tally",
		Short:         "Task time and earnings tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataPath, "data", defaultDataPath(), "data directory")

	root.AddCommand(newTrackCmd(&dataPath))
	root.AddCommand(newSetPriceCmd(&dataPath))
	root.AddCommand(newTasksCmd(&dataPath))
	root.AddCommand(newStatsCmd(&dataPath))
	root.AddCommand(newHistoryCmd(&dataPath))
	root.AddCommand(newRemoveCmd(&dataPath))
	root.AddCommand(newExportCmd(&dataPath))
	root.AddCommand(newExportersCmd(&dataPath))
	return root
}

func defaultDataPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home + "/.tally"
	}
	return "."
}

func loadApp(dataPath string) (*bootstrap.App, error) {
	cfg, err := config.Load(dataPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTrackCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "track",
		Short: "Run the interactive tracker",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			return bootstrap.RunTracker(app)
		},
	}
}

func newSetPriceCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "set-price <task> <price>",
		Short: "Create a task or update its per-unit price",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := strconv.ParseFloat(args[len(args)-1], 64)
			if err != nil {
				return fmt.Errorf("invalid price: %s", args[len(args)-1])
			}
			name := strings.Join(args[:len(args)-1], " ")
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.CatalogCLI.SetPrice(context.Background(), name, price)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s pays %.2f per unit\n", out.Name, out.Price)
			return nil
		},
	}
}

func newTasksCmd(dataPath *string) *cobra.Command {
	tasks := &cobra.Command{Use: "tasks", Short: "Task catalog commands"}

	tasks.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List tasks and prices",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.CatalogCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(out) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no tasks")
				return nil
			}
			for _, task := range out {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.2f\n", task.Name, task.Price)
			}
			return nil
		},
	})

	tasks.AddCommand(&cobra.Command{
		Use:   "remove <task>",
		Short: "Remove a task (recorded sessions are kept)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			if err := app.CatalogCLI.Remove(context.Background(), name); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", name)
			return nil
		},
	})
	return tasks
}

func newStatsCmd(dataPath *string) *cobra.Command {
	stats := &cobra.Command{Use: "stats", Short: "Aggregated reports"}

	day := &cobra.Command{
		Use:   "day [YYYY-MM-DD]",
		Short: "Report a calendar day (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			label := ""
			if len(args) == 1 {
				label = args[0]
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.ReportCLI.Day(context.Background(), label)
			if err != nil {
				return err
			}
			printSummary(cmd, out)
			return nil
		},
	}

	month := &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Report a calendar month (default this month)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			label := ""
			if len(args) == 1 {
				label = args[0]
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.ReportCLI.Month(context.Background(), label)
			if err != nil {
				return err
			}
			printSummary(cmd, out)
			return nil
		},
	}

	stats.AddCommand(day, month)
	return stats
}

func printSummary(cmd *cobra.Command, summary reportdto.SummaryOutput) {
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), summary.Label)
	if summary.Empty {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "  no sessions")
		return
	}
	for _, group := range summary.PerTask {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %-20s %3d  %s  %8.2f  %6.2f/h\n",
			group.Task, group.Count, timefmt.Clock(group.Duration), group.Earned, group.HourlyRate)
	}
	total := summary.Total
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %-20s %3d  %s  %8.2f  %6.2f/h\n",
		"total", total.Count, timefmt.Clock(total.Duration), total.Earned, total.HourlyRate)
}

func newHistoryCmd(dataPath *string) *cobra.Command {
	var limit int
	history := &cobra.Command{
		Use:   "history",
		Short: "List recorded sessions, oldest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			sessions, err := app.ReportCLI.History(context.Background(), limit)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions")
				return nil
			}
			for _, s := range sessions {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "#%d\t%s\t%s\t%s\t%d × %.2f = %.2f\n",
					s.ID,
					s.StartedAt.In(app.Config.Location).Format("2006-01-02 15:04"),
					s.Task,
					timefmt.Clock(s.Duration),
					s.Count, s.Price, s.Earned)
			}
			return nil
		},
	}
	history.Flags().IntVar(&limit, "limit", 0, "keep only the most recent N sessions (0 = all)")
	return history
}

func newRemoveCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <session-id>",
		Short: "Delete a recorded session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid session id: %s", args[0])
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			if err := app.ReportCLI.Remove(context.Background(), id); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed session #%d\n", id)
			return nil
		},
	}
}

func newExportCmd(dataPath *string) *cobra.Command {
	var format, label string
	var limit int
	export := &cobra.Command{
		Use:   "export <exporter> <day|month|history>",
		Short: "Render a report through an exporter plugin",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.ExportCLI.Export(context.Background(), exportdto.ExportInput{
				Exporter: args[0],
				Format:   format,
				Kind:     args[1],
				Label:    label,
				Limit:    limit,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Output)
			return nil
		},
	}
	export.Flags().StringVar(&format, "format", "csv", "output format the exporter must support")
	export.Flags().StringVar(&label, "label", "", "bucket label (YYYY-MM-DD or YYYY-MM, default current)")
	export.Flags().IntVar(&limit, "limit", 0, "history: keep only the most recent N sessions (0 = all)")
	return export
}

func newExportersCmd(dataPath *string) *cobra.Command {
	exporters := &cobra.Command{Use: "exporters", Short: "Exporter plugin management"}

	exporters.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List configured exporters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.ExportCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(out) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no exporters configured")
				return nil
			}
			for _, e := range out {
				state := "disabled"
				if e.Enabled {
					state = "enabled"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\n",
					e.Name, e.Version, state, strings.Join(e.Formats, ","), e.Binary)
			}
			return nil
		},
	})

	exporters.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Check exporter binaries, checksums, and lifecycle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			results, err := app.ExportCLI.Doctor(context.Background())
			if err != nil {
				return err
			}
			if len(results) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no exporters configured")
				return nil
			}
			for _, r := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tbinary=%t\tchecksum=%t\tlifecycle=%t\t%s\n",
					r.Name, r.BinaryReachable, r.ChecksumValid, r.LifecycleOK, r.Error)
			}
			return nil
		},
	})
	return exporters
}
