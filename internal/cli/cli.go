// Package cli implements the lawnctl command line interface over the planner service.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mamadbah2/lawncare/internal/timing"
)

const dateLayout = "2006-01-02"

// Planner is the subset of the planner service used by the CLI.
type Planner interface {
	Now() time.Time
	ResolveRegion(raw string) (timing.Region, error)
	TimingWindow(activity, region string) (timing.TimingWindow, error)
	Conditions(region string, month int, tempF float64) ([]timing.Assessment, error)
	NextWindow(activity, region string, from time.Time) (timing.NextWindow, error)
	NextWindows(region string, from time.Time) ([]timing.NextWindow, error)
	MonthlySchedule(region string) (timing.Schedule, error)
	ActivitiesForMonth(region string, month int) ([]timing.TimingWindow, error)
}

var (
	heading = color.New(color.FgCyan, color.Bold)
	good    = color.New(color.FgGreen)
	warn    = color.New(color.FgYellow)
	bad     = color.New(color.FgRed)
	muted   = color.New(color.FgHiBlack)
)

type app struct {
	svc     Planner
	region  string
	noColor bool
}

// NewRootCommand builds the lawnctl command tree.
func NewRootCommand(svc Planner) *cobra.Command {
	a := &app{svc: svc}

	root := &cobra.Command{
		Use:   "lawnctl",
		Short: "Lawn care timing calculator",
		Long:  "lawnctl reports the best windows for lawn care activities by region.",
		Example: `  lawnctl window seeding --region northern
  lawnctl schedule
  lawnctl check --month 5 --temp 70
  lawnctl next fertilizing`,
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if a.noColor {
				color.NoColor = true
			}
		},
		Args: cobra.NoArgs,
		RunE: a.overview,
	}

	root.PersistentFlags().StringVarP(&a.region, "region", "r", "", "geographic region: northern, central or southern (default DEFAULT_REGION, central)")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		a.windowCommand(),
		a.checkCommand(),
		a.nextCommand(),
		a.scheduleCommand(),
		a.monthCommand(),
	)
	return root
}

func (a *app) banner(w io.Writer) (timing.Region, error) {
	region, err := a.svc.ResolveRegion(a.region)
	if err != nil {
		return 0, err
	}
	title := fmt.Sprintf("Lawn Care Calculator - %s Region", region.Title())
	heading.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", len(title)))
	return region, nil
}

func (a *app) overview(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	region, err := a.banner(w)
	if err != nil {
		return err
	}

	now := a.svc.Now()
	fmt.Fprintf(w, "Current date: %s\n\n", now.Format(dateLayout))

	heading.Fprintf(w, "Activities for %s:\n", now.Month())
	windows, err := a.svc.ActivitiesForMonth(region.String(), int(now.Month()))
	if err != nil {
		return err
	}
	if len(windows) == 0 {
		muted.Fprintln(w, "  No activities scheduled this month.")
	}
	for _, window := range windows {
		fmt.Fprintf(w, "  • %s (%s)\n", window.Activity.Title(), window.Temperature)
	}

	upcoming, err := a.svc.NextWindows(region.String(), now)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	heading.Fprintln(w, "Upcoming windows:")
	for _, next := range upcoming[:min(3, len(upcoming))] {
		fmt.Fprintf(w, "  • %s starts %s (in %d days)\n", next.Activity.Title(), next.Start.Format(dateLayout), next.DaysUntilStart)
	}
	return nil
}

func (a *app) windowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "window <activity>",
		Short: "Show the timing window of an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			region, err := a.banner(w)
			if err != nil {
				return err
			}

			window, err := a.svc.TimingWindow(args[0], region.String())
			if err != nil {
				return err
			}
			next, err := a.svc.NextWindow(args[0], region.String(), a.svc.Now())
			if err != nil {
				return err
			}

			heading.Fprintf(w, "\n%s Information:\n", window.Activity.Title())
			fmt.Fprintf(w, "Optimal months:    %s\n", window.Months)
			fmt.Fprintf(w, "Temperature range: %s\n", window.Temperature)
			fmt.Fprintf(w, "Category:          %s\n", window.Category)
			fmt.Fprintf(w, "Description:       %s\n", window.Description)
			fmt.Fprintln(w)
			printNext(w, next)
			return nil
		},
	}
}

func (a *app) checkCommand() *cobra.Command {
	var (
		month int
		temp  float64
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check which activities are optimal for a month and temperature",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			region, err := a.banner(w)
			if err != nil {
				return err
			}

			assessments, err := a.svc.Conditions(region.String(), month, temp)
			if err != nil {
				return err
			}

			heading.Fprintf(w, "\nActivities for %s at %g°F:\n", time.Month(month), temp)
			optimal := 0
			for _, assessment := range assessments {
				name := assessment.Window.Activity.Title()
				switch assessment.Status {
				case timing.StatusOptimal:
					optimal++
					good.Fprintf(w, "✅ %s\n", name)
				case timing.StatusSuboptimal:
					warn.Fprintf(w, "⚠️  %s - %s\n", name, reason(assessment))
				default:
					bad.Fprintf(w, "❌ %s - %s\n", name, reason(assessment))
				}
			}
			if optimal == 0 {
				muted.Fprintln(w, "No activities are optimal for these conditions.")
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&month, "month", "m", 0, "month number (1-12)")
	cmd.Flags().Float64VarP(&temp, "temp", "t", 0, "temperature in Fahrenheit")
	_ = cmd.MarkFlagRequired("month")
	_ = cmd.MarkFlagRequired("temp")
	return cmd
}

func reason(a timing.Assessment) string {
	switch {
	case !a.MonthOK && !a.TemperatureOK:
		return fmt.Sprintf("wrong month (%s) and temperature (%s)", a.Window.Months, a.Window.Temperature)
	case !a.MonthOK:
		return fmt.Sprintf("wrong month (optimal: %s)", a.Window.Months)
	default:
		return fmt.Sprintf("wrong temperature (optimal: %s)", a.Window.Temperature)
	}
}

func (a *app) nextCommand() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "next <activity>",
		Short: "Show the next optimal window for an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			region, err := a.banner(w)
			if err != nil {
				return err
			}

			start := a.svc.Now()
			if from != "" {
				start, err = time.ParseInLocation(dateLayout, from, start.Location())
				if err != nil {
					return fmt.Errorf("--from must be formatted YYYY-MM-DD: %w", err)
				}
			}

			next, err := a.svc.NextWindow(args[0], region.String(), start)
			if err != nil {
				return err
			}
			fmt.Fprintln(w)
			printNext(w, next)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "search from this date (YYYY-MM-DD) instead of today")
	return cmd
}

func printNext(w io.Writer, next timing.NextWindow) {
	heading.Fprintf(w, "Next %s Window:\n", next.Activity.Title())
	fmt.Fprintf(w, "Start:               %s\n", next.Start.Format(dateLayout))
	fmt.Fprintf(w, "End:                 %s\n", next.End.Format(dateLayout))
	fmt.Fprintf(w, "Days until:          %d\n", next.DaysUntilStart)
	fmt.Fprintf(w, "Duration:            %d days\n", next.LengthDays)
	fmt.Fprintf(w, "Optimal temperature: %s\n", next.Temperature)
	fmt.Fprintf(w, "Notes:               %s\n", next.Description)
}

func (a *app) scheduleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Show the full yearly schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			region, err := a.banner(w)
			if err != nil {
				return err
			}

			schedule, err := a.svc.MonthlySchedule(region.String())
			if err != nil {
				return err
			}

			for month := time.January; month <= time.December; month++ {
				heading.Fprintf(w, "\n%s:\n", month)
				activities := schedule[month]
				if len(activities) == 0 {
					muted.Fprintln(w, "  • No scheduled activities")
					continue
				}
				for _, activity := range activities {
					window, err := a.svc.TimingWindow(activity.String(), region.String())
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "  • %s\n", activity.Title())
					muted.Fprintf(w, "    Temp: %s\n", window.Temperature)
				}
			}
			return nil
		},
	}
}

func (a *app) monthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "month <1-12>",
		Short: "Show the activities recommended in a month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", timing.ErrInvalidMonth, args[0])
			}

			w := cmd.OutOrStdout()
			region, err := a.banner(w)
			if err != nil {
				return err
			}

			windows, err := a.svc.ActivitiesForMonth(region.String(), month)
			if err != nil {
				return err
			}

			heading.Fprintf(w, "\nOptimal Activities for %s:\n", time.Month(month))
			if len(windows) == 0 {
				muted.Fprintln(w, "No activities are optimal for this month.")
				return nil
			}
			for _, window := range windows {
				fmt.Fprintf(w, "• %s\n", window.Activity.Title())
				fmt.Fprintf(w, "  Temperature: %s\n", window.Temperature)
				fmt.Fprintf(w, "  Notes: %s\n", window.Description)
			}
			return nil
		},
	}
}
