package cli

import (
	"fmt"

	"trackpace/internal/pacing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newSplitsCmd(opts *rootOptions) *cobra.Command {
	var speed, pace string

	cmd := &cobra.Command{
		Use:   "splits",
		Short: "Print projected split times for the track distances",
		Example: "  trackpace splits --pace 4:30\n" +
			"  trackpace splits --speed 12",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			in := pacing.Input{Mode: pacing.ModeSpeed, Speed: speed}
			if cmd.Flags().Changed("pace") {
				minutes, seconds := pacing.ParsePaceText(pace)
				in = pacing.Input{Mode: pacing.ModePace, PaceMinutes: minutes, PaceSeconds: seconds}
			}

			calc := pacing.New(cfg.Distances())
			res := calc.Evaluate(in)

			out := cmd.OutOrStdout()
			if !res.Valid {
				fmt.Fprintln(out, "no splits: enter a pace or speed above zero")
				return nil
			}

			fmt.Fprintf(out, "Speed: %.2f km/h  Pace: %s min/km\n", res.SpeedKmh, res.Pace)
			fmt.Fprintln(out, renderSplitTable(calc.Distances(), res.Splits, !cfg.Display.HideDistanceMeters))
			return nil
		},
	}

	cmd.Flags().StringVar(&speed, "speed", "", "speed in km/h")
	cmd.Flags().StringVar(&pace, "pace", "", "pace in min/km as M:SS")
	cmd.MarkFlagsMutuallyExclusive("speed", "pace")
	cmd.MarkFlagsOneRequired("speed", "pace")

	return cmd
}

func renderSplitTable(distances []pacing.Distance, splits []pacing.SplitEntry, showMeters bool) string {
	t := table.New().Border(lipgloss.NormalBorder())
	if showMeters {
		t = t.Headers("Distance", "Meters", "Time")
	} else {
		t = t.Headers("Distance", "Time")
	}

	for i, s := range splits {
		if showMeters {
			t = t.Row(s.Label, humanize.Commaf(distances[i].Meters()), s.Time)
		} else {
			t = t.Row(s.Label, s.Time)
		}
	}
	return t.Render()
}
