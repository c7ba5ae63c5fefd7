package cli

import (
	"fmt"

	"trackpace/internal/logger"
	"trackpace/internal/pacing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newConvertCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "convert",
		Short: "Convert between pace (min/km) and speed (km/h)",
	}

	c.AddCommand(newConvertPaceCmd())
	c.AddCommand(newConvertSpeedCmd())
	return c
}

func newConvertPaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "pace M:SS",
		Short:   "Convert a pace in min/km to km/h",
		Example: "  trackpace convert pace 4:30",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, seconds := pacing.ParsePaceText(args[0])
			speed := pacing.PaceToSpeed(minutes, seconds)
			if speed == 0 {
				logger.L().Debug("pace did not convert", zap.String("pace", args[0]))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%.2f km/h\n", speed)
			return nil
		},
	}
}

func newConvertSpeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "speed KMH",
		Short:   "Convert a speed in km/h to min/km",
		Example: "  trackpace convert speed 13.5",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pace := pacing.SpeedToPace(args[0])
			if pace == (pacing.Pace{}) {
				logger.L().Debug("speed did not convert", zap.String("speed", args[0]))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s min/km\n", pace)
			return nil
		},
	}
}
