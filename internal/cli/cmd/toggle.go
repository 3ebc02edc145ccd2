package cmd

import (
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/matjam/scalableview/internal/ipc"
	"github.com/matjam/scalableview/internal/types"
	"github.com/spf13/cobra"
)

func NewToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle [x y]",
		Short: "Toggle the zoom, anchored at x y or the viewport center",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return cobra.ExactArgs(2)(cmd, args)
			}
			return cobra.RangeArgs(0, 2)(cmd, args)
		},
		Run: func(cmd *cobra.Command, args []string) {
			var at *types.Vec
			if len(args) == 2 {
				x, err := strconv.ParseFloat(args[0], 64)
				if err != nil {
					log.Fatalf("Bad x coordinate: %v", err)
				}
				y, err := strconv.ParseFloat(args[1], 64)
				if err != nil {
					log.Fatalf("Bad y coordinate: %v", err)
				}
				at = &types.Vec{X: x, Y: y}
			}

			if err := ipc.SendToggle(at); err != nil {
				log.Fatalf("Failed to send 'toggle' command: %v", err)
			}
			log.Info("Toggle command sent")
		},
	}
}
