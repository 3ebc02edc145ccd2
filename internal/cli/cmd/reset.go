package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/matjam/scalableview/internal/ipc"
	"github.com/spf13/cobra"
)

func NewResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Zoom back out to the fitted scale",
		Run: func(cmd *cobra.Command, args []string) {
			if err := ipc.SendReset(); err != nil {
				log.Fatalf("Failed to send 'reset' command: %v", err)
			}
			log.Info("Reset command sent")
		},
	}
}
