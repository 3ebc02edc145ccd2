package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/matjam/scalableview/internal/cli/cmd/utils"
	"github.com/matjam/scalableview/internal/ipc"
	"github.com/spf13/cobra"
)

func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Get scalableview status",
		Long:  `Returns the zoom state of the running scalableview process.`,
		Run: func(cmd *cobra.Command, args []string) {
			response, err := ipc.SendStatus()
			if err != nil {
				log.Errorf("Error sending command: %v", err)
				return
			}

			utils.PrintJSONColored(response)
		},
	}
}
