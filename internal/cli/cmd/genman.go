package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/matjam/scalableview"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// NewGenManCmd returns a cobra command that writes a man page for every
// command under rootCmd.
func NewGenManCmd(rootCmd *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "genman [output-dir]",
		Short: "Generate man pages for the scalableview CLI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := filepath.Clean(args[0])
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("create %v: %w", dir, err)
			}
			header := &doc.GenManHeader{
				Title:   "SCALABLEVIEW",
				Section: "1",
				Source:  "scalableview " + strings.TrimSpace(scalableview.Version),
				Manual:  "Scalableview Manual",
			}
			if err := doc.GenManTree(rootCmd, header, dir); err != nil {
				return err
			}
			log.Infof("Wrote man pages to %v", dir)
			return nil
		},
	}
}
