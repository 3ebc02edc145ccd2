package cmd

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	"github.com/matjam/scalableview/internal/cli/cmd/utils"
	"github.com/matjam/scalableview/internal/config"
	"github.com/matjam/scalableview/internal/imageload"
	"github.com/matjam/scalableview/internal/viewer"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewSnapshotCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "snapshot [image]",
		Short: "Replay a pointer event script headlessly and save the result",
		Long: `Renders the image into an off-screen viewport, plays back a JSON event
script against a simulated clock and writes the settled frame as a PNG.

A script looks like:

  {"events": [
    {"t": 0,   "kind": "press",   "x": 200, "y": 400},
    {"t": 50,  "kind": "release", "x": 200, "y": 400},
    {"t": 150, "kind": "press",   "x": 200, "y": 400},
    {"t": 200, "kind": "release", "x": 200, "y": 400}
  ]}

Kinds are press, move, release, cancel and resize (with "w" and "h").
Times are milliseconds from the start of the replay.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sizeFlag, _ := cmd.Flags().GetString("size")
			scriptPath, _ := cmd.Flags().GetString("script")
			out, _ := cmd.Flags().GetString("out")
			framesDir, _ := cmd.Flags().GetString("frames")

			size, err := utils.ParseSize(sizeFlag)
			if err != nil {
				return err
			}
			cfg, err := config.Load(viper.GetViper())
			if err != nil {
				return err
			}
			img, err := imageload.Load(utils.CanonicalPath(args[0]), cfg.ImageSize)
			if err != nil {
				return err
			}

			script := &viewer.Script{}
			if scriptPath != "" {
				f, err := os.Open(utils.CanonicalPath(scriptPath))
				if err != nil {
					return err
				}
				script, err = viewer.ParseScript(f)
				f.Close()
				if err != nil {
					return err
				}
			}

			clock := clockwork.NewFakeClock()
			display := viewer.NewScriptDisplay(script, size, clock)
			if framesDir != "" {
				if err := os.MkdirAll(framesDir, 0755); err != nil {
					return err
				}
				display.OnPresent = func(frame int, img *image.RGBA) error {
					return utils.WritePNG(filepath.Join(framesDir, fmt.Sprintf("frame-%04d.png", frame)), img)
				}
			}

			v, err := viewer.New(img, display, cfg, clock)
			if err != nil {
				return err
			}
			if err := v.Replay(display, clock); err != nil {
				return err
			}
			if err := utils.WritePNG(out, display.Image()); err != nil {
				return err
			}

			log.Infof("Wrote %v", out)
			utils.PrintJSONColored(v.Status())
			return nil
		},
	}
	c.Flags().String("size", "800x800", "Viewport size as WIDTHxHEIGHT")
	c.Flags().String("script", "", "JSON pointer event script to replay")
	c.Flags().StringP("out", "o", "snapshot.png", "Output PNG for the final frame")
	c.Flags().String("frames", "", "Directory to also write every drawn frame to")
	return c
}
