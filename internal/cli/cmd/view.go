package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/matjam/scalableview/internal/cli/cmd/utils"
	"github.com/matjam/scalableview/internal/config"
	"github.com/matjam/scalableview/internal/glrender"
	"github.com/matjam/scalableview/internal/imageload"
	"github.com/matjam/scalableview/internal/ipc"
	"github.com/matjam/scalableview/internal/viewer"
	"github.com/sevlyar/go-daemon"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewViewCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "view [image]",
		Short: "Open an image in a zoomable window",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			path, err := filepath.Abs(utils.CanonicalPath(args[0]))
			if err != nil {
				log.Fatalf("Bad image path: %v", err)
			}

			if background, _ := cmd.Flags().GetBool("background"); background {
				daemonize(path)
				return
			}
			RunViewer(path)
		},
	}
	c.Flags().BoolP("background", "b", false, "Run as a daemon")
	return c
}

// daemonize re-executes the current command detached from the terminal. The
// parent returns once the child is started; the child runs the viewer.
func daemonize(path string) {
	if err := os.MkdirAll(utils.DataDir(), 0755); err != nil {
		log.Fatalf("Error creating data directory: %v", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("Error reading working directory: %v", err)
	}

	ctx := &daemon.Context{
		PidFileName: filepath.Join(utils.DataDir(), "scalableview.pid"),
		PidFilePerm: 0644,
		WorkDir:     wd,
		Umask:       027,
		Env:         append(os.Environ(), "BACKGROUND_PROCESS=1"),
	}

	child, err := ctx.Reborn()
	if err != nil {
		log.Fatalf("Failed to start in background: %v", err)
	}
	if child != nil {
		log.Infof("scalableview started in background with PID %d", child.Pid)
		return
	}
	defer ctx.Release()

	RunViewer(path)
}

func RunViewer(path string) {
	log.Infof("RunViewer() started in PID: %d", os.Getpid())

	if os.Getenv("BACKGROUND_PROCESS") == "1" {
		setupRotatingLogger()
	}

	if _, err := ipc.SendStatus(); err == nil {
		log.Infof("scalableview is already running, exiting")
		os.Exit(0)
	}

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Bad configuration: %v", err)
	}

	img, err := imageload.Load(path, cfg.ImageSize)
	if err != nil {
		log.Fatalf("Failed to load image: %v", err)
	}

	clock := clockwork.NewRealClock()
	window, err := glrender.NewWindow("scalableview - "+filepath.Base(path), cfg.WindowWidth, cfg.WindowHeight, clock)
	if err != nil {
		log.Fatalf("Failed to open window: %v", err)
	}

	v, err := viewer.New(img, window, cfg, clock)
	if err != nil {
		window.Cleanup()
		log.Fatalf("Failed to create viewer: %v", err)
	}

	server := ipc.NewServer(v)
	go func() {
		log.Infof("Starting socket server")
		if err := server.Start(); err != nil {
			log.Errorf("Socket server failed: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := v.Run(ctx); err != nil {
		log.Infof("Viewer interrupted: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Socket server shutdown failed: %v", err)
	}
	log.Infof("scalableview exited")
}

func setupRotatingLogger() {
	logDir := utils.DataDir()
	logPath := filepath.Join(logDir, "scalableview.log")

	writer, err := rotatelogs.New(
		logPath+".%Y%m%d%H%M",
		rotatelogs.WithLinkName(logPath),
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationSize(10*1024*1024),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		log.Fatalf("failed to configure log rotation: %v", err)
	}

	log.SetOutput(writer)
	if !viper.GetBool("debug") {
		log.SetLevel(log.InfoLevel)
	}
}
