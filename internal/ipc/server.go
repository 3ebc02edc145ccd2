package ipc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/matjam/scalableview/internal/middleware"
)

var logger = log.WithPrefix("ipc")

// SocketPath is the control socket location: $XDG_RUNTIME_DIR, or the
// temp dir when that is unset.
func SocketPath() string {
	sockDir := os.Getenv("XDG_RUNTIME_DIR")
	if sockDir == "" {
		sockDir = os.TempDir()
	}
	return filepath.Join(sockDir, "scalableview.sock")
}

type Server struct {
	e    *echo.Echo
	path string
}

func NewServer(v ViewerInterface) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.CharmLog())
	RegisterRoutes(e, v)
	return &Server{e: e, path: SocketPath()}
}

// Start listens on the control socket and serves until Shutdown. A stale
// socket file left by a previous run is replaced.
func (s *Server) Start() error {
	if _, err := os.Stat(s.path); err == nil {
		_ = os.Remove(s.path)
	}

	listener, err := net.Listen("unix", s.path)
	if err != nil {
		return fmt.Errorf("listen on %v: %w", s.path, err)
	}
	s.e.Listener = listener
	logger.Info("Control socket listening", "path", s.path)

	if err := s.e.StartServer(s.e.Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("socket server error: %w", err)
	}
	return nil
}

// Shutdown stops the server and removes the socket file.
func (s *Server) Shutdown(ctx context.Context) error {
	defer os.Remove(s.path)
	return s.e.Shutdown(ctx)
}
