package ipc

import (
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/matjam/scalableview"
	"github.com/matjam/scalableview/internal/types"
	"github.com/matjam/scalableview/internal/viewer"
	"github.com/spf13/viper"
)

// GET /status
func statusHandler(v ViewerInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSONPretty(http.StatusOK, StatusResponse{
			Status:  "ok",
			Message: "scalableview is running",
			Version: strings.Trim(scalableview.Version, "\n\r "),
			PID:     os.Getpid(),
			Socket:  SocketPath(),
			Config:  viper.ConfigFileUsed(),
			View:    v.Status(),
		}, "  ")
	}
}

// POST /toggle
func toggleHandler(v ViewerInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req ToggleRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, Response{Status: "error", Message: "invalid JSON toggle request"})
		}
		if (req.X == nil) != (req.Y == nil) {
			return c.JSON(http.StatusBadRequest, Response{Status: "error", Message: "x and y must be given together"})
		}

		cmd := viewer.Command{Type: viewer.CommandToggle}
		if req.X != nil {
			cmd.At = &types.Vec{X: *req.X, Y: *req.Y}
		}
		v.Enqueue(cmd)
		return c.JSON(http.StatusOK, Response{Status: "ok"})
	}
}

// POST /reset
func resetHandler(v ViewerInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		v.Enqueue(viewer.Command{Type: viewer.CommandReset})
		return c.JSON(http.StatusOK, Response{Status: "ok"})
	}
}

// POST /stop
func stopHandler(v ViewerInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		v.Enqueue(viewer.Command{Type: viewer.CommandStop})
		return c.JSON(http.StatusOK, Response{Status: "ok"})
	}
}
