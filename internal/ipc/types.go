package ipc

import "github.com/matjam/scalableview/internal/viewer"

// ViewerInterface is the part of viewer.Viewer the socket server drives.
type ViewerInterface interface {
	Status() viewer.Status
	Enqueue(viewer.Command)
}

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type StatusResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Version string        `json:"version"`
	PID     int           `json:"pid"`
	Socket  string        `json:"socket"`
	Config  string        `json:"config"`
	View    viewer.Status `json:"view"`
}

// ToggleRequest anchors a toggle. X and Y must be given together; without
// them the viewport center is used.
type ToggleRequest struct {
	X *float64 `json:"x,omitempty"`
	Y *float64 `json:"y,omitempty"`
}
