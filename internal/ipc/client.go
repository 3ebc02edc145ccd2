package ipc

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/matjam/scalableview/internal/types"
	"resty.dev/v3"
)

func newClient() *resty.Client {
	path := SocketPath()
	client := resty.NewWithClient(&http.Client{
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, "unix", path)
			},
		},
	})

	client.SetBaseURL("http://scalableview")
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("Accept", "application/json")
	client.SetHeader("User-Agent", "scalableview")
	return client
}

func SendStatus() (*StatusResponse, error) {
	result := StatusResponse{}
	response, err := newClient().R().SetResult(&result).Get("/status")
	if err != nil {
		return nil, err
	}
	if response.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("error requesting status: %s", response.Status())
	}
	return &result, nil
}

// SendToggle toggles the zoom anchored at at, or at the viewport center when
// at is nil.
func SendToggle(at *types.Vec) error {
	req := ToggleRequest{}
	if at != nil {
		req.X, req.Y = &at.X, &at.Y
	}
	return post("/toggle", req)
}

func SendReset() error { return post("/reset", nil) }

func SendStop() error { return post("/stop", nil) }

func post(path string, body any) error {
	result := Response{}
	r := newClient().R().SetResult(&result)
	if body != nil {
		r.SetBody(body)
	}

	response, err := r.Post(path)
	if err != nil {
		return err
	}
	if response.StatusCode() != http.StatusOK {
		return fmt.Errorf("error sending %v: %s: %s", path, response.Status(), response.String())
	}
	return nil
}
