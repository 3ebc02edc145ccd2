package ipc

import (
	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, v ViewerInterface) {
	e.GET("/status", statusHandler(v))
	e.POST("/toggle", toggleHandler(v))
	e.POST("/reset", resetHandler(v))
	e.POST("/stop", stopHandler(v))
}
