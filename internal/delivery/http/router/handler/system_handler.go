package handler

import (
	"net/http"

	"contactbook/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

type healthResponse struct {
	Status string `json:"status"`
}

// Home handles GET / with a plain greeting.
func Home(c echo.Context) error {
	return c.String(http.StatusOK, response.MsgHomepage)
}

// HealthCheck handles GET /health.
func HealthCheck(c echo.Context) error {
	return response.OK(c, healthResponse{Status: "ok"})
}
