package handler

import (
	"fmt"
	"net/http"

	"github.com/deppfellow/go-customers/internal/server"
	"github.com/labstack/echo/v4"
)

// InfoHandler serves the plain-text home and about pages.
type InfoHandler struct {
	Handler
}

func NewInfoHandler(s *server.Server) *InfoHandler {
	return &InfoHandler{
		Handler: NewHandler(s),
	}
}

// Home reports the port the service was started on.
func (h *InfoHandler) Home(c echo.Context) error {
	return c.String(http.StatusOK, fmt.Sprintf("This is HOME...\nStarted on port:%s", h.server.Config.Server.Port))
}

func (h *InfoHandler) About(c echo.Context) error {
	return c.String(http.StatusOK, "About us...")
}
