package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Davidepaula1212/pix-inter-backend/services/pix"
)

// PixHandler exposes the PIX charge lifecycle over HTTP
type PixHandler struct {
	pixUC pix.PixUseCase
}

// NewPixHandler creates a new PIX HTTP handler
func NewPixHandler(pixUC pix.PixUseCase) *PixHandler {
	return &PixHandler{
		pixUC: pixUC,
	}
}

// RegisterRoutes registers the PIX routes on the given echo instance
func (h *PixHandler) RegisterRoutes(e *echo.Echo) {
	grp := e.Group("/pix")
	grp.POST("/criar", h.CreateCharge)
	grp.POST("/webhook", h.HandleWebhook)
	grp.GET("/status", h.GetStatus)
}
