package usecase

import (
	"github.com/Davidepaula1212/pix-inter-backend/internal/pkg/models"
	"github.com/Davidepaula1212/pix-inter-backend/services/pix"
)

// PixUC implements the pix.PixUseCase interface
type PixUC struct {
	cfg  *models.Config
	repo pix.OrderRepo
	gw   pix.InterGateway
}

// NewPixUC creates a new PIX use case
func NewPixUC(cfg *models.Config, repo pix.OrderRepo, gw pix.InterGateway) *PixUC {
	return &PixUC{
		cfg:  cfg,
		repo: repo,
		gw:   gw,
	}
}
