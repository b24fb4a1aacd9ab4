// Package inter is the HTTP client for Banco Inter's OAuth and PIX
// charge (cob) APIs. All calls go through the mutual-TLS client built
// at startup from the materialized certificate pair.
package inter

import (
	"net/http"
	"time"

	"github.com/Davidepaula1212/pix-inter-backend/internal/pkg/models"
)

// Client is an HTTP client for communicating with Banco Inter
type Client struct {
	cfg        models.InterConfig
	httpClient *http.Client
}

// NewClient creates a new Banco Inter client. The supplied httpClient
// must carry the mutual-TLS transport; a nil client falls back to a
// plain one, which the partner rejects outside sandbox environments.
func NewClient(cfg models.InterConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
	}
}
