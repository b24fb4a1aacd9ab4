package pix

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidPedidoID is returned when the requester identifier is empty
// or not email-shaped after normalization.
var ErrInvalidPedidoID = errors.New("pedido id must be a valid email address")

// UpstreamError carries a non-success partner response so handlers can
// pass the partner's error body through to the caller.
type UpstreamError struct {
	StatusCode int
	Detail     json.RawMessage
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream request failed with status %d", e.StatusCode)
}
