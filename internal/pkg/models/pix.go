package models

import "encoding/json"

// Charge is the partner's answer to a charge-creation call: the
// assigned txid plus the raw response body, which callers render
// payment instructions from.
type Charge struct {
	TxID string
	Raw  json.RawMessage
}

// ChargeResult is the outcome of a create-charge request.
// Status paid means an earlier charge for the same pedido id was
// already settled and no new charge was issued; TxID and PixData are
// only populated for pending results.
type ChargeResult struct {
	Status  OrderStatus
	TxID    string
	PixData json.RawMessage
}

// WebhookPayload is the payment notification sent by Banco Inter.
// The txid arrives either nested under pix[0] or as a flat field.
type WebhookPayload struct {
	Pix  []WebhookPix `json:"pix"`
	TxID string       `json:"txid"`
}

// WebhookPix is a single payment entry inside a webhook payload
type WebhookPix struct {
	TxID string `json:"txid"`
}

// TransactionID extracts the txid from the payload, preferring the
// nested form. Returns an empty string when neither is present.
func (p *WebhookPayload) TransactionID() string {
	if len(p.Pix) > 0 && p.Pix[0].TxID != "" {
		return p.Pix[0].TxID
	}
	return p.TxID
}
