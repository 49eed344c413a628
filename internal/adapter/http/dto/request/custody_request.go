package request

import "encoding/json"

// CustodyFundRequest is the payload for POST /v1/custody/deposits.
//
// `mp_payload` is forwarded to Mercado Pago; amount and reference are
// overwritten by the server.
type CustodyFundRequest struct {
	Amount    uint64          `json:"amount" binding:"required"`
	MPPayload json.RawMessage `json:"mp_payload"`
}
