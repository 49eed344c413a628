package request

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrInvalidID      = errors.New("invalid id")
	ErrInvalidAddress = errors.New("invalid holder address")
)

// ClaimSubmitRequest is the payload for POST /v1/claims.
type ClaimSubmitRequest struct {
	PolicyID *uint64 `json:"policy_id" binding:"required"`
	Amount   *uint64 `json:"amount" binding:"required"`
}

// ParseID parses a ledger id path parameter.
func ParseID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}

// ParseAddress parses a 0x-prefixed hex holder address.
func ParseAddress(raw string) (common.Address, error) {
	v := strings.TrimSpace(raw)
	if !common.IsHexAddress(v) {
		return common.Address{}, ErrInvalidAddress
	}
	return common.HexToAddress(v), nil
}
