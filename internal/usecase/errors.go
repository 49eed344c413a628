package usecase

import (
	"errors"

	"carbody_insurance/internal/ledger"
)

var (
	ErrPolicyNotFound       = errors.New("policy not found")
	ErrClaimNotFound        = errors.New("claim not found")
	ErrNotPolicyHolder      = errors.New("only policy holder can submit a claim")
	ErrPolicyInactive       = errors.New("policy is not active")
	ErrClaimExceedsCoverage = errors.New("claim amount exceeds coverage amount")
	ErrTransferFailed       = errors.New("claim payout transfer failed")
	ErrArithmeticOverflow   = ledger.ErrArithmeticOverflow

	ErrInvalidFundingAmount        = errors.New("invalid funding amount")
	ErrInvalidMPPayload            = errors.New("invalid mercado pago payload")
	ErrFundingNotApproved          = errors.New("custody funding payment not approved")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
)

// FailureKind classifies why a transition was rejected.
type FailureKind string

const (
	FailureNotFound     FailureKind = "not_found"
	FailureUnauthorized FailureKind = "unauthorized"
	FailureInvariant    FailureKind = "invariant_violation"
	FailureTransfer     FailureKind = "transfer_failed"
	FailureInvalidInput FailureKind = "invalid_input"
	FailurePayment      FailureKind = "payment_failed"
	FailureInternal     FailureKind = "internal"
)

func KindOf(err error) FailureKind {
	switch {
	case errors.Is(err, ErrPolicyNotFound), errors.Is(err, ErrClaimNotFound):
		return FailureNotFound
	case errors.Is(err, ErrNotPolicyHolder):
		return FailureUnauthorized
	case errors.Is(err, ErrPolicyInactive), errors.Is(err, ErrClaimExceedsCoverage), errors.Is(err, ErrArithmeticOverflow):
		return FailureInvariant
	case errors.Is(err, ErrTransferFailed):
		return FailureTransfer
	case errors.Is(err, ErrInvalidFundingAmount), errors.Is(err, ErrInvalidMPPayload):
		return FailureInvalidInput
	case errors.Is(err, ErrFundingNotApproved), errors.Is(err, ErrPaymentGatewayNotConfigured):
		return FailurePayment
	default:
		return FailureInternal
	}
}
