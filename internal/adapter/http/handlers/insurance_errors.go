package handlers

import (
	"errors"
	"net/http"

	"carbody_insurance/internal/adapter/http/middleware"
	"carbody_insurance/internal/ledger"
	"carbody_insurance/internal/usecase"
	"carbody_insurance/pkg"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errMissingCaller  = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or invalid caller identity", http.StatusUnauthorized)
)

func mapInsuranceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPolicyNotFound):
		return pkg.NewDomainErrorSimple("POLICY_NOT_FOUND", "Policy not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClaimNotFound):
		return pkg.NewDomainErrorSimple("CLAIM_NOT_FOUND", "Claim not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotPolicyHolder):
		return pkg.NewDomainErrorSimple("NOT_POLICY_HOLDER", "Only policy holder can submit a claim", http.StatusForbidden)
	case errors.Is(err, usecase.ErrPolicyInactive):
		return pkg.NewDomainErrorSimple("POLICY_INACTIVE", "Policy is not active", http.StatusConflict)
	case errors.Is(err, usecase.ErrClaimExceedsCoverage):
		return pkg.NewDomainErrorSimple("CLAIM_EXCEEDS_COVERAGE", "Claim amount exceeds coverage amount", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrArithmeticOverflow):
		return pkg.NewDomainErrorSimple("ARITHMETIC_OVERFLOW", "Operation would overflow a ledger balance", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrTransferFailed):
		return pkg.NewDomainError("TRANSFER_FAILED", "Claim payout could not be transferred", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidFundingAmount), errors.Is(err, usecase.ErrInvalidMPPayload):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrFundingNotApproved):
		return pkg.NewDomainError("FUNDING_NOT_APPROVED", "Custody funding payment was not approved", err, http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, ledger.ErrStaleChangeSet):
		return pkg.NewDomainError("LEDGER_CONFLICT", "Ledger was updated by another writer and has been reloaded, retry", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// callerOrAbort returns the caller set by the auth middleware or writes 401.
func callerOrAbort(c *gin.Context) (common.Address, bool) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		writeError(c, errMissingCaller)
		return common.Address{}, false
	}
	return caller, true
}
