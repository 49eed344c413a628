package handlers

import (
	"context"
	"log"
	"net/http"

	request "carbody_insurance/internal/adapter/http/dto/request"
	response "carbody_insurance/internal/adapter/http/dto/response"
	"carbody_insurance/internal/domain/entities"
	"carbody_insurance/internal/usecase"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

// ClaimHandler handles claim submission and adjudication.
type ClaimHandler struct {
	usecase usecase.IInsuranceUseCase
}

func NewClaimHandler(uc usecase.IInsuranceUseCase) *ClaimHandler {
	return &ClaimHandler{usecase: uc}
}

// SubmitClaim godoc
// @Summary      Submit a claim
// @Description  Only the holder of an active policy may submit a claim against it.
// @Tags         claims
// @Accept       json
// @Produce      json
// @Param        claim  body      request.ClaimSubmitRequest  true  "Claim"
// @Success      201    {object}  response.ReceiptResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      403    {object}  pkg.HTTPError
// @Failure      404    {object}  pkg.HTTPError
// @Failure      409    {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /claims [post]
func (h *ClaimHandler) SubmitClaim(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var payload request.ClaimSubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[claim][handler] invalid payload caller=%s err=%v", caller.Hex(), err)
		writeError(c, errInvalidRequest)
		return
	}

	receipt, err := h.usecase.SubmitClaim(c.Request.Context(), caller, *payload.PolicyID, *payload.Amount)
	if err != nil {
		writeError(c, mapInsuranceError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromReceipt(receipt))
}

// ApproveClaim godoc
// @Summary      Approve a claim
// @Description  Marks the claim approved and pays its amount from the custodial pool to the policy holder.
// @Tags         claims
// @Produce      json
// @Param        id   path      int  true  "Claim ID"
// @Success      200  {object}  response.ReceiptResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /claims/{id}/approve [patch]
func (h *ClaimHandler) ApproveClaim(c *gin.Context) {
	h.adjudicate(c, h.usecase.ApproveClaim)
}

// RejectClaim godoc
// @Summary      Reject a claim
// @Description  Clears the approval flag. Payouts already made are not reversed.
// @Tags         claims
// @Produce      json
// @Param        id   path      int  true  "Claim ID"
// @Success      200  {object}  response.ReceiptResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /claims/{id}/reject [patch]
func (h *ClaimHandler) RejectClaim(c *gin.Context) {
	h.adjudicate(c, h.usecase.RejectClaim)
}

func (h *ClaimHandler) adjudicate(
	c *gin.Context,
	decide func(ctx context.Context, caller common.Address, claimID uint64) (entities.Receipt, error),
) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	id, err := request.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	receipt, err := decide(c.Request.Context(), caller, id)
	if err != nil {
		writeError(c, mapInsuranceError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromReceipt(receipt))
}

// GetClaim godoc
// @Summary      Get a claim
// @Tags         claims
// @Produce      json
// @Param        id   path      int  true  "Claim ID"
// @Success      200  {object}  response.ClaimResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /claims/{id} [get]
func (h *ClaimHandler) GetClaim(c *gin.Context) {
	id, err := request.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	claim, err := h.usecase.GetClaim(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapInsuranceError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromClaim(claim))
}
