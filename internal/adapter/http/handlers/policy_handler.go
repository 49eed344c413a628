package handlers

import (
	"log"
	"net/http"

	request "carbody_insurance/internal/adapter/http/dto/request"
	response "carbody_insurance/internal/adapter/http/dto/response"
	"carbody_insurance/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PolicyHandler handles policy and token balance requests.
type PolicyHandler struct {
	usecase usecase.IInsuranceUseCase
}

func NewPolicyHandler(uc usecase.IInsuranceUseCase) *PolicyHandler {
	return &PolicyHandler{usecase: uc}
}

// CreatePolicy godoc
// @Summary      Create a policy
// @Description  Registers a policy for the caller and credits premium/100 loyalty tokens.
// @Tags         policies
// @Accept       json
// @Produce      json
// @Param        policy  body      request.PolicyCreateRequest  true  "Policy fields"
// @Success      201     {object}  response.ReceiptResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      401     {object}  pkg.HTTPError
// @Failure      422     {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /policies [post]
func (h *PolicyHandler) CreatePolicy(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var payload request.PolicyCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[policy][handler] invalid payload caller=%s err=%v", caller.Hex(), err)
		writeError(c, errInvalidRequest)
		return
	}

	receipt, err := h.usecase.CreatePolicy(c.Request.Context(), caller, payload.ToPolicyInput())
	if err != nil {
		writeError(c, mapInsuranceError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromReceipt(receipt))
}

// GetPolicy godoc
// @Summary      Get a policy
// @Tags         policies
// @Produce      json
// @Param        id   path      int  true  "Policy ID"
// @Success      200  {object}  response.PolicyResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /policies/{id} [get]
func (h *PolicyHandler) GetPolicy(c *gin.Context) {
	id, err := request.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	policy, err := h.usecase.GetPolicy(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapInsuranceError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPolicy(policy))
}

// GetTokenBalance godoc
// @Summary      Get a holder's loyalty token balance
// @Tags         tokens
// @Produce      json
// @Param        address  path      string  true  "Holder address (0x-prefixed hex)"
// @Success      200      {object}  response.TokenBalanceResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /holders/{address}/tokens [get]
func (h *PolicyHandler) GetTokenBalance(c *gin.Context) {
	holder, err := request.ParseAddress(c.Param("address"))
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	balance, err := h.usecase.GetTokenBalance(c.Request.Context(), holder)
	if err != nil {
		writeError(c, mapInsuranceError(err))
		return
	}

	c.JSON(http.StatusOK, response.TokenBalanceResponse{Holder: holder.Hex(), Balance: balance})
}
