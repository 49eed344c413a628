package handlers

import (
	"log"
	"net/http"

	request "carbody_insurance/internal/adapter/http/dto/request"
	response "carbody_insurance/internal/adapter/http/dto/response"
	"carbody_insurance/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CustodyHandler exposes the custodial pool that funds claim payouts.
type CustodyHandler struct {
	usecase usecase.IInsuranceUseCase
}

func NewCustodyHandler(uc usecase.IInsuranceUseCase) *CustodyHandler {
	return &CustodyHandler{usecase: uc}
}

// FundCustody godoc
// @Summary      Deposit into the custodial pool
// @Description  Charges the deposit through Mercado Pago and credits the pool once the payment is approved.
// @Tags         custody
// @Accept       json
// @Produce      json
// @Param        deposit  body      request.CustodyFundRequest  true  "Deposit"
// @Success      201      {object}  response.ReceiptResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      402      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /custody/deposits [post]
func (h *CustodyHandler) FundCustody(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var payload request.CustodyFundRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[custody][handler] invalid payload caller=%s err=%v", caller.Hex(), err)
		writeError(c, errInvalidRequest)
		return
	}

	receipt, err := h.usecase.FundCustody(c.Request.Context(), caller, payload.Amount, payload.MPPayload)
	if err != nil {
		log.Printf("[custody][handler] fund failed caller=%s amount=%d err=%v", caller.Hex(), payload.Amount, err)
		writeError(c, mapInsuranceError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromReceipt(receipt))
}

// GetCustody godoc
// @Summary      Get the custodial pool
// @Description  Returns the pool balance and every payout transfer in issue order.
// @Tags         custody
// @Produce      json
// @Success      200  {object}  response.CustodyResponse
// @Router       /custody [get]
func (h *CustodyHandler) GetCustody(c *gin.Context) {
	balance, transfers, err := h.usecase.GetCustody(c.Request.Context())
	if err != nil {
		writeError(c, mapInsuranceError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromCustody(balance, transfers))
}
