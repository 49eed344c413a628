package routes

import (
	"carbody_insurance/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPolicies = "/policies"
	PathClaims   = "/claims"
	PathHolders  = "/holders"
	PathCustody  = "/custody"
)

// addInsuranceRoutes registers the ledger endpoints. Mutations require a
// caller identity; reads are public.
func addInsuranceRoutes(
	rg *gin.RouterGroup,
	auth gin.HandlerFunc,
	policyHandler *handlers.PolicyHandler,
	claimHandler *handlers.ClaimHandler,
	custodyHandler *handlers.CustodyHandler,
) {
	policies := rg.Group(PathPolicies)
	{
		policies.POST("", auth, policyHandler.CreatePolicy)
		policies.GET("/:id", policyHandler.GetPolicy)
	}

	claims := rg.Group(PathClaims)
	{
		claims.POST("", auth, claimHandler.SubmitClaim)
		claims.GET("/:id", claimHandler.GetClaim)
		claims.PATCH("/:id/approve", auth, claimHandler.ApproveClaim)
		claims.PATCH("/:id/reject", auth, claimHandler.RejectClaim)
	}

	rg.GET(PathHolders+"/:address/tokens", policyHandler.GetTokenBalance)

	custody := rg.Group(PathCustody)
	{
		custody.GET("", custodyHandler.GetCustody)
		custody.POST("/deposits", auth, custodyHandler.FundCustody)
	}
}
