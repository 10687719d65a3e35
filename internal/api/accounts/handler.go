package accountsapi

import (
	"errors"
	"net/http"

	"clipgenie/internal/app/http/middleware"
	"clipgenie/internal/domain/access"
	"clipgenie/internal/domain/accounts"
	"clipgenie/internal/domain/plans"
	"clipgenie/internal/infra/stripe"
	"clipgenie/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MeResponse struct {
	AccountID    string        `json:"account_id"`
	OwnerID      string        `json:"owner_id"`
	UserID       string        `json:"user_id"`
	Plan         plans.Plan    `json:"plan"`
	Subscription string        `json:"subscription_status"`
	Access       access.Policy `json:"access"`
}

// GET /me
func GetCurrentAccount(c *gin.Context) {
	acct := middleware.CurrentAccount(c)

	policy, err := access.ComputePolicy(acct.Plan)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Account has an unknown plan"})
		return
	}

	c.JSON(http.StatusOK, MeResponse{
		AccountID:    acct.ID,
		OwnerID:      acct.OwnerID,
		UserID:       c.GetString(middleware.KeyUserID),
		Plan:         acct.Plan,
		Subscription: string(stripe.NormalizeStripeStatus(acct.StripeSubscriptionStatus)),
		Access:       policy,
	})
}

// AdminHandler serves operator endpoints that change an account's plan by hand.
type AdminHandler struct {
	Store    accounts.Store
	Registry *session.Registry
	Log      *zap.Logger
}

type SetPlanRequest struct {
	Plan string `json:"plan" binding:"required"`
}

// PUT /admin/accounts/:id/plan
//
// Managers are bound to one plan, so the account's session is dropped and
// rebuilt on its next request.
func (h *AdminHandler) SetPlan(c *gin.Context) {
	var req SetPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "plan is required"})
		return
	}

	plan, err := plans.Parse(req.Plan)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accountID := c.Param("id")
	if err := h.Store.SetPlan(c.Request.Context(), accountID, plan); err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		h.Log.Error("set plan", zap.String("account_id", accountID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plan"})
		return
	}

	h.Registry.Drop(accountID)
	h.Log.Info("plan set by admin",
		zap.String("account_id", accountID),
		zap.String("plan", string(plan)),
		zap.String("admin", c.GetString(middleware.KeyUserID)))

	c.JSON(http.StatusOK, gin.H{"account_id": accountID, "plan": plan})
}
