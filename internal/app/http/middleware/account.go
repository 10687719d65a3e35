package middleware

import (
	"net/http"

	"clipgenie/internal/domain/accounts"
	"clipgenie/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoadAccount resolves the token's account (creating it on the free plan on
// first sight) and attaches the account and its session to the context.
// Must run after AuthMiddleware.
func LoadAccount(store accounts.Store, registry *session.Registry, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID := c.GetString(KeyAccountID)
		if accountID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		acct, err := store.FindOrCreate(c.Request.Context(), accountID, c.GetString(KeyUserID))
		if err != nil {
			log.Error("load account", zap.String("account_id", accountID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load account"})
			return
		}

		sess, err := registry.Get(acct.ID, acct.OwnerID, acct.Plan, acct.UpdatedAt)
		if err != nil {
			log.Error("open session", zap.String("account_id", acct.ID), zap.String("plan", string(acct.Plan)), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to open session"})
			return
		}

		c.Set(KeyAccount, acct)
		c.Set(KeySession, sess)
		c.Next()
	}
}

func CurrentAccount(c *gin.Context) *accounts.Account {
	acct, _ := c.MustGet(KeyAccount).(*accounts.Account)
	return acct
}

func CurrentSession(c *gin.Context) *session.Session {
	sess, _ := c.MustGet(KeySession).(*session.Session)
	return sess
}
