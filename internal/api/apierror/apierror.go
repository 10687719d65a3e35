package apierror

import (
	"errors"
	"net/http"

	"clipgenie/internal/domain/access"

	"github.com/gin-gonic/gin"
)

// Status maps an access error kind to an HTTP status.
func Status(kind access.Kind) int {
	switch kind {
	case access.PermissionDenied:
		return http.StatusForbidden
	case access.CapacityExceeded:
		return http.StatusPaymentRequired
	case access.DuplicateEntry:
		return http.StatusConflict
	case access.NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Write renders err as JSON. Anything that is not an access error is a 500
// and its message is not exposed.
func Write(c *gin.Context, err error) {
	var aerr *access.Error
	if !errors.As(err, &aerr) {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	body := gin.H{
		"error": aerr.Message,
		"code":  string(aerr.Kind),
		"plan":  string(aerr.Plan),
	}
	if aerr.Upgrade != "" {
		body["upgrade"] = aerr.Upgrade
	}
	c.JSON(Status(aerr.Kind), body)
}
