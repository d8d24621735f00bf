package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/visadesk/visa_desk_app/internal/core/domain"
)

// authCtxKey is the key used to store the authenticated caller in the request context.
const authCtxKey = contextKey("authContext")

// GetAuthFromContext retrieves the authenticated caller from the request.
// It returns the AuthContext and a boolean indicating if it was found.
func GetAuthFromContext(c *gin.Context) (domain.AuthContext, bool) {
	auth, ok := c.Request.Context().Value(authCtxKey).(domain.AuthContext)
	return auth, ok
}
