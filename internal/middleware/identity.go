package middleware

import (
	"github.com/gin-gonic/gin"

	"newsroom/internal/domain"
)

const (
	// UserNameHeader carries the acting user's name.
	UserNameHeader = "X-User-Name"
	// UserRoleHeader carries the acting user's role.
	UserRoleHeader = "X-User-Role"
	// IdentityKey is the context key for the resolved identity.
	IdentityKey = "identity"
)

// Identity resolves the acting identity from the request headers and
// stores it in the gin context. Requests without the headers proceed as
// anonymous; policy decisions stay in the services, not here.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		who := domain.Identity{
			Name: c.GetHeader(UserNameHeader),
			Role: domain.Role(c.GetHeader(UserRoleHeader)),
		}
		c.Set(IdentityKey, who)
		c.Next()
	}
}

// GetIdentity retrieves the acting identity from the gin context.
func GetIdentity(c *gin.Context) domain.Identity {
	if v, exists := c.Get(IdentityKey); exists {
		if who, ok := v.(domain.Identity); ok {
			return who
		}
	}
	return domain.Identity{}
}
