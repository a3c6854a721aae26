// Package middleware contains the bearer-token gate, the role guards
// and the central error-to-status mapping.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faceit/backend/internal/app/models"
	"github.com/faceit/backend/internal/app/models/dto"
	"github.com/faceit/backend/internal/pkg/auth"
)

// contextKeyCurrentUser is the gin context key the gate stores the
// authenticated user under.
const contextKeyCurrentUser = "currentUser"

// AuthMiddleware authenticates requests and enforces role checks. Each
// request is authorized independently from its bearer token; no session
// state is carried across requests.
type AuthMiddleware struct {
	verifier *auth.TokenVerifier
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(verifier *auth.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate validates the bearer token and stores the resulting
// CurrentUser in the context. All verification failures produce the
// same generic 401; internals of the verifier are never leaked.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortUnauthorized(c)
			return
		}

		user, err := m.verifier.Verify(tokenString)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(contextKeyCurrentUser, *user)
		c.Next()
	}
}

// RequireInstructor rejects requests whose authenticated user is not an
// instructor. Must run after Authenticate.
func (m *AuthMiddleware) RequireInstructor() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUserFrom(c)
		if !ok {
			abortUnauthorized(c)
			return
		}

		if !user.IsInstructor() {
			abortForbidden(c, "Instructor access required")
			return
		}

		c.Next()
	}
}

// RequireStudent rejects requests whose authenticated user is not a
// student. Must run after Authenticate.
func (m *AuthMiddleware) RequireStudent() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUserFrom(c)
		if !ok {
			abortUnauthorized(c)
			return
		}

		if !user.IsStudent() {
			abortForbidden(c, "Student access required")
			return
		}

		c.Next()
	}
}

// CurrentUserFrom returns the authenticated user stored by
// Authenticate.
func CurrentUserFrom(c *gin.Context) (models.CurrentUser, bool) {
	value, exists := c.Get(contextKeyCurrentUser)
	if !exists {
		return models.CurrentUser{}, false
	}

	user, ok := value.(models.CurrentUser)
	return user, ok
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.APIResponse{
		Error: dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Invalid authentication credentials"),
	})
}

func abortForbidden(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusForbidden, dto.APIResponse{
		Error: dto.NewErrorDetail(dto.ErrorCodeForbidden, message),
	})
}
