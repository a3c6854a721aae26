// Package auth verifies the access tokens issued by the hosted auth
// provider and maps their claims to the request-scoped CurrentUser.
package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/faceit/backend/internal/app/models"
)

// Token errors
var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidFormat = errors.New("invalid token format")
)

// expectedAudience is the audience claim the provider stamps on every
// access token.
const expectedAudience = "authenticated"

// Claims defines the token content this service reads.
type Claims struct {
	Email        string       `json:"email"`
	UserMetadata UserMetadata `json:"user_metadata"`
	jwt.RegisteredClaims
}

// UserMetadata is the nested metadata claim; the profile type is
// optional and absent for accounts created before roles existed.
type UserMetadata struct {
	Type string `json:"type"`
}

// TokenVerifier validates provider-issued HS256 tokens with the shared
// secret.
type TokenVerifier struct {
	secret []byte
}

// NewTokenVerifier creates a TokenVerifier for the given shared secret.
func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret)}
}

// Verify checks signature, expiry and audience, then derives the
// CurrentUser. The subject and email claims are required; a missing
// type claim defaults to student.
func (v *TokenVerifier) Verify(tokenString string) (*models.CurrentUser, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithAudience(expectedAudience), jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" || claims.Email == "" {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed subject", ErrInvalidToken)
	}

	profileType := models.ProfileTypeStudent
	if claims.UserMetadata.Type != "" {
		profileType = models.ProfileType(claims.UserMetadata.Type)
		if !profileType.Valid() {
			return nil, fmt.Errorf("%w: unknown profile type", ErrInvalidToken)
		}
	}

	return &models.CurrentUser{
		UserID: userID,
		Email:  claims.Email,
		Type:   profileType,
	}, nil
}

// ExtractBearerToken extracts the token from the Authorization header.
func ExtractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidFormat
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || token == "" {
		return "", ErrInvalidFormat
	}

	return token, nil
}
