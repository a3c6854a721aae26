package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/faceit/backend/internal/app/models"
	"github.com/faceit/backend/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testSecret = "middleware-test-secret"

func signToken(t *testing.T, userID uuid.UUID, email, profileType string, expiry time.Time) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"email": email,
		"aud":   "authenticated",
		"exp":   expiry.Unix(),
		"iat":   time.Now().Unix(),
	}
	if profileType != "" {
		claims["user_metadata"] = map[string]any{"type": profileType}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

// newTestRouter mounts a probe handler behind the given guards and
// captures the resolved current user.
func newTestRouter(captured *models.CurrentUser, guards ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(guards...)
	router.GET("/probe", func(c *gin.Context) {
		if user, ok := CurrentUserFrom(c); ok && captured != nil {
			*captured = user
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	mw := NewAuthMiddleware(auth.NewTokenVerifier(testSecret))

	t.Run("valid instructor token passes and sets the current user", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		tokenStr := signToken(t, userID, "prof@example.com", "instructor", time.Now().Add(time.Hour))

		var captured models.CurrentUser
		router := newTestRouter(&captured, mw.Authenticate())

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+tokenStr)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}
		if captured.UserID != userID {
			t.Errorf("UserID = %v, want %v", captured.UserID, userID)
		}
		if captured.Type != models.ProfileTypeInstructor {
			t.Errorf("Type = %q, want instructor", captured.Type)
		}
	})

	t.Run("token without type claim defaults to student", func(t *testing.T) {
		t.Parallel()

		tokenStr := signToken(t, uuid.New(), "someone@example.com", "", time.Now().Add(time.Hour))

		var captured models.CurrentUser
		router := newTestRouter(&captured, mw.Authenticate())

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+tokenStr)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}
		if captured.Type != models.ProfileTypeStudent {
			t.Errorf("Type = %q, want student", captured.Type)
		}
	})

	t.Run("missing Authorization header returns 401", func(t *testing.T) {
		t.Parallel()

		router := newTestRouter(nil, mw.Authenticate())

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})

	t.Run("expired token returns 401 with a generic message", func(t *testing.T) {
		t.Parallel()

		tokenStr := signToken(t, uuid.New(), "late@example.com", "instructor", time.Now().Add(-time.Hour))

		router := newTestRouter(nil, mw.Authenticate())

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+tokenStr)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
		}

		var body struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to parse response body: %v", err)
		}
		if body.Error.Message != "Invalid authentication credentials" {
			t.Errorf("message = %q, want the generic credentials message", body.Error.Message)
		}
	})

	t.Run("garbage token returns 401", func(t *testing.T) {
		t.Parallel()

		router := newTestRouter(nil, mw.Authenticate())

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})
}

func TestRoleGuards(t *testing.T) {
	t.Parallel()

	mw := NewAuthMiddleware(auth.NewTokenVerifier(testSecret))

	t.Run("RequireInstructor rejects a student with 403", func(t *testing.T) {
		t.Parallel()

		tokenStr := signToken(t, uuid.New(), "student@example.com", "student", time.Now().Add(time.Hour))

		router := newTestRouter(nil, mw.Authenticate(), mw.RequireInstructor())

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+tokenStr)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusForbidden)
		}

		var body struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to parse response body: %v", err)
		}
		if body.Error.Message != "Instructor access required" {
			t.Errorf("message = %q, want %q", body.Error.Message, "Instructor access required")
		}
	})

	t.Run("RequireInstructor passes an instructor through", func(t *testing.T) {
		t.Parallel()

		tokenStr := signToken(t, uuid.New(), "prof@example.com", "instructor", time.Now().Add(time.Hour))

		router := newTestRouter(nil, mw.Authenticate(), mw.RequireInstructor())

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+tokenStr)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}
	})

	t.Run("RequireStudent rejects an instructor with 403", func(t *testing.T) {
		t.Parallel()

		tokenStr := signToken(t, uuid.New(), "prof@example.com", "instructor", time.Now().Add(time.Hour))

		router := newTestRouter(nil, mw.Authenticate(), mw.RequireStudent())

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+tokenStr)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusForbidden)
		}

		var body struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to parse response body: %v", err)
		}
		if body.Error.Message != "Student access required" {
			t.Errorf("message = %q, want %q", body.Error.Message, "Student access required")
		}
	})

	t.Run("RequireInstructor without Authenticate returns 401", func(t *testing.T) {
		t.Parallel()

		router := newTestRouter(nil, mw.RequireInstructor())

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})
}
