package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/faceit/backend/internal/app/controllers"
	"github.com/faceit/backend/internal/app/models"
	"github.com/faceit/backend/internal/app/models/dto"
	"github.com/faceit/backend/internal/middleware"
	"github.com/faceit/backend/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testSecret = "routes-test-secret"

type stubAuthService struct{}

func (stubAuthService) SignupInstructor(_ context.Context, req *dto.InstructorSignupRequest) (*dto.InstructorSignupResponse, error) {
	return &dto.InstructorSignupResponse{
		TokenData: dto.TokenData{AccessToken: "access", RefreshToken: "refresh", TokenType: "bearer"},
		UserID:    uuid.New(),
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Type:      models.ProfileTypeInstructor,
	}, nil
}

func (stubAuthService) Login(_ context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return &dto.LoginResponse{
		TokenData: dto.TokenData{AccessToken: "access", RefreshToken: "refresh", TokenType: "bearer"},
		UserID:    uuid.New(),
		Email:     req.Email,
		Type:      models.ProfileTypeStudent,
	}, nil
}

func (stubAuthService) RefreshToken(context.Context, string) (*dto.RefreshResponse, error) {
	return &dto.RefreshResponse{
		TokenData: dto.TokenData{AccessToken: "access", RefreshToken: "refresh", TokenType: "bearer"},
	}, nil
}

type stubClassService struct{}

func (stubClassService) CreateClass(_ context.Context, instructorID uuid.UUID, req *dto.CreateClassRequest) (*dto.CreateClassResponse, error) {
	return &dto.CreateClassResponse{
		ClassID:      uuid.New(),
		InstructorID: instructorID,
		CourseCode:   req.CourseCode,
		CourseName:   req.CourseName,
		Section:      req.Section,
		Term:         req.Term,
		Schedule:     req.Schedule,
		Room:         req.Room,
	}, nil
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()

	logger := zerolog.Nop()
	router := gin.New()
	SetupRouter(
		router,
		controllers.NewAuthController(stubAuthService{}, logger),
		controllers.NewClassController(stubClassService{}, logger),
		middleware.NewAuthMiddleware(auth.NewTokenVerifier(testSecret)),
	)
	return router
}

func signToken(t *testing.T, profileType string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":   uuid.NewString(),
		"email": "user@example.com",
		"aud":   "authenticated",
		"exp":   time.Now().Add(time.Hour).Unix(),
		"user_metadata": map[string]any{
			"type": profileType,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body, bearer string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

const classBody = `{
	"courseCode": "CS101",
	"courseName": "Introduction to Computer Science",
	"section": "A",
	"term": "Fall 2026",
	"schedule": "MWF 10:00-11:00"
}`

func TestRouter_PublicAuthRoutes(t *testing.T) {
	router := newTestEngine(t)

	t.Run("signup route responds without a bearer token", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodPost, "/auth/signup/instructor", `{
			"email": "a@b.com",
			"password": "securepwd1",
			"firstName": "John",
			"lastName": "Doe"
		}`, "")
		if recorder.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201\nbody: %s", recorder.Code, recorder.Body.String())
		}
	})

	t.Run("login route responds without a bearer token", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodPost, "/auth/login",
			`{"email": "a@b.com", "password": "securepwd1"}`, "")
		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200\nbody: %s", recorder.Code, recorder.Body.String())
		}
	})

	t.Run("refresh route responds without a bearer token", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodPost, "/auth/refresh",
			`{"refreshToken": "old-refresh"}`, "")
		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200\nbody: %s", recorder.Code, recorder.Body.String())
		}
	})

	t.Run("health route reports ok", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodGet, "/health", "", "")
		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", recorder.Code)
		}
	})
}

func TestRouter_ClassRouteGuards(t *testing.T) {
	router := newTestEngine(t)

	t.Run("instructor token creates a class", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodPost, "/classes", classBody, signToken(t, "instructor"))
		if recorder.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201\nbody: %s", recorder.Code, recorder.Body.String())
		}
	})

	t.Run("student token is rejected with 403", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodPost, "/classes", classBody, signToken(t, "student"))
		if recorder.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403\nbody: %s", recorder.Code, recorder.Body.String())
		}

		var env dto.APIResponse
		if err := json.Unmarshal(recorder.Body.Bytes(), &env); err != nil {
			t.Fatalf("response is not valid JSON: %v", err)
		}
		if env.Error == nil || env.Error.Message != "Instructor access required" {
			t.Errorf("error = %+v, want the instructor guard message", env.Error)
		}
	})

	t.Run("missing token is rejected with 401", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodPost, "/classes", classBody, "")
		if recorder.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", recorder.Code)
		}
	})

	t.Run("token signed with a different secret is rejected with 401", func(t *testing.T) {
		claims := jwt.MapClaims{
			"sub":   uuid.NewString(),
			"email": "user@example.com",
			"aud":   "authenticated",
			"exp":   time.Now().Add(time.Hour).Unix(),
		}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("another-secret"))
		if err != nil {
			t.Fatalf("failed to sign test token: %v", err)
		}

		recorder := doRequest(t, router, http.MethodPost, "/classes", classBody, forged)
		if recorder.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", recorder.Code)
		}
	})
}
