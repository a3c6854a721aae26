package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/faceit/backend/internal/app/models/dto"
	"github.com/faceit/backend/internal/pkg/apperrors"
)

// HandleAPIError maps a service error to its HTTP response. Operation
// error messages are surfaced verbatim; anything unrecognized becomes a
// 500.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.IsSignupError(err):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeSignupFailed, err.Error()),
		})
	case apperrors.IsLoginError(err):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeLoginFailed, err.Error()),
		})
	case apperrors.IsRefreshError(err):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeRefreshFailed, err.Error()),
		})
	case apperrors.IsCreateClassError(err):
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeStoreError, err.Error()),
		})
	default:
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}
