package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wmad/library-backend/internal/app/models/dto"
	"github.com/wmad/library-backend/internal/middleware"
	"github.com/wmad/library-backend/internal/pkg/logger"
)

// parseIDParam reads the numeric :id path parameter. On failure it writes
// 400 "Invalid <resource> ID" and returns false.
func parseIDParam(ctx *gin.Context, resource string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.AbortWithError(ctx, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Invalid "+resource+" ID")
		return 0, false
	}
	return id, true
}

// bindJSON decodes the body into req. On failure it writes 400 with the
// given message and returns false.
func bindJSON(ctx *gin.Context, req interface{}, message string) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		logger.Debug().Err(err).Str("path", ctx.Request.URL.Path).Msg("Invalid request payload")
		middleware.AbortWithError(ctx, http.StatusBadRequest, dto.ErrorCodeValidationFailed, message)
		return false
	}
	return true
}
