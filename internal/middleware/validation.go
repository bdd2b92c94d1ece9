package middleware

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/yigit/rollbook/internal/app/models/dto"
	"github.com/yigit/rollbook/internal/pkg/validation"
)

var registerOnce sync.Once

// RegisterValidators installs the custom rules on gin's binding engine.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err := validation.Register(v); err != nil {
			log.Error().Err(err).Msg("Failed to register custom validators")
		}
	})
}

// BindJSON decodes and validates the request body into T. On failure it
// writes a 400 response and returns false.
func BindJSON[T any](c *gin.Context) (T, bool) {
	RegisterValidators()

	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleBindingError(c, err)
		return req, false
	}
	return req, true
}

// ParseIDParam reads a positive integer path parameter. On failure it
// writes a 400 response and returns false.
func ParseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" format").WithField(name)
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
