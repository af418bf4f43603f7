package middleware

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"

	"github.com/yigit/coursecatalog/internal/app/models/dto"
	"github.com/yigit/coursecatalog/internal/pkg/validation"
)

// ValidatedBodyKey is the context key under which ValidateRequest stores the bound body.
const ValidatedBodyKey = "validatedBody"

var validate = validation.New()

// ValidateRequest binds the JSON body into a fresh value of the same type as
// model and validates it. The result is stored under ValidatedBodyKey.
func ValidateRequest(model interface{}) gin.HandlerFunc {
	typ := reflect.TypeOf(model)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}

	return func(c *gin.Context) {
		obj := reflect.New(typ).Interface()
		if err := c.ShouldBindJSON(obj); err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
			errorDetail = errorDetail.WithDetails(err.Error())
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}

		if err := validate.Struct(obj); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
			return
		}

		c.Set(ValidatedBodyKey, obj)
		c.Next()
	}
}
