package middleware

import (
	"errors"
	"net/http"

	"github.com/myasir/portfolio-api/internal/api/constants"
	"github.com/myasir/portfolio-api/internal/api/dto/common"
	"github.com/myasir/portfolio-api/internal/api/dto/v1/contact"
	"github.com/myasir/portfolio-api/internal/api/validation"
	"github.com/myasir/portfolio-api/internal/metrics"
	"github.com/myasir/portfolio-api/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationMiddleware handles request validation
type ValidationMiddleware struct {
	validate *validator.Validate
}

// NewValidationMiddleware creates a new validation middleware
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validate: validation.New(),
	}
}

// ValidateContactRequest validates a contact form submission and stores it in
// the context under constants.ContextKeyContact. Required fields are checked
// before the email format, in the order name, email, subject, message.
func (m *ValidationMiddleware) ValidateContactRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contact.ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				utils.HandleError(c, http.StatusRequestEntityTooLarge, common.MsgRequestTooLarge)
				return
			}
			m.reject(c, common.MsgMissingFields)
			return
		}

		if err := m.validate.Struct(&req); err != nil {
			m.reject(c, contactErrorMessage(err))
			return
		}

		c.Set(constants.ContextKeyContact, &req)
		c.Next()
	}
}

func (m *ValidationMiddleware) reject(c *gin.Context, message string) {
	metrics.IncrementContactSubmission(metrics.OutcomeInvalid)
	utils.HandleError(c, http.StatusBadRequest, message)
}

// contactErrorMessage reports the first missing field, or the email format
// failure when every field is present.
func contactErrorMessage(err error) string {
	errs := validation.FormatValidationError(err)
	if len(errs) == 0 {
		return common.MsgMissingFields
	}
	for _, e := range errs {
		if e.Tag == "notblank" {
			return common.MissingFieldMessage(e.Field)
		}
	}
	for _, e := range errs {
		if e.Tag == "email" {
			return common.MsgInvalidEmail
		}
	}
	return common.MsgMissingFields
}
