package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/myasir/portfolio-api/internal/api/constants"
	"github.com/myasir/portfolio-api/internal/api/dto/common"
	"github.com/myasir/portfolio-api/internal/api/dto/v1/contact"
	"github.com/myasir/portfolio-api/internal/api/mapper"
	"github.com/myasir/portfolio-api/internal/api/sanitization"
	"github.com/myasir/portfolio-api/internal/mailer"
	"github.com/myasir/portfolio-api/internal/metrics"
	"github.com/myasir/portfolio-api/internal/models"
	"github.com/myasir/portfolio-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// Dispatcher delivers a sanitized submission.
type Dispatcher interface {
	Dispatch(ctx context.Context, s models.SanitizedSubmission) mailer.DispatchResult
}

type ContactHandler struct {
	dispatcher Dispatcher
}

func NewContactHandler(dispatcher Dispatcher) *ContactHandler {
	return &ContactHandler{
		dispatcher: dispatcher,
	}
}

// Submit sanitizes a validated submission and hands it to the dispatcher.
func (h *ContactHandler) Submit(c *gin.Context) {
	// Get contact data from context (set by validation middleware)
	contactData, exists := c.Get(constants.ContextKeyContact)
	if !exists {
		utils.HandleAPIError(c, errors.New("contact data not found in context"), http.StatusInternalServerError, common.MsgServerError)
		return
	}

	req, ok := contactData.(*contact.ContactRequest)
	if !ok {
		utils.HandleAPIError(c, errors.New("invalid contact data format"), http.StatusInternalServerError, common.MsgServerError)
		return
	}

	sanitized := sanitization.SanitizeSubmission(mapper.ContactRequestToSubmission(req))

	result := h.dispatcher.Dispatch(c.Request.Context(), sanitized)
	if !result.Success {
		// Delivery detail was logged by the dispatcher
		metrics.IncrementContactSubmission(metrics.OutcomeFailed)
		utils.HandleError(c, http.StatusInternalServerError, common.MsgSendFailed)
		return
	}

	metrics.IncrementContactSubmission(metrics.OutcomeSent)
	utils.HandleMessage(c, common.MsgMessageSent)
}
