package handlers

import (
	"errors"
	"net/http"

	"portfolio-api/internal/api/dto/common"
	"portfolio-api/internal/api/dto/v1/contact"
	"portfolio-api/internal/service"
	"portfolio-api/internal/utils"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// Submit handles a contact form submission. The response carries either
// a data payload or an error message, never both; the frontend shows the
// error string to the user directly.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contact.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleAPIError(c, err, http.StatusBadRequest, common.ErrCodeBadRequest, "Invalid request body")
		return
	}

	receipt, err := h.contactService.Submit(c.Request.Context(), service.Submission{
		SenderName:  req.SenderName,
		SenderEmail: req.SenderEmail,
		Message:     req.Message,
		Honeypot:    req.Honeypot,
	})
	if err != nil {
		status, code := submissionStatus(err)
		utils.HandleAPIError(c, err, status, code, err.Error())
		return
	}

	utils.HandleSuccess(c, contact.ContactResponse{
		ID:      receipt.ID,
		Message: "Message sent successfully. We'll get back to you shortly.",
	})
}

// submissionStatus maps a pipeline failure onto an HTTP status and code
func submissionStatus(err error) (int, common.ErrorCode) {
	var subErr *service.SubmissionError
	if !errors.As(err, &subErr) {
		return http.StatusInternalServerError, common.ErrCodeInternalServer
	}

	switch subErr.Kind {
	case service.KindRateLimited:
		return http.StatusTooManyRequests, common.ErrCodeTooManyRequests
	case service.KindDispatchFailed, service.KindProviderRejected:
		return http.StatusBadGateway, common.ErrCodeBadGateway
	default:
		return http.StatusBadRequest, common.ErrCodeValidation
	}
}
