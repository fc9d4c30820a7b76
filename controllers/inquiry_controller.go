package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/marierupasinghe/FreshEats/errors"
	"github.com/marierupasinghe/FreshEats/middleware"
	"github.com/marierupasinghe/FreshEats/services"
	"go.uber.org/zap"
)

type InquiryController struct {
	service services.Inquiries
}

func NewInquiryController(service services.Inquiries) *InquiryController {
	return &InquiryController{service: service}
}

// SubmitInquiry appends one contact-form document. Authentication is
// optional; when present the user id is attached to the inquiry.
func (ic *InquiryController) SubmitInquiry(c *gin.Context) {
	var req services.InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.ErrBadRequest)
		return
	}

	userID, _ := middleware.GetUserID(c)

	inquiry, err := ic.service.Submit(c.Request.Context(), userID, req)
	if err != nil {
		var appErr *apperrors.Error
		if !errors.As(err, &appErr) {
			zap.L().Error("Failed to submit inquiry", zap.Error(err))
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "inquiry submitted",
		"inquiry": inquiry,
	})
}
