package services

import (
	"context"
	"strings"
	"time"

	apperrors "github.com/marierupasinghe/FreshEats/errors"
	"github.com/marierupasinghe/FreshEats/models"
	"github.com/marierupasinghe/FreshEats/repository"
)

type InquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Inquiries defines the contact-form operations.
type Inquiries interface {
	Submit(ctx context.Context, userID string, req InquiryRequest) (*models.Inquiry, error)
}

type InquiryService struct {
	inquiries repository.InquiryRepo
}

func NewInquiryService(inquiries repository.InquiryRepo) *InquiryService {
	return &InquiryService{inquiries: inquiries}
}

// Submit validates the form and appends one inquiry document. Validation
// failures never reach the store.
func (s *InquiryService) Submit(ctx context.Context, userID string, req InquiryRequest) (*models.Inquiry, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.Validationf("name is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, apperrors.Validationf("email is required")
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, apperrors.Validationf("message is required")
	}

	inquiry := &models.Inquiry{
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		UserID:    userID,
		Status:    models.InquiryStatusNew,
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.inquiries.Create(ctx, inquiry)
	if err != nil {
		return nil, err
	}
	inquiry.ID = id
	return inquiry, nil
}
