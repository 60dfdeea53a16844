package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/njprem/discover-zimbabwe/internal/domain"
)

type Acknowledgement struct {
	Message     string `json:"message"`
	ClearFields bool   `json:"clear_fields"`
}

// ContactService acknowledges inquiries. Nothing is stored or sent anywhere.
type ContactService struct {
	validate *validator.Validate
	logger   *zap.Logger
}

func NewContactService(validate *validator.Validate, logger *zap.Logger) *ContactService {
	if validate == nil {
		validate = validator.New(validator.WithRequiredStructEnabled())
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{validate: validate, logger: logger.Named("contact")}
}

func (s *ContactService) Submit(ctx context.Context, inquiry domain.Inquiry) (Acknowledgement, error) {
	inquiry.Name = strings.TrimSpace(inquiry.Name)
	inquiry.Email = strings.TrimSpace(inquiry.Email)
	inquiry.Message = strings.TrimSpace(inquiry.Message)

	if err := s.validate.StructCtx(ctx, inquiry); err != nil {
		return Acknowledgement{}, ErrInquiryIncomplete
	}

	s.logger.Info("inquiry received",
		zap.String("name", inquiry.Name),
		zap.String("email", inquiry.Email),
		zap.Int("message_length", len(inquiry.Message)),
	)
	return Acknowledgement{
		Message:     fmt.Sprintf("Thank you %s! We'll contact you at %s soon.", inquiry.Name, inquiry.Email),
		ClearFields: true,
	}, nil
}
