package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"campuscalendar/internal/domain"
)

type registrationService struct {
	submissionRepo domain.SubmissionRepository
	formRepo       domain.FormConfigRepository
	email          domain.EmailService
	cache          domain.CatalogueCache
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewRegistrationService creates a RegistrationService. cache may be nil.
func NewRegistrationService(
	submissionRepo domain.SubmissionRepository,
	formRepo domain.FormConfigRepository,
	email domain.EmailService,
	cache domain.CatalogueCache,
	logger *slog.Logger,
	timeout time.Duration,
) domain.RegistrationService {
	return &registrationService{
		submissionRepo: submissionRepo,
		formRepo:       formRepo,
		email:          email,
		cache:          cache,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *registrationService) Submit(ctx context.Context, req domain.SubmissionRequest) (*domain.Submission, error) {
	sub, err := newSubmission(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var form *domain.FormConfig
	if sub.FormConfigID != nil {
		form, err = s.formRepo.GetByID(ctx, *sub.FormConfigID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("form_config_id", "unknown form")
		}
		if err != nil {
			return nil, fmt.Errorf("get form: %w", err)
		}
		if !form.IsActive {
			return nil, domain.NewValidationError("form_config_id", "form is not accepting responses")
		}
	}

	if err := s.submissionRepo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}
	s.logger.InfoContext(ctx, "submission received", "id", sub.ID, "ict", sub.ICT, "campi", len(sub.Campi))

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.WarnContext(ctx, "catalogue cache invalidation failed", "err", err)
		}
	}

	data := &domain.SubmissionConfirmationEmailData{
		Email: sub.Email,
		Name:  sub.Name,
		ICT:   sub.ICT,
		Campi: make([]string, 0, len(sub.Campi)),
	}
	for _, c := range sub.Campi {
		data.Campi = append(data.Campi, c.Name)
	}
	if form != nil {
		data.FormTitle = form.Title
	}
	if err := s.email.SendSubmissionConfirmation(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "confirmation email failed", "id", sub.ID, "err", err)
	}
	return sub, nil
}

func (s *registrationService) List(ctx context.Context, formConfigID *string) ([]*domain.Submission, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	subs, err := s.submissionRepo.List(ctx, formConfigID)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	if subs == nil {
		subs = []*domain.Submission{}
	}
	return subs, nil
}

// newSubmission validates req and returns the submission to store. Campi
// are deduplicated by name and inherit the submission's institution when
// they carry none.
func newSubmission(req domain.SubmissionRequest) (*domain.Submission, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", "is required")
	}
	addr, err := mail.ParseAddress(strings.TrimSpace(req.Email))
	if err != nil {
		return nil, domain.NewValidationError("email", "is not a valid address")
	}
	ict := strings.TrimSpace(req.ICT)
	if ict == "" {
		return nil, domain.NewValidationError("ict", "is required")
	}

	campi := make([]domain.Campus, 0, len(req.Campi))
	seen := make(map[string]struct{})
	for _, c := range req.Campi {
		c.Name = strings.TrimSpace(c.Name)
		if c.Name == "" {
			return nil, domain.NewValidationError("campi", "campus name is required")
		}
		if _, dup := seen[c.Name]; dup {
			continue
		}
		seen[c.Name] = struct{}{}
		if c.ICTName == "" {
			c.ICTName = ict
		}
		campi = append(campi, c)
	}
	if len(campi) == 0 {
		return nil, domain.NewValidationError("campi", "select at least one campus")
	}

	sub := &domain.Submission{
		Name:  name,
		Email: addr.Address,
		Phone: strings.TrimSpace(req.Phone),
		ICT:   ict,
		Campi: campi,
	}
	if req.FormConfigID != nil && strings.TrimSpace(*req.FormConfigID) != "" {
		id := strings.TrimSpace(*req.FormConfigID)
		sub.FormConfigID = &id
	}
	return sub, nil
}
