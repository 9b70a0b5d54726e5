package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"campuscalendar/internal/domain"
)

type formService struct {
	formRepo       domain.FormConfigRepository
	cache          domain.CatalogueCache
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewFormService creates a FormService. cache may be nil; deleting a form
// removes its responses and so invalidates the cached catalogue.
func NewFormService(formRepo domain.FormConfigRepository, cache domain.CatalogueCache, logger *slog.Logger, timeout time.Duration) domain.FormService {
	return &formService{
		formRepo:       formRepo,
		cache:          cache,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *formService) List(ctx context.Context) ([]*domain.FormConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	forms, err := s.formRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list forms: %w", err)
	}
	return forms, nil
}

func (s *formService) Active(ctx context.Context, id *string) (*domain.FormConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if id != nil && *id != "" {
		return s.formRepo.GetByID(ctx, *id)
	}
	return s.formRepo.GetLatestActive(ctx)
}

func (s *formService) Create(ctx context.Context, title, edictName string) (*domain.FormConfig, error) {
	f := &domain.FormConfig{
		Title:     strings.TrimSpace(title),
		EdictName: strings.TrimSpace(edictName),
		IsActive:  true,
	}
	if f.Title == "" {
		return nil, domain.NewValidationError("title", "is required")
	}
	if f.EdictName == "" {
		return nil, domain.NewValidationError("edict_name", "is required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.formRepo.Create(ctx, f); err != nil {
		return nil, fmt.Errorf("create form: %w", err)
	}
	s.logger.InfoContext(ctx, "form created", "id", f.ID, "title", f.Title)
	return f, nil
}

func (s *formService) SetActive(ctx context.Context, id string, active bool) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.formRepo.SetActive(ctx, id, active); err != nil {
		return fmt.Errorf("set form active: %w", err)
	}
	s.logger.InfoContext(ctx, "form status changed", "id", id, "active", active)
	return nil
}

func (s *formService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.formRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete form: %w", err)
	}
	s.logger.InfoContext(ctx, "form deleted with its responses", "id", id)
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.WarnContext(ctx, "catalogue cache invalidation failed", "err", err)
		}
	}
	return nil
}

func (s *formService) InitializeLegacy(ctx context.Context) (*domain.FormConfig, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	f := &domain.FormConfig{
		Title:     domain.DefaultFormTitle,
		EdictName: domain.DefaultFormEdictName,
		IsActive:  true,
	}
	n, err := s.formRepo.CreateAndAdoptOrphans(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("initialize legacy form: %w", err)
	}
	s.logger.InfoContext(ctx, "legacy responses assigned to default form", "id", f.ID, "responses", n)
	return f, n, nil
}
