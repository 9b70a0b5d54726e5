package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"campuscalendar/internal/domain"
	"campuscalendar/internal/institutions"
)

type appConfigService struct {
	appConfigRepo  domain.AppConfigRepository
	cache          domain.CatalogueCache
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewAppConfigService creates an AppConfigService. Replacing the
// configuration changes canonical campus ids, so the cached catalogue (if
// any) is invalidated on every write.
func NewAppConfigService(appConfigRepo domain.AppConfigRepository, cache domain.CatalogueCache, logger *slog.Logger, timeout time.Duration) domain.AppConfigService {
	return &appConfigService{
		appConfigRepo:  appConfigRepo,
		cache:          cache,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *appConfigService) Get(ctx context.Context) (*domain.AppConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	cfg, err := s.appConfigRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get app config: %w", err)
	}
	if len(cfg.ICTs) == 0 && len(cfg.Campi) == 0 {
		return domain.DefaultAppConfig(), nil
	}
	return cfg, nil
}

func (s *appConfigService) Replace(ctx context.Context, cfg *domain.AppConfig) (*domain.AppConfig, error) {
	if cfg == nil {
		return nil, domain.NewValidationError("config", "is required")
	}
	normalized, err := normalizeAppConfig(cfg)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, normalized, "app config replaced")
}

func (s *appConfigService) Import(ctx context.Context, rows [][]string) (*domain.AppConfig, error) {
	cfg, err := institutions.Build(rows)
	if errors.Is(err, institutions.ErrNoRows) {
		return nil, domain.NewValidationError("rows", "invalid format or no data found")
	}
	if err != nil {
		return nil, err
	}
	return s.save(ctx, cfg, "app config imported")
}

func (s *appConfigService) RestoreDefault(ctx context.Context) (*domain.AppConfig, error) {
	return s.save(ctx, domain.DefaultAppConfig(), "app config restored to default")
}

func (s *appConfigService) save(ctx context.Context, cfg *domain.AppConfig, msg string) (*domain.AppConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.appConfigRepo.Save(ctx, cfg); err != nil {
		return nil, fmt.Errorf("save app config: %w", err)
	}
	s.logger.InfoContext(ctx, msg, "icts", len(cfg.ICTs), "campi", len(cfg.Campi))
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.WarnContext(ctx, "catalogue cache invalidation failed", "err", err)
		}
	}
	return cfg, nil
}

// normalizeAppConfig trims names, requires a name and a unique id per
// campus, and adds campus institutions missing from the ICT list.
func normalizeAppConfig(in *domain.AppConfig) (*domain.AppConfig, error) {
	out := &domain.AppConfig{ICTs: []string{}, Campi: make([]domain.Campus, 0, len(in.Campi))}
	icts := make(map[string]struct{})
	for _, ict := range in.ICTs {
		if ict = strings.TrimSpace(ict); ict != "" {
			icts[ict] = struct{}{}
		}
	}
	ids := make(map[domain.CampusID]struct{})
	for _, c := range in.Campi {
		c.Name = strings.TrimSpace(c.Name)
		c.ICTName = strings.TrimSpace(c.ICTName)
		if c.Name == "" || c.ICTName == "" {
			return nil, domain.NewValidationError("campi", "campus and institution names are required")
		}
		if c.ID == "" {
			return nil, domain.NewValidationError("campi", fmt.Sprintf("campus %q has no id", c.Name))
		}
		if _, dup := ids[c.ID]; dup {
			return nil, domain.NewValidationError("campi", fmt.Sprintf("duplicate campus id %q", c.ID))
		}
		ids[c.ID] = struct{}{}
		icts[c.ICTName] = struct{}{}
		out.Campi = append(out.Campi, c)
	}
	if len(icts) == 0 {
		return nil, domain.NewValidationError("icts", "at least one institution is required")
	}
	for ict := range icts {
		out.ICTs = append(out.ICTs, ict)
	}
	slices.Sort(out.ICTs)
	return out, nil
}
