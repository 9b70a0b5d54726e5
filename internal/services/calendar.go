package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"campuscalendar/internal/calendar"
	"campuscalendar/internal/catalogue"
	"campuscalendar/internal/domain"
)

type calendarService struct {
	calendarRepo   domain.CalendarRepository
	submissionRepo domain.SubmissionRepository
	appConfigRepo  domain.AppConfigRepository
	engine         *calendar.Engine
	builder        *catalogue.Builder
	cache          domain.CatalogueCache
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewCalendarService creates a CalendarService. The catalogue of campi is
// rebuilt from the stored submissions unless cache holds a fresh copy; cache
// may be nil.
func NewCalendarService(
	calendarRepo domain.CalendarRepository,
	submissionRepo domain.SubmissionRepository,
	appConfigRepo domain.AppConfigRepository,
	engine *calendar.Engine,
	builder *catalogue.Builder,
	cache domain.CatalogueCache,
	logger *slog.Logger,
	timeout time.Duration,
) domain.CalendarService {
	return &calendarService{
		calendarRepo:   calendarRepo,
		submissionRepo: submissionRepo,
		appConfigRepo:  appConfigRepo,
		engine:         engine,
		builder:        builder,
		cache:          cache,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *calendarService) Get(ctx context.Context) (domain.Calendar, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.load(ctx)
}

func (s *calendarService) Save(ctx context.Context, cal domain.Calendar) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	for campusID, evs := range cal.Events {
		for _, ev := range evs {
			if err := calendar.ValidateRange(ev.StartDate, ev.EndDate); err != nil {
				return fmt.Errorf("campus %s event %q: %w", campusID, ev.ID, err)
			}
		}
	}
	for _, cat := range cal.Categories {
		if cat.ID == "" {
			return domain.NewValidationError("categories", "category id is required")
		}
	}
	if err := s.store(ctx, cal); err != nil {
		return err
	}
	s.logger.Info("calendar saved", "categories", len(cal.Categories), "events", cal.EventCount())
	return nil
}

func (s *calendarService) Categories(ctx context.Context, term string) ([]domain.Category, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	cal, err := s.load(ctx)
	if err != nil {
		return nil, false, err
	}
	return calendar.SearchCategories(cal, term), calendar.CanCreateCategory(cal, term), nil
}

func (s *calendarService) AddEvents(ctx context.Context, req domain.AddEventsRequest) (domain.AddEventsResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	cal, err := s.load(ctx)
	if err != nil {
		return domain.AddEventsResult{}, err
	}
	cat, err := s.catalogue(ctx)
	if err != nil {
		return domain.AddEventsResult{}, err
	}

	categoryID := req.CategoryID
	if categoryID == "" {
		if req.CategoryName == "" {
			return domain.AddEventsResult{}, domain.NewValidationError("category_id", "category id or name is required")
		}
		cal, categoryID, err = s.engine.ResolveOrCreate(cal, req.CategoryName, req.CategoryColor)
		if err != nil {
			return domain.AddEventsResult{}, err
		}
	}

	cal, added, err := s.engine.AddEvents(cal, cat, req.Scope, categoryID, req.StartDate, req.EndDate)
	if err != nil {
		return domain.AddEventsResult{}, err
	}
	if err := s.store(ctx, cal); err != nil {
		return domain.AddEventsResult{}, err
	}
	s.logger.Info("events added", "scope", req.Scope.String(), "category_id", categoryID, "added", added)
	return domain.AddEventsResult{Added: added, CategoryID: categoryID}, nil
}

func (s *calendarService) RemoveEvent(ctx context.Context, campusID domain.CampusID, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	cal, err := s.load(ctx)
	if err != nil {
		return err
	}
	if !hasEvent(cal, campusID, eventID) {
		return nil
	}
	if err := s.store(ctx, calendar.RemoveEvent(cal, campusID, eventID)); err != nil {
		return err
	}
	s.logger.Info("event removed", "campus_id", campusID, "event_id", eventID)
	return nil
}

func hasEvent(cal domain.Calendar, campusID domain.CampusID, eventID string) bool {
	for _, ev := range cal.Events[campusID] {
		if ev.ID == eventID {
			return true
		}
	}
	return false
}

func (s *calendarService) CampusEvents(ctx context.Context, campusID domain.CampusID) ([]domain.CampusEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	cal, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return calendar.EventsForCampus(cal, campusID), nil
}

func (s *calendarService) Day(ctx context.Context, date string) (domain.DayStats, error) {
	if err := calendar.ValidateDate("date", date); err != nil {
		return domain.DayStats{}, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	cal, cat, err := s.loadWithCatalogue(ctx)
	if err != nil {
		return domain.DayStats{}, err
	}
	return calendar.DayStats(cal, cat, date), nil
}

func (s *calendarService) Month(ctx context.Context, year, month int) (domain.MonthGrid, error) {
	if err := validateYear(year); err != nil {
		return domain.MonthGrid{}, err
	}
	if month < 1 || month > 12 {
		return domain.MonthGrid{}, domain.NewValidationError("month", "must be between 1 and 12")
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	cal, cat, err := s.loadWithCatalogue(ctx)
	if err != nil {
		return domain.MonthGrid{}, err
	}
	return calendar.MonthGrid(cal, cat, year, time.Month(month)), nil
}

func (s *calendarService) Year(ctx context.Context, year int) ([]domain.MonthGrid, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	cal, cat, err := s.loadWithCatalogue(ctx)
	if err != nil {
		return nil, err
	}
	return calendar.YearGrid(cal, cat, year), nil
}

func validateYear(year int) error {
	if year < 1 || year > 9999 {
		return domain.NewValidationError("year", "must be between 1 and 9999")
	}
	return nil
}

func (s *calendarService) Catalogue(ctx context.Context) (domain.Catalogue, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.catalogue(ctx)
}

func (s *calendarService) loadWithCatalogue(ctx context.Context) (domain.Calendar, domain.Catalogue, error) {
	cal, err := s.load(ctx)
	if err != nil {
		return domain.Calendar{}, nil, err
	}
	cat, err := s.catalogue(ctx)
	if err != nil {
		return domain.Calendar{}, nil, err
	}
	return cal, cat, nil
}

// load reads the stored document and normalizes it to the current schema.
// A legacy document stays legacy in storage until the next write.
func (s *calendarService) load(ctx context.Context) (domain.Calendar, error) {
	raw, err := s.calendarRepo.Load(ctx)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return domain.Calendar{}, fmt.Errorf("load calendar: %w", err)
	}
	cal, migrated, err := s.engine.Migrate(raw)
	if err != nil {
		return domain.Calendar{}, fmt.Errorf("load calendar: %w", err)
	}
	if migrated {
		s.logger.Info("legacy calendar migrated", "categories", len(cal.Categories), "events", cal.EventCount())
	}
	return cal, nil
}

func (s *calendarService) store(ctx context.Context, cal domain.Calendar) error {
	cal.Version = domain.CalendarVersion
	if cal.Categories == nil {
		cal.Categories = []domain.Category{}
	}
	if cal.Events == nil {
		cal.Events = map[domain.CampusID][]domain.Event{}
	}
	doc, err := json.Marshal(cal)
	if err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}
	if err := s.calendarRepo.Save(ctx, doc); err != nil {
		return fmt.Errorf("save calendar: %w", err)
	}
	return nil
}

func (s *calendarService) catalogue(ctx context.Context) (domain.Catalogue, error) {
	if s.cache != nil {
		cat, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn("catalogue cache read failed", "err", err)
		} else if ok {
			return cat, nil
		}
	}

	subs, err := s.submissionRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	cfg, err := s.appConfigRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get app config: %w", err)
	}
	cat := s.builder.Build(subs, cfg.Campi)
	if s.cache != nil {
		if err := s.cache.Set(ctx, cat); err != nil {
			s.logger.Warn("catalogue cache write failed", "err", err)
		}
	}
	return cat, nil
}
