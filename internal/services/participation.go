package services

import (
	"context"
	"fmt"
	"time"

	"campuscalendar/internal/catalogue"
	"campuscalendar/internal/domain"
)

type participationService struct {
	submissionRepo domain.SubmissionRepository
	builder        *catalogue.Builder
	contextTimeout time.Duration
}

func NewParticipationService(submissionRepo domain.SubmissionRepository, builder *catalogue.Builder, timeout time.Duration) domain.ParticipationService {
	return &participationService{
		submissionRepo: submissionRepo,
		builder:        builder,
		contextTimeout: timeout,
	}
}

func (s *participationService) Overview(ctx context.Context, formConfigID *string) (domain.ParticipationOverview, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	subs, err := s.submissionRepo.List(ctx, formConfigID)
	if err != nil {
		return domain.ParticipationOverview{}, fmt.Errorf("list submissions: %w", err)
	}
	return s.builder.Summarize(subs), nil
}
