package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campuscalendar/internal/domain"
)

func TestAppConfigService_Get(t *testing.T) {
	ctx := context.Background()

	svc := NewAppConfigService(&fakeAppConfigRepo{}, nil, testLogger(), 5*time.Second)
	cfg, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppConfig(), cfg, "nothing stored yields the default base")

	stored := &domain.AppConfig{ICTs: []string{"UFBA"}, Campi: []domain.Campus{{ID: "1", Name: "Salvador", ICTName: "UFBA"}}}
	svc = NewAppConfigService(&fakeAppConfigRepo{cfg: stored}, nil, testLogger(), 5*time.Second)
	cfg, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, cfg)
}

func TestAppConfigService_Import(t *testing.T) {
	ctx := context.Background()
	repo := &fakeAppConfigRepo{}
	cache := &fakeCatalogueCache{}
	svc := NewAppConfigService(repo, cache, testLogger(), 5*time.Second)

	cfg, err := svc.Import(ctx, [][]string{
		{"IFSP", "Instituto Federal de São Paulo", "Campus São Paulo"},
		{"IFSP", "Instituto Federal de São Paulo", "Campus Pirituba"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"IFSP - Instituto Federal de São Paulo"}, cfg.ICTs)
	assert.Len(t, cfg.Campi, 2)
	assert.Equal(t, 1, repo.saves)
	assert.Equal(t, 1, cache.invalidated)

	_, err = svc.Import(ctx, [][]string{{"only", "two"}})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "rows", verr.Field)
	assert.Equal(t, 1, repo.saves)
}

func TestAppConfigService_Replace(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		in        *domain.AppConfig
		wantICTs  []string
		wantField string
	}{
		{
			name: "adds campus institutions and sorts",
			in: &domain.AppConfig{
				ICTs:  []string{" UFBA ", ""},
				Campi: []domain.Campus{{ID: "2", Name: " Campus Avaré ", ICTName: "IFSP"}},
			},
			wantICTs: []string{"IFSP", "UFBA"},
		},
		{name: "nil config", in: nil, wantField: "config"},
		{name: "empty", in: &domain.AppConfig{}, wantField: "icts"},
		{
			name:      "campus without id",
			in:        &domain.AppConfig{Campi: []domain.Campus{{Name: "X", ICTName: "IFSP"}}},
			wantField: "campi",
		},
		{
			name:      "duplicate ids",
			in:        &domain.AppConfig{Campi: []domain.Campus{{ID: "1", Name: "X", ICTName: "IFSP"}, {ID: "1", Name: "Y", ICTName: "IFSP"}}},
			wantField: "campi",
		},
		{
			name:      "campus without institution",
			in:        &domain.AppConfig{Campi: []domain.Campus{{ID: "1", Name: "X"}}},
			wantField: "campi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeAppConfigRepo{}
			svc := NewAppConfigService(repo, nil, testLogger(), 5*time.Second)
			got, err := svc.Replace(ctx, tt.in)
			if tt.wantField != "" {
				var verr *domain.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantField, verr.Field)
				assert.Zero(t, repo.saves)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantICTs, got.ICTs)
			assert.Equal(t, "Campus Avaré", got.Campi[0].Name)
			assert.Equal(t, 1, repo.saves)
		})
	}
}

func TestAppConfigService_RestoreDefaultAndSaveError(t *testing.T) {
	ctx := context.Background()
	repo := &fakeAppConfigRepo{}
	svc := NewAppConfigService(repo, nil, testLogger(), 5*time.Second)

	cfg, err := svc.RestoreDefault(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppConfig(), cfg)

	repo.saveErr = errors.New("db down")
	_, err = svc.RestoreDefault(ctx)
	require.Error(t, err)
}
