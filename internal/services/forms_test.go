package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campuscalendar/internal/domain"
)

func TestFormService_Create(t *testing.T) {
	ctx := context.Background()
	repo := newFakeFormRepo()
	svc := NewFormService(repo, nil, testLogger(), 5*time.Second)

	f, err := svc.Create(ctx, " Registro 2026 ", " Edital Inovação ")
	require.NoError(t, err)
	assert.Equal(t, "form-new", f.ID)
	assert.Equal(t, "Registro 2026", f.Title)
	assert.Equal(t, "Edital Inovação", f.EdictName)
	assert.True(t, f.IsActive)

	_, err = svc.Create(ctx, "", "Edital")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.Create(ctx, "Registro", " ")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 1, repo.created)
}

func TestFormService_Active(t *testing.T) {
	ctx := context.Background()
	older := &domain.FormConfig{ID: "a", IsActive: true, CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := &domain.FormConfig{ID: "b", IsActive: true, CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	inactive := &domain.FormConfig{ID: "c", IsActive: false, CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	svc := NewFormService(newFakeFormRepo(older, newer, inactive), nil, testLogger(), 5*time.Second)

	f, err := svc.Active(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "b", f.ID)

	id := "c"
	f, err = svc.Active(ctx, &id)
	require.NoError(t, err)
	assert.Equal(t, "c", f.ID, "an explicit id is returned even when inactive")

	missing := "zzz"
	_, err = svc.Active(ctx, &missing)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = NewFormService(newFakeFormRepo(inactive), nil, testLogger(), time.Second).Active(ctx, nil)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFormService_SetActiveAndDelete(t *testing.T) {
	ctx := context.Background()
	f := &domain.FormConfig{ID: "a", IsActive: true}
	repo := newFakeFormRepo(f)
	cache := &fakeCatalogueCache{}
	svc := NewFormService(repo, cache, testLogger(), 5*time.Second)

	require.NoError(t, svc.SetActive(ctx, "a", false))
	assert.False(t, f.IsActive)
	require.ErrorIs(t, svc.SetActive(ctx, "zzz", true), domain.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, "a"))
	assert.Empty(t, repo.forms)
	assert.Equal(t, 1, cache.invalidated)
	require.ErrorIs(t, svc.Delete(ctx, "a"), domain.ErrNotFound)
	assert.Equal(t, 1, cache.invalidated)
}

func TestFormService_InitializeLegacy(t *testing.T) {
	repo := newFakeFormRepo()
	repo.orphans = 37
	svc := NewFormService(repo, nil, testLogger(), 5*time.Second)

	f, n, err := svc.InitializeLegacy(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(37), n)
	assert.Equal(t, domain.DefaultFormTitle, f.Title)
	assert.Equal(t, domain.DefaultFormEdictName, f.EdictName)
	assert.True(t, f.IsActive)
}
