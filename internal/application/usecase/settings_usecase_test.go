package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanvirul/shopledger-api/internal/application/dto"
	"github.com/tanvirul/shopledger-api/internal/application/usecase"
	"github.com/tanvirul/shopledger-api/internal/domain"
	"github.com/tanvirul/shopledger-api/internal/domain/dates"
	"github.com/tanvirul/shopledger-api/internal/domain/entity"
)

type settingsRepoStub struct {
	settings *entity.Settings
	creates  int
}

func (r *settingsRepoStub) Get(context.Context) (*entity.Settings, error) {
	return r.settings, nil
}

func (r *settingsRepoStub) GetForUpdate(ctx context.Context) (*entity.Settings, error) {
	return r.Get(ctx)
}

func (r *settingsRepoStub) Create(_ context.Context, s *entity.Settings) error {
	r.settings = s
	r.creates++
	return nil
}

func (r *settingsRepoStub) Update(_ context.Context, s *entity.Settings) error {
	r.settings = s
	return nil
}

func TestSettingsGet_LazilyCreatesDefaults(t *testing.T) {
	repo := &settingsRepoStub{}
	uc := usecase.NewSettingsUseCase(repo)

	out, err := uc.Get(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, entity.DefaultLowStockThreshold, out.LowStockThreshold)
	assert.EqualValues(t, 0, out.TotalInventory)
	assert.Equal(t, 1, repo.creates)
	require.NotNil(t, repo.settings)
	assert.Equal(t, "admin", repo.settings.OwnerSecretPassword)

	// A second read reuses the row.
	_, err = uc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.creates)
}

func TestVerifySecret(t *testing.T) {
	repo := &settingsRepoStub{settings: &entity.Settings{ID: 1, OwnerSecretPassword: "admin"}}
	uc := usecase.NewSettingsUseCase(repo)

	assert.NoError(t, uc.VerifySecret(context.Background(), "admin"))
	assert.ErrorIs(t, uc.VerifySecret(context.Background(), "wrong"), domain.ErrInvalidSecret)
	assert.ErrorIs(t, uc.VerifySecret(context.Background(), ""), domain.ErrInvalidSecret)
}

func TestVerifySecret_NoSettingsYet(t *testing.T) {
	uc := usecase.NewSettingsUseCase(&settingsRepoStub{})
	assert.ErrorIs(t, uc.VerifySecret(context.Background(), "admin"), domain.ErrInvalidSecret)
}

func TestSettingsUpdate_PatchesOnlyProvidedFields(t *testing.T) {
	repo := &settingsRepoStub{settings: &entity.Settings{
		ID:                  1,
		OwnerSecretPassword: "admin",
		LowStockThreshold:   100,
		TotalInventory:      250,
	}}
	uc := usecase.NewSettingsUseCase(repo)

	threshold := int64(80)
	out, err := uc.Update(context.Background(), dto.UpdateSettingsRequest{LowStockThreshold: &threshold})
	require.NoError(t, err)

	assert.EqualValues(t, 80, out.LowStockThreshold)
	assert.Equal(t, "admin", repo.settings.OwnerSecretPassword, "secret stays when not provided")
	assert.EqualValues(t, 250, repo.settings.TotalInventory, "totals are never patched directly")

	secret := "new-secret"
	_, err = uc.Update(context.Background(), dto.UpdateSettingsRequest{OwnerSecretPassword: &secret})
	require.NoError(t, err)
	assert.Equal(t, "new-secret", repo.settings.OwnerSecretPassword)
	assert.EqualValues(t, 80, repo.settings.LowStockThreshold)
}

func TestSettingsUpdate_EmptySecretIgnored(t *testing.T) {
	repo := &settingsRepoStub{settings: &entity.Settings{ID: 1, OwnerSecretPassword: "admin", LowStockThreshold: 100}}
	uc := usecase.NewSettingsUseCase(repo)

	empty := ""
	_, err := uc.Update(context.Background(), dto.UpdateSettingsRequest{OwnerSecretPassword: &empty})
	require.NoError(t, err)
	assert.Equal(t, "admin", repo.settings.OwnerSecretPassword)
}

func TestSettingsUpdate_NotFoundWithoutRow(t *testing.T) {
	uc := usecase.NewSettingsUseCase(&settingsRepoStub{})
	threshold := int64(50)
	_, err := uc.Update(context.Background(), dto.UpdateSettingsRequest{LowStockThreshold: &threshold})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

type notificationRepoStub struct {
	items map[string]*entity.Notification
}

func (r *notificationRepoStub) Create(_ context.Context, n *entity.Notification) error {
	r.items[n.ID] = n
	return nil
}

func (r *notificationRepoStub) GetByID(_ context.Context, id string) (*entity.Notification, error) {
	return r.items[id], nil
}

func (r *notificationRepoStub) Update(_ context.Context, n *entity.Notification) error {
	r.items[n.ID] = n
	return nil
}

func (r *notificationRepoStub) List(context.Context) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range r.items {
		out = append(out, n)
	}
	return out, nil
}

func (r *notificationRepoStub) FindPending(context.Context, string, dates.Window) (*entity.Notification, error) {
	return nil, nil
}

func (r *notificationRepoStub) CompletePending(context.Context, string, dates.Window) error {
	return nil
}

func (r *notificationRepoStub) CompleteAllPending(context.Context, string) error { return nil }

func TestMarkCompleted(t *testing.T) {
	repo := &notificationRepoStub{items: map[string]*entity.Notification{
		"n-1": {
			ID:      "n-1",
			Date:    time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			Type:    entity.NotificationLowStock,
			Status:  entity.NotificationPending,
			Message: "Low Stock Warning – Production Required (Current: 90)",
		},
	}}
	uc := usecase.NewNotificationUseCase(repo)

	out, err := uc.MarkCompleted(context.Background(), "n-1")
	require.NoError(t, err)
	assert.Equal(t, entity.NotificationCompleted, out.Status)

	// One-way transition: completing again is a no-op, not an error.
	out, err = uc.MarkCompleted(context.Background(), "n-1")
	require.NoError(t, err)
	assert.Equal(t, entity.NotificationCompleted, out.Status)
}

func TestMarkCompleted_UnknownID(t *testing.T) {
	uc := usecase.NewNotificationUseCase(&notificationRepoStub{items: map[string]*entity.Notification{}})
	_, err := uc.MarkCompleted(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
