package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/busmanager/backend/internal/entity"
	"github.com/busmanager/backend/internal/repository"
)

func TestSettingRepository_Upsert(t *testing.T) {
	db := repository.SetupTestDatabase(t)
	repo := repository.NewSettingRepository(db)
	ctx := context.Background()

	created, err := repo.UpsertSetting(ctx, entity.SettingAdminAlertEmail, "ops@example.com", "alert recipient")
	require.NoError(t, err)
	require.Equal(t, "ops@example.com", created.Value)

	updated, err := repo.UpsertSetting(ctx, entity.SettingAdminAlertEmail, "fleet@example.com", "")
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "fleet@example.com", updated.Value)

	got, err := repo.Setting(ctx, entity.SettingAdminAlertEmail)
	require.NoError(t, err)
	require.Equal(t, "fleet@example.com", got.Value)
}

func TestSettingRepository_NotFound(t *testing.T) {
	db := repository.SetupTestDatabase(t)
	repo := repository.NewSettingRepository(db)

	_, err := repo.Setting(context.Background(), "no_such_key")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestSettingRepository_Settings(t *testing.T) {
	db := repository.SetupTestDatabase(t)
	repo := repository.NewSettingRepository(db)
	ctx := context.Background()

	_, err := repo.UpsertSetting(ctx, entity.SettingAdminAlertEmail, "ops@example.com", "")
	require.NoError(t, err)

	_, err = repo.UpsertSetting(ctx, entity.SettingInvoiceGSTDefault, "18", "")
	require.NoError(t, err)

	settings, err := repo.Settings(ctx)
	require.NoError(t, err)

	byKey := make(map[string]string, len(settings))
	for _, s := range settings {
		byKey[s.Key] = s.Value
	}

	require.Equal(t, "ops@example.com", byKey[entity.SettingAdminAlertEmail])
	require.Equal(t, "18", byKey[entity.SettingInvoiceGSTDefault])
}
