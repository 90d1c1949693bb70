package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"MONGODB_URI", "MONGODB_DATABASE", "JWT_SECRET", "PORT", "ADMIN_EMAIL", "ADMIN_NAME", "ADMIN_PASSWORD_HASH"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "mongodb://127.0.0.1:27017", cfg.MongoURI)
	assert.Equal(t, "chatty", cfg.MongoDatabase)
	assert.Equal(t, "5000", cfg.Port)
	require.Len(t, cfg.Admins, 1)
	assert.Equal(t, "admin@chatty.com", cfg.Admins[0].Email)
	assert.NotEmpty(t, cfg.Admins[0].PasswordHash)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("MONGODB_DATABASE", "chatty_test")
	t.Setenv("PORT", "9000")
	t.Setenv("ADMIN_EMAIL", "ops@chatty.com")

	cfg := Load()

	assert.Equal(t, "chatty_test", cfg.MongoDatabase)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "ops@chatty.com", cfg.Admins[0].Email)
}

func TestFindAdmin(t *testing.T) {
	cfg := &Config{Admins: []AdminAccount{
		{ID: 1, Email: "admin@chatty.com", Name: "Admin User"},
	}}

	admin := cfg.FindAdminByEmail("admin@chatty.com")
	require.NotNil(t, admin)
	assert.Equal(t, 1, admin.ID)

	assert.Nil(t, cfg.FindAdminByEmail("nobody@chatty.com"))

	admin = cfg.FindAdminByID(1)
	require.NotNil(t, admin)
	assert.Equal(t, "Admin User", admin.Name)

	assert.Nil(t, cfg.FindAdminByID(2))
}
