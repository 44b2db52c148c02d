package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "chronopulse.db", cfg.Storage.Filename)
	assert.Equal(t, 5*time.Second, cfg.Storage.WriteTimeout)
	assert.Equal(t, "02/01/2006", cfg.Display.DateFormat)
	assert.Equal(t, 4, cfg.Validation.PINLength)
	assert.Equal(t, "Standard Project", cfg.Seed.ProjectName)
	assert.Equal(t, "Standard Work", cfg.Seed.ActivityName)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_GetStoragePath(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.Dir = "/tmp/chrono"
	cfg.Storage.Filename = "data.db"

	assert.Equal(t, filepath.Join("/tmp/chrono", "data.db"), cfg.GetStoragePath())
}

func TestConfig_LoadFromEnvironment(t *testing.T) {
	t.Setenv("CHRONO_STORAGE_DIR", "/custom/dir")
	t.Setenv("CHRONO_STORAGE_WRITE_TIMEOUT", "2s")
	t.Setenv("CHRONO_VALIDATION_PIN_LENGTH", "6")
	t.Setenv("CHRONO_SEED_PROJECT", "Acme")
	t.Setenv("CHRONO_APP_VERBOSE", "true")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "/custom/dir", cfg.Storage.Dir)
	assert.Equal(t, 2*time.Second, cfg.Storage.WriteTimeout)
	assert.Equal(t, 6, cfg.Validation.PINLength)
	assert.Equal(t, "Acme", cfg.Seed.ProjectName)
	assert.True(t, cfg.Application.Verbose)
}

func TestConfig_LoadFromEnvironment_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("CHRONO_STORAGE_WRITE_TIMEOUT", "not-a-duration")
	t.Setenv("CHRONO_VALIDATION_PIN_LENGTH", "not-a-number")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, 5*time.Second, cfg.Storage.WriteTimeout)
	assert.Equal(t, 4, cfg.Validation.PINLength)
}

func TestConfig_LoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
storage:
  dir: /from/yaml
display:
  date_format: "2006-01-02"
seed:
  project_name: Yaml Project
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromFile(path))

	assert.Equal(t, "/from/yaml", cfg.Storage.Dir)
	assert.Equal(t, "2006-01-02", cfg.Display.DateFormat)
	assert.Equal(t, "Yaml Project", cfg.Seed.ProjectName)
	// Untouched values keep their defaults
	assert.Equal(t, "chronopulse.db", cfg.Storage.Filename)
}

func TestConfig_LoadFromFile_MissingFileIsNotAnError(t *testing.T) {
	cfg := NewConfig()
	assert.NoError(t, cfg.LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml")))
}

func TestConfig_LoadFromFile_CorruptYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml::"), 0644))

	cfg := NewConfig()
	assert.Error(t, cfg.LoadFromFile(path))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "empty storage dir",
			mutate:  func(c *Config) { c.Storage.Dir = "" },
			wantErr: "storage.dir",
		},
		{
			name:    "non-positive write timeout",
			mutate:  func(c *Config) { c.Storage.WriteTimeout = 0 },
			wantErr: "storage.write_timeout",
		},
		{
			name:    "max name length below min",
			mutate:  func(c *Config) { c.Validation.NameMaxLength = 0 },
			wantErr: "validation.name_max_length",
		},
		{
			name:    "pin too short",
			mutate:  func(c *Config) { c.Validation.PINLength = 3 },
			wantErr: "validation.pin_length",
		},
		{
			name:    "empty seed project",
			mutate:  func(c *Config) { c.Seed.ProjectName = "" },
			wantErr: "seed.project_name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoader_Load(t *testing.T) {
	t.Setenv("CHRONO_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("CHRONO_STORAGE_DIR", t.TempDir())

	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

func TestConfigFilePath_EnvOverride(t *testing.T) {
	t.Setenv("CHRONO_CONFIG", "/explicit/config.yaml")
	assert.Equal(t, "/explicit/config.yaml", ConfigFilePath())
}
