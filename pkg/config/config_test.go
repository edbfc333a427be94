package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServerConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		args    []string
		want    *ServerConfig
		wantErr bool
	}{
		{
			name: "defaults",
			want: &ServerConfig{
				Port:      5656,
				HTTPPort:  8080,
				MaxX:      1024,
				MaxY:      768,
				Obstacles: 20,
				LogLevel:  "info",
			},
		},
		{
			name: "environment",
			env: map[string]string{
				EnvPort:      "7000",
				EnvObstacles: "0",
				EnvLogLevel:  "debug",
				EnvLogFile:   "/tmp/spacewar.log",
			},
			want: &ServerConfig{
				Port:      7000,
				HTTPPort:  8080,
				MaxX:      1024,
				MaxY:      768,
				Obstacles: 0,
				LogLevel:  "debug",
				LogFile:   "/tmp/spacewar.log",
			},
		},
		{
			name: "flags override environment",
			env:  map[string]string{EnvPort: "7000", EnvMaxX: "500"},
			args: []string{"-port", "7001", "-max-y", "400", "-http-port", "0"},
			want: &ServerConfig{
				Port:      7001,
				HTTPPort:  0,
				MaxX:      500,
				MaxY:      400,
				Obstacles: 20,
				LogLevel:  "info",
			},
		},
		{
			name:    "bad environment value",
			env:     map[string]string{EnvMaxY: "tall"},
			wantErr: true,
		},
		{
			name:    "invalid bounds",
			args:    []string{"-max-x", "0"},
			wantErr: true,
		},
		{
			name:    "invalid port",
			args:    []string{"-port", "70000"},
			wantErr: true,
		},
		{
			name:    "unknown flag",
			args:    []string{"-nope"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{EnvPort, EnvHTTPPort, EnvMaxX, EnvMaxY, EnvObstacles, EnvLogLevel, EnvLogFile} {
				t.Setenv(key, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got, err := LoadServerConfig("test", tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("SPACEWAR_TEST_FROM_FILE=7777\nSPACEWAR_TEST_PRESET=file\n"), 0o600))

	t.Setenv("SPACEWAR_TEST_PRESET", "env")
	t.Setenv("SPACEWAR_TEST_FROM_FILE", "")
	os.Unsetenv("SPACEWAR_TEST_FROM_FILE")

	require.NoError(t, LoadEnvFiles(path, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "7777", os.Getenv("SPACEWAR_TEST_FROM_FILE"))
	assert.Equal(t, "env", os.Getenv("SPACEWAR_TEST_PRESET"))
}
