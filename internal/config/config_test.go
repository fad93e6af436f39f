package config_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"slp/internal/config"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "slp.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0644)).Required()
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeSettings(t, `
scenarios_file = "/etc/slp/scenarios.yaml"
top = 3
color = true
json = false
log_level = "debug"
`)

	s, err := config.Load(path)
	gt.NoError(t, err).Required()
	gt.Value(t, s.ScenariosFile).Equal("/etc/slp/scenarios.yaml")
	gt.Value(t, s.Top).NotNil()
	gt.Value(t, *s.Top).Equal(3)
	gt.Value(t, *s.Color).Equal(true)
	gt.Value(t, *s.JSON).Equal(false)
	gt.Value(t, s.LogLevel).Equal("debug")
}

func TestLoad_Empty(t *testing.T) {
	s, err := config.Load(writeSettings(t, ""))
	gt.NoError(t, err).Required()
	gt.Value(t, s.ScenariosFile).Equal("")
	gt.Bool(t, s.Top == nil).True()
	gt.Bool(t, s.Color == nil).True()
	gt.Bool(t, s.JSON == nil).True()
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "bad log level", content: `log_level = "loud"`, wantErr: config.ErrInvalidLogLevel},
		{name: "unknown key", content: `colour = true`},
		{name: "wrong type", content: `top = "five"`},
		{name: "syntax", content: `top = `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeSettings(t, tt.content))
			gt.Value(t, err).NotNil()
			if tt.wantErr != nil && err != nil {
				gt.Error(t, err).Is(tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	gt.Value(t, err).NotNil()
	gt.Bool(t, errors.Is(err, fs.ErrNotExist)).True()
}

func TestValidate_LogLevelCaseInsensitive(t *testing.T) {
	s := config.Settings{LogLevel: "WARN"}
	gt.NoError(t, s.Validate())
}
