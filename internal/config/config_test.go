package config

import (
	"errors"
	"testing"

	"github.com/IgorBayerl/linereader/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfiguration_Defaults(t *testing.T) {
	cfg := NewConfiguration([]string{"a.txt"}, "", " out.txt ", "", logging.Info, 0, false, true)

	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "out.txt", cfg.OutputFile)
	assert.True(t, cfg.NumberLines)
	assert.NoError(t, cfg.Validate())
}

func TestNewConfiguration_NormalizesFormat(t *testing.T) {
	cfg := NewConfiguration([]string{"a.txt"}, " JSON ", "", "Json", logging.Verbose, 1024, true, false)

	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *Configuration
		wantField string
	}{
		{
			name:      "no files",
			cfg:       NewConfiguration(nil, "text", "", "console", logging.Info, 0, false, false),
			wantField: "Files",
		},
		{
			name:      "empty file name",
			cfg:       NewConfiguration([]string{"a.txt", ""}, "text", "", "console", logging.Info, 0, false, false),
			wantField: "Files[1]",
		},
		{
			name:      "unknown format",
			cfg:       NewConfiguration([]string{"a.txt"}, "xml", "", "console", logging.Info, 0, false, false),
			wantField: "Format",
		},
		{
			name:      "unknown log format",
			cfg:       NewConfiguration([]string{"a.txt"}, "html", "", "logfmt", logging.Info, 0, false, false),
			wantField: "LogFormat",
		},
		{
			name:      "negative max line size",
			cfg:       NewConfiguration([]string{"a.txt"}, "text", "", "console", logging.Info, -1, false, false),
			wantField: "MaxLineSize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	cfg := NewConfiguration(nil, "pdf", "", "console", logging.Info, -5, false, false)

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Files")
	assert.Contains(t, err.Error(), "Format")
	assert.Contains(t, err.Error(), "MaxLineSize")
}

func TestValidate_EnglishMessages(t *testing.T) {
	cfg := NewConfiguration([]string{"a.txt"}, "xml", "", "console", logging.Info, 0, false, false)

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Format must be one of [text json html]")
}

func TestValidate_InitFailure(t *testing.T) {
	require.NoError(t, initValidator())

	saved := vInitErr
	vInitErr = errors.New("translations unavailable")
	t.Cleanup(func() { vInitErr = saved })

	cfg := NewConfiguration([]string{"a.txt"}, "text", "", "console", logging.Info, 0, false, false)
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "initializing validator")
	assert.ErrorIs(t, err, vInitErr)
}
