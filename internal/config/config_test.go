package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultMaxDepth, cfg.MaxDepth)
	assert.Equal(t, "tree", cfg.Output)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "calder.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_depth: 64\noutput: canonical\n"), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.MaxDepth)
	assert.Equal(t, "canonical", cfg.Output)
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "calder.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_depth: 64\n"), 0o644))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("max-depth", 0, "")
	flags.String("output", "", "")
	require.NoError(t, flags.Parse([]string{"--max-depth", "128"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, 128, cfg.MaxDepth, "explicit flag wins over config file")
}

func TestUnchangedFlagsDoNotOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "calder.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: canonical\n"), 0o644))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "", "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "canonical", cfg.Output, "unset flag must not clobber the file value")
}

func TestEnvOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "calder.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_depth: 64\n"), 0o644))

	t.Setenv("CALDER_MAX_DEPTH", "256")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 256, cfg.MaxDepth)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "valid", cfg: Config{MaxDepth: 10, Output: "tree"}},
		{name: "zero depth", cfg: Config{MaxDepth: 0, Output: "tree"}, wantErr: true},
		{name: "negative depth", cfg: Config{MaxDepth: -1, Output: "tree"}, wantErr: true},
		{name: "bad output", cfg: Config{MaxDepth: 10, Output: "json"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
