package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/sierra/internal/dtd"
	"github.com/mesh-intelligence/sierra/internal/paths"
	"github.com/mesh-intelligence/sierra/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBackend    = "backend"
	cfgKeyDataDir    = "data_dir"
	cfgKeyBindings   = "bindings"
	cfgKeySearchPath = "search_path"
	cfgKeyGrammar    = "grammar"
)

// envBindings are the config keys that environment variables override.
// data_dir is absent: its env variable sits below config.yaml in the
// precedence chain and is handled by paths.ResolveDataDir.
var envBindings = map[string]string{
	cfgKeyBackend:    "SIERRA_BACKEND",
	cfgKeyBindings:   "SIERRA_BINDINGS",
	cfgKeySearchPath: "SIERRA_SEARCH_PATH",
	cfgKeyGrammar:    "SIERRA_GRAMMAR",
}

// loadConfig reads config.yaml from configDir, falling back to the per-user
// configuration directory. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendSQLite)
	v.SetDefault(cfgKeyGrammar, dtd.DefaultFileName)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	if userDir, err := paths.UserConfigDir(); err == nil {
		v.AddConfigPath(userDir)
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// storeConfig resolves the grammar store configuration.
func (a *app) storeConfig() (types.Config, error) {
	dataDir, err := paths.ResolveDataDir(a.flags.dataDir, a.config.GetString(cfgKeyDataDir))
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}
	cfg := types.Config{
		Backend: a.config.GetString(cfgKeyBackend),
		DataDir: dataDir,
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("config %s: %w", cfgKeyBackend, err)
	}
	return cfg, nil
}

// stringSetting returns flag when set, else the config value for key.
func (a *app) stringSetting(flag, key string) string {
	if flag != "" {
		return flag
	}
	return a.config.GetString(key)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
