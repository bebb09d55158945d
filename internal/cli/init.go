package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/sierra/internal/dtd"
	"github.com/mesh-intelligence/sierra/internal/paths"
	"github.com/mesh-intelligence/sierra/internal/sqlite"
	"github.com/mesh-intelligence/sierra/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend    string `yaml:"backend"`
	DataDir    string `yaml:"data_dir,omitempty"`
	Bindings   string `yaml:"bindings,omitempty"`
	SearchPath string `yaml:"search_path,omitempty"`
	Grammar    string `yaml:"grammar"`
}

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize sierra configuration and grammar store",
		Long:  "Create the configuration directory with a default config.yaml, then initialize the grammar store in the data directory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd)
		},
	}
}

func (a *app) runInit(cmd *cobra.Command) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	cfg, err := a.storeConfig()
	if err != nil {
		return userError(err)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}

	configPath := filepath.Join(configDir, configFileExt)
	created, err := writeConfigIfMissing(configPath, a.config.GetString(cfgKeyDataDir))
	if err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}
	if created {
		a.log.Debug("config written", "path", configPath)
	}

	store := sqlite.NewBackend()
	if err := store.Attach(cfg); err != nil {
		return sysError(fmt.Errorf("initialize grammar store: %w", err))
	}
	if err := store.Detach(); err != nil {
		return sysError(fmt.Errorf("finalize grammar store: %w", err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Sierra initialized (config: %s, data: %s)\n", configDir, cfg.DataDir)
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. It reports whether a file was written.
func writeConfigIfMissing(path, dataDir string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	cfg := configFile{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
		Grammar: dtd.DefaultFileName,
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	return true, os.WriteFile(path, data, 0o644)
}
