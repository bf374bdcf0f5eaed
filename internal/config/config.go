// Package config loads the startup configuration for subboard.
//
// The configuration is a flat key/value document (config.toml) that
// supplies the backend base URL, the three path segments used to build
// the two endpoint URLs, and a display font name. A missing or
// malformed configuration is a fatal startup condition: there is no
// meaningful default for a backend address.
package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/subitlab-buf/subboard-mng-gui/internal/errors"
)

const (
	// Required backend keys.
	KeyHostURL        = "host_url"
	KeyGlobalMapping  = "global_mapping"
	KeyPendingMapping = "paper_need_process_mapping"
	KeyProcessMapping = "process_paper_mapping"

	// KeyFont names the display font. The desktop build of the console
	// loads it; a terminal renders with whatever font the emulator has,
	// so the key is accepted and validated but otherwise unused here.
	KeyFont = "font"

	// Optional keys.
	KeyTheme       = "theme"
	KeyPollSeconds = "poll_seconds"
)

const (
	// DefaultPollSeconds is the periodic refresh interval.
	DefaultPollSeconds = 45
	envPrefix          = "SUBBOARD"
	configFileName     = "config.toml"
	userConfigDirName  = ".subboard"
)

type initSettings struct {
	workingDir     string
	configPath     string
	userConfigPath string
}

// Option configures Initialize behaviour. Useful for tests to override paths.
type Option func(*initSettings)

// WithWorkingDir overrides the directory searched for config.toml.
func WithWorkingDir(dir string) Option {
	return func(cfg *initSettings) {
		cfg.workingDir = dir
	}
}

// WithConfigFile explicitly sets the config file path instead of discovery.
func WithConfigFile(path string) Option {
	return func(cfg *initSettings) {
		cfg.configPath = path
	}
}

// WithUserConfig overrides the default user config path.
func WithUserConfig(path string) Option {
	return func(cfg *initSettings) {
		cfg.userConfigPath = path
	}
}

var (
	configOnce sync.Once
	configMu   sync.RWMutex
	configInst *viper.Viper
	initErr    error
)

// Initialize loads configuration using the precedence:
// defaults < user config < working-dir config < environment variables.
func Initialize(opts ...Option) error {
	configOnce.Do(func() {
		settings := initSettings{}
		for _, opt := range opts {
			opt(&settings)
		}
		initErr = configure(&settings)
	})
	return initErr
}

// Validate checks that every required key carries a non-blank value.
// It reports all missing keys at once so the operator fixes the file in
// one pass.
func Validate() error {
	if err := Initialize(); err != nil {
		return err
	}
	var missing []string
	for _, key := range []string{KeyHostURL, KeyGlobalMapping, KeyPendingMapping, KeyProcessMapping, KeyFont} {
		if strings.TrimSpace(GetString(key)) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return errors.New(errors.CodeConfigurationError,
			fmt.Sprintf("missing required configuration keys: %s", strings.Join(missing, ", ")), nil)
	}
	return nil
}

// GetString fetches a string configuration value, initializing on demand.
func GetString(key string) string {
	v, err := getViper()
	if err != nil {
		return ""
	}
	return v.GetString(key)
}

// GetInt fetches an integer configuration value, initializing on demand.
func GetInt(key string) int {
	v, err := getViper()
	if err != nil {
		return 0
	}
	return v.GetInt(key)
}

// Set updates a configuration key at runtime, initializing on demand.
func Set(key string, value any) error {
	if err := Initialize(); err != nil {
		return err
	}
	configMu.Lock()
	defer configMu.Unlock()
	if configInst == nil {
		return fmt.Errorf("configuration not initialized")
	}
	configInst.Set(key, value)
	return nil
}

func getViper() (*viper.Viper, error) {
	if err := Initialize(); err != nil {
		return nil, err
	}
	configMu.RLock()
	defer configMu.RUnlock()
	if configInst == nil {
		return nil, fmt.Errorf("configuration not initialized")
	}
	return configInst, nil
}

func configure(settings *initSettings) error {
	v := viper.New()
	v.SetConfigType("toml")
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if explicit := strings.TrimSpace(settings.configPath); explicit != "" {
		if err := mergeConfigFile(v, explicit, true); err != nil {
			return errors.New(errors.CodeConfigurationError, "", err)
		}
		configMu.Lock()
		defer configMu.Unlock()
		configInst = v
		return nil
	}

	workingDir := strings.TrimSpace(settings.workingDir)
	if workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("determine working directory: %w", err)
		}
		workingDir = wd
	}

	userConfigPath := strings.TrimSpace(settings.userConfigPath)
	if userConfigPath == "" {
		path, err := defaultUserConfigPath()
		if err != nil {
			return err
		}
		userConfigPath = path
	}

	if err := mergeConfigFile(v, userConfigPath, false); err != nil {
		return errors.New(errors.CodeConfigurationError, "", fmt.Errorf("load user config: %w", err))
	}
	if err := mergeConfigFile(v, filepath.Join(workingDir, configFileName), false); err != nil {
		return errors.New(errors.CodeConfigurationError, "", fmt.Errorf("load config: %w", err))
	}

	configMu.Lock()
	defer configMu.Unlock()
	configInst = v
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyPollSeconds, DefaultPollSeconds)
	v.SetDefault(KeyTheme, "")
}

// mergeConfigFile folds a config file into v. When required is false a
// missing file is not an error; the other source may still supply the
// keys, and Validate catches the case where none did.
func mergeConfigFile(v *viper.Viper, path string, required bool) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	info, err := os.Stat(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		if required {
			return fmt.Errorf("configuration file %s not found", path)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", path)
	}
	//nolint:gosec // G304: Config loader intentionally reads user config files
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// FileDescription names the default config locations for startup
// diagnostics.
func FileDescription() string {
	return fmt.Sprintf("./%s or ~/%s/%s", configFileName, userConfigDirName, configFileName)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, userConfigDirName, configFileName), nil
}

// reset clears the cached configuration. Only for tests.
func reset() {
	configMu.Lock()
	defer configMu.Unlock()
	configOnce = sync.Once{}
	configInst = nil
	initErr = nil
}
