package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/babarot/brm/internal/env"
	"github.com/k1LoW/duration"
	"github.com/muesli/reflow/indent"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const envPrefix = "BRM"

// KeyPathToTrash is the config key holding the trash directory
const KeyPathToTrash = "path_to_trash"

type Config struct {
	// PathToTrash may contain "~" and environment variables; it is
	// expanded by the location resolver.
	PathToTrash string `mapstructure:"path_to_trash" toml:"path_to_trash" validate:"required,trashdir"`

	// Protected lists glob patterns that must never be trashed or deleted
	Protected []string `mapstructure:"protected" toml:"protected" validate:"dive,glob"`

	Restore RestoreConfig `mapstructure:"restore" toml:"restore"`
	Record  RecordConfig  `mapstructure:"record" toml:"record"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging"`
}

type RestoreConfig struct {
	Verbose bool `mapstructure:"verbose" toml:"verbose"`
}

type RecordConfig struct {
	// LockTimeout bounds the wait for another brm holding the record file,
	// e.g. "5s" or "1 minute"
	LockTimeout string `mapstructure:"lock_timeout" toml:"lock_timeout" validate:"required,duration"`
}

// Timeout returns LockTimeout parsed. Validated configs always parse.
func (c RecordConfig) Timeout() time.Duration {
	d, err := duration.Parse(c.LockTimeout)
	if err != nil {
		return 0
	}
	return d
}

type LoggingConfig struct {
	Enabled  bool           `mapstructure:"enabled" toml:"enabled"`
	Level    string         `mapstructure:"level" toml:"level" validate:"required,oneof=debug info warn error DEBUG INFO WARN ERROR"`
	Rotation RotationConfig `mapstructure:"rotation" toml:"rotation"`
}

type RotationConfig struct {
	MaxSize  string `mapstructure:"max_size" toml:"max_size" validate:"required,size"`
	MaxFiles int    `mapstructure:"max_files" toml:"max_files" validate:"gte=1"`
}

// configError is returned when the config file cannot be found or created
type configError struct {
	configPath string
	err        error
}

func (e configError) Error() string {
	return heredoc.Docf(`
		Couldn't find the "%s" config file.
		Please try again after creating it or specifying a valid config path.
		The recommended config path is %s (default).
		Example TOML file contents:
		---
		%s
		---
		Original error:
		%s
		`,
		e.configPath,
		env.BRM_CONFIG_PATH,
		defaultContents(),
		indent.String(e.err.Error(), 2),
	)
}

func (e configError) Unwrap() error {
	return e.err
}

type parsingError struct {
	err error
}

func (e parsingError) Error() string {
	return fmt.Sprintf("failed to parse config: %v", e.err)
}

func (e parsingError) Unwrap() error {
	return e.err
}

// ErrMissingTrashPath is returned when the config file parses but does
// not say where the trash lives
var ErrMissingTrashPath = errors.New("path_to_trash is not set")

// Parse reads the config file at path. An empty path means the default
// location, where a missing file is created with default contents.
func Parse(path string) (Config, error) {
	var cfg Config

	if path == "" {
		path = env.BRM_CONFIG_PATH
		if err := ensureConfigFile(path); err != nil {
			return cfg, parsingError{err: configError{configPath: path, err: err}}
		}
	}
	slog.Debug("config file found", "config-file", path)

	if _, err := os.Stat(path); err != nil {
		return cfg, parsingError{err: configError{configPath: path, err: err}}
	}

	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return cfg, parsingError{err: fmt.Errorf("failed to read config file: %w", err)}
	}

	if !v.IsSet(KeyPathToTrash) || strings.TrimSpace(v.GetString(KeyPathToTrash)) == "" {
		return cfg, parsingError{err: &MissingKeyError{Path: path, Key: KeyPathToTrash}}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, parsingError{err: fmt.Errorf("failed to unmarshal config: %w", err)}
	}

	if err := Validate(cfg); err != nil {
		return cfg, parsingError{err: err}
	}

	return cfg, nil
}

// newViper configures viper for path. Every key except path_to_trash has
// a default, so a sparse file is fine. Environment variables override the
// file, e.g. BRM_LOGGING_LEVEL=info.
func newViper(path string) *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv(KeyPathToTrash)

	defaults := NewDefaultConfig()
	v.SetDefault("protected", defaults.Protected)
	v.SetDefault("restore.verbose", defaults.Restore.Verbose)
	v.SetDefault("record.lock_timeout", defaults.Record.LockTimeout)
	v.SetDefault("logging.enabled", defaults.Logging.Enabled)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.rotation.max_size", defaults.Logging.Rotation.MaxSize)
	v.SetDefault("logging.rotation.max_files", defaults.Logging.Rotation.MaxFiles)

	v.SetConfigFile(path)
	v.SetConfigType("toml")
	return v
}

func ensureConfigFile(path string) error {
	if err := ensureDirExists(filepath.Dir(path)); err != nil {
		return err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Warn("creating config file as it does not exist", "config-file", path)
		f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0666)
		if err != nil {
			return err
		}
		defer f.Close()

		if _, err := f.WriteString(defaultContents()); err != nil {
			return err
		}
	}

	return nil
}

func ensureDirExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		slog.Warn("creating directory as it does not exist", "dir", dirPath)
		if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
			return err
		}
	}
	return nil
}

func defaultContents() string {
	content, _ := toml.Marshal(NewDefaultConfig())
	return string(content)
}
