package config

import "github.com/babarot/brm/internal/env"

// NewDefaultConfig returns the configuration written to a fresh config file
func NewDefaultConfig() Config {
	return Config{
		PathToTrash: env.BRM_TRASH_PATH,
		Protected:   []string{},
		Restore: RestoreConfig{
			Verbose: true,
		},
		Record: RecordConfig{
			LockTimeout: "5s",
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "debug",
			Rotation: RotationConfig{
				MaxSize:  "10MB",
				MaxFiles: 3,
			},
		},
	}
}
