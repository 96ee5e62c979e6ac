package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/MGTheTrain/textcrypt/internal/pkg/validators"
)

// EnvPrefix prefixes every environment variable the CLI reads, e.g. TEXTCRYPT_LOGGER_LOG_LEVEL.
const EnvPrefix = "TEXTCRYPT"

// ConfigPathEnv names the variable holding an optional YAML config file path.
const ConfigPathEnv = EnvPrefix + "_CONFIG_PATH"

// CLISettings holds the configuration of the textcrypt CLI
type CLISettings struct {
	Logger        LoggerSettings `mapstructure:"logger"`
	DefaultFormat string         `mapstructure:"default_format" validate:"required,textformat"`
}

// Validate checks the settings, including the custom format tag
func (s *CLISettings) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to set up validator: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CLISettings: %w", err)
	}

	return s.Logger.Validate()
}

// InitializeCLIConfig loads settings from defaults, the YAML file at path (skipped when empty)
// and TEXTCRYPT_* environment variables, in increasing order of precedence.
func InitializeCLIConfig(path string) (*CLISettings, error) {
	v := viper.New()

	v.SetDefault("logger.log_level", LogLevelWarning)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 0)
	v.SetDefault("logger.max_backups", 0)
	v.SetDefault("logger.max_age", 0)
	v.SetDefault("default_format", "blake3")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var settings CLISettings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &settings, nil
}
