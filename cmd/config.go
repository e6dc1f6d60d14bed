package cmd

import (
	"errors"
	"fmt"
	"strings"

	"fleet/internal/adapters/out/sqlite"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is read from, in increasing priority: defaults, fleet.yaml, the
// environment (FLEET_ prefix, "." replaced by "_"). A .env file in the working
// directory is loaded into the environment first.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Menu     MenuConfig     `mapstructure:"menu"`
}

type DatabaseConfig struct {
	// DSN of the SQLite registry. The default keeps it in memory.
	DSN string `mapstructure:"dsn" validate:"required"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"  validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
	Output string `mapstructure:"output" validate:"required,oneof=stdout stderr"`
}

type MenuConfig struct {
	// Color enables colored output when the console is a terminal.
	Color bool `mapstructure:"color"`
	// HazardLog also writes hazard notices to the log.
	HazardLog bool `mapstructure:"hazard_log"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.dsn", sqlite.DefaultDSN)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.output", "stderr")
	v.SetDefault("menu.color", true)
	v.SetDefault("menu.hazard_log", false)
}

// LoadConfig reads the configuration. configPath names an explicit file; when
// empty, fleet.yaml is looked up in the working directory and ./configs, and
// its absence is not an error.
func LoadConfig(configPath string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("fleet")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix("FLEET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// ValidateConfig checks the validate tags of cfg.
func ValidateConfig(cfg Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return err
		}

		messages := make([]string, 0, len(validationErrs))
		for _, e := range validationErrs {
			messages = append(messages, fmt.Sprintf(
				"field '%s' failed validation: %s (value: '%v')",
				e.Namespace(), e.Tag(), e.Value(),
			))
		}
		return fmt.Errorf("validation failed:\n  %s", strings.Join(messages, "\n  "))
	}
	return nil
}
