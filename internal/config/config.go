package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/Mikeoo31/cloud-atlas/internal/logger"
	"github.com/Mikeoo31/cloud-atlas/internal/utils"
)

// Config holds all configuration settings.
type Config struct {
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level" validate:"required"`
	// OutputPath is the directory downloaded pictures are saved to.
	OutputPath string `mapstructure:"output_path" validate:"required"`
	// ReplaceFiles indicates whether existing files are overwritten by downloads.
	ReplaceFiles bool `mapstructure:"replace_files"`
	// DownloadSpeedLimit caps the download speed per second (e.g., "1MB", "500KB"); empty or "0" disables it.
	DownloadSpeedLimit string `mapstructure:"download_speed_limit"`
	// TagColorsPath is the YAML file keeping tag colors between runs.
	TagColorsPath string `mapstructure:"tag_colors_path" validate:"required"`
	// UserAgent is sent with every download request that does not set one.
	UserAgent string `mapstructure:"user_agent" validate:"required"`
	// RequestTimeout bounds a whole HTTP exchange (e.g., "60s").
	RequestTimeout string `mapstructure:"request_timeout" validate:"required"`
	// MaxLogLength is the maximum number of bytes of a dumped request or response.
	MaxLogLength uint64 `mapstructure:"max_log_length" validate:"gt=0"`
	// ProbeCacheSize is the number of probed URLs remembered by the picture client.
	ProbeCacheSize int `mapstructure:"probe_cache_size" validate:"gt=0"`
	// DryRun indicates whether downloads are only previewed.
	DryRun bool
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedDownloadSpeedLimit is the parsed speed limit in bytes per second, zero when unlimited.
	ParsedDownloadSpeedLimit int64
	// ParsedRequestTimeout is the parsed HTTP timeout.
	ParsedRequestTimeout time.Duration
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".cloud-atlas.yaml"

	// DefaultTagColorsFilename is the default file for persisted tag colors.
	DefaultTagColorsFilename = ".cloud-atlas-tags.yaml"

	// DefaultUserAgent mimics a common browser to avoid being blocked by picture CDNs.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36" //nolint:lll

	// DefaultMaxLogLength is the default maximum size (in bytes) of dumped HTTP traffic.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB

	// DefaultProbeCacheSize is the default number of cached probe results.
	DefaultProbeCacheSize = 256

	// envPrefix prefixes environment variables, e.g. CLOUD_ATLAS_LOG_LEVEL.
	envPrefix = "CLOUD_ATLAS"
)

// Static error definitions for better error handling.
var (
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidRequestTimeout indicates that the request timeout is not positive.
	ErrInvalidRequestTimeout = errors.New("request_timeout must be positive")
	// ErrInvalidConfig indicates that a field failed struct validation.
	ErrInvalidConfig = errors.New("invalid configuration")
)

//nolint:gochecknoglobals // validator.Validate caches struct metadata and is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Defaults returns the settings used when neither a file nor the environment sets a value.
func Defaults() map[string]any {
	return map[string]any{
		"log_level":            "info",
		"output_path":          ".",
		"replace_files":        false,
		"download_speed_limit": "",
		"tag_colors_path":      DefaultTagColorsFilename,
		"user_agent":           DefaultUserAgent,
		"request_timeout":      "60s",
		"max_log_length":       DefaultMaxLogLength,
		"probe_cache_size":     DefaultProbeCacheSize,
	}
}

// LoadConfig loads configuration from a YAML file, the environment and defaults.
// An explicitly named file must exist; the default file is optional.
func LoadConfig(configFilename string) (*Config, error) {
	v := viper.New()

	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	isExplicit := configFilename != ""
	if !isExplicit {
		configFilename = DefaultConfigFilename
	}

	v.SetConfigFile(configFilename)

	if err := v.ReadInConfig(); err != nil {
		if isExplicit || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			messages := make([]string, 0, len(validationErrors))
			for _, fieldErr := range validationErrors {
				messages = append(messages,
					fmt.Sprintf("%s failed on '%s'", fieldErr.Field(), fieldErr.Tag()))
			}

			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(messages, "; "))
		}

		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	var parsedDownloadSpeedLimit uint64

	downloadSpeedLimit := strings.TrimSpace(cfg.DownloadSpeedLimit)
	if downloadSpeedLimit != "" && downloadSpeedLimit != "0" {
		var err error

		parsedDownloadSpeedLimit, err = humanize.ParseBytes(downloadSpeedLimit)
		if err != nil {
			return fmt.Errorf("failed to parse download speed limit: %w", err)
		}
	}

	// io.CopyN accepts only int64 so we transform it safely in order to use it later.
	cfg.ParsedDownloadSpeedLimit = utils.SafeUint64ToInt64(parsedDownloadSpeedLimit)

	timeout, err := time.ParseDuration(cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("failed to parse request timeout: %w", err)
	}

	if timeout <= 0 {
		return ErrInvalidRequestTimeout
	}

	cfg.ParsedRequestTimeout = timeout

	return nil
}
