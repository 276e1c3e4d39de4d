package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the console gateway.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Backend holds the remote REST API configuration.
	Backend BackendConfig `mapstructure:",squash"`

	// Redis holds the durable storage configuration.
	Redis RedisConfig `mapstructure:",squash"`

	// Session holds the browser session settings.
	Session SessionConfig `mapstructure:",squash"`
}

// BackendConfig holds the connection details for the courier backend API.
type BackendConfig struct {
	// URL is the base URL of the backend REST API.
	URL string `mapstructure:"BACKEND_URL" required:"true"`
	// Timeout is the fixed per-request timeout.
	Timeout time.Duration `mapstructure:"BACKEND_TIMEOUT" default:"10s"`

	// Proxy optionally routes backend traffic through an HTTP proxy.
	Proxy ProxyConfig `mapstructure:",squash"`
}

// ProxyConfig describes an outbound HTTP proxy.
type ProxyConfig struct {
	Enabled  bool   `mapstructure:"BACKEND_PROXY_ENABLED"`
	Hostname string `mapstructure:"BACKEND_PROXY_HOST"`
	Port     int    `mapstructure:"BACKEND_PROXY_PORT"`
	Username string `mapstructure:"BACKEND_PROXY_USERNAME"`
	Password string `mapstructure:"BACKEND_PROXY_PASSWORD"`
}

// RedisConfig holds the Redis connection string.
type RedisConfig struct {
	// URL should be in the format: redis://[:password@]host[:port][/database]
	URL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0"`
}

// SessionConfig controls how browser sessions are identified and kept.
type SessionConfig struct {
	// CookieName is the cookie carrying the session id.
	CookieName string `mapstructure:"SESSION_COOKIE" default:"console_sid"`
	// CookieSecure restricts the session cookie to HTTPS.
	CookieSecure bool `mapstructure:"SESSION_COOKIE_SECURE" default:"true"`
	// TTL bounds how long an idle session survives in memory and in Redis.
	TTL time.Duration `mapstructure:"SESSION_TTL" default:"24h"`
	// KeyPrefix namespaces the durable session keys.
	KeyPrefix string `mapstructure:"SESSION_KEY_PREFIX" default:"session"`
	// NoticeTTL is how long a toast notice stays readable.
	NoticeTTL time.Duration `mapstructure:"NOTICE_TTL" default:"10s"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags binds every tagged field to its env key and registers its default.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			if err := v.BindEnv(key); err != nil {
				return fmt.Errorf("failed to bind %s: %w", key, err)
			}
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		required := field.Tag.Get("required")
		if required == "true" {
			value := val.Field(i)
			if isZero(value) {
				key := field.Tag.Get("mapstructure")
				return fmt.Errorf("missing required configuration: %s", key)
			}
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
