package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure. It contains
// settings for the environment, HTTP server, database connection, Gmail
// access, the scan pipeline and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response.
		// It must leave room for a full streamed scan on the progress endpoint.
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"5m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request.
		// The scan progress stream is exempt.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"jobtracker" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Gmail configures the inbox provider used by the scan pipeline
	Gmail struct {
		// TokenFile is the path of the authorized-user token file
		TokenFile string `env:"GMAIL_TOKEN_FILE" env-default:"" yaml:"tokenFile"`
		// User is the mailbox to read; "me" reads the token owner's inbox
		User string `env:"GMAIL_USER" env-default:"me" yaml:"user"`
		// QueryWindowDays bounds how far back messages are fetched
		QueryWindowDays int `env:"GMAIL_QUERY_WINDOW_DAYS" env-default:"30" yaml:"queryWindowDays"`
		// MaxMessages caps the number of messages fetched per scan
		MaxMessages int `env:"GMAIL_MAX_MESSAGES" env-default:"200" yaml:"maxMessages"`
		// PageSize is the Gmail list page size
		PageSize int `env:"GMAIL_LIST_PAGE_SIZE" env-default:"50" yaml:"pageSize"`
	} `yaml:"gmail"`

	// Scanner configures the scan pipeline and its triggers
	Scanner struct {
		// RateLimitWindow is the minimum time between two scans
		RateLimitWindow time.Duration `env:"SCANNER_RATE_LIMIT_WINDOW" env-default:"1m" yaml:"rateLimitWindow"`
		// MaxAttempts is the maximum number of attempts for a background scan job
		MaxAttempts int `env:"SCANNER_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		// StreamHeartbeat is how long the progress stream stays silent before
		// emitting a heartbeat frame and giving up
		StreamHeartbeat time.Duration `env:"SCANNER_STREAM_HEARTBEAT" env-default:"1m" yaml:"streamHeartbeat"`
		// LogBufferCapacity bounds the watch command's log buffer
		LogBufferCapacity int `env:"SCANNER_LOG_BUFFER_CAPACITY" env-default:"400" yaml:"logBufferCapacity"`
		// Schedule is an optional cron expression for periodic background
		// scans; empty disables scheduling
		Schedule string `env:"SCANNER_SCHEDULE" env-default:"" yaml:"schedule"`
	} `yaml:"scanner"`

	// Pagination bounds list endpoints
	Pagination struct {
		// DefaultLimit applies when the caller omits a limit
		DefaultLimit uint `env:"PAGINATION_DEFAULT_LIMIT" env-default:"20" yaml:"defaultLimit"`
		// MaxLimit caps the caller-supplied limit
		MaxLimit uint `env:"PAGINATION_MAX_LIMIT" env-default:"500" yaml:"maxLimit"`
	} `yaml:"pagination"`

	// JWT configures optional bearer-token authentication; endpoints are
	// public when PublicKey is empty
	JWT struct {
		// PublicKey is a PEM encoded RSA public key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" env-default:"" yaml:"publicKey"`
		// PrivateKey is a PEM encoded RSA private key used by the jwt
		// subcommand to issue tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" env-default:"" yaml:"privateKey"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
