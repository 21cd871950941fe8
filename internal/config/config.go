package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Tracking  TrackingConfig  `yaml:"tracking"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" env:"SERVER_MAX_UPLOAD_BYTES" env-default:"10485760"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds token and password settings.
type AuthConfig struct {
	JWTSecret       string        `yaml:"jwt_secret"        env:"AUTH_JWT_SECRET"        env-required:"true"`
	JWTIssuer       string        `yaml:"jwt_issuer"        env:"AUTH_JWT_ISSUER"        env-default:"debt-recovery"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl"  env:"AUTH_ACCESS_TOKEN_TTL"  env-default:"10h"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" env:"AUTH_REFRESH_TOKEN_TTL" env-default:"720h"`
	SignupCodeTTL   time.Duration `yaml:"signup_code_ttl"   env:"AUTH_SIGNUP_CODE_TTL"   env-default:"15m"`
	ResetCodeTTL    time.Duration `yaml:"reset_code_ttl"    env:"AUTH_RESET_CODE_TTL"    env-default:"30m"`
	BcryptCost      int           `yaml:"bcrypt_cost"       env:"AUTH_BCRYPT_COST"       env-default:"10"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ScoringConfig holds settings of the external propensity scoring service.
type ScoringConfig struct {
	Enabled  bool          `yaml:"enabled"  env:"SCORING_ENABLED"  env-default:"true"`
	BaseURL  string        `yaml:"base_url" env:"SCORING_BASE_URL" env-default:"http://localhost:8000"`
	Interval time.Duration `yaml:"interval" env:"SCORING_INTERVAL" env-default:"90s"`
	Timeout  time.Duration `yaml:"timeout"  env:"SCORING_TIMEOUT"  env-default:"10s"`
}

// KafkaConfig holds notification broker settings. When disabled,
// notifications are only logged.
type KafkaConfig struct {
	Enabled bool     `yaml:"enabled" env:"KAFKA_ENABLED" env-default:"false"`
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-default:"localhost:9092" env-separator:","`
	Topic   string   `yaml:"topic"   env:"KAFKA_TOPIC"   env-default:"dca.notifications"`
}

// TrackingConfig holds action-log capture limits.
type TrackingConfig struct {
	Enabled         bool `yaml:"enabled"           env:"TRACKING_ENABLED"           env-default:"true"`
	MaxPayloadChars int  `yaml:"max_payload_chars" env:"TRACKING_MAX_PAYLOAD_CHARS" env-default:"2000"`
	MaxErrorChars   int  `yaml:"max_error_chars"   env:"TRACKING_MAX_ERROR_CHARS"   env-default:"500"`
}

// RateLimitConfig holds per-IP request limits.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATELIMIT_ENABLED"          env-default:"true"`
	RequestsPerMin  int           `yaml:"requests_per_min" env:"RATELIMIT_REQUESTS_PER_MIN" env-default:"300"`
	AuthPerMin      int           `yaml:"auth_per_min"     env:"RATELIMIT_AUTH_PER_MIN"     env-default:"20"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATELIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}
