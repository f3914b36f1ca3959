package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int
	JWT         JWTConfig
	Redis       RedisConfig
	Waafi       WaafiConfig
	Registry    RegistryConfig
	Minio       MinioConfig
	SMTP        SMTPConfig
	Reconcile   ReconcileConfig
}

type JWTConfig struct {
	Secret        string
	ExpiresIn     time.Duration
	SigningMethod jwt.SigningMethod
}

type RedisConfig struct {
	Host        string
	Password    string
	Port        int
	User        string
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

// WaafiConfig holds the mobile-money gateway credentials. All values are
// trimmed of whitespace: the merchant portal is prone to copy-paste spaces.
type WaafiConfig struct {
	Endpoint    string
	MerchantUID string
	APIUserID   string
	APIKey      string
	Timeout     time.Duration
}

// RegistryConfig drives the domain availability checker.
type RegistryConfig struct {
	BaseURL       string
	Timeout       time.Duration
	BatchSize     int
	BatchDelay    time.Duration
	FallbackPrice float64
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type ReconcileConfig struct {
	Interval   time.Duration
	PendingAge time.Duration
}

const (
	envJWTSecret = "JWT_SECRET"

	envWaafiMerchantUID = "WAAFI_MERCHANT_UID"
	envWaafiAPIUserID   = "WAAFI_API_USER_ID"
	envWaafiAPIKey      = "WAAFI_API_KEY"

	envRedisHost = "REDIS_HOST"
	envRedisPort = "REDIS_PORT"
	envRedisUser = "REDIS_USER"
	envRedisPass = "REDIS_PASSWORD"

	envMinioEndpoint  = "MINIO_ENDPOINT"
	envMinioAccessKey = "MINIO_ACCESS_KEY"
	envMinioSecretKey = "MINIO_SECRET_KEY"
	envMinioBucket    = "MINIO_BUCKET"

	envSMTPHost = "SMTP_HOST"
	envSMTPPort = "SMTP_PORT"
	envSMTPUser = "SMTP_USER"
	envSMTPPass = "SMTP_PASS"
	envSMTPFrom = "SMTP_FROM"
)

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")
	viper.WatchConfig()

	err = viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	cfg.JWT = JWTConfig{
		Secret:        os.Getenv(envJWTSecret),
		ExpiresIn:     24 * time.Hour,
		SigningMethod: jwt.SigningMethodHS256,
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("%s is not set", envJWTSecret)
	}

	cfg.Redis.Host = os.Getenv(envRedisHost)
	cfg.Redis.Port, err = strconv.Atoi(os.Getenv(envRedisPort))
	if err != nil {
		return nil, fmt.Errorf("redis port must be int value: %w", err)
	}
	cfg.Redis.Password = os.Getenv(envRedisPass)
	cfg.Redis.User = os.Getenv(envRedisUser)
	cfg.Redis.DialTimeout = 10 * time.Second
	cfg.Redis.ReadTimeout = 10 * time.Second

	cfg.Waafi.MerchantUID = strings.TrimSpace(os.Getenv(envWaafiMerchantUID))
	cfg.Waafi.APIUserID = strings.TrimSpace(os.Getenv(envWaafiAPIUserID))
	cfg.Waafi.APIKey = strings.TrimSpace(os.Getenv(envWaafiAPIKey))
	if cfg.Waafi.Endpoint == "" {
		cfg.Waafi.Endpoint = "https://api.waafipay.net/asm"
	}
	if cfg.Waafi.Timeout == 0 {
		cfg.Waafi.Timeout = 20 * time.Second
	}

	if cfg.Registry.BaseURL == "" {
		cfg.Registry.BaseURL = "https://rdap.org"
	}
	if cfg.Registry.Timeout == 0 {
		cfg.Registry.Timeout = 10 * time.Second
	}
	if cfg.Registry.BatchSize == 0 {
		cfg.Registry.BatchSize = 3
	}
	if cfg.Registry.BatchDelay == 0 {
		cfg.Registry.BatchDelay = 500 * time.Millisecond
	}
	if cfg.Registry.FallbackPrice == 0 {
		cfg.Registry.FallbackPrice = 14.99
	}

	cfg.Minio.Endpoint = os.Getenv(envMinioEndpoint)
	cfg.Minio.AccessKey = os.Getenv(envMinioAccessKey)
	cfg.Minio.SecretKey = os.Getenv(envMinioSecretKey)
	cfg.Minio.Bucket = os.Getenv(envMinioBucket)
	if cfg.Minio.Bucket == "" {
		cfg.Minio.Bucket = "agency-media"
	}

	cfg.SMTP.Host = os.Getenv(envSMTPHost)
	if p := os.Getenv(envSMTPPort); p != "" {
		cfg.SMTP.Port, err = strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("smtp port must be int value: %w", err)
		}
	}
	cfg.SMTP.User = os.Getenv(envSMTPUser)
	cfg.SMTP.Password = os.Getenv(envSMTPPass)
	cfg.SMTP.From = os.Getenv(envSMTPFrom)

	if cfg.Reconcile.Interval == 0 {
		cfg.Reconcile.Interval = 5 * time.Minute
	}
	if cfg.Reconcile.PendingAge == 0 {
		cfg.Reconcile.PendingAge = 30 * time.Minute
	}

	log.Info("config parsed")

	return cfg, nil
}
