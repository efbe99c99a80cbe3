package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Data     DataConfig
	S3       S3Config
	Database DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
	Map      MapConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string
	StaticDir   string // пусто - встроенные файлы web/static
}

// DataConfig - откуда брать JSON-документы карт
type DataConfig struct {
	Source         string // file, http, s3, postgres
	Dir            string
	BaseURL        string
	RequestTimeout time.Duration
	LoadTimeout    time.Duration
	ReloadInterval time.Duration // 0 - документы читаются только при старте
}

type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	Prefix    string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type SessionConfig struct {
	Store string // redis, memory
	TTL   time.Duration
}

// MapConfig - параметры виджета карты
type MapConfig struct {
	TileURL          string
	TileAttribution  string
	OutdoorZoom      float64
	OutdoorMinZoom   float64
	OutdoorMaxZoom   float64
	OutdoorFocusZoom float64
	IndoorFocusZoom  float64
	IndoorZoomSpread float64
	IndoorZoomSnap   float64
}

type LogConfig struct {
	Level  string
	Format string
}

const (
	DataSourceFile     = "file"
	DataSourceHTTP     = "http"
	DataSourceS3       = "s3"
	DataSourcePostgres = "postgres"

	SessionStoreRedis  = "redis"
	SessionStoreMemory = "memory"
)

func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom читает конфиг из env-файла (если он есть) и переменных окружения
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	setDefaults(v)

	cfg := &Config{
		Server: ServerConfig{
			Host:        v.GetString("API_HOST"),
			Port:        v.GetInt("API_PORT"),
			Env:         v.GetString("API_ENV"),
			CORSOrigins: v.GetString("API_CORS_ORIGINS"),
			StaticDir:   v.GetString("API_STATIC_DIR"),
		},
		Data: DataConfig{
			Source:         strings.ToLower(v.GetString("DATA_SOURCE")),
			Dir:            v.GetString("DATA_DIR"),
			BaseURL:        strings.TrimRight(v.GetString("DATA_BASE_URL"), "/"),
			RequestTimeout: time.Duration(v.GetInt("DATA_REQUEST_TIMEOUT")) * time.Second,
			LoadTimeout:    time.Duration(v.GetInt("DATA_LOAD_TIMEOUT")) * time.Second,
			ReloadInterval: time.Duration(v.GetInt("DATA_RELOAD_INTERVAL")) * time.Second,
		},
		S3: S3Config{
			Endpoint:  v.GetString("S3_ENDPOINT"),
			AccessKey: v.GetString("S3_ACCESS_KEY"),
			SecretKey: v.GetString("S3_SECRET_KEY"),
			UseSSL:    v.GetBool("S3_USE_SSL"),
			Bucket:    v.GetString("S3_BUCKET"),
			Prefix:    v.GetString("S3_PREFIX"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Session: SessionConfig{
			Store: strings.ToLower(v.GetString("SESSION_STORE")),
			TTL:   time.Duration(v.GetInt("SESSION_TTL")) * time.Second,
		},
		Map: MapConfig{
			TileURL:          v.GetString("MAP_TILE_URL"),
			TileAttribution:  v.GetString("MAP_TILE_ATTRIBUTION"),
			OutdoorZoom:      v.GetFloat64("MAP_OUTDOOR_ZOOM"),
			OutdoorMinZoom:   v.GetFloat64("MAP_OUTDOOR_MIN_ZOOM"),
			OutdoorMaxZoom:   v.GetFloat64("MAP_OUTDOOR_MAX_ZOOM"),
			OutdoorFocusZoom: v.GetFloat64("MAP_OUTDOOR_FOCUS_ZOOM"),
			IndoorFocusZoom:  v.GetFloat64("MAP_INDOOR_FOCUS_ZOOM"),
			IndoorZoomSpread: v.GetFloat64("MAP_INDOOR_ZOOM_SPREAD"),
			IndoorZoomSnap:   v.GetFloat64("MAP_INDOOR_ZOOM_SNAP"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("API_CORS_ORIGINS", "*")
	v.SetDefault("API_STATIC_DIR", "")

	v.SetDefault("DATA_SOURCE", DataSourceFile)
	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("DATA_REQUEST_TIMEOUT", 10)
	v.SetDefault("DATA_LOAD_TIMEOUT", 30)
	v.SetDefault("DATA_RELOAD_INTERVAL", 0)

	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 5)
	v.SetDefault("DB_MAX_IDLE_CONNS", 2)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)

	v.SetDefault("SESSION_STORE", SessionStoreRedis)
	v.SetDefault("SESSION_TTL", 86400)

	v.SetDefault("MAP_TILE_URL", "https://tiles.stadiamaps.com/tiles/stamen_terrain/{z}/{x}/{y}{r}.png")
	v.SetDefault("MAP_TILE_ATTRIBUTION", "&copy; OpenStreetMap contributors &copy; Stadia Maps")
	v.SetDefault("MAP_OUTDOOR_ZOOM", 15)
	v.SetDefault("MAP_OUTDOOR_MIN_ZOOM", 14)
	v.SetDefault("MAP_OUTDOOR_MAX_ZOOM", 20)
	v.SetDefault("MAP_OUTDOOR_FOCUS_ZOOM", 18)
	v.SetDefault("MAP_INDOOR_FOCUS_ZOOM", 0)
	v.SetDefault("MAP_INDOOR_ZOOM_SPREAD", 2)
	v.SetDefault("MAP_INDOOR_ZOOM_SNAP", 0.25)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

func (c *Config) validate() error {
	switch c.Data.Source {
	case DataSourceFile, DataSourcePostgres:
	case DataSourceHTTP:
		if c.Data.BaseURL == "" {
			return fmt.Errorf("DATA_BASE_URL is required for data source %q", c.Data.Source)
		}
	case DataSourceS3:
		if c.S3.Endpoint == "" || c.S3.Bucket == "" {
			return fmt.Errorf("S3_ENDPOINT and S3_BUCKET are required for data source %q", c.Data.Source)
		}
	default:
		return fmt.Errorf("unknown DATA_SOURCE %q", c.Data.Source)
	}

	switch c.Session.Store {
	case SessionStoreRedis, SessionStoreMemory:
	default:
		return fmt.Errorf("unknown SESSION_STORE %q", c.Session.Store)
	}

	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// DSN - строка подключения для драйвера pgx
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
