package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
	StoreDriverRedis    = "redis"
	StoreDriverMemory   = "memory"
)

type AppConfig struct {
	Server   ServerConfig
	Monitor  MonitorConfig
	Store    StoreConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Mail     MailConfig
}

type ServerConfig struct {
	Port         string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	LogEncoding  string `envconfig:"LOG_ENCODING" default:"json"`
	LogFile      string `envconfig:"LOG_FILE" default:"./log/ping-monitor.log"`
	ControlToken string `envconfig:"CONTROL_TOKEN"`
}

type MonitorConfig struct {
	DefaultPingInterval int           `envconfig:"DEFAULT_PING_INTERVAL" default:"30"`
	MinPingInterval     int           `envconfig:"MIN_PING_INTERVAL" default:"5"`
	ProbeTimeout        time.Duration `envconfig:"PROBE_TIMEOUT" default:"10s"`
	InitialCheckDelay   time.Duration `envconfig:"INITIAL_CHECK_DELAY" default:"2s"`
}

type StoreConfig struct {
	Driver     string `envconfig:"STORE_DRIVER" default:"sqlite"`
	SQLitePath string `envconfig:"SQLITE_PATH" default:"./data/ping-monitor.db"`
}

type PostgresConfig struct {
	Host         string `envconfig:"POSTGRES_HOST"`
	Port         int    `envconfig:"POSTGRES_PORT" default:"5432"`
	User         string `envconfig:"POSTGRES_USER"`
	Password     string `envconfig:"POSTGRES_PASSWORD"`
	DBName       string `envconfig:"POSTGRES_DB"`
	MaxOpenConns int    `envconfig:"POSTGRES_MAX_OPEN_CONNS" default:"10"`
}

type RedisConfig struct {
	Enabled       bool   `envconfig:"REDIS_ENABLED" default:"false"`
	Addr          string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password      string `envconfig:"REDIS_PASSWORD"`
	DB            int    `envconfig:"REDIS_DB" default:"0"`
	StoreKey      string `envconfig:"REDIS_STORE_KEY" default:"ping-monitor:storage"`
	EventsChannel string `envconfig:"REDIS_EVENTS_CHANNEL" default:"ping-monitor:storage-events"`
	StatusChannel string `envconfig:"REDIS_STATUS_CHANNEL" default:"ping-monitor:status"`
}

type KafkaConfig struct {
	Enabled         bool     `envconfig:"KAFKA_ENABLED" default:"false"`
	Brokers         []string `envconfig:"KAFKA_BROKERS"`
	ControlTopic    string   `envconfig:"KAFKA_CONTROL_TOPIC" default:"ping-monitor.control"`
	ConsumerGroupID string   `envconfig:"KAFKA_CONSUMER_GROUP_ID" default:"ping-monitor"`
	StatusTopic     string   `envconfig:"KAFKA_STATUS_TOPIC" default:"ping-monitor.status"`
}

type MailConfig struct {
	Enabled         bool     `envconfig:"MAIL_ENABLED" default:"false"`
	Email           string   `envconfig:"MAIL_EMAIL"`
	Password        string   `envconfig:"MAIL_PASSWORD"`
	Host            string   `envconfig:"MAIL_HOST"`
	Port            int      `envconfig:"MAIL_PORT" default:"587"`
	AlertRecipients []string `envconfig:"MAIL_ALERT_RECIPIENTS"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c AppConfig) Validate() error {
	switch c.Store.Driver {
	case StoreDriverSQLite:
		if c.Store.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite store driver")
		}
	case StoreDriverPostgres:
		if c.Postgres.Host == "" || c.Postgres.User == "" || c.Postgres.DBName == "" {
			return fmt.Errorf("POSTGRES_HOST, POSTGRES_USER and POSTGRES_DB are required for the postgres store driver")
		}
	case StoreDriverRedis:
		if !c.Redis.Enabled {
			return fmt.Errorf("REDIS_ENABLED must be true for the redis store driver")
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required when kafka is enabled")
	}
	if c.Mail.Enabled && (c.Mail.Host == "" || c.Mail.Email == "" || len(c.Mail.AlertRecipients) == 0) {
		return fmt.Errorf("MAIL_HOST, MAIL_EMAIL and MAIL_ALERT_RECIPIENTS are required when mail is enabled")
	}
	if c.Monitor.DefaultPingInterval <= 0 {
		return fmt.Errorf("DEFAULT_PING_INTERVAL must be positive")
	}
	return nil
}
