package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Settings is shared by menu-svc and order-client. Every key can be
// overridden through the environment (DB_HOST, API_BASE_URL, ...).
type Settings struct {
	DBHost     string `mapstructure:"db_host"`
	DBPort     string `mapstructure:"db_port"`
	DBName     string `mapstructure:"db_name"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`

	RedisHost string `mapstructure:"redis_host"`
	RedisPort string `mapstructure:"redis_port"`

	KafkaBroker string `mapstructure:"kafka_broker"`
	OrderTopic  string `mapstructure:"order_topic"`

	HTTPAddr      string `mapstructure:"http_addr"`
	PublicBaseURL string `mapstructure:"public_base_url"`

	APIBaseURL        string        `mapstructure:"api_base_url"`
	RequestTimeout    time.Duration `mapstructure:"request_timeout"`
	ConfirmationDelay time.Duration `mapstructure:"confirmation_delay"`

	LogLevel string `mapstructure:"log_level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_name", "gorestaurant")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "postgres")
	v.SetDefault("redis_host", "localhost")
	v.SetDefault("redis_port", "6379")
	v.SetDefault("kafka_broker", "localhost:9092")
	v.SetDefault("order_topic", "orders")
	v.SetDefault("http_addr", ":3333")
	v.SetDefault("public_base_url", "http://localhost:3333")
	v.SetDefault("api_base_url", "http://localhost:3333")
	v.SetDefault("request_timeout", 10*time.Second)
	v.SetDefault("confirmation_delay", 2*time.Second)
	v.SetDefault("log_level", "info")
}

// Load reads defaults, an optional config file and the environment into
// Settings. An empty path looks for ./config.yaml and ignores its absence.
func Load(v *viper.Viper, path string) (Settings, error) {
	if v == nil {
		v = viper.New()
	}
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode config: %w", err)
	}
	return s, nil
}

// PostgresDSN builds a lib/pq connection string.
func (s Settings) PostgresDSN() string {
	return "host=" + s.DBHost + " port=" + s.DBPort + " user=" + s.DBUser +
		" password=" + s.DBPassword + " dbname=" + s.DBName + " sslmode=disable"
}

func (s Settings) RedisAddr() string {
	return s.RedisHost + ":" + s.RedisPort
}

func MustInitPostgres(s Settings, logger *zap.Logger) *sql.DB {
	db, err := sql.Open("postgres", s.PostgresDSN())
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err = db.Ping(); err != nil {
		logger.Fatal("failed to ping database", zap.Error(err))
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(s Settings, logger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: s.RedisAddr(),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("failed to connect to redis", zap.String("addr", s.RedisAddr()), zap.Error(err))
	}

	return client
}

func NewKafkaWriter(s Settings) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(s.KafkaBroker),
		Topic:    s.OrderTopic,
		Balancer: &kafka.LeastBytes{},
	}
}

func NewKafkaReader(s Settings, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{s.KafkaBroker},
		Topic:   s.OrderTopic,
		GroupID: groupID,
	})
}

// NewLogger returns a production zap logger tagged with the service name.
func NewLogger(service, level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	cfg.Level = lvl

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("service", service)), nil
}
