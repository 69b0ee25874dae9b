package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// секрет для локального запуска, в production он обязан быть задан явно
const devJWTSecret = "taskboard-dev-secret"

var ErrMissingJWTSecret = errors.New("в production должен быть задан JWT_SECRET")

type Config struct {
	Environment string        `mapstructure:"environment"`
	Server      ServerConfig  `mapstructure:"server"`
	Logging     LoggingConfig `mapstructure:"logging"`
	Auth        AuthConfig    `mapstructure:"auth"`
	CORS        CORSConfig    `mapstructure:"cors"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	Host            string        `mapstructure:"host"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

type AuthConfig struct {
	JWTSecret  string `mapstructure:"jwt_secret"`
	BcryptCost int    `mapstructure:"bcrypt_cost"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", EnvDevelopment)
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("logging.development", true)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.bcrypt_cost", 12)
	v.SetDefault("cors.allowed_origins", []string{})
}

// Load собирает конфигурацию: значения по умолчанию, config.yml, переменные окружения, флаги.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("taskboard", pflag.ContinueOnError)
	configPath := fs.String("config", "", "путь к config.yml")
	fs.String("port", "", "порт HTTP сервера")
	fs.String("env", "", "окружение: development или production")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("разбор флагов: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("TASKBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("auth.jwt_secret", "TASKBOARD_AUTH_JWT_SECRET", "JWT_SECRET"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("environment", "TASKBOARD_ENVIRONMENT", "APP_ENV"); err != nil {
		return nil, err
	}

	if err := v.BindPFlag("server.port", fs.Lookup("port")); err != nil {
		return nil, err
	}
	if err := v.BindPFlag("environment", fs.Lookup("env")); err != nil {
		return nil, err
	}

	if *configPath != "" {
		v.SetConfigFile(*configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if *configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("чтение конфигурации: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("ошибка парсинга конфигурации: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.Environment = strings.ToLower(strings.TrimSpace(c.Environment))
	if c.Environment != EnvDevelopment && c.Environment != EnvProduction {
		return fmt.Errorf("неизвестное окружение %q", c.Environment)
	}

	if c.Auth.JWTSecret == "" {
		if c.IsProduction() {
			return ErrMissingJWTSecret
		}
		c.Auth.JWTSecret = devJWTSecret
	}

	if c.Server.Port == "" {
		return errors.New("не задан порт сервера")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// UsesDevSecret - секрет не задан и подставлен локальный
func (c *Config) UsesDevSecret() bool {
	return c.Auth.JWTSecret == devJWTSecret
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
