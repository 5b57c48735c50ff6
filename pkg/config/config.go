package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Remote  RemoteConfig
	Local   LocalConfig
	Redis   RedisConfig
	SMTP    SMTPConfig
	Summary SummaryConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RemoteConfig almacenamiento remoto (PostgreSQL gestionado, ej. Supabase).
// URL es el endpoint (postgres://usuario@host:puerto/db) y Key la clave de acceso,
// que se inyecta como contraseña. Sin ambos valores la app trabaja solo en local.
type RemoteConfig struct {
	URL         string
	Key         string
	MaxConns    int
	AutoMigrate bool
}

// Enabled indica si el backend remoto está configurado.
func (c RemoteConfig) Enabled() bool {
	return strings.TrimSpace(c.URL) != "" && strings.TrimSpace(c.Key) != ""
}

// ConnectionString devuelve la URL con la clave como contraseña (URL-encoded).
func (c RemoteConfig) ConnectionString() (string, error) {
	u, err := url.Parse(strings.TrimSpace(c.URL))
	if err != nil {
		return "", fmt.Errorf("REMOTE_URL inválida: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", fmt.Errorf("REMOTE_URL: esquema %q no soportado", u.Scheme)
	}
	user := "postgres"
	if u.User != nil && u.User.Username() != "" {
		user = u.User.Username()
	}
	u.User = url.UserPassword(user, c.Key)
	return u.String(), nil
}

// LocalConfig almacenamiento local (BadgerDB).
type LocalConfig struct {
	Path     string
	InMemory bool
}

// RedisConfig opcional: locks por producto e idempotencia compartidos entre instancias.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled indica si hay Redis configurado.
func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// SMTPConfig envío del resumen diario por correo.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Enabled indica si hay servidor SMTP configurado.
func (c SMTPConfig) Enabled() bool { return c.Host != "" }

// Addr devuelve host:port del servidor SMTP.
func (c SMTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SummaryConfig resumen diario.
type SummaryConfig struct {
	To       string // destinatario por defecto (mailto y SMTP)
	LowStock int    // umbral de stock bajo (0 < stock <= LowStock)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, REMOTE_URL, LOCAL_PATH, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "antorcha-inventario"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Remote: RemoteConfig{
			URL:         getString(v, "REMOTE_URL", ""),
			Key:         getString(v, "REMOTE_KEY", ""),
			MaxConns:    getInt(v, "REMOTE_MAX_CONNS", 10),
			AutoMigrate: getBool(v, "REMOTE_AUTO_MIGRATE", false),
		},
		Local: LocalConfig{
			Path:     getString(v, "LOCAL_PATH", "./data/antorcha"),
			InMemory: getBool(v, "LOCAL_IN_MEMORY", false),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", ""),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		SMTP: SMTPConfig{
			Host:     getString(v, "SMTP_HOST", ""),
			Port:     getInt(v, "SMTP_PORT", 587),
			User:     getString(v, "SMTP_USER", ""),
			Password: getString(v, "SMTP_PASSWORD", ""),
			From:     getString(v, "SMTP_FROM", ""),
		},
		Summary: SummaryConfig{
			To:       getString(v, "SUMMARY_TO", ""),
			LowStock: getInt(v, "SUMMARY_LOW_STOCK", 5),
		},
	}

	if cfg.Remote.Enabled() {
		if _, err := cfg.Remote.ConnectionString(); err != nil {
			return nil, err
		}
	}
	if cfg.Summary.LowStock < 0 {
		return nil, fmt.Errorf("SUMMARY_LOW_STOCK no puede ser negativo: %d", cfg.Summary.LowStock)
	}
	if cfg.Remote.MaxConns <= 0 {
		cfg.Remote.MaxConns = 10
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
