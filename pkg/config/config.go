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
	App    AppConfig
	DB     DBConfig
	JWT    JWTConfig
	HTTP   HTTPConfig
	SMTP   SMTPConfig
	Report ReportConfig
	Redis  RedisConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env         string // development, staging, production
	Name        string
	CompanyName string // aparece como company_name en los reportes
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	userInfo := url.UserPassword(c.User, c.Password)
	u := &url.URL{
		Scheme:   "postgres",
		User:     userInfo,
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de JWT. El access token expira en minutos; el
// refresh token en días.
type JWTConfig struct {
	Secret        string
	AccessMinutes int
	RefreshDays   int
	Issuer        string
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

// SMTPConfig configuración del envío de correo (reporte de stock).
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// ReportConfig configuración del reporte de stock bajo.
type ReportConfig struct {
	IntervalHours int // periodicidad del binario reporter
	MaxRetries    int // reintentos de envío ante fallo SMTP
}

// RedisConfig configuración de Redis (contadores de rate limit de api keys).
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, JWT_SECRET, SMTP_HOST, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:         getString(v, "APP_ENV", "development"),
			Name:        getString(v, "APP_NAME", "inventorywise"),
			CompanyName: getString(v, "COMPANY_NAME", "InventoryWise"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "inventorywise"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:        getString(v, "JWT_SECRET", ""),
			AccessMinutes: getInt(v, "JWT_ACCESS_MINUTES", 120),
			RefreshDays:   getInt(v, "JWT_REFRESH_DAYS", 7),
			Issuer:        getString(v, "JWT_ISSUER", "inventorywise"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		SMTP: SMTPConfig{
			Host:     getString(v, "SMTP_HOST", "localhost"),
			Port:     getInt(v, "SMTP_PORT", 587),
			User:     getString(v, "SMTP_USER", ""),
			Password: getString(v, "SMTP_PASSWORD", ""),
			From:     getString(v, "COMPANY_EMAIL", "noreply@inventorywise.local"),
		},
		Report: ReportConfig{
			IntervalHours: getInt(v, "REPORT_INTERVAL_HOURS", 24),
			MaxRetries:    getInt(v, "REPORT_MAX_RETRIES", 3),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
