package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// Drivers de persistencia soportados.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// devSessionSecret se usa solo fuera de producción cuando SESSION_SECRET no está definido.
const devSessionSecret = "distribuidora-dev-secret-change-me"

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Log     LogConfig
	DB      DBConfig
	Session SessionConfig
	HTTP    HTTPConfig
	CORS    CORSConfig
	Swagger SwaggerConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// IsProduction indica si la app corre en producción.
func (c AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// LogConfig nivel del logger (trace, debug, info, warn, error).
type LogConfig struct {
	Level string
}

// DBConfig configuración de persistencia.
// Con Driver "memory" no se abre conexión y los datos viven en proceso (desarrollo y demos).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	Driver      string
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int32
	AutoMigrate bool
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN arma el connection string de PostgreSQL escapando usuario y contraseña.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

// SessionConfig configuración del token de sesión firmado que viaja en la cookie.
type SessionConfig struct {
	Secret            string
	ExpirationMinutes int
	Issuer            string
	CookieName        string
	CookieSecure      bool
	// DevSecret es true cuando se está usando el secreto por defecto de desarrollo.
	DevSecret bool
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

// CORSConfig orígenes permitidos para el frontend (lista separada por comas).
type CORSConfig struct {
	AllowOrigins string
}

// SwaggerConfig habilita la UI de documentación en /docs.
type SwaggerConfig struct {
	Enabled  bool
	FilePath string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde .env / config.env).
// Las env vars tienen prioridad sobre los archivos.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // opcional

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig() // opcional

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Env:  v.GetString("APP_ENV"),
			Name: v.GetString("APP_NAME"),
		},
		Log: LogConfig{Level: v.GetString("LOG_LEVEL")},
		DB: DBConfig{
			Driver:      strings.ToLower(v.GetString("DB_DRIVER")),
			DatabaseURL: v.GetString("DATABASE_URL"),
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			DBName:      v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSLMODE"),
			MaxConns:    v.GetInt32("DB_MAX_CONNS"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Session: SessionConfig{
			Secret:            v.GetString("SESSION_SECRET"),
			ExpirationMinutes: v.GetInt("SESSION_EXPIRATION_MINUTES"),
			Issuer:            v.GetString("SESSION_ISSUER"),
			CookieName:        v.GetString("SESSION_COOKIE_NAME"),
			CookieSecure:      v.GetBool("SESSION_COOKIE_SECURE"),
		},
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		CORS: CORSConfig{AllowOrigins: v.GetString("CORS_ALLOW_ORIGINS")},
		Swagger: SwaggerConfig{
			Enabled:  v.GetBool("SWAGGER_ENABLED"),
			FilePath: v.GetString("SWAGGER_FILE"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "distribuidora-api")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "distribuidora_martin")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_AUTO_MIGRATE", false)

	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("SESSION_EXPIRATION_MINUTES", 24*60)
	v.SetDefault("SESSION_ISSUER", "distribuidora-api")
	v.SetDefault("SESSION_COOKIE_NAME", "distribuidora_session")
	v.SetDefault("SESSION_COOKIE_SECURE", false)

	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 5000)
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000")
	v.SetDefault("SWAGGER_ENABLED", false)
	v.SetDefault("SWAGGER_FILE", "./docs/swagger.json")
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("config: DB_DRIVER desconocido %q (postgres|memory)", c.DB.Driver)
	}
	if c.Session.Secret == "" {
		if c.App.IsProduction() {
			return errors.New("config: SESSION_SECRET es obligatorio en producción")
		}
		c.Session.Secret = devSessionSecret
		c.Session.DevSecret = true
	}
	if c.Session.ExpirationMinutes <= 0 {
		return errors.New("config: SESSION_EXPIRATION_MINUTES debe ser mayor a 0")
	}
	return nil
}
