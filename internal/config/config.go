package config

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Server struct {
		Addr string
	}
	Log struct {
		Level string
	}
	Database struct {
		Driver string
		Path   string
		DSN    string
	}
	CORS struct {
		Enabled     bool
		Credentials bool
		Origin      string
	}
	Swagger struct {
		Enabled     bool
		Title       string
		Description string
		Version     string
		Path        string
	}
	Security struct {
		ExpiresIn  string
		RefreshIn  string
		BcryptCost int
	}
	Cookie struct {
		Name     string
		HTTPOnly bool
		SameSite string
		Secure   bool
		Signed   bool
	}
	JWT struct {
		AccessSecret  string
		RefreshSecret string
	}
	Storage struct {
		Bucket     string
		Region     string
		Endpoint   string
		PresignTTL string
	}
	AWS struct {
		Profile string
	}
}

// Load reads configuration from environment variables and optional config files.
// A .env file in the working directory is applied first without overriding the environment.
func Load() (Config, error) {
	_ = godotenv.Load() // optional file

	v := viper.New()
	v.SetEnvPrefix("BLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", "0.0.0.0:3000")
	v.SetDefault("log.level", "info")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "data/blog.db")
	v.SetDefault("database.dsn", "")
	v.SetDefault("cors.enabled", true)
	v.SetDefault("cors.credentials", true)
	v.SetDefault("cors.origin", "http://localhost:3000")
	v.SetDefault("swagger.enabled", true)
	v.SetDefault("swagger.title", "Blog API")
	v.SetDefault("swagger.description", "Users, posts and uploads")
	v.SetDefault("swagger.version", "1.0.0")
	v.SetDefault("swagger.path", "docs")
	v.SetDefault("security.expiresin", "1h")
	v.SetDefault("security.refreshin", "7d")
	v.SetDefault("security.bcryptcost", 10)
	v.SetDefault("cookie.name", "jwt")
	v.SetDefault("cookie.httponly", true)
	v.SetDefault("cookie.samesite", "strict")
	v.SetDefault("cookie.secure", true)
	v.SetDefault("cookie.signed", true)
	v.SetDefault("jwt.accesssecret", "")
	v.SetDefault("jwt.refreshsecret", "")
	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.presignttl", "15m")
	v.SetDefault("aws.profile", "")

	v.SetConfigName("config")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// Validate checks the settings the server cannot start without.
func (c Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.JWT.AccessSecret) == "" {
		problems = append(problems, "jwt access secret is required")
	}
	if strings.TrimSpace(c.JWT.RefreshSecret) == "" {
		problems = append(problems, "jwt refresh secret is required")
	}
	if c.JWT.AccessSecret != "" && c.JWT.AccessSecret == c.JWT.RefreshSecret {
		problems = append(problems, "jwt access and refresh secrets must differ")
	}
	switch c.Database.Driver {
	case "sqlite":
	case "postgres":
		if c.Database.DSN == "" {
			problems = append(problems, "database dsn is required for postgres")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown database driver %q", c.Database.Driver))
	}
	if _, err := c.AccessTTL(); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := c.RefreshTTL(); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := c.PresignTTL(); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := ParseSameSite(c.Cookie.SameSite); err != nil {
		problems = append(problems, err.Error())
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func (c Config) AccessTTL() (time.Duration, error) {
	return parseDuration("security.expiresin", c.Security.ExpiresIn)
}

func (c Config) RefreshTTL() (time.Duration, error) {
	return parseDuration("security.refreshin", c.Security.RefreshIn)
}

func (c Config) PresignTTL() (time.Duration, error) {
	return parseDuration("storage.presignttl", c.Storage.PresignTTL)
}

// AllowedOrigins splits the comma separated CORS origin list.
func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.CORS.Origin, ",") {
		if o := strings.TrimSpace(origin); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// parseDuration accepts Go durations plus a "d" suffix for whole days ("7d").
func parseDuration(key, raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	var (
		d   time.Duration
		err error
	)
	if days, ok := strings.CutSuffix(raw, "d"); ok {
		var n int
		n, err = strconv.Atoi(days)
		d = time.Duration(n) * 24 * time.Hour
	} else {
		d, err = time.ParseDuration(raw)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return d, nil
}

// ParseSameSite maps "strict", "lax" and "none" to cookie modes.
func ParseSameSite(raw string) (http.SameSite, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "strict", "true":
		return http.SameSiteStrictMode, nil
	case "lax", "":
		return http.SameSiteLaxMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	default:
		return http.SameSiteDefaultMode, fmt.Errorf("invalid cookie.samesite %q", raw)
	}
}
