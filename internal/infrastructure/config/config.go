package config

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"

	"github.com/sneakstreet/storefront/internal/core/domain"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// TrustedProxies are CIDRs allowed to set X-Forwarded-For.
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	Session SessionConfig
	Login   LoginConfig
	Cart    CartConfig
	Orders  OrdersConfig

	Mongo MongoConfig
	Redis RedisConfig
}

type SessionConfig struct {
	Secret       string        `env:"SESSION_SECRET"`
	TTL          time.Duration `env:"SESSION_TTL,           default=24h"`
	CookieName   string        `env:"SESSION_COOKIE,        default=sneakstreet_session"`
	CookieSecure bool          `env:"SESSION_COOKIE_SECURE, default=false"`
}

type LoginConfig struct {
	RateLimit  int64         `env:"LOGIN_RATE_LIMIT,  default=10"`
	RateWindow time.Duration `env:"LOGIN_RATE_WINDOW, default=1m"`
}

type CartConfig struct {
	TTL time.Duration `env:"CART_TTL, default=720h"`
}

type OrdersConfig struct {
	Workers int `env:"ORDER_WORKERS, default=4"`
}

type MongoConfig struct {
	URI         string        `env:"MONGO_URI,       default=mongodb://localhost:27017"`
	Database    string        `env:"MONGO_DB,        default=sneakstreet"`
	MaxPoolSize uint64        `env:"MONGO_POOL_SIZE, default=50"`
	Timeout     time.Duration `env:"MONGO_TIMEOUT,   default=10s"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR,      default=localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB,        default=0"`
	PoolSize int           `env:"REDIS_POOL_SIZE, default=20"`
	Timeout  time.Duration `env:"REDIS_TIMEOUT,   default=5s"`
}

// IsProduction reports whether ENV is "production".
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// LoadDotEnv loads the given .env files into the process environment when
// they exist. Variables already set are not overridden.
func LoadDotEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// Load reads configuration from the process environment.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration through the given lookuper. A blank session
// secret is a fatal configuration error.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfigurationFatal, err)
	}

	if strings.TrimSpace(cfg.Session.Secret) == "" {
		return nil, fmt.Errorf("%w: SESSION_SECRET is required", domain.ErrConfigurationFatal)
	}
	if cfg.Orders.Workers <= 0 {
		return nil, fmt.Errorf("%w: ORDER_WORKERS must be positive", domain.ErrConfigurationFatal)
	}
	if _, err := cfg.ProxyNetworks(); err != nil {
		return nil, fmt.Errorf("%w: TRUSTED_PROXIES: %v", domain.ErrConfigurationFatal, err)
	}
	return &cfg, nil
}

// ProxyNetworks parses TrustedProxies. A bare address is taken as a single host.
func (c *Config) ProxyNetworks() ([]*net.IPNet, error) {
	nets := make([]*net.IPNet, 0, len(c.TrustedProxies))
	for _, raw := range c.TrustedProxies {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if !strings.Contains(raw, "/") {
			ip := net.ParseIP(raw)
			if ip == nil {
				return nil, fmt.Errorf("invalid address %q", raw)
			}
			bits := 8 * net.IPv4len
			if ip.To4() == nil {
				bits = 8 * net.IPv6len
			}
			raw = fmt.Sprintf("%s/%d", raw, bits)
		}
		_, n, err := net.ParseCIDR(raw)
		if err != nil {
			return nil, err
		}
		nets = append(nets, n)
	}
	return nets, nil
}

// SeedConfig is the subset needed by the provisioning command, which never
// signs sessions.
type SeedConfig struct {
	LogLevel string `env:"LOG_LEVEL, default=info"`
	Mongo    MongoConfig
}

// LoadSeed reads SeedConfig from the process environment.
func LoadSeed(ctx context.Context) (*SeedConfig, error) {
	return LoadSeedWith(ctx, envconfig.OsLookuper())
}

// LoadSeedWith reads SeedConfig through the given lookuper.
func LoadSeedWith(ctx context.Context, lookuper envconfig.Lookuper) (*SeedConfig, error) {
	var cfg SeedConfig
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfigurationFatal, err)
	}
	return &cfg, nil
}
