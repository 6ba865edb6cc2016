package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/ozzus/bet-tracker/internal/domain/catalog"
	"github.com/ozzus/bet-tracker/internal/domain/models"
)

const defaultConfigPath = "config/local.yaml"

type Config struct {
	Env       string          `yaml:"env" env:"ENV" env-default:"local"`
	Jaeger    string          `yaml:"jaeger" env:"JAEGER"`
	LastN     int             `yaml:"last_n" env:"LAST_N" env-default:"5"`
	CacheTTL  time.Duration   `yaml:"cache_ttl" env:"CACHE_TTL" env-default:"0s"`
	Log       LogConfig       `yaml:"log"`
	HTTP      HTTPConfig      `yaml:"http"`
	DB        DBConfig        `yaml:"db"`
	Redis     RedisConfig     `yaml:"redis"`
	Providers ProvidersConfig `yaml:"providers"`
	Catalog   CatalogConfig   `yaml:"catalog"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type HTTPConfig struct {
	Host            string        `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            int           `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"40s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" env:"HTTP_REQUEST_TIMEOUT" env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// DBConfig enables suggestion history when DSN is set.
type DBConfig struct {
	DSN string `yaml:"dsn" env:"DB_DSN"`
}

// RedisConfig enables the record cache when Addr is set and CacheTTL is positive.
type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type ProvidersConfig struct {
	Balldontlie BalldontlieConfig `yaml:"balldontlie"`
	APIFootball APIFootballConfig `yaml:"apifootball"`
	OddsAPI     OddsAPIConfig     `yaml:"oddsapi"`
}

type BalldontlieConfig struct {
	BaseURL string        `yaml:"base_url" env:"NBA_STATS_BASE_URL" env-default:"https://api.balldontlie.io"`
	APIKey  string        `yaml:"api_key" env:"NBA_STATS_API_KEY"`
	Timeout time.Duration `yaml:"timeout" env:"NBA_STATS_TIMEOUT" env-default:"10s"`
}

type APIFootballConfig struct {
	BaseURL string        `yaml:"base_url" env:"SOCCER_STATS_BASE_URL" env-default:"https://v3.football.api-sports.io"`
	APIKey  string        `yaml:"api_key" env:"SOCCER_STATS_API_KEY"`
	Timeout time.Duration `yaml:"timeout" env:"SOCCER_STATS_TIMEOUT" env-default:"10s"`
}

type OddsAPIConfig struct {
	BaseURL   string        `yaml:"base_url" env:"ODDS_API_BASE_URL" env-default:"https://api.the-odds-api.com"`
	APIKey    string        `yaml:"api_key" env:"ODDS_API_KEY"`
	Regions   string        `yaml:"regions" env:"ODDS_API_REGIONS" env-default:"us"`
	Bookmaker string        `yaml:"bookmaker" env:"ODDS_API_BOOKMAKER" env-default:"fanduel"`
	Timeout   time.Duration `yaml:"timeout" env:"ODDS_API_TIMEOUT" env-default:"10s"`
}

// CatalogConfig holds entries appended to the built-in catalog.
type CatalogConfig struct {
	NBATeams    []models.TeamIdentity `yaml:"nba_teams"`
	SoccerTeams []models.TeamIdentity `yaml:"soccer_teams"`
	Leagues     []models.League       `yaml:"leagues"`
}

// BuildCatalog merges the configured entries into the default catalog and
// validates the result.
func (c *Config) BuildCatalog() (catalog.Catalog, error) {
	cat := catalog.Default().With(c.Catalog.NBATeams, c.Catalog.SoccerTeams, c.Catalog.Leagues)
	if err := cat.Validate(); err != nil {
		return catalog.Catalog{}, fmt.Errorf("invalid catalog: %w", err)
	}
	return cat, nil
}

func (c HTTPConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}
	return MustLoadByPath(path)
}

func MustLoadByPath(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(err.Error())
	}
	return cfg
}

// Load reads configPath and applies env overrides. A missing file is an error.
func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exists: %s", configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read the config: %w", err)
	}

	return &cfg, nil
}

// ResolvePath picks the config path from the flag value, then CONFIG_PATH,
// then the local default.
func ResolvePath(flagValue string) string {
	res := flagValue
	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	if res == "" {
		res = defaultConfigPath
	}
	return res
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	return ResolvePath(res)
}
