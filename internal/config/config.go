package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"holdem-server/internal/util"
	"holdem-server/pkg/holdem"
)

// Config provides configuration for the hold'em server
type Config struct {
	loaded         bool
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	Redis          struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Table Table `yaml:"table"`
}

// Table holds the rules new games are created with
type Table struct {
	MinPlayers  int  `yaml:"minPlayers" envconfig:"min_players"`
	MaxPlayers  int  `yaml:"maxPlayers" envconfig:"max_players"`
	SmallBlind  int  `yaml:"smallBlind" envconfig:"small_blind"`
	BigBlind    int  `yaml:"bigBlind" envconfig:"big_blind"`
	AllowRebuys bool `yaml:"allowRebuys" envconfig:"allow_rebuys"`
}

// Options converts the table configuration to game options
func (t Table) Options() holdem.Options {
	return holdem.Options{
		MinPlayers:  t.MinPlayers,
		MaxPlayers:  t.MaxPlayers,
		SmallBlind:  t.SmallBlind,
		BigBlind:    t.BigBlind,
		AllowRebuys: t.AllowRebuys,
	}
}

var config Config

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() Config {
	opts := holdem.DefaultOptions()

	var cfg Config
	cfg.PGDSN = "postgres://postgres@localhost:5432/postgres?sslmode=disable"
	cfg.MigrationsPath = "./sql"
	cfg.Redis.Addr = "localhost:6379"
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Table = Table{
		MinPlayers:  opts.MinPlayers,
		MaxPlayers:  opts.MaxPlayers,
		SmallBlind:  opts.SmallBlind,
		BigBlind:    opts.BigBlind,
		AllowRebuys: opts.AllowRebuys,
	}

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The YAML file is optional. Environment variables prefixed with HOLDEM_ take precedence over it.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	switch {
	case err == nil:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	if err := envconfig.Process("holdem", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
