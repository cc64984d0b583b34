package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/marketdesk/marketdesk-cli/pkg/files"
	"github.com/marketdesk/marketdesk-cli/pkg/store"
)

// EnvPrefix is prepended to every environment override, e.g. MARKETDESK_STORE_BACKEND.
const EnvPrefix = "MARKETDESK"

// Config is the application configuration.
type Config struct {
	Store StoreConfig `mapstructure:"store" yaml:"store"`
	Log   LogConfig   `mapstructure:"log" yaml:"log"`

	// Dir is the resolved data directory.
	Dir string `mapstructure:"-" yaml:"-"`
}

// StoreConfig selects where preferences are kept.
type StoreConfig struct {
	Backend string        `mapstructure:"backend" yaml:"backend"`
	Path    string        `mapstructure:"path" yaml:"path"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
	Redis   RedisConfig   `mapstructure:"redis" yaml:"redis"`
}

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Addr     string `mapstructure:"addr" yaml:"addr"`
	Password string `mapstructure:"password" yaml:"password"`
	DB       int    `mapstructure:"db" yaml:"db"`
	Key      string `mapstructure:"key" yaml:"key"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	Dir   string `mapstructure:"dir" yaml:"dir"`
}

// LoadOptions tells Load where to look.
type LoadOptions struct {
	// Dir is the data directory; defaults to files.DefaultDir().
	Dir string
	// ConfigFile is an explicit config file. When empty, marketdesk.yaml in Dir is
	// read if present.
	ConfigFile string
	// EnvFile is a dotenv file loaded into the environment if it exists.
	EnvFile string
	// Flags are bound over every other source.
	Flags *pflag.FlagSet
}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"store":     "store.backend",
	"log-level": "log.level",
}

// Load resolves configuration from defaults, config file, dotenv, environment and flags,
// in increasing order of precedence.
func Load(opts LoadOptions) (*Config, error) {
	dir := opts.Dir
	if dir == "" {
		var err error
		dir, err = files.DefaultDir()
		if err != nil {
			return nil, err
		}
	}

	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", opts.EnvFile, err)
		}
	}

	v := viper.New()
	setDefaults(v, dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", opts.ConfigFile, err)
		}
	} else {
		v.SetConfigName(strings.TrimSuffix(files.ConfigFile, filepath.Ext(files.ConfigFile)))
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	if opts.Flags != nil {
		for flag, key := range flagKeys {
			if f := opts.Flags.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag --%s: %w", flag, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Dir = dir

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault("store.backend", store.BackendFile)
	v.SetDefault("store.path", filepath.Join(dir, files.PreferencesFile))
	v.SetDefault("store.timeout", 5*time.Second)
	v.SetDefault("store.redis.addr", "localhost:6379")
	v.SetDefault("store.redis.password", "")
	v.SetDefault("store.redis.db", 0)
	v.SetDefault("store.redis.key", store.DefaultRedisKey)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", filepath.Join(dir, files.LogsDir))
}

// Validate rejects configurations the application cannot run with.
func (c *Config) Validate() error {
	valid := false
	for _, b := range store.Backends {
		if c.Store.Backend == b {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid store backend: %q (must be: %s)", c.Store.Backend, strings.Join(store.Backends, ", "))
	}

	if c.Store.Timeout <= 0 {
		return fmt.Errorf("store timeout must be positive, got %s", c.Store.Timeout)
	}

	if c.Store.Backend == store.BackendFile && c.Store.Path == "" {
		return fmt.Errorf("store path must be set for the file backend")
	}

	if c.Store.Backend == store.BackendRedis && c.Store.Redis.Addr == "" {
		return fmt.Errorf("store redis address must be set for the redis backend")
	}

	return nil
}

// StoreOptions converts the store section into store.Open options.
func (c *Config) StoreOptions() store.Options {
	return store.Options{
		Backend:       c.Store.Backend,
		Path:          c.Store.Path,
		RedisAddr:     c.Store.Redis.Addr,
		RedisPassword: c.Store.Redis.Password,
		RedisDB:       c.Store.Redis.DB,
		RedisKey:      c.Store.Redis.Key,
	}
}
