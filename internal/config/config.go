package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/wgomg/sumrank/internal/summarizer"
)

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

const (
	EnginePageRank = "pagerank"
	EngineLexRank  = "lexrank"
)

type AppConfig struct {
	Env                Environment `yaml:"env"`
	LogLevel           string      `yaml:"log_level"`
	LogFile            string      `yaml:"log_file"`
	ServerPort         string      `yaml:"server_port"`
	RawBodyLog         bool        `yaml:"raw_body_log"`
	HttpTimeoutSeconds int         `yaml:"http_timeout_seconds"`
	MaxBodyBytes       int64       `yaml:"max_body_bytes"`
}

type SummarizerConfig struct {
	Engine        string  `yaml:"engine"`
	MaxIterations int     `yaml:"max_iterations"`
	DampingFactor float64 `yaml:"damping_factor"`
	Delta         float64 `yaml:"delta"`
	Ratio         float64 `yaml:"ratio"`
	MinSentences  int     `yaml:"min_sentences"`
}

type CacheConfig struct {
	Size int `yaml:"size"`
}

type BatchConfig struct {
	WorkerCount int `yaml:"worker_count"`
	MaxItems    int `yaml:"max_items"`
}

type Config struct {
	App        AppConfig        `yaml:"app"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Cache      CacheConfig      `yaml:"cache"`
	Batch      BatchConfig      `yaml:"batch"`
}

func Default() *Config {
	opts := summarizer.DefaultOptions()

	return &Config{
		App: AppConfig{
			Env:                Development,
			ServerPort:         "8080",
			HttpTimeoutSeconds: 30,
			MaxBodyBytes:       1 << 20,
		},
		Summarizer: SummarizerConfig{
			Engine:        EnginePageRank,
			MaxIterations: opts.MaxIterations,
			DampingFactor: opts.DampingFactor,
			Delta:         opts.Delta,
			Ratio:         opts.Ratio,
			MinSentences:  opts.MinSentences,
		},
		Cache: CacheConfig{Size: 512},
		Batch: BatchConfig{
			WorkerCount: calculateDefaultWorkerCount(),
			MaxItems:    64,
		},
	}
}

// Load builds the configuration from defaults, the optional YAML file named
// by SUMRANK_CONFIG_FILE, and environment variables, in increasing priority.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path := os.Getenv("SUMRANK_CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return cfg, err
		}
	}

	env := parseEnvironment(getEnv("APP_ENV", string(cfg.App.Env)))

	cfg.App = AppConfig{
		Env:                env,
		LogLevel:           getLogLevel(env, cfg.App.LogLevel),
		LogFile:            getEnv("APP_LOG_FILE", cfg.App.LogFile),
		ServerPort:         getEnv("APP_SERVER_PORT", cfg.App.ServerPort),
		RawBodyLog:         getEnvBool("APP_RAW_BODY_LOG", cfg.App.RawBodyLog),
		HttpTimeoutSeconds: getEnvInt("APP_HTTP_TIMEOUT_SECONDS", cfg.App.HttpTimeoutSeconds),
		MaxBodyBytes:       int64(getEnvInt("APP_MAX_BODY_BYTES", int(cfg.App.MaxBodyBytes))),
	}
	cfg.Summarizer = SummarizerConfig{
		Engine:        strings.ToLower(getEnv("SUMMARIZER_ENGINE", cfg.Summarizer.Engine)),
		MaxIterations: getEnvInt("SUMMARIZER_MAX_ITERATIONS", cfg.Summarizer.MaxIterations),
		DampingFactor: getEnvFloat("SUMMARIZER_DAMPING_FACTOR", cfg.Summarizer.DampingFactor),
		Delta:         getEnvFloat("SUMMARIZER_DELTA", cfg.Summarizer.Delta),
		Ratio:         getEnvFloat("SUMMARIZER_RATIO", cfg.Summarizer.Ratio),
		MinSentences:  getEnvInt("SUMMARIZER_MIN_SENTENCES", cfg.Summarizer.MinSentences),
	}
	cfg.Cache.Size = getEnvInt("CACHE_SIZE", cfg.Cache.Size)
	cfg.Batch = BatchConfig{
		WorkerCount: getEnvInt("BATCH_WORKER_COUNT", cfg.Batch.WorkerCount),
		MaxItems:    getEnvInt("BATCH_MAX_ITEMS", cfg.Batch.MaxItems),
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config file %s", path)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "parse config file %s", path)
	}
	return nil
}

func (c *Config) Validate() error {
	if err := c.Options().Validate(); err != nil {
		return err
	}
	switch c.Summarizer.Engine {
	case EnginePageRank, EngineLexRank:
	default:
		return fmt.Errorf("SUMMARIZER_ENGINE must be %q or %q, got %q", EnginePageRank, EngineLexRank, c.Summarizer.Engine)
	}
	if c.Cache.Size < 0 {
		return fmt.Errorf("CACHE_SIZE must not be negative")
	}
	if c.Batch.WorkerCount < 1 || c.Batch.MaxItems < 1 {
		return fmt.Errorf("BATCH_WORKER_COUNT and BATCH_MAX_ITEMS must be at least 1")
	}
	if c.App.HttpTimeoutSeconds < 1 {
		return fmt.Errorf("APP_HTTP_TIMEOUT_SECONDS must be at least 1")
	}
	return nil
}

func (c *Config) Options() summarizer.Options {
	return summarizer.Options{
		MaxIterations: c.Summarizer.MaxIterations,
		DampingFactor: c.Summarizer.DampingFactor,
		Delta:         c.Summarizer.Delta,
		Ratio:         c.Summarizer.Ratio,
		MinSentences:  c.Summarizer.MinSentences,
	}
}

func parseEnvironment(envStr string) Environment {
	env := Environment(strings.ToLower(envStr))

	switch env {
	case Development, Production:
		return env
	default:
		return Development
	}
}

func calculateDefaultWorkerCount() int {
	// ranking is CPU bound, one worker per core is enough
	return min(max(runtime.NumCPU(), 1), 8)
}

func getLogLevel(env Environment, fromFile string) string {
	if fromFile != "" {
		return getEnv("APP_LOG_LEVEL", fromFile)
	}
	if env == Production {
		return getEnv("APP_LOG_LEVEL", "info")
	}

	return getEnv("APP_LOG_LEVEL", "debug")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
