package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type Config struct {
	Site          SiteConfig          `yaml:"site"`
	HTTP          HttpConfig          `yaml:"http"`
	Rod           RodConfig           `yaml:"rod"`
	Output        OutputConfig        `yaml:"output"`
	SelectorsFile string              `yaml:"selectors_file"`
	Observability ObservabilityConfig `yaml:"observability"`

	// Каталог файла конфигурации, от него считаются относительные пути
	baseDir string
}

type SiteConfig struct {
	BaseURL  string `yaml:"base_url"`
	CardSet  string `yaml:"card_set"`
	Booster  string `yaml:"booster"`
	Sort     string `yaml:"sort"`
	Pages    int    `yaml:"pages"`
	SetLabel string `yaml:"set_label"`
}

type HttpConfig struct {
	UserAgent   string `yaml:"user_agent"`
	TimeoutMS   int    `yaml:"timeout_ms"`
	PageDelayMS int    `yaml:"page_delay_ms"`
}

type RodConfig struct {
	Enabled        bool   `yaml:"enabled"`
	ChromePath     string `yaml:"chrome_path"`
	PageTimeoutS   int    `yaml:"page_timeout_s"`
	LazyLoadDelayS int    `yaml:"lazy_load_delay_s"`
}

type OutputConfig struct {
	Path        string `yaml:"path"`
	CostLetters bool   `yaml:"cost_letters"`
}

type ObservabilityConfig struct {
	LogPath    string `yaml:"log_path"`
	LogLevel   string `yaml:"log_level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

const (
	DefaultBaseURL   = "https://phyrexian-mtg.net/search/list"
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	DefaultSetLabel  = "ローウィンの昏明"
	DefaultFileName  = "mtg_cards_list.txt"
)

// Default возвращает конфиг, который повторяет фиксированные параметры сайта.
// Файл конфигурации только перекрывает эти значения.
func Default() *Config {
	return &Config{
		Site: SiteConfig{
			BaseURL:  DefaultBaseURL,
			CardSet:  "ecl",
			Booster:  "0",
			Sort:     "2",
			Pages:    8,
			SetLabel: DefaultSetLabel,
		},
		HTTP: HttpConfig{
			UserAgent:   DefaultUserAgent,
			TimeoutMS:   10000,
			PageDelayMS: 1000,
		},
		Rod: RodConfig{
			PageTimeoutS:   30,
			LazyLoadDelayS: 0,
		},
		Output: OutputConfig{
			Path: DefaultOutputPath(),
		},
		Observability: ObservabilityConfig{
			LogLevel:   "warn",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// DefaultOutputPath: ~/Downloads/mtg_cards_list.txt
func DefaultOutputPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("Downloads", DefaultFileName)
	}
	return filepath.Join(home, "Downloads", DefaultFileName)
}

// Validation
func (c *Config) Validate() error {
	if c.Site.BaseURL == "" {
		return fmt.Errorf("site.base_url is required")
	}
	if c.Site.CardSet == "" {
		return fmt.Errorf("site.card_set is required")
	}
	if c.Site.Pages <= 0 {
		return fmt.Errorf("site.pages must be > 0")
	}
	if c.HTTP.UserAgent == "" {
		return fmt.Errorf("http.user_agent is required")
	}
	if c.HTTP.TimeoutMS <= 0 {
		return fmt.Errorf("http.timeout_ms must be > 0")
	}
	if c.HTTP.PageDelayMS < 0 {
		return fmt.Errorf("http.page_delay_ms must be >= 0")
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output.path is required")
	}
	if c.Rod.Enabled {
		if c.Rod.PageTimeoutS <= 0 {
			return fmt.Errorf("rod.page_timeout_s must be > 0")
		}
		if c.Rod.LazyLoadDelayS < 0 {
			return fmt.Errorf("rod.lazy_load_delay_s must be >= 0")
		}
	}
	switch c.Observability.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("observability.log_level must be one of debug, info, warn, error")
	}
	return nil
}

// Getters
func (c *Config) GetTimeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutMS) * time.Millisecond
}

func (c *Config) GetPageDelay() time.Duration {
	return time.Duration(c.HTTP.PageDelayMS) * time.Millisecond
}

func (c *Config) GetRodPageTimeout() time.Duration {
	return time.Duration(c.Rod.PageTimeoutS) * time.Second
}

func (c *Config) GetRodLazyLoadDelay() time.Duration {
	return time.Duration(c.Rod.LazyLoadDelayS) * time.Second
}
