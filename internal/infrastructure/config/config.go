package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	_ "time/tzdata"

	"github.com/spf13/viper"

	sharedConfig "github.com/centreconnect/centreconnect/internal/shared/config"
	"github.com/centreconnect/centreconnect/internal/shared/utils"
)

type Config struct {
	App    sharedConfig.AppConfig    `mapstructure:"app" yaml:"app"`
	Logger sharedConfig.LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Locale sharedConfig.LocaleConfig `mapstructure:"locale" yaml:"locale"`
	Slug   sharedConfig.SlugConfig   `mapstructure:"slug" yaml:"slug"`
	Site   sharedConfig.SiteConfig   `mapstructure:"site" yaml:"site"`
	Theme  sharedConfig.ThemeConfig  `mapstructure:"theme" yaml:"theme"`
}

const envPrefix = "CENTRECONNECT"

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configuration from the config file, environment variables and
// defaults, in increasing order of precedence: defaults, file, environment.
// A missing config file is not an error. When path is empty the file
// "config.yaml" is searched in ./configs, ../configs and ../../configs.
func Load(env, path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	// Set environment variable prefix and replacer
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Allow env parameter to override app mode if provided
	if env != "" && env != "default" {
		v.Set("app.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Validate checks every section against its struct tags.
func (c *Config) Validate() error {
	return utils.ValidateStruct(c)
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "CentreConnect")
	v.SetDefault("app.mode", "release")

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stderr")

	// Locale defaults
	v.SetDefault("locale.tag", "en-ZA")
	v.SetDefault("locale.currency", "ZAR")
	v.SetDefault("locale.timezone", "Africa/Johannesburg")

	// Slug defaults
	v.SetDefault("slug.trim_edges", false)

	// Site defaults
	v.SetDefault("site.title", "CentreConnect - Digital ECD Ecosystem")
	v.SetDefault("site.description", "South Africa's first digital infrastructure platform for Early Childhood Development centres")
	v.SetDefault("site.lang", "en")

	// Theme defaults
	v.SetDefault("theme.dark_mode", "class")
	v.SetDefault("theme.content", []string{
		"./pages/**/*.{ts,tsx}",
		"./components/**/*.{ts,tsx}",
		"./app/**/*.{ts,tsx}",
	})
	v.SetDefault("theme.colors", map[string]any{
		"primary":   map[string]any{"default": "#2E7EC8", "foreground": "#FFFFFF"},
		"secondary": map[string]any{"default": "#4A9FE5", "foreground": "#FFFFFF"},
	})
}
