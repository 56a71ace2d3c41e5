package config

type AppConfig struct {
	Name string `mapstructure:"name" yaml:"name" validate:"required"`
	Mode string `mapstructure:"mode" yaml:"mode" validate:"oneof=debug release test"`
}

// IsDebug reports whether verbose diagnostics should be enabled.
func (a *AppConfig) IsDebug() bool {
	return a.Mode == "debug"
}

type LoggerConfig struct {
	Level      string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn warning error"`
	Format     string `mapstructure:"format" yaml:"format" validate:"oneof=console json"`
	OutputPath string `mapstructure:"output_path" yaml:"output_path"`
}

// LocaleConfig selects the display conventions used by the formatter.
type LocaleConfig struct {
	Tag      string `mapstructure:"tag" yaml:"tag" validate:"required"`
	Currency string `mapstructure:"currency" yaml:"currency" validate:"required,len=3,uppercase"`
	Timezone string `mapstructure:"timezone" yaml:"timezone" validate:"required,timezone"`
}

type SlugConfig struct {
	TrimEdges bool `mapstructure:"trim_edges" yaml:"trim_edges"`
}

// SiteConfig carries the page metadata rendered by the root layout.
type SiteConfig struct {
	Title       string `mapstructure:"title" yaml:"title" validate:"required,max=120"`
	Description string `mapstructure:"description" yaml:"description" validate:"max=300"`
	Lang        string `mapstructure:"lang" yaml:"lang" validate:"required"`
}

type ColorToken struct {
	Default    string `mapstructure:"default" yaml:"default" validate:"required,hexcolor"`
	Foreground string `mapstructure:"foreground" yaml:"foreground" validate:"required,hexcolor"`
}

// ThemeConfig holds the design tokens handed to the stylesheet build.
type ThemeConfig struct {
	DarkMode string                `mapstructure:"dark_mode" yaml:"dark_mode" validate:"oneof=class media"`
	Content  []string              `mapstructure:"content" yaml:"content" validate:"min=1,dive,required"`
	Colors   map[string]ColorToken `mapstructure:"colors" yaml:"colors" validate:"required,dive"`
}
