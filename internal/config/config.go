package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/Veraticus/skiphire/internal/common"
	"github.com/Veraticus/skiphire/internal/model"
	"github.com/spf13/viper"
)

// Viper keys.
const (
	KeyAPIBaseURL       = "api.base_url"
	KeyAPITimeout       = "api.timeout"
	KeyPostcode         = "location.postcode"
	KeyArea             = "location.area"
	KeyDatabasePath     = "database.path"
	KeyTheme            = "ui.theme"
	KeyStepperStep      = "ui.stepper.scroll_step"
	KeyStepperEdgeSlack = "ui.stepper.edge_slack"
	KeyLogLevel         = "logging.level"
	KeyLogFormat        = "logging.format"
	KeyLogFile          = "logging.file"
)

// DefaultAPIBaseURL is the booking API serving skip availability.
const DefaultAPIBaseURL = "https://app.wewantwaste.co.uk"

// Config holds everything the commands need.
type Config struct {
	APIBaseURL   string
	DatabasePath string
	Theme        string
	LogLevel     string
	LogFormat    string
	LogFile      string
	Location     model.Location
	APITimeout   time.Duration
	ScrollStep   int
	EdgeSlack    int
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAPIBaseURL, DefaultAPIBaseURL)
	v.SetDefault(KeyAPITimeout, 30*time.Second)
	v.SetDefault(KeyPostcode, model.DefaultLocation.Postcode)
	v.SetDefault(KeyArea, model.DefaultLocation.Area)
	v.SetDefault(KeyDatabasePath, "~/.local/share/skiphire/skiphire.db")
	v.SetDefault(KeyTheme, "default")
	v.SetDefault(KeyStepperStep, 24)
	v.SetDefault(KeyStepperEdgeSlack, 1)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyLogFile, "")
}

// Load reads the settings from v and validates them.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		APIBaseURL: v.GetString(KeyAPIBaseURL),
		APITimeout: v.GetDuration(KeyAPITimeout),
		Location: model.Location{
			Postcode: v.GetString(KeyPostcode),
			Area:     v.GetString(KeyArea),
		},
		DatabasePath: ExpandPath(v.GetString(KeyDatabasePath)),
		Theme:        v.GetString(KeyTheme),
		ScrollStep:   v.GetInt(KeyStepperStep),
		EdgeSlack:    v.GetInt(KeyStepperEdgeSlack),
		LogLevel:     v.GetString(KeyLogLevel),
		LogFormat:    v.GetString(KeyLogFormat),
		LogFile:      ExpandPath(v.GetString(KeyLogFile)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the settings can be used.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("%w: %s", common.ErrMissingConfig, KeyAPIBaseURL)
	}
	if u, err := url.Parse(c.APIBaseURL); err != nil || u.Host == "" {
		return fmt.Errorf("%w: %s %q is not an absolute url", common.ErrInvalidConfig, KeyAPIBaseURL, c.APIBaseURL)
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("%w: %s must be positive", common.ErrInvalidConfig, KeyAPITimeout)
	}
	if c.Location.Postcode == "" {
		return fmt.Errorf("%w: %s", common.ErrMissingConfig, KeyPostcode)
	}
	if c.Location.Area == "" {
		return fmt.Errorf("%w: %s", common.ErrMissingConfig, KeyArea)
	}
	if c.ScrollStep <= 0 {
		return fmt.Errorf("%w: %s must be positive", common.ErrInvalidConfig, KeyStepperStep)
	}
	if c.EdgeSlack < 0 {
		return fmt.Errorf("%w: %s must not be negative", common.ErrInvalidConfig, KeyStepperEdgeSlack)
	}
	if _, err := common.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("%w: %s %q", common.ErrInvalidConfig, KeyLogFormat, c.LogFormat)
	}
	return nil
}

// StorageEnabled reports whether fetch attempts should be logged.
func (c *Config) StorageEnabled() bool {
	return c.DatabasePath != ""
}
