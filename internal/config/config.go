package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"miniapp/internal/domain"
)

// Placeholder values shipped in the sample configuration.
const (
	PlaceholderBotToken  = "YOUR_BOT_TOKEN_HERE"
	PlaceholderLaunchURL = "YOUR_MINI_APP_URL_HERE"
)

// Environment overrides.
const (
	EnvBotToken   = "MINIAPP_BOT_TOKEN"
	EnvLaunchURL  = "MINIAPP_LAUNCH_URL"
	EnvPassphrase = "MINIAPP_PASSPHRASE"
)

// Receive modes for the launcher.
const (
	ModePolling = "polling"
	ModeWebhook = "webhook"
)

// ErrInvalid wraps every validation failure and every config file that
// cannot be read or parsed.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all configuration.
type Config struct {
	Launcher Launcher `yaml:"launcher" json:"launcher"`
	Host     Host     `yaml:"host" json:"host"`
	Logging  Logging  `yaml:"logging" json:"logging"`
}

// Launcher configures the bot that hands out the mini app button.
type Launcher struct {
	BotToken   string        `yaml:"bot_token" json:"bot_token" validate:"required,notplaceholder" jsonschema:"description=Bot API token issued by BotFather"`
	LaunchURL  string        `yaml:"launch_url" json:"launch_url" validate:"required,notplaceholder,url,startswith=https://" jsonschema:"description=HTTPS URL the mini app is served from"`
	APIBaseURL string        `yaml:"api_base_url" json:"api_base_url" validate:"required,url"`
	Mode       string        `yaml:"mode" json:"mode" validate:"oneof=polling webhook" jsonschema:"enum=polling,enum=webhook"`
	Polling    Polling       `yaml:"polling" json:"polling"`
	Webhook    Webhook       `yaml:"webhook" json:"webhook"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout" validate:"gt=0" jsonschema:"type=string,description=HTTP timeout for Bot API calls"`
}

// Polling configures the long-poll receive loop.
type Polling struct {
	// Timeout is the long-poll timeout sent to getUpdates.
	Timeout time.Duration `yaml:"timeout" json:"timeout" validate:"gte=0" jsonschema:"type=string"`
	// Pause separates two receive cycles after a failed one.
	Pause time.Duration `yaml:"pause" json:"pause" validate:"gte=0" jsonschema:"type=string"`
}

// Webhook configures the webhook receiver.
type Webhook struct {
	ListenAddr  string `yaml:"listen_addr" json:"listen_addr"`
	PublicURL   string `yaml:"public_url" json:"public_url" validate:"omitempty,url,startswith=https://"`
	SecretToken string `yaml:"secret_token" json:"secret_token" validate:"omitempty,max=256"`
}

// Host configures the development host bridge.
type Host struct {
	Home       string        `yaml:"home" json:"home"`
	Passphrase string        `yaml:"passphrase" json:"passphrase"`
	Theme      Theme         `yaml:"theme" json:"theme"`
	Device     DeviceStorage `yaml:"device_storage" json:"device_storage"`
	Secure     SecureStorage `yaml:"secure_storage" json:"secure_storage"`
	Fullscreen Fullscreen    `yaml:"fullscreen" json:"fullscreen"`
	Location   Location      `yaml:"location" json:"location"`
}

// Theme is the theme the host reports at startup.
type Theme struct {
	Disabled    bool               `yaml:"disabled" json:"disabled"`
	ColorScheme domain.ColorScheme `yaml:"color_scheme" json:"color_scheme" validate:"omitempty,oneof=light dark"`
	Light       domain.ThemeParams `yaml:"light" json:"light"`
	Dark        domain.ThemeParams `yaml:"dark" json:"dark"`
}

// DeviceStorage configures the non-persistent storage group.
type DeviceStorage struct {
	Disabled bool `yaml:"disabled" json:"disabled"`
	Quota    int  `yaml:"quota" json:"quota" validate:"gte=0"`
}

// SecureStorage configures the encrypted storage group.
type SecureStorage struct {
	Disabled bool `yaml:"disabled" json:"disabled"`
}

// Fullscreen configures the fullscreen group and its insets.
type Fullscreen struct {
	Disabled    bool `yaml:"disabled" json:"disabled"`
	Unsupported bool `yaml:"unsupported" json:"unsupported"`
	// Insets reported outside and inside fullscreen mode.
	SafeArea                  *domain.Inset `yaml:"safe_area" json:"safe_area"`
	ContentSafeArea           *domain.Inset `yaml:"content_safe_area" json:"content_safe_area"`
	FullscreenSafeArea        *domain.Inset `yaml:"fullscreen_safe_area" json:"fullscreen_safe_area"`
	FullscreenContentSafeArea *domain.Inset `yaml:"fullscreen_content_safe_area" json:"fullscreen_content_safe_area"`
}

// Location configures the location group.
type Location struct {
	Disabled      bool                `yaml:"disabled" json:"disabled"`
	InitError     string              `yaml:"init_error" json:"init_error"`
	AccessGranted bool                `yaml:"access_granted" json:"access_granted"`
	Sample        domain.LocationData `yaml:"sample" json:"sample"`
}

// Logging configures the zap logger.
type Logging struct {
	Level    string `yaml:"level" json:"level" validate:"omitempty,oneof=debug info warn error"`
	Encoding string `yaml:"encoding" json:"encoding" validate:"omitempty,oneof=json console"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	lat, lon, alt := 51.5007, -0.1246, 11.0
	hacc, vacc := 15.0, 4.0
	top, bottom := 0.0, 0.0
	fsTop, fsBottom, contentTop := 47.0, 34.0, 56.0

	return Config{
		Launcher: Launcher{
			BotToken:   PlaceholderBotToken,
			LaunchURL:  PlaceholderLaunchURL,
			APIBaseURL: "https://api.telegram.org",
			Mode:       ModePolling,
			Polling:    Polling{Timeout: 30 * time.Second, Pause: time.Second},
			Webhook:    Webhook{ListenAddr: ":8443"},
			Timeout:    45 * time.Second,
		},
		Host: Host{
			Theme: Theme{
				ColorScheme: domain.ColorSchemeLight,
				Light:       domain.ThemeParams{BgColor: "#ffffff", TextColor: "#000000", HintColor: "#999999", ButtonColor: "#2481cc", ButtonTextColor: "#ffffff"},
				Dark:        domain.ThemeParams{BgColor: "#17212b", TextColor: "#f5f5f5", HintColor: "#708499", ButtonColor: "#5288c1", ButtonTextColor: "#ffffff"},
			},
			Fullscreen: Fullscreen{
				SafeArea:                  &domain.Inset{Top: &top, Bottom: &bottom},
				ContentSafeArea:           &domain.Inset{Top: &top, Bottom: &bottom},
				FullscreenSafeArea:        &domain.Inset{Top: &fsTop, Bottom: &fsBottom},
				FullscreenContentSafeArea: &domain.Inset{Top: &contentTop, Bottom: &bottom},
			},
			Location: Location{
				AccessGranted: true,
				Sample: domain.LocationData{
					Latitude:           &lat,
					Longitude:          &lon,
					Altitude:           &alt,
					HorizontalAccuracy: &hacc,
					VerticalAccuracy:   &vacc,
				},
			},
		},
		Logging: Logging{Level: "info", Encoding: "console"},
	}
}

// Load reads path over the defaults and applies environment overrides. An
// empty path yields the defaults with overrides applied. Load does not
// validate; callers validate the section they use.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("%w: read config: %w", ErrInvalid, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: parse config %s: %w", ErrInvalid, path, err)
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvBotToken); v != "" {
		cfg.Launcher.BotToken = v
	}
	if v := os.Getenv(EnvLaunchURL); v != "" {
		cfg.Launcher.LaunchURL = v
	}
	if v := os.Getenv(EnvPassphrase); v != "" {
		cfg.Host.Passphrase = v
	}
}
