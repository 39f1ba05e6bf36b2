package domain

// ColorScheme is the host's current color scheme name.
type ColorScheme string

const (
	ColorSchemeLight ColorScheme = "light"
	ColorSchemeDark  ColorScheme = "dark"
)

// String returns the string form of the color scheme.
func (c ColorScheme) String() string { return string(c) }

// ThemeParams is the read-only theme snapshot supplied by the host.
// Empty fields mean the host did not provide the color.
type ThemeParams struct {
	BgColor          string `json:"bg_color,omitempty" yaml:"bg_color"`
	TextColor        string `json:"text_color,omitempty" yaml:"text_color"`
	HintColor        string `json:"hint_color,omitempty" yaml:"hint_color"`
	LinkColor        string `json:"link_color,omitempty" yaml:"link_color"`
	ButtonColor      string `json:"button_color,omitempty" yaml:"button_color"`
	ButtonTextColor  string `json:"button_text_color,omitempty" yaml:"button_text_color"`
	SecondaryBgColor string `json:"secondary_bg_color,omitempty" yaml:"secondary_bg_color"`
}

// Inset holds screen-edge offsets in pixels. A nil field is a value the host
// did not report.
type Inset struct {
	Top    *float64 `json:"top,omitempty" yaml:"top"`
	Bottom *float64 `json:"bottom,omitempty" yaml:"bottom"`
}

// LocationData is a single location sample. Every field is optional.
type LocationData struct {
	Latitude           *float64 `json:"latitude,omitempty" yaml:"latitude"`
	Longitude          *float64 `json:"longitude,omitempty" yaml:"longitude"`
	Altitude           *float64 `json:"altitude,omitempty" yaml:"altitude"`
	Course             *float64 `json:"course,omitempty" yaml:"course"`
	Speed              *float64 `json:"speed,omitempty" yaml:"speed"`
	HorizontalAccuracy *float64 `json:"horizontal_accuracy,omitempty" yaml:"horizontal_accuracy"`
	VerticalAccuracy   *float64 `json:"vertical_accuracy,omitempty" yaml:"vertical_accuracy"`
	CourseAccuracy     *float64 `json:"course_accuracy,omitempty" yaml:"course_accuracy"`
	SpeedAccuracy      *float64 `json:"speed_accuracy,omitempty" yaml:"speed_accuracy"`
}

// EventName names a notification the host pushes to subscribers.
type EventName string

const (
	EventThemeChanged           EventName = "themeChanged"
	EventFullscreenChanged      EventName = "fullscreenChanged"
	EventFullscreenFailed       EventName = "fullscreenFailed"
	EventSafeAreaChanged        EventName = "safeAreaChanged"
	EventContentSafeAreaChanged EventName = "contentSafeAreaChanged"
	EventLocationManagerUpdated EventName = "locationManagerUpdated"
	EventLocationRequested      EventName = "locationRequested"
)

// String returns the string form of the event name.
func (e EventName) String() string { return string(e) }

// Event is the payload delivered to an EventHandler.
//
// Location is set for locationRequested when a sample was produced.
// Error carries the failure reason for fullscreenFailed.
type Event struct {
	Name     EventName
	Location *LocationData
	Error    string
}

// EventHandler receives host notifications.
type EventHandler func(Event)
