package domain

// ElementID identifies a display element, input or button on the mini app
// surface.
type ElementID string

// String returns the string form of the element id.
func (id ElementID) String() string { return string(id) }

// Theme elements.
const (
	ColorSchemeDisplay ElementID = "colorSchemeDisplay"
	BgColorDisplay     ElementID = "bgColorDisplay"
	TextColorDisplay   ElementID = "textColorDisplay"
)

// Device storage elements.
const (
	DSKey        ElementID = "dsKey"
	DSValue      ElementID = "dsValue"
	DSResult     ElementID = "dsResult"
	DSSetItem    ElementID = "dsSetItem"
	DSGetItem    ElementID = "dsGetItem"
	DSRemoveItem ElementID = "dsRemoveItem"
	DSClearAll   ElementID = "dsClearAll"
)

// Secure storage elements.
const (
	SSKey         ElementID = "ssKey"
	SSValue       ElementID = "ssValue"
	SSResult      ElementID = "ssResult"
	SSSetItem     ElementID = "ssSetItem"
	SSGetItem     ElementID = "ssGetItem"
	SSRemoveItem  ElementID = "ssRemoveItem"
	SSClearAll    ElementID = "ssClearAll"
	SSRestoreItem ElementID = "ssRestoreItem"
)

// Fullscreen elements.
const (
	RequestFullscreen     ElementID = "requestFullscreen"
	ExitFullscreen        ElementID = "exitFullscreen"
	FullscreenStatus      ElementID = "fullscreenStatus"
	SafeAreaTop           ElementID = "safeAreaTop"
	SafeAreaBottom        ElementID = "safeAreaBottom"
	ContentSafeAreaTop    ElementID = "contentSafeAreaTop"
	ContentSafeAreaBottom ElementID = "contentSafeAreaBottom"
)

// Geolocation elements.
const (
	RequestLocation ElementID = "requestLocation"
	LocationStatus  ElementID = "locationStatus"
	Latitude        ElementID = "latitude"
	Longitude       ElementID = "longitude"
	Altitude        ElementID = "altitude"
	Accuracy        ElementID = "accuracy"
)

// StyleProperty is a body style property mirrored from theme parameters.
type StyleProperty string

const (
	StyleBackgroundColor StyleProperty = "background-color"
	StyleColor           StyleProperty = "color"
)

// View is the display surface the client renders into.
//
// Inputs are read with Value and written with SetValue; text elements are
// written with SetText. A disabled button never invokes its click handler.
type View interface {
	Value(id ElementID) string
	SetValue(id ElementID, value string)
	SetText(id ElementID, text string)
	SetDisabled(id ElementID, disabled bool)
	SetStyle(prop StyleProperty, value string)
	OnClick(id ElementID, handler func())
}
