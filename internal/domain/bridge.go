package domain

// Callback shapes used by the storage groups. Exactly one of err or the
// success value is meaningful; a nil err with a false/nil result is an
// ambiguous response the caller must not interpret as success.
type (
	ResultFunc    func(err error, ok bool)
	ValueFunc     func(err error, value *string)
	SecureGetFunc func(err error, value *string, canRestore bool)
	LocationFunc  func(data *LocationData)
)

// Bridge is the host-provided object giving a mini app access to platform
// capabilities. Capability groups are optional; each accessor reports whether
// the host exposes the group.
type Bridge interface {
	// Ready signals that the initial render is done. Call once.
	Ready()
	// OnEvent subscribes handler to name for the lifetime of the session.
	OnEvent(name EventName, handler EventHandler)

	ThemeParams() (ThemeParams, bool)
	ColorScheme() ColorScheme

	DeviceStorage() (DeviceStorage, bool)
	SecureStorage() (SecureStorage, bool)
	Fullscreen() (Fullscreen, bool)
	LocationManager() (LocationManager, bool)
}

// DeviceStorage is the host's non-persistent key/value store. Entries may be
// purged by the host under storage pressure.
type DeviceStorage interface {
	SetItem(key, value string, cb ResultFunc)
	GetItem(key string, cb ValueFunc)
	RemoveItem(key string, cb ResultFunc)
	Clear(cb ResultFunc)
}

// SecureStorage is the host's persistent, encrypted key/value store that is
// synchronised across the user's devices.
type SecureStorage interface {
	SetItem(key, value string, cb ResultFunc)
	// GetItem reports canRestore when the value is absent locally but can be
	// recovered with RestoreItem.
	GetItem(key string, cb SecureGetFunc)
	RemoveItem(key string, cb ResultFunc)
	Clear(cb ResultFunc)
	RestoreItem(key string, cb ValueFunc)
}

// Fullscreen controls fullscreen mode. Requests are fire-and-forget; the
// outcome arrives as fullscreenChanged or fullscreenFailed.
type Fullscreen interface {
	RequestFullscreen()
	ExitFullscreen()
	IsFullscreen() bool
	SafeAreaInset() (Inset, bool)
	ContentSafeAreaInset() (Inset, bool)
}

// LocationManager gives access to device geolocation. Init must succeed
// before GetLocation is used.
type LocationManager interface {
	Init() error
	// GetLocation calls cb with a sample, or nil when access was denied or
	// the location could not be determined.
	GetLocation(cb LocationFunc)
	IsAccessGranted() bool
}
