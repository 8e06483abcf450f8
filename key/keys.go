// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 21

// Media Engine - these keys select and configure the native player process.
const (
	Player                   = "player.default"
	PlayerFallbackURL        = "player.fallback_url"
	PlayerForceURL           = "player.force_url"
	PlayerFullscreen         = "player.fullscreen"
	PlayerEnterDelay         = "player.enter_delay_ms"
	PlayerEstimateThroughput = "player.estimate_throughput"
	PlayerAssumedBitrate     = "player.assumed_bitrate"
)

// Gesture Recognition - these keys tune how pointer input is classified.
const (
	GestureDoubleTapWindow = "gesture.double_tap_window_ms"
	GestureSeekStep        = "gesture.seek_step"
	GestureSeekDebounce    = "gesture.seek_debounce_ms"
	GestureDragSensitivity = "gesture.drag_sensitivity"
)

// Overlay - these keys govern the auto-hiding control surface.
const (
	OverlayHideAfter = "overlay.hide_after_ms"
)

// Catalog - these keys configure title resolution against the remote catalog.
const (
	CatalogBaseURL    = "catalog.base_url"
	CatalogCacheHours = "catalog.cache_hours"
	CatalogTimeout    = "catalog.timeout_seconds"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
