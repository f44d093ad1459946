package model

// Keys of the persisted document.
const (
	KeyPingInterval           = "pingInterval"
	KeyHideLauncher           = "hideLauncher"
	KeyURLs                   = "urls"
	KeyNotificationPermission = "notificationPermission"
	KeyInstalledAt            = "installedAt"
)

const (
	DefaultPingIntervalSeconds = 30
	MinPingIntervalSeconds     = 5
)

const (
	PermissionGranted = "granted"
	PermissionDenied  = "denied"
)

// MonitorConfig is the process-wide monitoring configuration.
type MonitorConfig struct {
	PingIntervalSeconds int
}

type Settings struct {
	PingInterval           int
	HideLauncher           bool
	NotificationPermission string
}

type Summary struct {
	Online      int
	Offline     int
	Checking    int
	Total       int
	LatestCheck *int64
}
