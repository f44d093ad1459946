package response

type SettingsResponse struct {
	PingInterval           int    `json:"ping_interval"`
	HideLauncher           bool   `json:"hide_launcher"`
	NotificationPermission string `json:"notification_permission,omitempty"`
}

type HealthResponse struct {
	Status          string   `json:"status"`
	IntervalSeconds int      `json:"interval_seconds"`
	ActiveURLs      []string `json:"active_urls"`
	Subscribers     int      `json:"subscribers"`
}
