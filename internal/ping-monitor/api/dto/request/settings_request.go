package request

type IntervalRequest struct {
	Interval *int `json:"interval" binding:"required,gte=1"`
}

type LauncherRequest struct {
	HideLauncher *bool `json:"hide_launcher" binding:"required"`
}

type NotificationPermissionRequest struct {
	Permission string `json:"permission" binding:"required,oneof=granted denied"`
}
