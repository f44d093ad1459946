package model

import "fmt"

const (
	OfflineAlertTitle   = "URL Offline Alert"
	OfflineAlertIconURL = "icons/icon48.png"
)

// Alert is a user-visible notification raised by the notifier.
type Alert struct {
	Title   string
	Message string
	IconURL string
}

func NewOfflineAlert(url string) Alert {
	return Alert{
		Title:   OfflineAlertTitle,
		Message: fmt.Sprintf("%s is currently offline", url),
		IconURL: OfflineAlertIconURL,
	}
}
