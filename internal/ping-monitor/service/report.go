package service

import (
	"URL_Ping_Monitor/internal/ping-monitor/model"
	"fmt"
	"html"
	"strings"
	"time"
)

func displayName(e model.MonitoredEndpoint) string {
	if e.Alias != nil {
		return *e.Alias
	}
	return e.URL
}

func formatLastChecked(lastChecked *int64) string {
	if lastChecked == nil {
		return "never"
	}
	return time.UnixMilli(*lastChecked).UTC().Format("2006-01-02 15:04:05")
}

func generateTextReport(summary model.Summary, endpoints []model.MonitoredEndpoint) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- SUMMARY ---\nTotal URLs: %d\nOnline: %d\nOffline: %d\nChecking: %d\n\n",
		summary.Total, summary.Online, summary.Offline, summary.Checking)
	for _, e := range endpoints {
		fmt.Fprintf(&b, "%s [%s] last checked %s\n", displayName(e), e.Status, formatLastChecked(e.LastChecked))
	}
	return b.String()
}

func generateHTMLReport(summary model.Summary, endpoints []model.MonitoredEndpoint) string {
	var rows strings.Builder
	for _, e := range endpoints {
		fmt.Fprintf(&rows, `
        <tr>
            <td style="border: 1px solid #dddddd; padding: 8px;">%s</td>
            <td style="border: 1px solid #dddddd; padding: 8px;">%s</td>
            <td style="border: 1px solid #dddddd; padding: 8px;">%s</td>
        </tr>`, html.EscapeString(displayName(e)), e.Status, formatLastChecked(e.LastChecked))
	}
	return fmt.Sprintf(`
<body>
    <p>Total: %d, Online: %d, Offline: %d, Checking: %d</p>
    <table style="width:100%%; border-collapse: collapse;">
        <tr>
            <th style="border: 1px solid #dddddd; padding: 8px; background-color: #f2f2f2;">URL</th>
            <th style="border: 1px solid #dddddd; padding: 8px; background-color: #f2f2f2;">Status</th>
            <th style="border: 1px solid #dddddd; padding: 8px; background-color: #f2f2f2;">Last checked (UTC)</th>
        </tr>%s
    </table>
</body>`, summary.Total, summary.Online, summary.Offline, summary.Checking, rows.String())
}
