package model

type EndpointStatus string

const (
	StatusChecking EndpointStatus = "checking"
	StatusOnline   EndpointStatus = "online"
	StatusOffline  EndpointStatus = "offline"
)

// Normalize maps anything outside the status enum to StatusChecking.
func (s EndpointStatus) Normalize() EndpointStatus {
	switch s {
	case StatusOnline, StatusOffline, StatusChecking:
		return s
	default:
		return StatusChecking
	}
}

// MonitoredEndpoint is one entry of the persisted "urls" list. URL is the identity key.
type MonitoredEndpoint struct {
	URL         string         `json:"url"`
	Alias       *string        `json:"alias"`
	Group       *string        `json:"group"`
	Status      EndpointStatus `json:"status"`
	LastChecked *int64         `json:"lastChecked"` // epoch milliseconds, nil until the first probe completes
}

// Outcome is the classification of a single probe.
type Outcome int

const (
	Unreachable Outcome = iota
	Reachable
)

func (o Outcome) Status() EndpointStatus {
	if o == Reachable {
		return StatusOnline
	}
	return StatusOffline
}

func (o Outcome) String() string {
	if o == Reachable {
		return "reachable"
	}
	return "unreachable"
}

// EndpointInput carries user-provided fields for a new endpoint.
type EndpointInput struct {
	URL   string
	Alias *string
	Group *string
}
