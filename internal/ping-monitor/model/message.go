package model

const (
	ActionStatusUpdate      = "statusUpdate"
	ActionPermissionRequest = "permissionRequest"
)

// Message is a best-effort push to UI surfaces. No acknowledgement is expected.
type Message struct {
	Action string         `json:"action"`
	URL    string         `json:"url,omitempty"`
	Status EndpointStatus `json:"status,omitempty"`
}

func NewStatusUpdate(url string, status EndpointStatus) Message {
	return Message{
		Action: ActionStatusUpdate,
		URL:    url,
		Status: status,
	}
}
