package request

type UpdateEndpointRequest struct {
	Alias *string `json:"alias" binding:"omitempty,max=100"`
	Group *string `json:"group" binding:"omitempty,max=100"`
}
