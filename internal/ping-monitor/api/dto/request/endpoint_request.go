package request

type EndpointRequest struct {
	URL   string  `json:"url" binding:"required,url" validate:"required,url"`
	Alias *string `json:"alias" binding:"omitempty,max=100" validate:"omitempty,max=100"`
	Group *string `json:"group" binding:"omitempty,max=100" validate:"omitempty,max=100"`
}
