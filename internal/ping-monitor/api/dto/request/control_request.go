package request

type ControlRequest struct {
	Action   string `json:"action" binding:"required"`
	Interval int    `json:"interval"`
	URL      string `json:"url"`
}
