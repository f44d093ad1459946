package response

type EndpointResponse struct {
	URL         string  `json:"url"`
	Alias       *string `json:"alias"`
	Group       *string `json:"group"`
	Status      string  `json:"status"`
	LastChecked *int64  `json:"last_checked"`
}

type SummaryResponse struct {
	Online      int    `json:"online"`
	Offline     int    `json:"offline"`
	Checking    int    `json:"checking"`
	Total       int    `json:"total"`
	LatestCheck *int64 `json:"latest_check"`
}
