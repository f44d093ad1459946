package response

type ImportEndpointResponse struct {
	ImportedCount int      `json:"imported_count"`
	ImportedURLs  []string `json:"imported_urls,omitempty"`
	FailedCount   int      `json:"failed_count"`
	FailedURLs    []string `json:"failed_urls,omitempty"`
}
