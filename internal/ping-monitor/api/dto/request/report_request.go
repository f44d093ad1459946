package request

type ReportRequest struct {
	Email string `json:"email" binding:"required,email"`
}
