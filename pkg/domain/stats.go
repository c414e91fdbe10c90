package domain

// DashboardStats aggregates the numbers shown on the dashboard.
type DashboardStats struct {
	// Total is the number of tracked applications.
	Total int `json:"total"`
	// ByStatus maps every status to its count; statuses with no
	// applications are present with a zero value.
	ByStatus map[ApplicationStatus]int `json:"by_status"`
	// ReplyRate is the percentage of applications with at least one linked
	// email, rounded to one decimal.
	ReplyRate float64 `json:"reply_rate"`
}
