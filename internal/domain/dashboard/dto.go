package dashboard

import "context"

// TodayStats is derived on every call from users, today's attendance and
// approved leave. Absent = max(0, TotalEmployees - Present - OnLeave).
type TodayStats struct {
	Date           string `json:"date"`
	TotalEmployees int    `json:"total_employees"`
	Present        int    `json:"present"`
	Late           int    `json:"late"`
	Absent         int    `json:"absent"`
	OnLeave        int    `json:"on_leave"`
	Remote         int    `json:"remote"`
}

type DashboardService interface {
	TodayStats(ctx context.Context) (TodayStats, error)
}
