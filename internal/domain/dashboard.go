package domain

import "context"

type DashboardStats struct {
	TotalUsers        int64   `json:"total_users"`
	TotalPayments     int64   `json:"total_payments"`
	TotalRevenue      float64 `json:"total_revenue"`
	PendingPayments   int64   `json:"pending_payments"`
	CompletedPayments int64   `json:"completed_payments"`
	TotalEvents       int64   `json:"total_events"`
	ActiveEvents      int64   `json:"active_events"`
}

type DashboardRepository interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}
