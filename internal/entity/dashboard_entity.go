package entity

import "time"

// PipelineBucket aggregates the deals sitting in one stage.
type PipelineBucket struct {
	Stage       DealStage
	Count       int
	TotalAmount float64
}

type DashboardSummary struct {
	ContactCount   int64
	CompanyCount   int64
	DealCount      int64
	TicketCount    int64
	OpenTickets    int64
	ActiveChats    int64
	Pipeline       []PipelineBucket
	RecentContacts []*Contact
	RecentDeals    []*Deal
	GeneratedAt    time.Time
}
