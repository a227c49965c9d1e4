package dto

import "time"

type DashboardResponse struct {
	ContactCount   int64                    `json:"contact_count"`
	CompanyCount   int64                    `json:"company_count"`
	DealCount      int64                    `json:"deal_count"`
	TicketCount    int64                    `json:"ticket_count"`
	OpenTickets    int64                    `json:"open_tickets"`
	ActiveChats    int64                    `json:"active_chats"`
	Pipeline       []PipelineBucketResponse `json:"pipeline"`
	RecentContacts []ContactResponse        `json:"recent_contacts"`
	RecentDeals    []DealResponse           `json:"recent_deals"`
	GeneratedAt    time.Time                `json:"generated_at"`
}
