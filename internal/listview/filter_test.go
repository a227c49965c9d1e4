package listview

import (
	"testing"

	"crm-hub-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestVisibleContacts(t *testing.T) {
	ann := &entity.Contact{FirstName: "Ann", LastName: "Lee", LeadStatus: entity.LeadStatusNew}
	bo := &entity.Contact{FirstName: "Bo", LastName: "Kim", LeadStatus: entity.LeadStatusClosed}
	contacts := []*entity.Contact{ann, bo}

	tests := []struct {
		name   string
		term   string
		status string
		want   []*entity.Contact
	}{
		{
			name:   "search narrows by substring",
			term:   "an",
			status: "all",
			want:   []*entity.Contact{ann},
		},
		{
			name:   "facet narrows by status",
			term:   "",
			status: "closed",
			want:   []*entity.Contact{bo},
		},
		{
			name:   "empty filter is identity",
			term:   "",
			status: "all",
			want:   contacts,
		},
		{
			name:   "unset facet equals all",
			term:   "",
			status: "",
			want:   contacts,
		},
		{
			name:   "search is case insensitive",
			term:   "LEE",
			status: "all",
			want:   []*entity.Contact{ann},
		},
		{
			name:   "search and facet must both match",
			term:   "an",
			status: "closed",
			want:   []*entity.Contact{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Visible(contacts, tt.term, ContactSearchFields, ContactStatusFacet(tt.status))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVisiblePreservesOrder(t *testing.T) {
	deals := []*entity.Deal{
		{Title: "alpha renewal", Stage: entity.DealStageProspecting},
		{Title: "beta renewal", Stage: entity.DealStageClosedWon},
		{Title: "gamma renewal", Stage: entity.DealStageProspecting},
	}

	got := Visible(deals, "renewal", DealSearchFields, DealStageFacet("prospecting"))

	assert.Len(t, got, 2)
	assert.Equal(t, "alpha renewal", got[0].Title)
	assert.Equal(t, "gamma renewal", got[1].Title)
}

func TestVisibleMultipleFacetsAnd(t *testing.T) {
	urgent := &entity.Ticket{Title: "Login broken", Status: entity.TicketStatusOpen, Priority: entity.TicketPriorityUrgent}
	low := &entity.Ticket{Title: "Login slow", Status: entity.TicketStatusOpen, Priority: entity.TicketPriorityLow}
	closed := &entity.Ticket{Title: "Login typo", Status: entity.TicketStatusClosed, Priority: entity.TicketPriorityUrgent}
	tickets := []*entity.Ticket{urgent, low, closed}

	got := Visible(tickets, "login", TicketSearchFields,
		TicketStatusFacet("open"),
		TicketPriorityFacet("urgent"),
	)

	assert.Equal(t, []*entity.Ticket{urgent}, got)
}

func TestVisibleSearchesArticleTags(t *testing.T) {
	tagged := &entity.KBArticle{Title: "Setup", Tags: []string{"billing", "onboarding"}}
	plain := &entity.KBArticle{Title: "FAQ"}

	got := Visible([]*entity.KBArticle{tagged, plain}, "billing", ArticleSearchFields)

	assert.Equal(t, []*entity.KBArticle{tagged}, got)
}

func TestVisibleSubsetInvariant(t *testing.T) {
	companies := []*entity.Company{
		{Name: "Acme", Industry: "manufacturing", Size: "51-200"},
		{Name: "Globex", Industry: "technology", Size: "11-50"},
		{Name: "Initech", Industry: "technology", Size: "51-200"},
	}

	got := Visible(companies, "e", CompanySearchFields,
		CompanyIndustryFacet("technology"),
		CompanySizeFacet("all"),
	)

	for _, c := range got {
		assert.Contains(t, companies, c)
		assert.Equal(t, "technology", c.Industry)
	}
	assert.Equal(t, []*entity.Company{companies[1], companies[2]}, got)
}
