package listview

import "crm-hub-be/internal/entity"

// Searchable field accessors, one per list page. The field lists mirror
// what each page's search box is expected to hit.

func ContactSearchFields(c *entity.Contact) []string {
	return []string{c.FirstName, c.LastName, c.Email, c.CompanyName}
}

func CompanySearchFields(c *entity.Company) []string {
	return []string{c.Name, c.Domain, c.Industry}
}

func DealSearchFields(d *entity.Deal) []string {
	return []string{d.Title, d.CompanyName, d.ContactName}
}

func TicketSearchFields(t *entity.Ticket) []string {
	return []string{t.Title, t.Description, t.Category, t.ContactFirstName, t.ContactLastName}
}

func CampaignSearchFields(c *entity.EmailCampaign) []string {
	return []string{c.Name, c.Subject}
}

func ArticleSearchFields(a *entity.KBArticle) []string {
	fields := []string{a.Title, a.Content, a.Category}
	return append(fields, a.Tags...)
}

func SessionSearchFields(s *entity.ChatSession) []string {
	return []string{s.VisitorName, s.VisitorEmail}
}

// Facet constructors for the enum columns each page filters on.

func ContactStatusFacet(selected string) Facet[*entity.Contact] {
	return Facet[*entity.Contact]{Selected: selected, Value: func(c *entity.Contact) string { return string(c.LeadStatus) }}
}

func CompanyIndustryFacet(selected string) Facet[*entity.Company] {
	return Facet[*entity.Company]{Selected: selected, Value: func(c *entity.Company) string { return c.Industry }}
}

func CompanySizeFacet(selected string) Facet[*entity.Company] {
	return Facet[*entity.Company]{Selected: selected, Value: func(c *entity.Company) string { return c.Size }}
}

func DealStageFacet(selected string) Facet[*entity.Deal] {
	return Facet[*entity.Deal]{Selected: selected, Value: func(d *entity.Deal) string { return string(d.Stage) }}
}

func TicketStatusFacet(selected string) Facet[*entity.Ticket] {
	return Facet[*entity.Ticket]{Selected: selected, Value: func(t *entity.Ticket) string { return string(t.Status) }}
}

func TicketPriorityFacet(selected string) Facet[*entity.Ticket] {
	return Facet[*entity.Ticket]{Selected: selected, Value: func(t *entity.Ticket) string { return string(t.Priority) }}
}

func CampaignStatusFacet(selected string) Facet[*entity.EmailCampaign] {
	return Facet[*entity.EmailCampaign]{Selected: selected, Value: func(c *entity.EmailCampaign) string { return string(c.Status) }}
}

func ArticleCategoryFacet(selected string) Facet[*entity.KBArticle] {
	return Facet[*entity.KBArticle]{Selected: selected, Value: func(a *entity.KBArticle) string { return a.Category }}
}

func ArticleStatusFacet(selected string) Facet[*entity.KBArticle] {
	return Facet[*entity.KBArticle]{Selected: selected, Value: func(a *entity.KBArticle) string { return string(a.Status) }}
}

func SessionStatusFacet(selected string) Facet[*entity.ChatSession] {
	return Facet[*entity.ChatSession]{Selected: selected, Value: func(s *entity.ChatSession) string { return string(s.Status) }}
}
