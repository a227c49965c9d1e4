package entity

import (
	"time"

	"github.com/google/uuid"
)

type LeadStatus string

const (
	LeadStatusNew         LeadStatus = "new"
	LeadStatusOpen        LeadStatus = "open"
	LeadStatusInProgress  LeadStatus = "in_progress"
	LeadStatusClosed      LeadStatus = "closed"
	LeadStatusUnqualified LeadStatus = "unqualified"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusOpen, LeadStatusInProgress, LeadStatusClosed, LeadStatusUnqualified:
		return true
	}
	return false
}

type Contact struct {
	Id         uuid.UUID
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	JobTitle   string
	CompanyId  *uuid.UUID
	LeadStatus LeadStatus
	LeadSource string
	Notes      string
	CreatedBy  *uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  *time.Time

	// Joined company name, populated on list reads only.
	CompanyName string
}

func (c *Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}
