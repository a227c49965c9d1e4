package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpsertCompanyRequest struct {
	Id          uuid.UUID `json:"-"`
	Name        string    `json:"name" validate:"required"`
	Domain      string    `json:"domain"`
	Industry    string    `json:"industry"`
	Size        string    `json:"size"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Country     string    `json:"country"`
	PostalCode  string    `json:"postal_code"`
	Description string    `json:"description"`
}

type CompanyResponse struct {
	Id          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Domain      string     `json:"domain"`
	Industry    string     `json:"industry"`
	Size        string     `json:"size"`
	Phone       string     `json:"phone"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	State       string     `json:"state"`
	Country     string     `json:"country"`
	PostalCode  string     `json:"postal_code"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type ListCompaniesQuery struct {
	Search   string
	Industry string
	Size     string
}
