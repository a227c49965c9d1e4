package entity

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	Id          uuid.UUID
	Name        string
	Domain      string
	Industry    string
	Size        string
	Phone       string
	Address     string
	City        string
	State       string
	Country     string
	PostalCode  string
	Description string
	CreatedBy   *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
