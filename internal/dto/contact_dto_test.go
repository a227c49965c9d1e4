package dto

import (
	"testing"

	"crm-hub-be/internal/pkg/serverutils"

	"github.com/stretchr/testify/assert"
)

func TestUpsertContactRequestRequiresNames(t *testing.T) {
	req := UpsertContactRequest{
		FirstName: "",
		LastName:  "",
		Email:     "someone@example.com",
	}

	err := serverutils.ValidateRequest(req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "FirstName")
	assert.Contains(t, err.Error(), "LastName")
}

func TestUpsertContactRequestValid(t *testing.T) {
	req := UpsertContactRequest{
		FirstName: "Ann",
		LastName:  "Lee",
		CompanyId: "none",
	}

	assert.NoError(t, serverutils.ValidateRequest(req))
}

func TestUpsertContactRequestRejectsBadEmail(t *testing.T) {
	req := UpsertContactRequest{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "not-an-email",
	}

	assert.Error(t, serverutils.ValidateRequest(req))
}
