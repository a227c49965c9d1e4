package serverutils

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type upsertForm struct {
	Title string `validate:"required"`
	Email string `validate:"omitempty,email"`
}

func TestValidateRequestBlocksMissingRequiredField(t *testing.T) {
	err := ValidateRequest(upsertForm{Title: ""})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Title")
}

func TestValidateRequestFailureCarriesBadRequestCode(t *testing.T) {
	err := ValidateRequest(upsertForm{Title: ""})

	var fe *fiber.Error
	if assert.ErrorAs(t, err, &fe) {
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	}
}

func TestValidateRequestPassesValidForm(t *testing.T) {
	err := ValidateRequest(upsertForm{Title: "Renewal call notes"})
	assert.NoError(t, err)
}

func TestValidateRequestOptionalFieldStillChecked(t *testing.T) {
	assert.NoError(t, ValidateRequest(upsertForm{Title: "x", Email: ""}))
	assert.NoError(t, ValidateRequest(upsertForm{Title: "x", Email: "a@b.co"}))
	assert.Error(t, ValidateRequest(upsertForm{Title: "x", Email: "not-an-email"}))
}
