package serverutils

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// NullableUUID coerces a form foreign-key value to a nullable id.
// Empty strings and the "none" sentinel both mean no relation.
func NullableUUID(raw string) (*uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "none" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// NullableAmount coerces a numeric form string to a nullable float.
// An empty string means the field was left blank, not zero.
func NullableAmount(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
