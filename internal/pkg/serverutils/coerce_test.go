package serverutils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNullableUUID(t *testing.T) {
	t.Run("empty means no relation", func(t *testing.T) {
		id, err := NullableUUID("")
		assert.NoError(t, err)
		assert.Nil(t, id)
	})

	t.Run("none sentinel means no relation", func(t *testing.T) {
		id, err := NullableUUID("none")
		assert.NoError(t, err)
		assert.Nil(t, id)
	})

	t.Run("valid uuid parses", func(t *testing.T) {
		want := uuid.New()
		id, err := NullableUUID(want.String())
		assert.NoError(t, err)
		if assert.NotNil(t, id) {
			assert.Equal(t, want, *id)
		}
	})

	t.Run("garbage is an error not nil", func(t *testing.T) {
		id, err := NullableUUID("not-a-uuid")
		assert.Error(t, err)
		assert.Nil(t, id)
	})
}

func TestNullableAmount(t *testing.T) {
	t.Run("blank means unset not zero", func(t *testing.T) {
		v, err := NullableAmount("")
		assert.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("numeric string parses", func(t *testing.T) {
		v, err := NullableAmount("2500.50")
		assert.NoError(t, err)
		if assert.NotNil(t, v) {
			assert.Equal(t, 2500.50, *v)
		}
	})

	t.Run("zero is a real value", func(t *testing.T) {
		v, err := NullableAmount("0")
		assert.NoError(t, err)
		if assert.NotNil(t, v) {
			assert.Equal(t, 0.0, *v)
		}
	})

	t.Run("garbage is an error", func(t *testing.T) {
		v, err := NullableAmount("12,50")
		assert.Error(t, err)
		assert.Nil(t, v)
	})
}
