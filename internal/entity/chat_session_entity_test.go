package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChatStatusTransitions(t *testing.T) {
	cases := []struct {
		name    string
		from    ChatStatus
		to      ChatStatus
		allowed bool
	}{
		{"waiting to active", ChatStatusWaiting, ChatStatusActive, true},
		{"waiting to ended", ChatStatusWaiting, ChatStatusEnded, true},
		{"active to ended", ChatStatusActive, ChatStatusEnded, true},
		{"active to active", ChatStatusActive, ChatStatusActive, false},
		{"active back to waiting", ChatStatusActive, ChatStatusWaiting, false},
		{"ended to active", ChatStatusEnded, ChatStatusActive, false},
		{"ended to waiting", ChatStatusEnded, ChatStatusWaiting, false},
		{"ended to ended", ChatStatusEnded, ChatStatusEnded, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestChatStatusValid(t *testing.T) {
	assert.True(t, ChatStatusWaiting.Valid())
	assert.True(t, ChatStatusActive.Valid())
	assert.True(t, ChatStatusEnded.Valid())
	assert.False(t, ChatStatus("archived").Valid())
	assert.False(t, ChatStatus("").Valid())
}
