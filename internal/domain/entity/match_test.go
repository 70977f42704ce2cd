package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewMatch_NormalizesPairOrder(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	forward := NewMatch(a, b)
	backward := NewMatch(b, a)

	assert.Equal(t, forward.UserAID, backward.UserAID)
	assert.Equal(t, forward.UserBID, backward.UserBID)
	assert.NotEqual(t, forward.UserAID, forward.UserBID)
}

func TestMatch_OtherSide(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	match := NewMatch(a, b)

	assert.Equal(t, b, match.OtherSide(a))
	assert.Equal(t, a, match.OtherSide(b))
}

func TestMatch_Involves(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	match := NewMatch(a, b)

	assert.True(t, match.Involves(a))
	assert.True(t, match.Involves(b))
	assert.False(t, match.Involves(uuid.New()))
}
