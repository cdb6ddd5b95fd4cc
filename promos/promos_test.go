package promos

import (
	"testing"

	"mineshop/apperr"
	"mineshop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes() []models.PromoCode {
	return []models.PromoCode{
		{Code: "WELCOME", Discount: 20, UsageLimit: 100, UsedCount: 45, Active: true},
		{Code: "VIP2024", Discount: 50, UsageLimit: 50, UsedCount: 12, Active: true},
	}
}

func TestApplyDiscountFloors(t *testing.T) {
	discount, total, promo, err := Apply(codes(), "WELCOME", 299)
	require.NoError(t, err)

	assert.Equal(t, 59, discount, "299 * 20% floors to 59")
	assert.Equal(t, 240, total)
	assert.Equal(t, "WELCOME", promo.Code)
}

func TestApplyNormalizesCode(t *testing.T) {
	_, total, _, err := Apply(codes(), "  welcome ", 100)
	require.NoError(t, err)
	assert.Equal(t, 80, total)
}

func TestApplyUnknownCode(t *testing.T) {
	_, total, _, err := Apply(codes(), "NOPE", 100)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, 100, total)
}

func TestApplyExhaustedCode(t *testing.T) {
	exhausted := []models.PromoCode{
		{Code: "GONE", Discount: 10, UsageLimit: 5, UsedCount: 5, Active: true},
	}
	_, _, _, err := Apply(exhausted, "GONE", 100)
	assert.ErrorIs(t, err, apperr.ErrLimitExceeded)
}

func TestApplyExhaustedBeatsInactive(t *testing.T) {
	// A code that is both exhausted and inactive reports exhaustion.
	both := []models.PromoCode{
		{Code: "DEAD", Discount: 10, UsageLimit: 5, UsedCount: 5, Active: false},
	}
	_, _, _, err := Apply(both, "DEAD", 100)
	assert.ErrorIs(t, err, apperr.ErrLimitExceeded)
}

func TestApplyInactiveCode(t *testing.T) {
	inactive := []models.PromoCode{
		{Code: "PAUSED", Discount: 10, UsageLimit: 5, UsedCount: 0, Active: false},
	}
	_, _, _, err := Apply(inactive, "PAUSED", 100)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestApplyTotalNeverNegative(t *testing.T) {
	full := []models.PromoCode{
		{Code: "FREE", Discount: 100, UsageLimit: 10, Active: true},
	}
	discount, total, _, err := Apply(full, "FREE", 79)
	require.NoError(t, err)
	assert.Equal(t, 79, discount)
	assert.Equal(t, 0, total)
}

func TestCreateUppercasesAndResets(t *testing.T) {
	promo, err := Create("spring25", 25, 10)
	require.NoError(t, err)

	assert.Equal(t, "SPRING25", promo.Code)
	assert.Equal(t, 0, promo.UsedCount)
	assert.True(t, promo.Active)
}

func TestCreateRejectsBadInput(t *testing.T) {
	_, err := Create("", 10, 5)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = Create("X", -1, 5)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = Create("X", 101, 5)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = Create("X", 10, 0)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestCreateAllowsZeroDiscount(t *testing.T) {
	promo, err := Create("TRACKER", 0, 5)
	require.NoError(t, err)
	assert.Zero(t, promo.Discount)
}

func TestToggleFlipsFirstMatch(t *testing.T) {
	cs := codes()
	require.True(t, Toggle(cs, "WELCOME"))
	assert.False(t, cs[0].Active)

	require.True(t, Toggle(cs, "WELCOME"))
	assert.True(t, cs[0].Active)

	assert.False(t, Toggle(cs, "NOPE"))
}

func TestDeleteRemovesFirstMatch(t *testing.T) {
	remaining, ok := Delete(codes(), "WELCOME")
	require.True(t, ok)
	require.Len(t, remaining, 1)
	assert.Equal(t, "VIP2024", remaining[0].Code)

	same, ok := Delete(remaining, "NOPE")
	assert.False(t, ok)
	assert.Len(t, same, 1)
}
