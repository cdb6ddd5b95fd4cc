package store

import (
	"context"
	"testing"

	"mineshop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingKeyReturnsDefault(t *testing.T) {
	st := NewMemory()

	got := Load(context.Background(), st, KeyProducts, DefaultProducts())
	require.Len(t, got, 8)
	assert.Equal(t, "VIP Rank", got[0].Name)
}

func TestLoadCorruptValueReturnsDefault(t *testing.T) {
	st := NewMemory()
	ctx := context.Background()

	require.NoError(t, st.Set(ctx, KeyPromos, []byte("{not json")))

	got := Load(ctx, st, KeyPromos, DefaultPromos())
	require.Len(t, got, 2)
	assert.Equal(t, "WELCOME", got[0].Code)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	st := NewMemory()
	ctx := context.Background()

	want := []models.PromoCode{{Code: "SUMMER", Discount: 10, UsageLimit: 5, Active: true}}
	require.NoError(t, Save(ctx, st, KeyPromos, want))

	got := Load(ctx, st, KeyPromos, DefaultPromos())
	assert.Equal(t, want, got)
}

func TestSaveReplacesWholeValue(t *testing.T) {
	st := NewMemory()
	ctx := context.Background()

	require.NoError(t, Save(ctx, st, KeyPromos, DefaultPromos()))
	require.NoError(t, Save(ctx, st, KeyPromos, []models.PromoCode{}))

	got := Load(ctx, st, KeyPromos, DefaultPromos())
	assert.Empty(t, got, "an empty collection is a valid value, not a missing one")
}

func TestDelThenGetReturnsNotFound(t *testing.T) {
	st := NewMemory()
	ctx := context.Background()

	require.NoError(t, st.Set(ctx, KeySettings, []byte(`{}`)))
	require.NoError(t, st.Del(ctx, KeySettings))

	_, err := st.Get(ctx, KeySettings)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCopiesValues(t *testing.T) {
	st := NewMemory()
	ctx := context.Background()

	val := []byte(`"abc"`)
	require.NoError(t, st.Set(ctx, KeyCurrentUser, val))
	val[1] = 'x'

	raw, err := st.Get(ctx, KeyCurrentUser)
	require.NoError(t, err)
	assert.Equal(t, `"abc"`, string(raw))
}
