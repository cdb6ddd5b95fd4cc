package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mineshop/cart"
	"mineshop/globals"
	"mineshop/models"
	"mineshop/mq"
	"mineshop/session"
	"mineshop/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckoutHandler(t *testing.T) (*Handler, store.Store, *cart.Manager) {
	t.Helper()
	st := seededStore(t)
	carts := cart.NewManager()
	return NewHandler(st, carts, &mq.Emitter{}), st, carts
}

func postCheckout(t *testing.T, h *Handler, token string, ctx context.Context) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(`{}`))
	if token != "" {
		req.Header.Set(cart.TokenHeader, token)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}
	rec := httptest.NewRecorder()
	h.Checkout(rec, req, nil)
	return rec
}

func TestCheckoutClearsOnlyTheBuyersCart(t *testing.T) {
	h, _, carts := newCheckoutHandler(t)
	sword := models.Product{ProductID: "4", Name: "Diamond Sword", Price: 149, InStock: true}

	carts.Add("guest:tok-a", sword)
	carts.Add("guest:tok-b", sword)

	rec := postCheckout(t, h, "tok-a", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.Empty(t, carts.Get("guest:tok-a"))
	assert.Len(t, carts.Get("guest:tok-b"), 1, "another guest's cart survives")
}

func TestCheckoutUnknownGuestHasEmptyCart(t *testing.T) {
	h, _, carts := newCheckoutHandler(t)
	carts.Add("guest:tok-a", models.Product{ProductID: "4", Price: 149, InStock: true})

	rec := postCheckout(t, h, "tok-other", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "a different token never reaches someone else's lines")
}

func TestResolveBuyerStaleTokenIsNotSessionUser(t *testing.T) {
	h, st, carts := newCheckoutHandler(t)
	ctx := context.Background()

	// another client's login left the shared session key pointing at u1
	require.NoError(t, session.Set(ctx, st, "u1"))

	reqCtx := context.WithValue(ctx, globals.UserIDKey, "no-such-user")
	carts.Add("no-such-user", models.Product{ProductID: "4", Price: 149, InStock: true})

	rec := postCheckout(t, h, "", reqCtx)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data models.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.GuestUserID, resp.Data.UserID,
		"a token naming a missing account buys as guest, never as the session user")

	users := store.Load(ctx, st, store.KeyUsers, []models.User{})
	assert.Empty(t, users[0].Purchases)
}

func TestResolveBuyerAnonymousUsesSession(t *testing.T) {
	h, st, carts := newCheckoutHandler(t)
	ctx := context.Background()

	require.NoError(t, session.Set(ctx, st, "u1"))

	// anonymous request: cart lives under the minted guest token, but the
	// purchase is attributed to the session user
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()
	key := cart.ClientKey(rec, req)
	carts.Add(key, models.Product{ProductID: "4", Name: "Diamond Sword", Price: 149, InStock: true})

	out := postCheckout(t, h, rec.Header().Get(cart.TokenHeader), nil)
	require.Equal(t, http.StatusCreated, out.Code)

	var resp struct {
		Data models.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(out.Body.Bytes(), &resp))
	assert.Equal(t, "u1", resp.Data.UserID)

	users := store.Load(ctx, st, store.KeyUsers, []models.User{})
	assert.Equal(t, []string{"4"}, users[0].Purchases)
}
