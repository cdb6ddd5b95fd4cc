package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mineshop/globals"
	"mineshop/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartView struct {
	Count    int `json:"count"`
	Subtotal int `json:"subtotal"`
}

func getCart(t *testing.T, h *Handler, token string) (cartView, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	if token != "" {
		req.Header.Set(TokenHeader, token)
	}
	rec := httptest.NewRecorder()
	h.Get(rec, req, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view cartView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	return view, rec.Header().Get(TokenHeader)
}

func addToCart(t *testing.T, h *Handler, token, productID string) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/cart/items",
		strings.NewReader(`{"productId":"`+productID+`"}`))
	if token != "" {
		req.Header.Set(TokenHeader, token)
	}
	rec := httptest.NewRecorder()
	h.Add(rec, req, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Header().Get(TokenHeader)
}

func TestGuestCartsAreIsolatedPerClient(t *testing.T) {
	h := NewHandler(store.NewMemory(), NewManager())

	// guest A builds a cart; a fresh token is minted for them
	tokenA := addToCart(t, h, "", "1")
	require.NotEmpty(t, tokenA)

	// guest B arrives with no token and must see nothing of A's cart
	viewB, tokenB := getCart(t, h, "")
	assert.Zero(t, viewB.Count)
	assert.Zero(t, viewB.Subtotal)
	require.NotEmpty(t, tokenB)
	assert.NotEqual(t, tokenA, tokenB)

	// A's own cart is intact under A's token
	viewA, _ := getCart(t, h, tokenA)
	assert.Equal(t, 1, viewA.Count)
	assert.Equal(t, 299, viewA.Subtotal)
}

func TestGuestTokenIsStableAcrossRequests(t *testing.T) {
	h := NewHandler(store.NewMemory(), NewManager())

	token := addToCart(t, h, "", "1")
	echoed := addToCart(t, h, token, "6")
	assert.Equal(t, token, echoed, "an echoed token is returned unchanged")

	view, _ := getCart(t, h, token)
	assert.Equal(t, 2, view.Count)
	assert.Equal(t, 299+79, view.Subtotal)
}

func TestAuthenticatedCartIgnoresGuestToken(t *testing.T) {
	h := NewHandler(store.NewMemory(), NewManager())

	guestToken := addToCart(t, h, "", "1")

	// the same token sent on an authenticated request keys by user id
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set(TokenHeader, guestToken)
	req = req.WithContext(context.WithValue(req.Context(), globals.UserIDKey, "u1"))
	rec := httptest.NewRecorder()
	h.Get(rec, req, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view cartView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Zero(t, view.Count, "a signed-in user starts from their own cart, not the guest one")
}
