package promos

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mineshop/models"
	"mineshop/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postValidate(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/promos/validate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Validate(rec, req, nil)
	return rec
}

func TestValidateHandlerPricesWithoutConsuming(t *testing.T) {
	st := store.NewMemory()
	h := NewHandler(st)

	rec := postValidate(t, h, `{"code":"welcome","subtotal":500}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Code     string `json:"code"`
		Percent  int    `json:"percent"`
		Discount int    `json:"discount"`
		Total    int    `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "WELCOME", resp.Code)
	assert.Equal(t, 20, resp.Percent)
	assert.Equal(t, 100, resp.Discount)
	assert.Equal(t, 400, resp.Total)

	// validating twice never burns a use
	rec = postValidate(t, h, `{"code":"WELCOME","subtotal":500}`)
	require.Equal(t, http.StatusOK, rec.Code)

	codes := store.Load(context.Background(), st, store.KeyPromos, []models.PromoCode{})
	if len(codes) > 0 {
		t.Fatal("validation must not write the promo collection")
	}
}

func TestValidateHandlerErrors(t *testing.T) {
	h := NewHandler(store.NewMemory())

	rec := postValidate(t, h, `{"code":"NOPE","subtotal":500}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = postValidate(t, h, `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidateHandlerExhaustedCode(t *testing.T) {
	st := store.NewMemory()
	require.NoError(t, store.Save(context.Background(), st, store.KeyPromos, []models.PromoCode{
		{Code: "GONE", Discount: 10, UsageLimit: 1, UsedCount: 1, Active: true},
	}))
	h := NewHandler(st)

	rec := postValidate(t, h, `{"code":"GONE","subtotal":100}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
