// Package promos implements discount code lookup and application.
package promos

import (
	"strings"

	"mineshop/apperr"
	"mineshop/models"
)

// Apply resolves code against the collection and prices basePrice with its
// percentage discount. The discount floors (integer division) and the total
// never drops below zero.
//
// An exhausted code is rejected as exhausted even when it is also inactive;
// only after the usage check does the active flag matter.
func Apply(codes []models.PromoCode, code string, basePrice int) (discount, total int, promo *models.PromoCode, err error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	var found *models.PromoCode
	for i := range codes {
		if codes[i].Code == normalized {
			found = &codes[i]
			break
		}
	}
	if found == nil {
		return 0, basePrice, nil, apperr.NotFoundf("promo code not found")
	}

	if found.UsedCount >= found.UsageLimit {
		return 0, basePrice, nil, apperr.LimitExceededf("promo code usage limit reached")
	}
	if !found.Active {
		return 0, basePrice, nil, apperr.NotFoundf("promo code not found")
	}

	discount = basePrice * found.Discount / 100
	total = basePrice - discount
	if total < 0 {
		total = 0
	}
	return discount, total, found, nil
}

// Create builds a new promo record. The code is uppercased; duplicates are
// the caller's concern (later entries shadow nothing, lookup takes the first
// match).
func Create(code string, discount, usageLimit int) (models.PromoCode, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return models.PromoCode{}, apperr.Validationf("promo code is required")
	}
	if discount < 0 || discount > 100 {
		return models.PromoCode{}, apperr.Validationf("discount must be between 0 and 100")
	}
	if usageLimit < 1 {
		return models.PromoCode{}, apperr.Validationf("usage limit must be at least 1")
	}

	return models.PromoCode{
		Code:       normalized,
		Discount:   discount,
		UsageLimit: usageLimit,
		UsedCount:  0,
		Active:     true,
	}, nil
}

// Toggle flips the active flag of the first entry matching code, reporting
// whether a match existed.
func Toggle(codes []models.PromoCode, code string) bool {
	for i := range codes {
		if codes[i].Code == code {
			codes[i].Active = !codes[i].Active
			return true
		}
	}
	return false
}

// Delete removes the first entry matching code, returning the shrunk
// collection and whether anything was removed.
func Delete(codes []models.PromoCode, code string) ([]models.PromoCode, bool) {
	for i := range codes {
		if codes[i].Code == code {
			return append(codes[:i], codes[i+1:]...), true
		}
	}
	return codes, false
}
