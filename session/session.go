// Package session resolves the persisted current-user id. The id lives in
// the store under its own key; a dangling or missing id means anonymous,
// never an error.
package session

import (
	"context"

	"mineshop/models"
	"mineshop/store"
)

// Resolve returns the currently signed-in user, or nil for an anonymous
// session (no id stored, or the id no longer matches any user).
func Resolve(ctx context.Context, st store.Store) *models.User {
	raw, err := st.Get(ctx, store.KeyCurrentUser)
	if err != nil {
		return nil
	}
	id := string(raw)
	if id == "" {
		return nil
	}

	users := store.Load(ctx, st, store.KeyUsers, []models.User{})
	for i := range users {
		if users[i].UserID == id {
			return &users[i]
		}
	}
	return nil
}

// Set records id as the current session.
func Set(ctx context.Context, st store.Store, id string) error {
	return st.Set(ctx, store.KeyCurrentUser, []byte(id))
}

// Clear ends the current session.
func Clear(ctx context.Context, st store.Store) error {
	return st.Del(ctx, store.KeyCurrentUser)
}
