package auth

import (
	"context"
	"strings"
	"time"

	"mineshop/apperr"
	"mineshop/models"
	"mineshop/session"
	"mineshop/store"
	"mineshop/utils"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 6

type RegisterInput struct {
	Username      string `json:"username"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Confirm       string `json:"confirm"`
	CaptchaID     string `json:"captchaId"`
	CaptchaAnswer string `json:"captchaAnswer"`
}

// Register creates a new account. The first account ever created in a fresh
// store becomes the admin; everyone after that is a regular user.
func Register(ctx context.Context, st store.Store, in RegisterInput, ch *Challenges) (models.User, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return models.User{}, apperr.Validationf("fill in all fields")
	}
	if in.Password != in.Confirm {
		return models.User{}, apperr.Validationf("passwords do not match")
	}
	if len(in.Password) < minPasswordLen {
		return models.User{}, apperr.Validationf("password must be at least %d characters", minPasswordLen)
	}
	if !ch.Check(in.CaptchaID, strings.TrimSpace(in.CaptchaAnswer)) {
		return models.User{}, apperr.Validationf("wrong verification answer")
	}

	users := store.Load(ctx, st, store.KeyUsers, []models.User{})
	for _, u := range users {
		if u.Username == in.Username {
			return models.User{}, apperr.Conflictf("username already taken")
		}
		if u.Email == in.Email {
			return models.User{}, apperr.Conflictf("email already registered")
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		UserID:       utils.NewID(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hashed),
		IsAdmin:      len(users) == 0,
		Balance:      0,
		Purchases:    []string{},
		RegisteredAt: time.Now().Format(time.RFC3339),
	}

	if err := store.Save(ctx, st, store.KeyUsers, append(users, user)); err != nil {
		return models.User{}, err
	}
	if err := session.Set(ctx, st, user.UserID); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Login checks credentials and opens a session. Unknown username and wrong
// password report the same error on purpose.
func Login(ctx context.Context, st store.Store, username, password string) (models.User, error) {
	users := store.Load(ctx, st, store.KeyUsers, []models.User{})
	for _, u := range users {
		if u.Username != username {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
			break
		}
		if err := session.Set(ctx, st, u.UserID); err != nil {
			return models.User{}, err
		}
		return u, nil
	}
	return models.User{}, apperr.Authf("invalid username or password")
}

// Logout clears the session key. There is nothing to invalidate server side.
func Logout(ctx context.Context, st store.Store) error {
	return session.Clear(ctx, st)
}

// ChangePassword replaces the password for userID after re-verifying the
// old one.
func ChangePassword(ctx context.Context, st store.Store, userID, oldPassword, newPassword, confirm string) error {
	users := store.Load(ctx, st, store.KeyUsers, []models.User{})

	idx := -1
	for i := range users {
		if users[i].UserID == userID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperr.Authf("unknown user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(users[idx].PasswordHash), []byte(oldPassword)); err != nil {
		return apperr.Authf("wrong current password")
	}
	if len(newPassword) < minPasswordLen {
		return apperr.Validationf("password must be at least %d characters", minPasswordLen)
	}
	if newPassword != confirm {
		return apperr.Validationf("passwords do not match")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	users[idx].PasswordHash = string(hashed)

	return store.Save(ctx, st, store.KeyUsers, users)
}
