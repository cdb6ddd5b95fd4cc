package models

type User struct {
	UserID       string   `json:"id"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"password_hash"`
	IsAdmin      bool     `json:"isAdmin"`
	Balance      int      `json:"balance"`   // reserved, currently always 0
	Purchases    []string `json:"purchases"` // product ids, append-only
	RegisteredAt string   `json:"registeredAt"`
}

// Index represents a domain event emitted to the message queue.
type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
	ItemId     string `json:"item_id"`
	ItemType   string `json:"item_type"`
}
