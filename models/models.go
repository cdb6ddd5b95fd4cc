package models

// Rarity is the five-level cosmetic classification shown in the catalog.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Rarities lists every valid rarity in display order.
var Rarities = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary}

// Valid reports whether r is one of the five known rarities.
func (r Rarity) Valid() bool {
	for _, v := range Rarities {
		if r == v {
			return true
		}
	}
	return false
}

type Product struct {
	ProductID   string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"` // whole currency units, never negative
	Emoji       string `json:"emoji"`
	Rarity      Rarity `json:"rarity"`
	Category    string `json:"category"`
	InStock     bool   `json:"inStock"`
	Sold        int    `json:"sold"`
}

type PromoCode struct {
	Code       string `json:"code"` // stored uppercase
	Discount   int    `json:"discount"`
	UsageLimit int    `json:"usageLimit"`
	UsedCount  int    `json:"usedCount"`
	Active     bool   `json:"active"`
}

// CartItem is a product snapshot plus quantity. The snapshot is intentional:
// a product deleted from the catalog stays purchasable from an open cart.
type CartItem struct {
	Product Product `json:"product"`
	Qty     int     `json:"qty"`
}

type Order struct {
	OrderID       string     `json:"id"`
	UserID        string     `json:"userId"` // GuestUserID for anonymous buyers
	Username      string     `json:"username"`
	Items         []CartItem `json:"items"`
	Total         int        `json:"total"`
	Promo         string     `json:"promo"` // empty when no code was used
	Discount      int        `json:"discount"`
	PaymentMethod string     `json:"paymentMethod"`
	Date          string     `json:"date"` // RFC 3339
	Status        string     `json:"status"`
}

const (
	OrderPending   = "pending"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

const (
	GuestUserID   = "guest"
	GuestUsername = "Guest"
)

type SiteSettings struct {
	ServerName       string `json:"serverName"`
	ServerIP         string `json:"serverIp"`
	HeroTitle        string `json:"heroTitle"`
	HeroSubtitle     string `json:"heroSubtitle"`
	Announcement     string `json:"announcement"`
	ShowAnnouncement bool   `json:"showAnnouncement"`
}

type SupportTicket struct {
	TicketID  string `json:"id"`
	Name      string `json:"name"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}
