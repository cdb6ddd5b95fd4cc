package store

import "mineshop/models"

// DefaultProducts is the catalog seeded into a fresh store. Prices, rarity,
// stock flags and sold counters match the launch data set.
func DefaultProducts() []models.Product {
	return []models.Product{
		{ProductID: "1", Name: "VIP Rank", Description: "VIP commands, colored nickname, priority join", Price: 299, Emoji: "⭐", Rarity: models.RarityUncommon, Category: "Ranks", InStock: true, Sold: 142},
		{ProductID: "2", Name: "MVP Rank", Description: "Everything in VIP plus exclusive pets and particles", Price: 599, Emoji: "💎", Rarity: models.RarityRare, Category: "Ranks", InStock: true, Sold: 87},
		{ProductID: "3", Name: "LEGEND Status", Description: "Top-tier rank. Rare commands and a unique cape", Price: 1299, Emoji: "👑", Rarity: models.RarityLegendary, Category: "Ranks", InStock: true, Sold: 23},
		{ProductID: "4", Name: "Diamond Sword", Description: "Sharpened diamond sword enchanted with Sharpness V", Price: 149, Emoji: "⚔️", Rarity: models.RarityRare, Category: "Weapons", InStock: true, Sold: 234},
		{ProductID: "5", Name: "Fortune Pickaxe", Description: "Pickaxe with Fortune III and Efficiency V", Price: 199, Emoji: "⛏️", Rarity: models.RarityEpic, Category: "Tools", InStock: true, Sold: 156},
		{ProductID: "6", Name: "Strength Potion", Description: "Strength II potion, 8 minutes. Stack of 16", Price: 79, Emoji: "🧪", Rarity: models.RarityCommon, Category: "Potions", InStock: true, Sold: 489},
		{ProductID: "7", Name: "Ender Chest", Description: "Personal chest reachable from anywhere in the world", Price: 249, Emoji: "📦", Rarity: models.RarityEpic, Category: "Items", InStock: true, Sold: 98},
		{ProductID: "8", Name: "Builder Kit", Description: "64 blocks of 20 building materials", Price: 399, Emoji: "🏗️", Rarity: models.RarityUncommon, Category: "Building", InStock: false, Sold: 67},
	}
}

func DefaultPromos() []models.PromoCode {
	return []models.PromoCode{
		{Code: "WELCOME", Discount: 20, UsageLimit: 100, UsedCount: 45, Active: true},
		{Code: "VIP2024", Discount: 50, UsageLimit: 50, UsedCount: 12, Active: true},
	}
}

func DefaultSettings() models.SiteSettings {
	return models.SiteSettings{
		ServerName:       "MineShop",
		ServerIP:         "play.mineshop.ru",
		HeroTitle:        "Rank & Item Shop",
		HeroSubtitle:     "The best gear for your adventure",
		Announcement:     "20% off every rank with promo code WELCOME!",
		ShowAnnouncement: true,
	}
}
