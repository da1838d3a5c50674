package screener

// Seed fixtures stand in for a persistence backend. They are loaded once at
// process start; all later mutations live only in memory.

// SeedUsers returns the initial user directory.
func SeedUsers() []User {
	return []User{
		{
			ID:               "1",
			Email:            "admin@tradinggrow.com",
			FullName:         "Admin User",
			SubscriptionTier: TierPro,
			IsAdmin:          true,
			CreatedAt:        "2024-01-01T00:00:00Z",
		},
		{
			ID:               "2",
			Email:            "demo@tradinggrow.com",
			FullName:         "Demo User",
			SubscriptionTier: TierPro,
			CreatedAt:        "2024-01-15T00:00:00Z",
		},
		{
			ID:               "3",
			Email:            "user1@example.com",
			FullName:         "John Smith",
			SubscriptionTier: TierMedium,
			CreatedAt:        "2024-02-01T00:00:00Z",
		},
		{
			ID:               "4",
			Email:            "user2@example.com",
			FullName:         "Jane Doe",
			SubscriptionTier: TierFree,
			CreatedAt:        "2024-02-15T00:00:00Z",
		},
		{
			ID:               "5",
			Email:            "user3@example.com",
			FullName:         "Bob Wilson",
			SubscriptionTier: TierFree,
			CreatedAt:        "2024-03-01T00:00:00Z",
		},
	}
}

// SeedStocks returns the initial stock catalog.
func SeedStocks() []Stock {
	return []Stock{
		{ID: "1", Symbol: "AAPL", Name: "Apple Inc.", Sector: "Technology", Price: 175.50, ChangePercent: 2.3},
		{ID: "2", Symbol: "GOOGL", Name: "Alphabet Inc.", Sector: "Technology", Price: 2850.25, ChangePercent: -1.2},
		{ID: "3", Symbol: "MSFT", Name: "Microsoft Corporation", Sector: "Technology", Price: 420.15, ChangePercent: 1.8},
		{ID: "4", Symbol: "TSLA", Name: "Tesla Inc.", Sector: "Consumer", Price: 245.80, ChangePercent: -3.5},
	}
}

// SeedSubscriptionRequests returns the initial pending upgrade requests.
func SeedSubscriptionRequests() []SubscriptionRequest {
	return []SubscriptionRequest{
		{
			ID:            "1",
			UserID:        "3",
			UserName:      "John Smith",
			UserEmail:     "user1@example.com",
			CurrentTier:   TierMedium,
			RequestedTier: TierPro,
			CreatedAt:     "2024-03-15T10:00:00Z",
		},
	}
}
