// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package models

import "time"

// Vineyard lifecycle states.
const (
	VineyardStatusActive      = "active"
	VineyardStatusSoldOut     = "sold-out"
	VineyardStatusMaintenance = "maintenance"
	VineyardStatusArchived    = "archived"
)

// Vineyard is a single investable estate as stored in the provider's
// "vineyards" collection.
type Vineyard struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Country        string    `json:"country"`
	Region         string    `json:"region"`
	Description    string    `json:"description"`
	WineTypes      []string  `json:"wine_types"`
	TotalVines     int       `json:"total_vines"`
	AvailableVines int       `json:"available_vines"`
	PricePerVine   float64   `json:"price_per_vine"`
	ExpectedROI    float64   `json:"expected_roi"`
	Status         string    `json:"status"`
	Featured       bool      `json:"featured"`
	MinimumVines   int       `json:"minimum_vines"`
	CreatedAt      time.Time `json:"created_at"`
}

// Investment statuses.
const (
	InvestmentStatusPending   = "pending"
	InvestmentStatusActive    = "active"
	InvestmentStatusSold      = "sold"
	InvestmentStatusCancelled = "cancelled"
)

// Investment is one user's stake in a vineyard, read from the provider's
// "investments" collection.
type Investment struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	VineyardID    string    `json:"vineyard_id"`
	VineyardName  string    `json:"vineyard_name"`
	NumberOfVines int       `json:"number_of_vines"`
	TotalAmount   float64   `json:"total_amount"`
	PricePerVine  float64   `json:"price_per_vine"`
	CurrentValue  float64   `json:"current_value"`
	Status        string    `json:"status"`
	PurchaseDate  time.Time `json:"purchase_date"`
}

// Transaction kinds in the activity feed.
const (
	TransactionTypeInvestment = "investment"
	TransactionTypeDividend   = "dividend"
	TransactionTypeValuation  = "valuation"
	TransactionTypeSale       = "sale"
	TransactionTypeSystem     = "system"
)

// Transaction settlement states.
const (
	TransactionStatusCompleted = "completed"
	TransactionStatusPending   = "pending"
	TransactionStatusFailed    = "failed"
)

// Transaction is one entry of a user's activity feed, read from the
// provider's "transactions" collection. Amount carries the signed value of
// monetary entries; informational entries leave it zero.
type Transaction struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date"`
}

// VineyardFilter narrows and orders a vineyard listing. Zero values mean
// "no constraint" for the corresponding field.
type VineyardFilter struct {
	Country      string
	WineType     string
	MinPrice     float64
	MaxPrice     float64
	FeaturedOnly bool
	SortBy       string // "price", "roi" or "name"
	Descending   bool
}
