// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/vinevault/vinevault/internal/adapter"
	"github.com/vinevault/vinevault/internal/logger"
	"github.com/vinevault/vinevault/models"
)

// catalogService serves vineyard and portfolio listings from the provider's
// document collections. Filtering and ordering happen in memory: the
// collections are small and the provider's query surface is not relied upon.
type catalogService struct {
	docs   adapter.DocumentStore
	logger *logger.Logger
}

// NewCatalogService constructs the catalog service.
func NewCatalogService(docs adapter.DocumentStore, log *logger.Logger) CatalogService {
	return &catalogService{docs: docs, logger: log}
}

func (c *catalogService) ListVineyards(ctx context.Context, filter models.VineyardFilter) ([]models.Vineyard, error) {
	var vineyards []models.Vineyard
	if err := c.docs.ListDocuments(ctx, adapter.CollectionVineyards, &vineyards); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpected, mapProviderError(err))
	}

	filtered := make([]models.Vineyard, 0, len(vineyards))
	for _, v := range vineyards {
		if matchesFilter(v, filter) {
			filtered = append(filtered, v)
		}
	}

	sortVineyards(filtered, filter)
	return filtered, nil
}

func (c *catalogService) ListInvestments(ctx context.Context, userID string) ([]models.Investment, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user ID is required", ErrValidation)
	}

	var investments []models.Investment
	if err := c.docs.ListDocuments(ctx, adapter.CollectionInvestments, &investments); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpected, mapProviderError(err))
	}

	owned := make([]models.Investment, 0, len(investments))
	for _, inv := range investments {
		if inv.UserID == userID {
			owned = append(owned, inv)
		}
	}

	sort.Slice(owned, func(i, j int) bool {
		return owned[i].PurchaseDate.After(owned[j].PurchaseDate)
	})
	return owned, nil
}

func (c *catalogService) ListTransactions(ctx context.Context, userID, txType string) ([]models.Transaction, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user ID is required", ErrValidation)
	}

	var transactions []models.Transaction
	if err := c.docs.ListDocuments(ctx, adapter.CollectionTransactions, &transactions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpected, mapProviderError(err))
	}

	owned := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.UserID != userID {
			continue
		}
		if txType != "" && !strings.EqualFold(tx.Type, txType) {
			continue
		}
		owned = append(owned, tx)
	}

	sort.Slice(owned, func(i, j int) bool {
		return owned[i].Date.After(owned[j].Date)
	})
	return owned, nil
}

func matchesFilter(v models.Vineyard, f models.VineyardFilter) bool {
	if f.Country != "" && !strings.EqualFold(v.Country, f.Country) {
		return false
	}
	if f.WineType != "" && !containsFold(v.WineTypes, f.WineType) {
		return false
	}
	if f.MinPrice > 0 && v.PricePerVine < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && v.PricePerVine > f.MaxPrice {
		return false
	}
	if f.FeaturedOnly && !v.Featured {
		return false
	}
	return true
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}

func sortVineyards(vineyards []models.Vineyard, f models.VineyardFilter) {
	var less func(i, j int) bool

	switch f.SortBy {
	case "price":
		less = func(i, j int) bool { return vineyards[i].PricePerVine < vineyards[j].PricePerVine }
	case "roi":
		less = func(i, j int) bool { return vineyards[i].ExpectedROI < vineyards[j].ExpectedROI }
	case "name":
		less = func(i, j int) bool { return vineyards[i].Name < vineyards[j].Name }
	default:
		return
	}

	if f.Descending {
		asc := less
		less = func(i, j int) bool { return asc(j, i) }
	}
	sort.SliceStable(vineyards, less)
}
