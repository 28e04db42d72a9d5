// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package http

import (
	"net/http"
	"strconv"

	"github.com/vinevault/vinevault/internal/utils"
	"github.com/vinevault/vinevault/models"
)

func (h *Handler) listVineyards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := models.VineyardFilter{
		Country:      q.Get("country"),
		WineType:     q.Get("wine_type"),
		MinPrice:     parsePrice(q.Get("min_price")),
		MaxPrice:     parsePrice(q.Get("max_price")),
		FeaturedOnly: q.Get("featured") == "true",
		SortBy:       q.Get("sort"),
		Descending:   q.Get("order") == "desc",
	}

	vineyards, err := h.services.Catalog.ListVineyards(ctx, filter)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]any{
		"vineyards": vineyards,
		"total":     len(vineyards),
	}, http.StatusOK)
}

func (h *Handler) listInvestments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeUnauthenticated(w, r)
		return
	}

	investments, err := h.services.Catalog.ListInvestments(ctx, user.ID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]any{
		"investments": investments,
		"total":       len(investments),
	}, http.StatusOK)
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeUnauthenticated(w, r)
		return
	}

	transactions, err := h.services.Catalog.ListTransactions(ctx, user.ID, r.URL.Query().Get("type"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]any{
		"transactions": transactions,
		"total":        len(transactions),
	}, http.StatusOK)
}

// parsePrice returns 0 for missing or malformed values; 0 means "no
// constraint" in the filter.
func parsePrice(raw string) float64 {
	if raw == "" {
		return 0
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || price < 0 {
		return 0
	}
	return price
}
