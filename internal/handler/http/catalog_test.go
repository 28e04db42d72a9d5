// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinevault/vinevault/models"
)

func TestListVineyards_FilterParsedFromQuery(t *testing.T) {
	var gotFilter models.VineyardFilter
	catalog := &mockCatalogService{
		listVineyardsFn: func(_ context.Context, filter models.VineyardFilter) ([]models.Vineyard, error) {
			gotFilter = filter
			return []models.Vineyard{{ID: "vy-1", Name: "Barolo Ridge"}}, nil
		},
	}
	h := newTestHandler(t, nil, catalog)

	req := httptest.NewRequest(http.MethodGet,
		"/api/catalog/vineyards?country=Italy&wine_type=Nebbiolo&min_price=40&max_price=90&featured=true&sort=price&order=desc", nil)
	w := httptest.NewRecorder()

	h.Init().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.VineyardFilter{
		Country:      "Italy",
		WineType:     "Nebbiolo",
		MinPrice:     40,
		MaxPrice:     90,
		FeaturedOnly: true,
		SortBy:       "price",
		Descending:   true,
	}, gotFilter)

	var body struct {
		Vineyards []models.Vineyard `json:"vineyards"`
		Total     int               `json:"total"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, 1, body.Total)
}

func TestListVineyards_MalformedPriceIgnored(t *testing.T) {
	var gotFilter models.VineyardFilter
	catalog := &mockCatalogService{
		listVineyardsFn: func(_ context.Context, filter models.VineyardFilter) ([]models.Vineyard, error) {
			gotFilter = filter
			return nil, nil
		},
	}
	h := newTestHandler(t, nil, catalog)

	req := httptest.NewRequest(http.MethodGet, "/api/catalog/vineyards?min_price=abc", nil)
	w := httptest.NewRecorder()

	h.Init().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, gotFilter.MinPrice)
}

func TestListInvestments_RequiresSession(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/investments", nil)
	w := httptest.NewRecorder()

	h.Init().ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, false, body["authenticated"])
	assert.Equal(t, "/login", body["login_path"])
}

func TestListInvestments_ReturnsOwnPortfolio(t *testing.T) {
	user := models.User{ID: "user-1"}
	session := &mockSessionService{
		checkSessionFn: func(_ context.Context, token string) (models.Session, *models.User) {
			return models.Session{Token: token, UserID: user.ID}, &user
		},
	}
	catalog := &mockCatalogService{
		listInvestmentsFn: func(_ context.Context, userID string) ([]models.Investment, error) {
			assert.Equal(t, "user-1", userID)
			return []models.Investment{{ID: "inv-1", UserID: userID}}, nil
		},
	}
	h := newTestHandler(t, session, catalog)

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/investments", nil)
	req.AddCookie(&http.Cookie{Name: "vv_session", Value: "tok-1"})
	w := httptest.NewRecorder()

	h.Init().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Investments []models.Investment `json:"investments"`
		Total       int                 `json:"total"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, 1, body.Total)
}

func TestListTransactions_RequiresSession(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/transactions", nil)
	w := httptest.NewRecorder()

	h.Init().ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListTransactions_ReturnsOwnActivity(t *testing.T) {
	user := models.User{ID: "user-1"}
	session := &mockSessionService{
		checkSessionFn: func(_ context.Context, token string) (models.Session, *models.User) {
			return models.Session{Token: token, UserID: user.ID}, &user
		},
	}
	catalog := &mockCatalogService{
		listTransactionsFn: func(_ context.Context, userID, txType string) ([]models.Transaction, error) {
			assert.Equal(t, "user-1", userID)
			assert.Equal(t, "dividend", txType)
			return []models.Transaction{{ID: "tx-1", UserID: userID, Type: models.TransactionTypeDividend}}, nil
		},
	}
	h := newTestHandler(t, session, catalog)

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/transactions?type=dividend", nil)
	req.AddCookie(&http.Cookie{Name: "vv_session", Value: "tok-1"})
	w := httptest.NewRecorder()

	h.Init().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Transactions []models.Transaction `json:"transactions"`
		Total        int                  `json:"total"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, 1, body.Total)
	assert.Equal(t, "tx-1", body.Transactions[0].ID)
}
