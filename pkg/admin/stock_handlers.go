// Handlers for the stock catalog.

package admin

import (
	"math"
	"net/http"

	"github.com/tradinggrow/backoffice/internal/store"
)

// handleListStocks handles GET /admin/api/stocks. This is the one endpoint
// with no session gate: the public screener frontend reads the catalog
// directly.
func (a *API) handleListStocks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StockListResponse{
		Success: true,
		Stocks:  a.stocks.List(),
	})
}

// handleCreateStock handles POST /admin/api/stocks. The symbol is
// uppercased and the ID assigned by the store. A negative or non-finite
// price is rejected instead of being silently zeroed.
func (a *API) handleCreateStock(w http.ResponseWriter, r *http.Request) {
	if !a.requireAdmin(w, r) {
		return
	}

	var req CreateStockRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, MsgInvalidJSON)
		return
	}
	if !validPrice(req.Price) {
		writeError(w, http.StatusBadRequest, MsgInvalidPrice)
		return
	}

	stock := a.stocks.Create(store.NewStockParams{
		Symbol:        req.Symbol,
		Name:          req.Name,
		Sector:        req.Sector,
		Price:         req.Price,
		ChangePercent: req.ChangePercent,
	})

	a.log.Info("stock added", "stock_id", stock.ID, "symbol", stock.Symbol)
	writeJSON(w, http.StatusOK, CreateStockResponse{
		Success: true,
		Message: "Stock added successfully",
		Stock:   stock,
	})
}

// handleDeleteStock handles DELETE /admin/api/stocks/{id}. Like user
// deletion, an absent ID is an idempotent no-op.
func (a *API) handleDeleteStock(w http.ResponseWriter, r *http.Request) {
	if !a.requireAdmin(w, r) {
		return
	}

	id := r.PathValue("id")
	a.stocks.Delete(id)

	a.log.Info("stock removed", "stock_id", id)
	writeMessage(w, "Stock removed successfully")
}

// handleUpdateStockPrice handles PUT /admin/api/stocks/{id}/price. The
// change percentage is recomputed from the prior price unless that price
// was zero.
func (a *API) handleUpdateStockPrice(w http.ResponseWriter, r *http.Request) {
	if !a.requireAdmin(w, r) {
		return
	}

	var req UpdatePriceRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, MsgInvalidJSON)
		return
	}
	if !validPrice(req.Price) {
		writeError(w, http.StatusBadRequest, MsgInvalidPrice)
		return
	}

	id := r.PathValue("id")
	if !a.stocks.UpdatePrice(id, req.Price) {
		writeError(w, http.StatusNotFound, MsgStockNotFound)
		return
	}

	a.log.Info("stock price updated", "stock_id", id, "price", req.Price)
	writeMessage(w, "Stock price updated")
}

// validPrice reports whether a price is usable: non-negative and finite.
func validPrice(p float64) bool {
	return p >= 0 && !math.IsInf(p, 0) && !math.IsNaN(p)
}
