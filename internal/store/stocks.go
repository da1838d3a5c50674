package store

import (
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/tradinggrow/backoffice/pkg/screener"
)

// NewStockParams holds the caller-supplied fields for a new stock. The
// store assigns the ID and uppercases the symbol.
type NewStockParams struct {
	Symbol        string
	Name          string
	Sector        string
	Price         float64
	ChangePercent float64
}

// StockStore is a thread-safe in-memory stock catalog.
//
// IDs are allocated from a monotonic counter seeded past the largest
// numeric seed ID, so a deleted stock's ID is never handed out again.
type StockStore struct {
	mu     sync.RWMutex
	stocks []screener.Stock
	nextID int64
}

// NewStockStore creates a StockStore holding a copy of the given records.
func NewStockStore(seed ...screener.Stock) *StockStore {
	s := &StockStore{stocks: make([]screener.Stock, len(seed))}
	copy(s.stocks, seed)
	s.nextID = 1
	for _, st := range seed {
		if n, err := strconv.ParseInt(st.ID, 10, 64); err == nil && n >= s.nextID {
			s.nextID = n + 1
		}
	}
	return s
}

// List returns all stocks in insertion order.
func (s *StockStore) List() []screener.Stock {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]screener.Stock, len(s.stocks))
	copy(out, s.stocks)
	return out
}

// Get retrieves a stock by ID.
func (s *StockStore) Get(id string) (screener.Stock, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.stocks {
		if st.ID == id {
			return st, true
		}
	}
	return screener.Stock{}, false
}

// Count returns the number of stocks.
func (s *StockStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.stocks)
}

// Create appends a new stock and returns it with its assigned ID.
func (s *StockStore) Create(p NewStockParams) screener.Stock {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := screener.Stock{
		ID:            strconv.FormatInt(s.nextID, 10),
		Symbol:        strings.ToUpper(p.Symbol),
		Name:          p.Name,
		Sector:        p.Sector,
		Price:         p.Price,
		ChangePercent: p.ChangePercent,
	}
	s.nextID++
	s.stocks = append(s.stocks, st)
	return st
}

// Delete removes the stock with the given ID. Deleting an absent ID is a
// no-op, not an error.
func (s *StockStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.stocks[:0]
	for _, st := range s.stocks {
		if st.ID != id {
			kept = append(kept, st)
		}
	}
	s.stocks = kept
}

// UpdatePrice overwrites the price of the stock with the given ID and
// recomputes change_percent from the prior price. When the prior price is
// zero the change_percent is left as it was (no division by zero, no reset).
// Returns false if no stock matches.
func (s *StockStore) UpdatePrice(id string, newPrice float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.stocks {
		if s.stocks[i].ID != id {
			continue
		}
		oldPrice := s.stocks[i].Price
		s.stocks[i].Price = newPrice
		if oldPrice > 0 {
			s.stocks[i].ChangePercent = changePercent(oldPrice, newPrice)
		}
		return true
	}
	return false
}

// changePercent computes (new-old)/old*100 with decimal arithmetic so that
// prices like 100 -> 150 yield exactly 50, not a float artifact.
func changePercent(oldPrice, newPrice float64) float64 {
	o := decimal.NewFromFloat(oldPrice)
	n := decimal.NewFromFloat(newPrice)
	pct, _ := n.Sub(o).Div(o).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}
