// Package screener defines the domain records managed by the TradingGrow
// back office: users, catalog stocks, and subscription upgrade requests.
//
// Records are plain structs with JSON tags matching the admin API wire
// format. Storage and mutation rules live in internal/store; this package
// only knows shapes, tier values, and the seed fixtures loaded at startup.
package screener
