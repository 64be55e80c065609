package types

// RecommendationRow is one security from the curated recommendation tables.
type RecommendationRow struct {
	// StockSymbol is the exchange symbol or sector index name.
	StockSymbol string `json:"stock_symbol"`

	// TrendPct is the recent price trend in percent.
	TrendPct float64 `json:"trend_pct"`

	// Volatility is the normalized volatility measure of the instrument.
	Volatility float64 `json:"volatility"`
}
