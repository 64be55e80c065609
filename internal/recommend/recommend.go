// Package recommend holds the curated stock recommendation tables and the
// counter-strategy dispatch: a predicted high-risk investor is steered to
// the low-volatility table and a predicted low-risk investor to the
// high-growth table. That inversion is intentional, not a bug.
package recommend

import (
	"strings"

	"github.com/smartinvest/apiserver/types"
)

var lowProfile = []types.RecommendationRow{
	{StockSymbol: "12.Mutual_Funds", TrendPct: -9.08, Volatility: 0.47},
}

var mediumProfile = []types.RecommendationRow{
	{StockSymbol: "00DSEX", TrendPct: 17.77, Volatility: 0.69},
	{StockSymbol: "3RDICB", TrendPct: 17.45, Volatility: 0.85},
	{StockSymbol: "00DSES", TrendPct: 14.39, Volatility: 0.63},
	{StockSymbol: "00DS30", TrendPct: 13.25, Volatility: 0.69},
	{StockSymbol: "06.Food_&_Allied", TrendPct: 8.90, Volatility: 0.80},
	{StockSymbol: "14.Pharmaceuticals_&_Chemicals", TrendPct: 3.38, Volatility: 0.86},
	{StockSymbol: "07.Fuel_&_Power", TrendPct: 0.57, Volatility: 0.94},
	{StockSymbol: "16.Tannery_Industries", TrendPct: -1.85, Volatility: 0.67},
	{StockSymbol: "20.Bond", TrendPct: -2.14, Volatility: 0.63},
	{StockSymbol: "08.Insurance", TrendPct: -2.68, Volatility: 0.84},
	{StockSymbol: "02.Cement", TrendPct: -7.86, Volatility: 0.97},
	{StockSymbol: "05.Financial_Institutions", TrendPct: -13.37, Volatility: 0.86},
}

var highProfile = []types.RecommendationRow{
	{StockSymbol: "ACIFORMULA", TrendPct: 62.60, Volatility: 2.19},
	{StockSymbol: "03.Ceramics_Sector", TrendPct: 45.63, Volatility: 2.05},
	{StockSymbol: "ALARABANK", TrendPct: 31.11, Volatility: 1.62},
	{StockSymbol: "ACI", TrendPct: 28.18, Volatility: 1.76},
	{StockSymbol: "AIBL1STIMF", TrendPct: 20.85, Volatility: 2.34},
	{StockSymbol: "1STICB", TrendPct: 20.63, Volatility: 1.08},
	{StockSymbol: "13.Paper_&_Printing", TrendPct: 20.17, Volatility: 2.63},
	{StockSymbol: "04.Engineering", TrendPct: 17.32, Volatility: 1.28},
	{StockSymbol: "7THICB", TrendPct: 14.87, Volatility: 2.14},
	{StockSymbol: "5THICB", TrendPct: 8.46, Volatility: 1.47},
	{StockSymbol: "10.Jute", TrendPct: 7.93, Volatility: 2.73},
	{StockSymbol: "ACIZCBOND", TrendPct: 5.51, Volatility: 1.17},
	{StockSymbol: "8THICB", TrendPct: 4.82, Volatility: 1.52},
	{StockSymbol: "18.Textile", TrendPct: 3.95, Volatility: 2.49},
	{StockSymbol: "4THICB", TrendPct: 3.50, Volatility: 1.45},
}

// ForCategory returns the recommendation table for a predicted risk
// category. High-risk investors get the low-volatility table to temper
// their exposure; low-risk investors get the high-growth table because
// they have room to tolerate volatility.
func ForCategory(category types.RiskCategory) []types.RecommendationRow {
	switch category {
	case types.RiskHigh:
		return lowProfile
	case types.RiskMedium:
		return mediumProfile
	default:
		return highProfile
	}
}

// Advice returns the one-line strategy note shown with the table.
func Advice(category types.RiskCategory) string {
	switch category {
	case types.RiskHigh:
		return "You're a high-risk investor. Consider safer, stable investments to reduce volatility."
	case types.RiskMedium:
		return "You're a medium-risk investor. These balanced stocks align with your risk level."
	default:
		return "You're a low-risk investor. You may explore high-growth, high-volatility options."
	}
}

// TopSymbols joins the first n symbols of a table with ", " for the
// prediction log's Recommended Stocks column.
func TopSymbols(rows []types.RecommendationRow, n int) string {
	if n > len(rows) {
		n = len(rows)
	}
	symbols := make([]string, 0, n)
	for _, row := range rows[:n] {
		symbols = append(symbols, row.StockSymbol)
	}
	return strings.Join(symbols, ", ")
}
