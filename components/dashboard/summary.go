package dashboard

import "github.com/montanaflynn/stats"

// ProductSummary aggregates the filtered product list.
type ProductSummary struct {
	Count          int     `json:"count"`
	Units          int     `json:"units"`
	AveragePrice   float64 `json:"average_price"`
	MedianPrice    float64 `json:"median_price"`
	InventoryValue float64 `json:"inventory_value"`
}

// CustomerSummary aggregates the filtered customer list.
type CustomerSummary struct {
	Count        int     `json:"count"`
	Revenue      float64 `json:"revenue"`
	AverageSpent float64 `json:"average_spent"`
	MedianOrders float64 `json:"median_orders"`
}

// OrderSummary aggregates the filtered order list.
type OrderSummary struct {
	Count        int     `json:"count"`
	Revenue      float64 `json:"revenue"`
	AverageTotal float64 `json:"average_total"`
	Items        int     `json:"items"`
}

// SummarizeProducts computes footer figures for products.
func SummarizeProducts(items []Product) ProductSummary {
	summary := ProductSummary{Count: len(items)}
	if len(items) == 0 {
		return summary
	}
	prices := make(stats.Float64Data, len(items))
	values := make(stats.Float64Data, len(items))
	for i, p := range items {
		prices[i] = p.Price
		values[i] = p.Price * float64(p.Stock)
		summary.Units += p.Stock
	}
	summary.AveragePrice, _ = prices.Mean()
	summary.MedianPrice, _ = prices.Median()
	summary.InventoryValue, _ = values.Sum()
	return summary
}

// SummarizeCustomers computes footer figures for customers.
func SummarizeCustomers(items []Customer) CustomerSummary {
	summary := CustomerSummary{Count: len(items)}
	if len(items) == 0 {
		return summary
	}
	spent := make(stats.Float64Data, len(items))
	orders := make(stats.Float64Data, len(items))
	for i, c := range items {
		spent[i] = c.TotalSpent
		orders[i] = float64(c.Orders)
	}
	summary.Revenue, _ = spent.Sum()
	summary.AverageSpent, _ = spent.Mean()
	summary.MedianOrders, _ = orders.Median()
	return summary
}

// SummarizeOrders computes footer figures for orders.
func SummarizeOrders(items []Order) OrderSummary {
	summary := OrderSummary{Count: len(items)}
	if len(items) == 0 {
		return summary
	}
	totals := make(stats.Float64Data, len(items))
	for i, o := range items {
		totals[i] = o.Total
		summary.Items += o.Items
	}
	summary.Revenue, _ = totals.Sum()
	summary.AverageTotal, _ = totals.Mean()
	return summary
}
