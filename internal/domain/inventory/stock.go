package inventory

type StockStatus string

const (
	OutOfStock StockStatus = "out-of-stock"
	LowStock   StockStatus = "low-stock"
	InStock    StockStatus = "in-stock"
)

// LowStockThreshold is the highest quantity still classified as LowStock.
const LowStockThreshold = 5

// Classify maps a quantity onto a stock badge. Negative quantities count as out of stock.
func Classify(quantity int) StockStatus {
	switch {
	case quantity <= 0:
		return OutOfStock
	case quantity <= LowStockThreshold:
		return LowStock
	default:
		return InStock
	}
}

// IsLowStockForSummary is the dashboard counter rule: strictly below the threshold.
// An item with exactly LowStockThreshold units is badged LowStock but not counted here.
func IsLowStockForSummary(quantity int) bool {
	return quantity < LowStockThreshold
}

func CountLowStock(items []Item) int {
	n := 0
	for _, it := range items {
		if IsLowStockForSummary(it.Quantity) {
			n++
		}
	}
	return n
}

type Stats struct {
	TotalItems int `json:"totalItems"`
	TotalUnits int `json:"totalUnits"`
	InStock    int `json:"inStock"`
	LowStock   int `json:"lowStockBadges"`
	OutOfStock int `json:"outOfStock"`
	// LowStockAlerts uses IsLowStockForSummary.
	LowStockAlerts int `json:"lowStock"`
}

func Summarize(items []Item) Stats {
	st := Stats{TotalItems: len(items)}
	for _, it := range items {
		if it.Quantity > 0 {
			st.TotalUnits += it.Quantity
		}
		switch Classify(it.Quantity) {
		case InStock:
			st.InStock++
		case LowStock:
			st.LowStock++
		case OutOfStock:
			st.OutOfStock++
		}
	}
	st.LowStockAlerts = CountLowStock(items)
	return st
}
