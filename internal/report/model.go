package report

import "github.com/shopspring/decimal"

const (
	PopularLimit = 5

	MenuExportFile   = "menu_export.csv"
	OrdersExportFile = "orders_export.csv"
)

type PopularItem struct {
	ItemID   uint
	Name     string
	Quantity int64
}

type CategorySale struct {
	Category string
	Revenue  decimal.Decimal
}

// Analytics is the admin sales overview.
type Analytics struct {
	TotalRevenue  decimal.Decimal
	PopularItems  []PopularItem
	CategorySales []CategorySale
}
