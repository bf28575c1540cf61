package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"restaurant-order/internal/menu"
	"restaurant-order/internal/order"
)

const timestampLayout = "2006-01-02 15:04:05"

var (
	menuHeader   = []string{"Item ID", "Name", "Category", "Price", "Availability", "Created At"}
	ordersHeader = []string{"Order ID", "User ID", "Order Date", "Total", "Tax", "Final Amount", "Status"}
)

// WriteMenuCSV writes the header row followed by one row per item.
func WriteMenuCSV(w io.Writer, items []*menu.MenuItem) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(menuHeader); err != nil {
		return err
	}

	for _, it := range items {
		if err := cw.Write([]string{
			strconv.FormatUint(uint64(it.ID), 10),
			it.Name,
			it.Category,
			it.Price.StringFixed(2),
			strconv.FormatBool(it.Available),
			it.CreatedAt.Format(timestampLayout),
		}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteOrdersCSV writes the header row followed by one row per order.
func WriteOrdersCSV(w io.Writer, orders []*order.Order) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ordersHeader); err != nil {
		return err
	}

	for _, o := range orders {
		if err := cw.Write([]string{
			strconv.FormatUint(uint64(o.ID), 10),
			strconv.FormatUint(uint64(o.AccountID), 10),
			o.OrderDate.Format(timestampLayout),
			o.Subtotal.StringFixed(2),
			o.Tax.StringFixed(2),
			o.Final.StringFixed(2),
			string(o.Status),
		}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
