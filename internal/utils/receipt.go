package utils

import (
	"fmt"
	"time"
)

// ReceiptNumber formats a printable reference like ORD-20240302-000042.
func ReceiptNumber(orderID uint, placedAt time.Time) string {
	return fmt.Sprintf("ORD-%s-%06d", placedAt.UTC().Format("20060102"), orderID)
}
