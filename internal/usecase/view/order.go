package view

import (
	"time"

	domorder "example.com/admin-console/internal/domain/order"
)

const (
	NoAddress = "No Address"
	NoGPS     = "No GPS"
)

// OrderRow is one line of the orders table.
type OrderRow struct {
	Order     domorder.Order
	Status    string
	Delivered bool
	Address   string
	GPS       string
	Total     string
	Dispatch  DispatchDisplay
	PlacedAt  string
}

// Orders annotates every order in collection order.
func Orders(collection []domorder.Order, loc *time.Location) []OrderRow {
	if loc == nil {
		loc = time.Local
	}
	rows := make([]OrderRow, 0, len(collection))
	for _, o := range collection {
		row := OrderRow{
			Order:     o,
			Status:    o.EffectiveStatus(),
			Delivered: o.IsDelivered(),
			Address:   orDefault(o.Address, NoAddress),
			GPS:       orDefault(o.GPSLocation, NoGPS),
			Total:     "₹" + o.Total.StringFixed(2),
			Dispatch:  FormatDispatch(o.Dispatch),
		}
		if !o.CreatedAt.IsZero() {
			row.PlacedAt = o.CreatedAt.In(loc).Format("2006-01-02 3:04:05 PM")
		}
		rows = append(rows, row)
	}
	return rows
}

// DeliveryCounts splits a collection into delivered and pending orders.
func DeliveryCounts(collection []domorder.Order) (delivered, pending int) {
	for _, o := range collection {
		if o.IsDelivered() {
			delivered++
		} else {
			pending++
		}
	}
	return delivered, pending
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
