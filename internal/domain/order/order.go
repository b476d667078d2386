package order

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StatusDelivered is the status written by "mark as delivered".
const StatusDelivered = "Delivered"

type Order struct {
	ID            string
	CustomerName  string
	CustomerPhone string
	Address       string
	GPSLocation   string
	Items         []Item
	Total         decimal.Decimal
	PaymentMethod string
	Status        string
	Dispatch      Dispatch
	CreatedAt     time.Time
}

type Item struct {
	Name     string
	Quantity int64
}

// DispatchKind tells which shape the dispatch details arrived in.
type DispatchKind int

const (
	DispatchNone DispatchKind = iota
	DispatchStructured
	DispatchText
)

// Dispatch holds dispatch details, which the API sends either as an object
// with date/time/status or as one free-form string.
type Dispatch struct {
	Kind   DispatchKind
	Date   string
	Time   string
	Status string
	Text   string
}

func StructuredDispatch(date, tm, status string) Dispatch {
	return Dispatch{Kind: DispatchStructured, Date: date, Time: tm, Status: status}
}

func TextDispatch(text string) Dispatch {
	if text == "" {
		return Dispatch{}
	}
	return Dispatch{Kind: DispatchText, Text: text}
}

// EffectiveStatus is the order status, falling back to the status nested in
// structured dispatch details, then to "".
func (o Order) EffectiveStatus() string {
	if o.Status != "" {
		return o.Status
	}
	if o.Dispatch.Kind == DispatchStructured && o.Dispatch.Status != "" {
		return o.Dispatch.Status
	}
	return ""
}

func (o Order) IsDelivered() bool {
	return strings.EqualFold(strings.TrimSpace(o.EffectiveStatus()), "delivered")
}
