package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"example.com/admin-console/internal/usecase/view"
)

// Status is checked by the order service so a blank value is reported as
// an invalid status.
type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

func (a *API) handleListOrders(w http.ResponseWriter, r *http.Request) {
	if _, err := a.orderSvc.Load(r.Context()); err != nil {
		handleDomainError(w, err)
		return
	}
	a.writeOrders(w)
}

func (a *API) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req updateOrderStatusRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondRequestError(w, err)
		return
	}

	if err := a.orderSvc.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status); err != nil {
		handleDomainError(w, err)
		return
	}
	a.writeOrders(w)
}

func (a *API) handleMarkDelivered(w http.ResponseWriter, r *http.Request) {
	if err := a.orderSvc.MarkDelivered(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleDomainError(w, err)
		return
	}
	a.writeOrders(w)
}

func (a *API) writeOrders(w http.ResponseWriter) {
	snap := a.orderSvc.Snapshot()
	rows := view.Orders(snap.Items, a.location)
	resp := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, mapOrderRow(row))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"data": resp,
		"meta": snapshotMeta(snap),
	})
}

// handleAnalytics reports what is cached without fetching. The meta blocks
// tell "not loaded yet" apart from an empty store.
func (a *API) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	products := a.productSvc.Snapshot()
	orders := a.orderSvc.Snapshot()
	delivered, pending := view.DeliveryCounts(orders.Items)
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "coming_soon",
		"message": "Analytics Dashboard Coming Soon",
		"summary": map[string]any{
			"products":         view.CountStock(products.Items),
			"products_meta":    snapshotMeta(products),
			"orders_delivered": delivered,
			"orders_pending":   pending,
			"orders_meta":      snapshotMeta(orders),
		},
	})
}
