package view

import (
	"testing"

	"github.com/stretchr/testify/require"

	domorder "example.com/admin-console/internal/domain/order"
)

func TestFormatDispatch(t *testing.T) {
	tests := []struct {
		name     string
		in       domorder.Dispatch
		wantText string
		wantDate string
		wantTime string
		present  bool
	}{
		{
			name:     "24 hour time converted",
			in:       domorder.StructuredDispatch("2025-07-08", "14:05", ""),
			wantText: "2025-07-08 2:05 PM",
			present:  true,
		},
		{
			name:     "midnight",
			in:       domorder.StructuredDispatch("2025-07-08", "00:30", ""),
			wantText: "2025-07-08 12:30 AM",
			present:  true,
		},
		{
			name:     "noon",
			in:       domorder.StructuredDispatch("2025-07-08", "12:00", ""),
			wantText: "2025-07-08 12:00 PM",
			present:  true,
		},
		{
			name:     "seconds dropped",
			in:       domorder.StructuredDispatch("2025-07-08", "09:15:59", ""),
			wantText: "2025-07-08 9:15 AM",
			present:  true,
		},
		{
			name:     "already has meridiem",
			in:       domorder.StructuredDispatch("2025-07-08", "11:35 am", ""),
			wantText: "2025-07-08 11:35 am",
			present:  true,
		},
		{
			name:     "structured without time",
			in:       domorder.StructuredDispatch("2025-07-08", "", "Delivered"),
			wantText: NoDispatchInfo,
		},
		{
			name:     "combined string split",
			in:       domorder.TextDispatch("2025-07-08T00:00:00.000 11:35 AM"),
			wantText: "2025-07-08 11:35 AM",
			wantDate: "2025-07-08",
			wantTime: "11:35 AM",
			present:  true,
		},
		{
			name:     "opaque string",
			in:       domorder.TextDispatch("Dispatched via courier"),
			wantText: "Dispatched via courier",
			present:  true,
		},
		{
			name:     "absent",
			in:       domorder.Dispatch{},
			wantText: NoDispatchInfo,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDispatch(tt.in)
			require.Equal(t, tt.wantText, got.Text)
			require.Equal(t, tt.wantDate, got.Date)
			require.Equal(t, tt.wantTime, got.Time)
			require.Equal(t, tt.present, got.Present)
		})
	}
}
