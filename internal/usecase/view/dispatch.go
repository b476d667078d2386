package view

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	domorder "example.com/admin-console/internal/domain/order"
)

// NoDispatchInfo is shown when an order carries no usable dispatch details.
const NoDispatchInfo = "No Dispatch Info"

var (
	// e.g. "2025-07-08T00:00:00.000 11:35 AM"
	combinedDispatch = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})T.* (\d{1,2}:\d{2} [AP]M)$`)
	meridiem         = regexp.MustCompile(`(?i)am|pm`)
)

// DispatchDisplay is dispatch details ready for display. When Date and Time
// are both set they render on separate lines; otherwise Text is shown.
type DispatchDisplay struct {
	Date    string `json:"date,omitempty"`
	Time    string `json:"time,omitempty"`
	Text    string `json:"text"`
	Present bool   `json:"present"`
}

func (d DispatchDisplay) String() string { return d.Text }

func FormatDispatch(d domorder.Dispatch) DispatchDisplay {
	switch {
	case d.Kind == domorder.DispatchStructured && d.Date != "" && d.Time != "":
		return DispatchDisplay{Text: d.Date + " " + to12Hour(d.Time), Present: true}
	case d.Kind == domorder.DispatchText && d.Text != "":
		if m := combinedDispatch.FindStringSubmatch(d.Text); m != nil {
			return DispatchDisplay{Date: m[1], Time: m[2], Text: m[1] + " " + m[2], Present: true}
		}
		return DispatchDisplay{Text: d.Text, Present: true}
	default:
		return DispatchDisplay{Text: NoDispatchInfo}
	}
}

// to12Hour converts "14:05" to "2:05 PM". Times that already carry an AM/PM
// marker, or whose hour is not a number, are returned unchanged.
func to12Hour(t string) string {
	if meridiem.MatchString(t) {
		return t
	}
	hourStr, minute, _ := strings.Cut(t, ":")
	if i := strings.IndexByte(minute, ':'); i >= 0 {
		minute = minute[:i]
	}
	h, err := strconv.Atoi(strings.TrimSpace(hourStr))
	if err != nil {
		return t
	}
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%s %s", h, minute, suffix)
}
