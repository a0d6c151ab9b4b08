package domain

import "time"

// ReportFilter narrows orders by createdAt. The month window is
// half-open [MonthStart, MonthEnd); the day window is closed
// [DayStart, DayEnd]. Both windows may apply at once; nil means
// the window is not set.
type ReportFilter struct {
	MonthStart *time.Time
	MonthEnd   *time.Time
	DayStart   *time.Time
	DayEnd     *time.Time
}
