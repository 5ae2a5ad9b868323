package dto

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/Khaliq12345/O-Platy60-server/internal/apierror"
)

const (
	defaultLimit = 20
	maxLimit     = 100

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// ListQuery is bound from the query string of every list endpoint.
// start_date / end_date accept ISO timestamps or natural language
// ("last week", "2024-01-01"); unparsable values resolve to "no bound".
type ListQuery struct {
	Search    string `form:"search"`
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=20"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Order     string `form:"order,default=desc" validate:"omitempty,oneof=asc desc"`
}

// FilterSpec is the normalized, unambiguous fetch specification consumed by
// every repository list method. Offset is purely a function of page and limit.
type FilterSpec struct {
	Search     string
	Limit      int
	Offset     int
	Descending bool
	StartDate  *time.Time
	EndDate    *time.Time
}

// Normalize converts the raw query into a FilterSpec. Out-of-range page and
// limit are rejected, except limit above the cap, which is capped instead.
func (q ListQuery) Normalize() (FilterSpec, error) {
	return q.NormalizeAt(time.Now())
}

// NormalizeAt is Normalize with an explicit reference time for the
// natural-language date bounds ("last week" is relative to now).
// Identical input and reference time always yield an identical spec.
func (q ListQuery) NormalizeAt(now time.Time) (FilterSpec, error) {
	if q.Page < 1 {
		return FilterSpec{}, apierror.Validation("list_query", fmt.Sprintf("page must be >= 1, got %d", q.Page))
	}
	limit := q.Limit
	if limit < 1 {
		return FilterSpec{}, apierror.Validation("list_query", fmt.Sprintf("limit must be >= 1, got %d", limit))
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	order := q.Order
	if order == "" {
		order = OrderDesc
	}
	if order != OrderAsc && order != OrderDesc {
		return FilterSpec{}, apierror.Validation("list_query", "order must be asc or desc")
	}

	return FilterSpec{
		Search:     q.Search,
		Limit:      limit,
		Offset:     (q.Page - 1) * limit,
		Descending: order == OrderDesc,
		StartDate:  parseDateBound(q.StartDate, now),
		EndDate:    parseDateBound(q.EndDate, now),
	}, nil
}

// nlParser recognizes English natural-language dates. Stateless after setup.
var nlParser = func() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}()

// parseDateBound resolves a free-text date to an absolute timestamp.
// Tries strict-ish formats first, then natural language. Anything
// unparsable means "no bound", not an error.
func parseDateBound(s string, now time.Time) *time.Time {
	if s == "" {
		return nil
	}
	if t, err := dateparse.ParseAny(s); err == nil {
		return &t
	}
	if r, err := nlParser.Parse(s, now); err == nil && r != nil {
		return &r.Time
	}
	return nil
}
