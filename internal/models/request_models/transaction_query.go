package request_models

import (
	"time"

	"schoolpay/pkg/utils"
)

// Closed enumeration of sortable columns. Anything outside this map is
// rejected before it reaches the query layer.
var sortColumns = map[string]string{
	"payment_time": "order_statuses.payment_time",
	"order_amount": "order_statuses.order_amount",
	"status":       "order_statuses.status",
	"created_at":   "orders.created_at",
}

var filterStatuses = map[string]bool{
	"success":   true,
	"failed":    true,
	"pending":   true,
	"cancelled": true,
}

type TransactionQuery struct {
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=10"`
	Sort     string `form:"sort,default=payment_time"`
	Order    string `form:"order,default=desc"`
	Status   string `form:"status"`
	SchoolID string `form:"school_id"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
	Search   string `form:"search"`
}

// Validate checks the bound query parameters against the allowed
// enumerations and normalizes pagination bounds.
func (q *TransactionQuery) Validate() error {
	if q.Page < 1 {
		return utils.ErrInvalidPage
	}
	if q.Limit < 1 || q.Limit > 100 {
		return utils.ErrInvalidPageSize
	}
	if _, ok := sortColumns[q.Sort]; !ok {
		return utils.ErrInvalidSortField
	}
	if q.Order != "asc" && q.Order != "desc" {
		return utils.ErrInvalidSortOrder
	}
	if q.Status != "" && !filterStatuses[q.Status] {
		return utils.ErrInvalidStatusFilter
	}
	if _, err := q.parseDate(q.DateFrom); err != nil {
		return utils.ErrInvalidDateRange
	}
	if _, err := q.parseDate(q.DateTo); err != nil {
		return utils.ErrInvalidDateRange
	}
	return nil
}

// SortColumn maps the requested sort field onto its SQL column.
func (q *TransactionQuery) SortColumn() string {
	return sortColumns[q.Sort]
}

func (q *TransactionQuery) Descending() bool {
	return q.Order != "asc"
}

func (q *TransactionQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// DateFromUnix and DateToUnix return the inclusive payment-time bounds,
// zero when unset. Validate must have been called first.
func (q *TransactionQuery) DateFromUnix() int64 {
	t, _ := q.parseDate(q.DateFrom)
	return t
}

func (q *TransactionQuery) DateToUnix() int64 {
	t, _ := q.parseDate(q.DateTo)
	return t
}

func (q *TransactionQuery) parseDate(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Unix(), nil
		}
	}
	return 0, utils.ErrInvalidDateRange
}
