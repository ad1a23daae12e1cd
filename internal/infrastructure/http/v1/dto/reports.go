package dto

import (
	"time"

	"vendia/internal/core/apperror"
	"vendia/internal/core/types"
	"vendia/internal/domain/reporting"
)

// GeneralSummaryResponse is the dashboard rollup.
type GeneralSummaryResponse struct {
	Products        int64       `json:"products"`
	Customers       int64       `json:"customers"`
	Sales           int         `json:"sales"`
	TotalAmount     types.Money `json:"totalAmount"`
	ThisMonthSales  int         `json:"thisMonthSales"`
	ThisMonthAmount types.Money `json:"thisMonthAmount"`
}

// SalesReportQuery selects the report window. Kind defaults to "month";
// start/end are only honored for kind=custom and use YYYY-MM-DD.
type SalesReportQuery struct {
	Kind  string `form:"kind"`
	Start string `form:"start"`
	End   string `form:"end"`
}

// ToQuery converts the request to a reporting query.
func (r *SalesReportQuery) ToQuery() (reporting.Query, error) {
	kind := reporting.RangeKind(r.Kind)
	if r.Kind == "" {
		kind = reporting.RangeMonth
	}
	if !reporting.IsValidRangeKind(kind) {
		return reporting.Query{}, apperror.NewValidation("unknown report range: " + r.Kind)
	}

	q := reporting.Query{Kind: kind}
	if kind != reporting.RangeCustom {
		return q, nil
	}

	if r.Start == "" || r.End == "" {
		return reporting.Query{}, apperror.NewValidation("custom range requires start and end dates")
	}
	start, err := time.Parse(time.DateOnly, r.Start)
	if err != nil {
		return reporting.Query{}, apperror.NewValidation("invalid start date: " + r.Start)
	}
	end, err := time.Parse(time.DateOnly, r.End)
	if err != nil {
		return reporting.Query{}, apperror.NewValidation("invalid end date: " + r.End)
	}
	q.Start = start
	q.End = end

	return q, nil
}
