package report

import "storefront/internal/domain"

type Stats struct {
	Total      int
	Pending    int
	Confirmed  int
	Dispatched int
	Delivered  int
	Cancelled  int
	// Revenue counts Confirmed orders only; payment is collected on
	// delivery and neither Pending nor later states are added.
	Revenue int64
}

// FromTotals folds per-status count/sum rows into Stats. Rows with an
// unknown status still count towards Total.
func FromTotals(rows []domain.StatusTotal) Stats {
	var s Stats
	for _, row := range rows {
		s.Total += row.Count
		switch row.Status {
		case domain.OrderStatusPending:
			s.Pending += row.Count
		case domain.OrderStatusConfirmed:
			s.Confirmed += row.Count
			s.Revenue += row.Sum
		case domain.OrderStatusDispatched:
			s.Dispatched += row.Count
		case domain.OrderStatusDelivered:
			s.Delivered += row.Count
		case domain.OrderStatusCancelled:
			s.Cancelled += row.Count
		}
	}
	return s
}
