package queries

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/core/domain/model/order"
	"campusdelivery/internal/pkg/errs"
	"campusdelivery/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// Named order filters accepted by the list endpoints.
const (
	FilterCurrent   = "current"
	FilterCancelled = "cancelled"
	FilterCompleted = "completed"
)

var filterAliases = map[string]string{
	FilterCurrent:   FilterCurrent,
	"active":        FilterCurrent,
	"ongoing":       FilterCurrent,
	"open":          FilterCurrent,
	FilterCancelled: FilterCancelled,
	"canceled":      FilterCancelled,
	FilterCompleted: FilterCompleted,
	"done":          FilterCompleted,
	"closed":        FilterCompleted,
}

// FilterStatuses expands a filter name or one of its aliases into statuses.
// Matching ignores case. An empty name means every status.
func FilterStatuses(filter string) ([]order.Status, error) {
	name := strings.ToLower(strings.TrimSpace(filter))
	if name == "" {
		return nil, nil
	}
	switch filterAliases[name] {
	case FilterCurrent:
		return []order.Status{order.Created, order.Confirmed, order.AssignedRider, order.OutForDelivery}, nil
	case FilterCancelled:
		return []order.Status{order.Cancelled}, nil
	case FilterCompleted:
		return []order.Status{order.Delivered}, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("filter", fmt.Errorf("%q is not a known filter", filter))
	}
}

// ParseStatusList reads a comma separated status list such as
// "confirmed, ASSIGNED_RIDER". Blank entries are skipped and duplicates kept
// once.
func ParseStatusList(csv string) ([]order.Status, error) {
	var statuses []order.Status
	for _, part := range strings.Split(csv, ",") {
		part = strings.ToUpper(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		status, err := order.ParseStatus(part)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(statuses, status) {
			statuses = append(statuses, status)
		}
	}
	return statuses, nil
}

// StatusesFromQuery resolves the status and filter query parameters of a list
// endpoint. A non-empty status list wins over the filter.
func StatusesFromQuery(status, filter *string) ([]order.Status, error) {
	if status != nil {
		statuses, err := ParseStatusList(*status)
		if err != nil {
			return nil, err
		}
		if len(statuses) > 0 {
			return statuses, nil
		}
	}
	if filter != nil {
		return FilterStatuses(*filter)
	}
	return nil, nil
}

// OrderFilter narrows ListOrdersQuery. Zero fields do not filter.
// UnassignedOnly keeps orders no rider has claimed yet and cannot be combined
// with RiderID. Limit defaults to DefaultListLimit.
type OrderFilter struct {
	Statuses       []order.Status
	CustomerID     *kernel.UUID
	RiderID        *kernel.UUID
	UnassignedOnly bool
	Limit          int
}

// AvailableForRiders lists confirmed orders nobody has claimed.
func AvailableForRiders() OrderFilter {
	return OrderFilter{Statuses: []order.Status{order.ClaimableStatus}, UnassignedOnly: true}
}

// ActiveForRider lists the orders a rider is currently delivering.
func ActiveForRider(riderID kernel.UUID) OrderFilter {
	return OrderFilter{
		Statuses: []order.Status{order.AssignedRider, order.OutForDelivery},
		RiderID:  &riderID,
	}
}

// ListOrdersQuery serves the admin list, a customer's history and the rider
// boards. Results are newest first.
type ListOrdersQuery struct {
	filter OrderFilter
	guard  guard.ConstructorGuard
}

func NewListOrdersQuery(filter OrderFilter) (ListOrdersQuery, error) {
	var errList []error
	for _, s := range filter.Statuses {
		errList = append(errList, s.Validate())
	}
	if filter.CustomerID != nil {
		errList = append(errList, filter.CustomerID.Validate())
	}
	if filter.RiderID != nil {
		errList = append(errList, filter.RiderID.Validate())
		if filter.UnassignedOnly {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("riderID",
				errors.New("cannot be combined with unassigned only")))
		}
	}
	if filter.Limit < 0 || filter.Limit > MaxListLimit {
		errList = append(errList, errs.NewValueIsOutOfRangeError("limit", filter.Limit, 0, MaxListLimit))
	}
	if err := errors.Join(errList...); err != nil {
		return ListOrdersQuery{}, err
	}

	if filter.Limit == 0 {
		filter.Limit = DefaultListLimit
	}
	filter.Statuses = append([]order.Status(nil), filter.Statuses...)

	return ListOrdersQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Filter() OrderFilter { return q.filter }

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// ListOrdersQueryResponse is one row of an order list.
type ListOrdersQueryResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	Status       order.Status
	Total        kernel.Money
	ItemCount    int
	AddressLabel string
	AddressLine1 string
	RiderID      *kernel.UUID
	CreatedAt    time.Time
}
