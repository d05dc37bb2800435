package reports

import (
	"strings"

	"boukir/internal/core/apperror"
	"boukir/internal/domain/documents"
)

// DefaultTopN is the number of matrix rows shown when nothing is selected.
const DefaultTopN = 10

// Options are the user-facing switches of a pass.
type Options struct {
	Period documents.Period `json:"period"`
	Groups documents.Groups `json:"groups"`

	// IgnoreCounterparty buckets every document under one counterparty key.
	IgnoreCounterparty bool `json:"ignoreCounterparty"`

	SelectedProductID      string `json:"selectedProductId,omitempty"`
	SelectedCounterpartyID string `json:"selectedCounterpartyId,omitempty"`

	TopN int `json:"topN,omitempty"`
}

// DefaultOptions includes every group over an open period.
func DefaultOptions() Options {
	return Options{Groups: documents.AllGroupsEnabled(), TopN: DefaultTopN}
}

// Validate rejects options the caller must not run: no group enabled or an
// inverted period. The engine itself still tolerates both.
func (o Options) Validate() error {
	if len(o.Groups.Active()) == 0 {
		return apperror.NewBusinessRule(apperror.CodeNoGroupEnabled, "at least one document group must stay enabled")
	}
	if o.Period.From != nil && o.Period.To != nil &&
		documents.Day(*o.Period.From).After(documents.Day(*o.Period.To)) {
		return apperror.NewValidation("dateFrom must not be after dateTo").
			WithDetail("field", "dateFrom")
	}
	if o.TopN < 0 {
		return apperror.NewValidation("topN must not be negative").
			WithDetail("field", "topN")
	}
	return nil
}

// Toggle flips one group and returns the new options. Disabling the last
// active group is refused and leaves o unchanged.
func (o Options) Toggle(group documents.Group) (Options, error) {
	next := o
	switch group {
	case documents.GroupSales:
		next.Groups.Sales = !o.Groups.Sales
	case documents.GroupPurchaseOrders:
		next.Groups.PurchaseOrders = !o.Groups.PurchaseOrders
	case documents.GroupCredits:
		next.Groups.Credits = !o.Groups.Credits
	default:
		return o, apperror.NewValidation("unknown document group").
			WithDetail("group", string(group))
	}
	if len(next.Groups.Active()) == 0 {
		return o, apperror.NewBusinessRule(apperror.CodeNoGroupEnabled, "cannot disable the last active document group").
			WithDetail("group", string(group))
	}
	return next, nil
}

// Labels returns the display names of the active groups.
func (o Options) Labels() []string {
	active := o.Groups.Active()
	out := make([]string, 0, len(active))
	for _, g := range active {
		out = append(out, g.Label())
	}
	return out
}

// Label joins Labels for display.
func (o Options) Label() string {
	return strings.Join(o.Labels(), " + ")
}

func (o Options) topN() int {
	if o.TopN <= 0 {
		return DefaultTopN
	}
	return o.TopN
}
