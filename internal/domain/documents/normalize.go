package documents

import (
	"slices"
	"time"
)

// Period is an inclusive date range; either bound may be nil.
type Period struct {
	From *time.Time
	To   *time.Time
}

// Contains reports whether t falls within the period, compared by calendar day.
func (p Period) Contains(t time.Time) bool {
	day := Day(t)
	if p.From != nil && day.Before(Day(*p.From)) {
		return false
	}
	if p.To != nil && day.After(Day(*p.To)) {
		return false
	}
	return true
}

// Groups selects which channel groups are included.
type Groups struct {
	Sales          bool `json:"sales"`
	PurchaseOrders bool `json:"purchaseOrders"`
	Credits        bool `json:"credits"`
}

// AllGroupsEnabled returns a Groups value with every group on.
func AllGroupsEnabled() Groups {
	return Groups{Sales: true, PurchaseOrders: true, Credits: true}
}

// Includes reports whether group g is enabled.
func (g Groups) Includes(group Group) bool {
	switch group {
	case GroupSales:
		return g.Sales
	case GroupPurchaseOrders:
		return g.PurchaseOrders
	case GroupCredits:
		return g.Credits
	}
	return false
}

// Active returns the enabled groups in display order.
func (g Groups) Active() []Group {
	out := make([]Group, 0, len(AllGroups))
	for _, group := range AllGroups {
		if g.Includes(group) {
			out = append(out, group)
		}
	}
	return out
}

// GroupDiagnostic counts documents of one group before and after filtering.
type GroupDiagnostic struct {
	Group    Group `json:"group"`
	Enabled  bool  `json:"enabled"`
	Total    int   `json:"total"`
	Filtered int   `json:"filtered"`
}

// Normalized is the output of Normalize.
type Normalized struct {
	Documents   []Tagged
	Diagnostics []GroupDiagnostic

	// UnknownKinds counts documents supplied under a kind the core does not know.
	UnknownKinds int
}

// Normalizer tags, filters and flattens channel document lists.
type Normalizer struct {
	Layouts []string
}

// NewNormalizer creates a Normalizer using the given date layouts
// (DefaultDateLayouts when empty).
func NewNormalizer(layouts ...string) *Normalizer {
	if len(layouts) == 0 {
		layouts = DefaultDateLayouts
	}
	return &Normalizer{Layouts: layouts}
}

// Normalize tags every document with the kind of the list it came from, drops
// documents marked not-calculated, out of period, with an excluded status or in
// a disabled group. Unparsable dates are kept. Documents supplied under an
// unknown kind are kept in the sales group so the report can flag them.
func (n *Normalizer) Normalize(channels Channels, period Period, groups Groups) Normalized {
	diag := make(map[Group]*GroupDiagnostic, len(AllGroups))
	for _, g := range AllGroups {
		diag[g] = &GroupDiagnostic{Group: g, Enabled: groups.Includes(g)}
	}

	var out Normalized
	for _, kind := range orderedKinds(channels) {
		if !kind.Valid() {
			out.UnknownKinds += len(channels[kind])
		}
		group := kind.Group()
		d := diag[group]
		for _, doc := range channels[kind] {
			d.Total++
			if !d.Enabled || doc.NotCalculated {
				continue
			}
			doc.Kind = kind
			parsed, ok := ParseDate(doc.Date, n.Layouts...)
			if ok && !period.Contains(parsed) {
				continue
			}
			if !StatusCounts(kind, doc.Status) {
				continue
			}
			d.Filtered++
			out.Documents = append(out.Documents, Tagged{Document: doc, ParsedDate: parsed, DateOK: ok})
		}
	}

	for _, g := range AllGroups {
		out.Diagnostics = append(out.Diagnostics, *diag[g])
	}
	return out
}

// Normalize runs the default Normalizer.
func Normalize(channels Channels, period Period, groups Groups) Normalized {
	return NewNormalizer().Normalize(channels, period, groups)
}

// orderedKinds returns the known kinds first, then unknown ones sorted by name.
func orderedKinds(channels Channels) []Kind {
	out := make([]Kind, 0, len(channels))
	for _, k := range AllKinds {
		if _, ok := channels[k]; ok {
			out = append(out, k)
		}
	}
	var unknown []Kind
	for k := range channels {
		if !k.Valid() {
			unknown = append(unknown, k)
		}
	}
	slices.Sort(unknown)
	return append(out, unknown...)
}
