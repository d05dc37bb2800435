package documents

import "boukir/internal/core/textnorm"

// Excluded statuses per kind family, stored folded (see textnorm.Fold).
// The console writes either the English code or the French label.
var (
	cashExcluded = foldSet(
		"Cancelled", "Annulé",
		"ConvertedToCredit", "Converted to credit",
	)
	onlineExcluded = foldSet(
		"cancelled", "canceled", "refunded",
		"annulé", "remboursé",
	)
	defaultExcluded = foldSet(
		"Cancelled", "Annulé",
		"Rejected", "Refusé",
		"Expired", "Expiré",
	)
)

func foldSet(values ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, v := range values {
		out[textnorm.Fold(v)] = struct{}{}
	}
	return out
}

// StatusCounts reports whether a document of kind k with the given status is
// included in statistics.
func StatusCounts(k Kind, status string) bool {
	key := textnorm.Fold(status)
	switch k {
	case KindSaleCash:
		_, excluded := cashExcluded[key]
		return !excluded
	case KindSaleOnline:
		_, excluded := onlineExcluded[key]
		return !excluded
	case KindSale, KindPurchaseOrder, KindCreditClient, KindCreditSupplier, KindCreditCash, KindCreditOnline:
		_, excluded := defaultExcluded[key]
		return !excluded
	}
	_, excluded := defaultExcluded[key]
	return !excluded
}
