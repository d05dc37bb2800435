// Package counterparty derives the stable counterparty key (client, supplier or
// guest buyer) a document is reported under.
package counterparty

import (
	"strings"

	"boukir/internal/core/textnorm"
	"boukir/internal/domain/documents"
)

const (
	// AllKey is the single bucket used when counterparties are ignored.
	AllKey = "*"

	cashPrefix   = "cash:"
	onlinePrefix = "online:"
	unknownName  = "unknown"
)

// Resolve returns the counterparty key of a document, or ok=false when none
// can be derived (the document's lines are then skipped).
//
// Supplier-side kinds use the supplier id, then the generic contact id; all
// other kinds use the client id. Guest buyers of the cash and online channels
// get a synthetic key built from their details.
func Resolve(doc documents.Document) (key string, ok bool) {
	switch doc.Kind {
	case documents.KindPurchaseOrder, documents.KindCreditSupplier:
		key = firstNonEmpty(doc.SupplierID, doc.ContactID)
	case documents.KindSale, documents.KindSaleCash, documents.KindSaleOnline,
		documents.KindCreditClient, documents.KindCreditCash, documents.KindCreditOnline:
		key = strings.TrimSpace(doc.ClientID)
	default:
		key = strings.TrimSpace(doc.ClientID)
	}
	if key != "" {
		return key, true
	}

	switch doc.Kind.Channel() {
	case documents.ChannelCash:
		return CashKey(doc.CustomerName), true
	case documents.ChannelOnline:
		return OnlineKey(doc.CustomerName, doc.CustomerPhone, doc.CustomerEmail, doc.OrderNumber), true
	case documents.ChannelBackoffice:
		return "", false
	}
	return "", false
}

// CashKey builds the key of an unregistered walk-in customer.
func CashKey(customerName string) string {
	name := strings.TrimSpace(customerName)
	if name == "" {
		name = unknownName
	}
	return cashPrefix + name
}

// OnlineKey builds the key of an unauthenticated online buyer from the first
// non-empty detail. The value is folded so repeat orders map to one key.
func OnlineKey(name, phone, email, orderNumber string) string {
	v := textnorm.Fold(firstNonEmpty(name, phone, email, orderNumber))
	if v == "" {
		v = unknownName
	}
	return onlinePrefix + v
}

// Remap collapses every key into AllKey when ignore is set.
func Remap(key string, ignore bool) string {
	if ignore {
		return AllKey
	}
	return key
}

// IsSynthetic reports whether key was built for a guest buyer.
func IsSynthetic(key string) bool {
	return strings.HasPrefix(key, cashPrefix) || strings.HasPrefix(key, onlinePrefix)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
