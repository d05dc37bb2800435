package documents

// Kind is the sales/purchase/credit channel a document comes from.
type Kind string

const (
	KindSale           Kind = "Sale"           // Bon de sortie
	KindSaleCash       Kind = "SaleCash"       // Bon comptant
	KindSaleOnline     Kind = "SaleOnline"     // Commande e-commerce
	KindPurchaseOrder  Kind = "PurchaseOrder"  // Bon de commande fournisseur
	KindCreditClient   Kind = "CreditClient"   // Avoir client
	KindCreditSupplier Kind = "CreditSupplier" // Avoir fournisseur
	KindCreditCash     Kind = "CreditCash"     // Avoir comptant
	KindCreditOnline   Kind = "CreditOnline"   // Avoir e-commerce
)

// AllKinds lists every known kind in a fixed order.
var AllKinds = []Kind{
	KindSale,
	KindSaleCash,
	KindSaleOnline,
	KindPurchaseOrder,
	KindCreditClient,
	KindCreditSupplier,
	KindCreditCash,
	KindCreditOnline,
}

// Group is one of the channel groups the report can include or exclude.
type Group string

const (
	GroupSales          Group = "sales"
	GroupPurchaseOrders Group = "purchase_orders"
	GroupCredits        Group = "credits"
)

// AllGroups lists the groups in display order.
var AllGroups = []Group{GroupSales, GroupPurchaseOrders, GroupCredits}

// Label returns the display name of the group.
func (g Group) Label() string {
	switch g {
	case GroupSales:
		return "Sales"
	case GroupPurchaseOrders:
		return "Purchase orders"
	case GroupCredits:
		return "Credit notes"
	}
	return string(g)
}

// Channel is the sales channel a kind belongs to.
type Channel string

const (
	ChannelBackoffice Channel = "backoffice"
	ChannelCash       Channel = "cash"
	ChannelOnline     Channel = "online"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	_, ok := k.group()
	return ok
}

// Group returns the channel group of k. Unknown kinds fall into GroupSales.
func (k Kind) Group() Group {
	g, _ := k.group()
	return g
}

func (k Kind) group() (Group, bool) {
	switch k {
	case KindSale, KindSaleCash, KindSaleOnline:
		return GroupSales, true
	case KindPurchaseOrder:
		return GroupPurchaseOrders, true
	case KindCreditClient, KindCreditSupplier, KindCreditCash, KindCreditOnline:
		return GroupCredits, true
	}
	return GroupSales, false
}

// Channel returns the sales channel of k.
func (k Kind) Channel() Channel {
	switch k {
	case KindSaleCash, KindCreditCash:
		return ChannelCash
	case KindSaleOnline, KindCreditOnline:
		return ChannelOnline
	case KindSale, KindPurchaseOrder, KindCreditClient, KindCreditSupplier:
		return ChannelBackoffice
	}
	return ChannelBackoffice
}

// IsSupplierSide reports whether the counterparty of k is a supplier.
func (k Kind) IsSupplierSide() bool {
	switch k {
	case KindPurchaseOrder, KindCreditSupplier:
		return true
	case KindSale, KindSaleCash, KindSaleOnline, KindCreditClient, KindCreditCash, KindCreditOnline:
		return false
	}
	return false
}

// Sign returns the accounting sign of a document kind.
//
//	Sale, SaleCash, SaleOnline             +1  counterparty pays us
//	PurchaseOrder                          -1  we pay the supplier
//	CreditClient, CreditCash, CreditOnline -1  value returned to the counterparty
//	CreditSupplier                         +1  supplier returns value to us
//
// Unknown kinds return +1 with ok=false so the caller can flag the document.
func Sign(k Kind) (sign int, ok bool) {
	switch k {
	case KindSale, KindSaleCash, KindSaleOnline:
		return 1, true
	case KindPurchaseOrder:
		return -1, true
	case KindCreditClient, KindCreditCash, KindCreditOnline:
		return -1, true
	case KindCreditSupplier:
		return 1, true
	}
	return 1, false
}
