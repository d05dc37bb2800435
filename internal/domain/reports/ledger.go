package reports

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Ledger orders a pair's detail lines by (date, document number, document id)
// and walks them, carrying the running gross and net balances (solde) and the
// cumulative profit.
// It appends a final row holding the cumulative totals. The input is not
// modified; calling Ledger twice on the same lines yields identical rows.
func Ledger(details []DetailLine) []LedgerRow {
	sorted := slices.Clone(details)
	slices.SortStableFunc(sorted, compareDetails)

	rows := make([]LedgerRow, 0, len(sorted)+1)
	var balance, net, discount, profit, quantity decimal.Decimal
	for _, line := range sorted {
		balance = balance.Add(line.Total)
		net = net.Add(line.NetTotal)
		discount = discount.Add(line.Discount)
		profit = profit.Add(line.Profit)
		quantity = quantity.Add(line.Quantity)
		rows = append(rows, LedgerRow{
			DetailLine:       line,
			Balance:          balance,
			NetBalance:       net,
			CumulativeProfit: profit,
		})
	}

	rows = append(rows, LedgerRow{
		DetailLine: DetailLine{
			Quantity: quantity,
			Total:    balance,
			Discount: discount,
			NetTotal: net,
			Profit:   profit,
		},
		Balance:          balance,
		NetBalance:       net,
		CumulativeProfit: profit,
		Final:            true,
	})
	return rows
}

// compareDetails orders lines by date (unparsable dates first), then document
// number, then document id.
func compareDetails(a, b DetailLine) int {
	switch {
	case a.DateOK != b.DateOK:
		if !a.DateOK {
			return -1
		}
		return 1
	case a.DateOK && !a.Date.Equal(b.Date):
		return a.Date.Compare(b.Date)
	}
	if c := compareNumbers(a.DocumentNumber, b.DocumentNumber); c != 0 {
		return c
	}
	return compareNumbers(a.DocumentID, b.DocumentID)
}

// compareNumbers orders document numbers: plain integers first, compared
// numerically so "9" sorts before "10", then everything else lexically.
func compareNumbers(a, b string) int {
	ai, aerr := strconv.ParseInt(a, 10, 64)
	bi, berr := strconv.ParseInt(b, 10, 64)
	switch {
	case aerr == nil && berr == nil:
		return cmp.Compare(ai, bi)
	case aerr == nil:
		return -1
	case berr == nil:
		return 1
	}
	return strings.Compare(a, b)
}
