package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detail(id, number, date, total, profit string) DetailLine {
	dl := DetailLine{DocumentID: id, DocumentNumber: number, DateRaw: date, Total: d(total), Profit: d(profit), Quantity: d("1")}
	if t, err := time.Parse(time.DateOnly, date); err == nil {
		dl.Date, dl.DateOK = t, true
	}
	return dl
}

func TestLedger_RunningBalance(t *testing.T) {
	details := []DetailLine{
		detail("3", "BS-3", "2025-03-02", "-50", "-10"),
		detail("1", "BS-1", "2025-03-01", "100", "20"),
		detail("2", "BS-2", "2025-03-01", "30", "6"),
	}

	rows := Ledger(details)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"1", "2", "3"}, []string{rows[0].DocumentID, rows[1].DocumentID, rows[2].DocumentID})
	assert.True(t, rows[0].Balance.Equal(d("100")))
	assert.True(t, rows[1].Balance.Equal(d("130")))
	assert.True(t, rows[2].Balance.Equal(d("80")))
	assert.True(t, rows[2].CumulativeProfit.Equal(d("16")))

	final := rows[3]
	assert.True(t, final.Final)
	assert.True(t, final.Balance.Equal(d("80")))
	assert.True(t, final.CumulativeProfit.Equal(d("16")))
	assert.True(t, final.Total.Equal(d("80")))
	assert.True(t, final.Quantity.Equal(d("3")))
}

func TestLedger_Idempotent(t *testing.T) {
	details := []DetailLine{
		detail("b", "10", "2025-01-02", "5", "1"),
		detail("a", "9", "2025-01-02", "7", "2"),
		detail("c", "11", "bad", "1", "1"),
	}
	snapshot := append([]DetailLine(nil), details...)

	first := Ledger(details)
	second := Ledger(details)
	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, details, "input must stay untouched")
}

func TestLedger_Ordering(t *testing.T) {
	details := []DetailLine{
		detail("x2", "10", "2025-01-02", "1", "0"),
		detail("x1", "9", "2025-01-02", "1", "0"),
		detail("x0", "2", "garbage", "1", "0"),
		detail("x3", "10", "2025-01-02", "1", "0"),
	}
	rows := Ledger(details)

	got := make([]string, 0, len(rows)-1)
	for _, r := range rows[:len(rows)-1] {
		got = append(got, r.DocumentID)
	}
	// Unparsable dates first; numbers compare numerically; id breaks ties.
	assert.Equal(t, []string{"x0", "x1", "x2", "x3"}, got)
}

func TestLedger_Empty(t *testing.T) {
	rows := Ledger(nil)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Final)
	assert.True(t, rows[0].Balance.IsZero())
}

func TestLedger_MixedNumbersOrderIndependentOfInput(t *testing.T) {
	mk := func(number string) DetailLine { return detail(number, number, "2025-01-02", "1", "0") }
	inputs := [][]string{
		{"9", "10", "1a"},
		{"1a", "10", "9"},
		{"10", "1a", "9"},
		{"1a", "9", "10"},
	}
	for _, in := range inputs {
		details := make([]DetailLine, 0, len(in))
		for _, n := range in {
			details = append(details, mk(n))
		}
		rows := Ledger(details)
		got := []string{rows[0].DocumentNumber, rows[1].DocumentNumber, rows[2].DocumentNumber}
		assert.Equal(t, []string{"9", "10", "1a"}, got, "input %v", in)
	}
}

func TestLedger_NetBalanceTracksDiscounts(t *testing.T) {
	first := detail("1", "1", "2025-03-01", "100", "20")
	first.Discount, first.NetTotal = d("10"), d("90")
	second := detail("2", "2", "2025-03-02", "-50", "-10")
	second.Discount, second.NetTotal = d("-5"), d("-45")

	rows := Ledger([]DetailLine{second, first})
	require.Len(t, rows, 3)

	assert.True(t, rows[0].NetBalance.Equal(d("90")))
	assert.True(t, rows[1].NetBalance.Equal(d("45")))

	final := rows[2]
	assert.True(t, final.Final)
	assert.True(t, final.Balance.Equal(d("50")))
	assert.True(t, final.NetBalance.Equal(d("45")))
	assert.True(t, final.NetTotal.Equal(d("45")))
	assert.True(t, final.Discount.Equal(d("5")))
	assert.True(t, final.Profit.Equal(d("10")))
}
