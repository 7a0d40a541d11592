package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC)
}

func TestReconcileBasic(t *testing.T) {
	debits := []Entry{{Date: day(5), Ref: "NFI/2025-26/1", Amount: 1000}}
	credits := []Entry{{Date: day(10), Ref: "Bank Transfer", Amount: 400}}

	r := Reconcile(debits, credits, day(1), day(20))

	assert.Equal(t, 0.0, r.OpeningBalance)
	assert.Equal(t, 1000.0, r.TotalDebits)
	assert.Equal(t, 400.0, r.TotalCredits)
	assert.Equal(t, 600.0, r.ClosingBalance)
	assert.Equal(t, "Dr", Position(r.ClosingBalance))
	require.Len(t, r.Debits, 1)
	require.Len(t, r.Credits, 1)
}

func TestReconcilePeriodSplitConsistency(t *testing.T) {
	debits := []Entry{{Date: day(5), Ref: "NFI/2025-26/1", Amount: 1000}}
	credits := []Entry{{Date: day(10), Ref: "Cash", Amount: 400}}

	later := Reconcile(debits, credits, day(11), day(20))

	// Everything before day 11 rolls into the opening balance.
	assert.Equal(t, 600.0, later.OpeningBalance)
	assert.Equal(t, 0.0, later.TotalDebits)
	assert.Equal(t, 0.0, later.TotalCredits)
	assert.Equal(t, 600.0, later.ClosingBalance)
	assert.Empty(t, later.Debits)
	assert.Empty(t, later.Credits)

	full := Reconcile(debits, credits, day(1), day(20))
	assert.Equal(t, full.ClosingBalance, later.ClosingBalance)
}

func TestReconcileInclusiveBoundaries(t *testing.T) {
	debits := []Entry{
		{Date: day(1), Ref: "A", Amount: 100},
		{Date: day(20), Ref: "B", Amount: 200},
	}

	r := Reconcile(debits, nil, day(1), day(20))

	// Both boundary dates are inside the period.
	assert.Equal(t, 0.0, r.OpeningBalance)
	assert.Equal(t, 300.0, r.TotalDebits)
	require.Len(t, r.Debits, 2)
}

func TestReconcileIgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2025, time.June, 20, 23, 59, 0, 0, time.UTC)
	r := Reconcile([]Entry{{Date: late, Ref: "A", Amount: 50}}, nil, day(1), day(20))

	assert.Equal(t, 50.0, r.TotalDebits)
}

func TestReconcileEmptyHistory(t *testing.T) {
	r := Reconcile(nil, nil, day(1), day(30))

	assert.Zero(t, r.OpeningBalance)
	assert.Zero(t, r.TotalDebits)
	assert.Zero(t, r.TotalCredits)
	assert.Zero(t, r.ClosingBalance)
	assert.Empty(t, r.Debits)
	assert.Empty(t, r.Credits)
}

func TestReconcileCreditPosition(t *testing.T) {
	credits := []Entry{{Date: day(3), Ref: "UPI", Amount: 900}}
	r := Reconcile(nil, credits, day(1), day(30))

	assert.Equal(t, -900.0, r.ClosingBalance)
	assert.Equal(t, "Cr", Position(r.ClosingBalance))
}

func TestReconcileSortsByDateThenRef(t *testing.T) {
	debits := []Entry{
		{Date: day(9), Ref: "NFI/2025-26/3", Amount: 10},
		{Date: day(2), Ref: "NFI/2025-26/2", Amount: 10},
		{Date: day(9), Ref: "NFI/2025-26/1", Amount: 10},
	}

	r := Reconcile(debits, nil, day(1), day(30))

	require.Len(t, r.Debits, 3)
	assert.Equal(t, "NFI/2025-26/2", r.Debits[0].Ref)
	assert.Equal(t, "NFI/2025-26/1", r.Debits[1].Ref)
	assert.Equal(t, "NFI/2025-26/3", r.Debits[2].Ref)
}

func TestBuildStatementBalances(t *testing.T) {
	debits := []Entry{{Date: day(5), Ref: "NFI/2025-26/1", Amount: 1000}}
	credits := []Entry{{Date: day(10), Ref: "Cash", Description: "part payment", Amount: 400}}

	r := Reconcile(debits, credits, day(1), day(20))
	st := BuildStatement(r)

	// Opening (Dr) heads the debit column, closing (Dr position) is
	// carried onto the credit column.
	require.NotEmpty(t, st.DebitLines)
	assert.Equal(t, "Opening Balance", st.DebitLines[0].Label)
	last := st.CreditLines[len(st.CreditLines)-1]
	assert.Equal(t, "Closing Balance", last.Label)
	assert.Equal(t, 600.0, last.Amount)

	var debitSum, creditSum float64
	for _, l := range st.DebitLines {
		debitSum += l.Amount
	}
	for _, l := range st.CreditLines {
		creditSum += l.Amount
	}
	assert.InDelta(t, st.GrandTotal, debitSum, 1e-9)
	assert.InDelta(t, st.GrandTotal, creditSum, 1e-9)
	assert.Equal(t, 1000.0, st.GrandTotal)

	assert.Contains(t, st.CreditLines[0].Label, "Cash - part payment")
}

func TestBuildStatementCreditOpening(t *testing.T) {
	credits := []Entry{
		{Date: day(2), Ref: "Cheque", Amount: 500},
		{Date: day(15), Ref: "Cash", Amount: 100},
	}

	r := Reconcile(nil, credits, day(10), day(20))
	require.Equal(t, -500.0, r.OpeningBalance)

	st := BuildStatement(r)

	// Credit opening heads the credit column; the closing credit balance
	// pads the debit column.
	assert.Equal(t, "Opening Balance", st.CreditLines[0].Label)
	assert.Equal(t, 500.0, st.CreditLines[0].Amount)
	last := st.DebitLines[len(st.DebitLines)-1]
	assert.Equal(t, "Closing Balance", last.Label)
	assert.Equal(t, 600.0, last.Amount)
	assert.Equal(t, 600.0, st.GrandTotal)
}
