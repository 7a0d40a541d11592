package ledger

import (
	"math"
	"sort"
	"time"
)

// Entry is the normalized ledger view of a single transaction: a tax
// invoice (debit) or a payment (credit).
type Entry struct {
	Date        time.Time `json:"date"`
	Ref         string    `json:"ref"`
	Description string    `json:"description,omitempty"`
	Amount      float64   `json:"amount"`
}

// Report is a reconciled account statement for one party over a period.
// Balances are signed: positive means the party owes (debit position).
type Report struct {
	PeriodStart    time.Time `json:"periodStart"`
	PeriodEnd      time.Time `json:"periodEnd"`
	OpeningBalance float64   `json:"openingBalance"`
	Debits         []Entry   `json:"debits"`
	Credits        []Entry   `json:"credits"`
	TotalDebits    float64   `json:"totalDebits"`
	TotalCredits   float64   `json:"totalCredits"`
	ClosingBalance float64   `json:"closingBalance"`
}

// Position names the side of a signed balance: "Dr" when the party owes,
// "Cr" when the party is in credit. Zero counts as a debit position.
func Position(balance float64) string {
	if balance >= 0 {
		return "Dr"
	}
	return "Cr"
}

// dateOnly strips the time-of-day component; period boundaries compare as
// calendar dates.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Reconcile computes the account statement for one party. Entries dated
// strictly before the period contribute to the opening balance; entries
// inside the inclusive [from, to] range are listed and totalled; the
// closing balance is opening + debits - credits.
//
// The computation is consistent under period splitting: reconciling over
// [from, to] starts from the same opening balance that a reconciliation
// ending at from-1 would close with.
func Reconcile(debits, credits []Entry, from, to time.Time) Report {
	from = dateOnly(from)
	to = dateOnly(to)

	report := Report{PeriodStart: from, PeriodEnd: to}

	for _, e := range debits {
		d := dateOnly(e.Date)
		switch {
		case d.Before(from):
			report.OpeningBalance += e.Amount
		case !d.After(to):
			report.Debits = append(report.Debits, e)
			report.TotalDebits += e.Amount
		}
	}
	for _, e := range credits {
		d := dateOnly(e.Date)
		switch {
		case d.Before(from):
			report.OpeningBalance -= e.Amount
		case !d.After(to):
			report.Credits = append(report.Credits, e)
			report.TotalCredits += e.Amount
		}
	}

	sortEntries(report.Debits)
	sortEntries(report.Credits)

	report.ClosingBalance = report.OpeningBalance + report.TotalDebits - report.TotalCredits
	return report
}

// sortEntries orders ascending by calendar date, with the reference string
// as a deterministic tiebreak.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		di, dj := dateOnly(entries[i].Date), dateOnly(entries[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return entries[i].Ref < entries[j].Ref
	})
}

// StatementLine is one row of the rendered two-column statement.
type StatementLine struct {
	Date   *time.Time `json:"date,omitempty"`
	Label  string     `json:"label"`
	Amount float64    `json:"amount"`
}

// Statement is the T-format presentation of a Report: the opening balance
// opens its natural side and the closing balance is carried onto the
// lighter side so both columns total to the same grand total. It is a
// display transform only; the reconciled figures are untouched.
type Statement struct {
	DebitLines  []StatementLine `json:"debitLines"`
	CreditLines []StatementLine `json:"creditLines"`
	GrandTotal  float64         `json:"grandTotal"`
}

// BuildStatement lays a Report out in T format.
func BuildStatement(r Report) Statement {
	var st Statement

	openingDr := r.OpeningBalance >= 0
	start := r.PeriodStart
	opening := StatementLine{Date: &start, Label: "Opening Balance", Amount: math.Abs(r.OpeningBalance)}
	if openingDr {
		st.DebitLines = append(st.DebitLines, opening)
	} else {
		st.CreditLines = append(st.CreditLines, opening)
	}

	for _, e := range r.Debits {
		d := e.Date
		st.DebitLines = append(st.DebitLines, StatementLine{Date: &d, Label: "Sales - " + e.Ref, Amount: e.Amount})
	}
	for _, e := range r.Credits {
		d := e.Date
		label := e.Ref
		if e.Description != "" {
			label += " - " + e.Description
		}
		st.CreditLines = append(st.CreditLines, StatementLine{Date: &d, Label: label, Amount: e.Amount})
	}

	closing := StatementLine{Label: "Closing Balance", Amount: math.Abs(r.ClosingBalance)}
	if r.ClosingBalance >= 0 {
		st.CreditLines = append(st.CreditLines, closing)
	} else {
		st.DebitLines = append(st.DebitLines, closing)
	}

	debitTotal := r.TotalDebits
	creditTotal := r.TotalCredits
	if openingDr {
		debitTotal += r.OpeningBalance
	} else {
		creditTotal += -r.OpeningBalance
	}
	st.GrandTotal = math.Max(debitTotal, creditTotal)
	return st
}
