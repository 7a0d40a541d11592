// Package docnum derives sequential document numbers for sales documents.
//
// Numbering is scan-based: the next number is the highest sequence seen
// among the tenant's existing documents of the same type, plus one. Gaps
// left by deleted documents are never refilled. Two concurrent creations
// for the same tenant can derive the same number since there is no atomic
// reservation; guarding against that belongs to the persistence layer, not
// to this computation.
package docnum

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Type identifies a sales document kind.
type Type string

const (
	TypeTaxInvoice Type = "Tax Invoice"
	TypeProforma   Type = "Proforma Invoice"
	TypeQuotation  Type = "Quotation"
)

// Valid reports whether t is a known document type.
func (t Type) Valid() bool {
	switch t {
	case TypeTaxInvoice, TypeProforma, TypeQuotation:
		return true
	}
	return false
}

// Document is the minimal view of an existing sales document needed for
// sequencing.
type Document struct {
	Type   Type
	Number string
}

// fiscalYearStart returns the calendar year in which the Indian fiscal
// year (April to March) containing date begins.
func fiscalYearStart(date time.Time) int {
	if date.Month() >= time.April {
		return date.Year()
	}
	return date.Year() - 1
}

// Prefix returns the immutable number prefix for a document type dated
// within the given fiscal year, e.g. "NFI/2025-26/" or "QT/2526/".
func Prefix(t Type, date time.Time) string {
	start := fiscalYearStart(date)
	switch t {
	case TypeTaxInvoice:
		return fmt.Sprintf("NFI/%d-%02d/", start, (start+1)%100)
	case TypeProforma:
		return fmt.Sprintf("NFI/PI/%02d%02d/", start%100, (start+1)%100)
	case TypeQuotation:
		return fmt.Sprintf("QT/%02d%02d/", start%100, (start+1)%100)
	}
	return ""
}

// Next derives the number for a new document of the given type. Existing
// documents of other types, or whose numbers do not match the type's
// prefix pattern, are ignored. With no matching predecessors the sequence
// starts at 1.
func Next(existing []Document, t Type, date time.Time) string {
	prefix := Prefix(t, date)
	pattern := regexp.MustCompile("^" + regexp.QuoteMeta(prefix) + `(\d+)$`)

	max := 0
	for _, doc := range existing {
		if doc.Type != t {
			continue
		}
		m := pattern.FindStringSubmatch(doc.Number)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > max {
			max = n
		}
	}

	return prefix + strconv.Itoa(max+1)
}
