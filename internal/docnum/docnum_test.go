package docnum

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var june2025 = time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

func TestPrefixFiscalYear(t *testing.T) {
	assert.Equal(t, "NFI/2025-26/", Prefix(TypeTaxInvoice, june2025))
	assert.Equal(t, "NFI/PI/2526/", Prefix(TypeProforma, june2025))
	assert.Equal(t, "QT/2526/", Prefix(TypeQuotation, june2025))

	// January falls in the fiscal year that started the previous April.
	jan := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "NFI/2025-26/", Prefix(TypeTaxInvoice, jan))

	apr := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "NFI/2026-27/", Prefix(TypeTaxInvoice, apr))
}

func TestNextEmptyHistory(t *testing.T) {
	assert.Equal(t, "NFI/2025-26/1", Next(nil, TypeTaxInvoice, june2025))
}

func TestNextSkipsGaps(t *testing.T) {
	existing := []Document{
		{Type: TypeTaxInvoice, Number: "NFI/2025-26/1"},
		{Type: TypeTaxInvoice, Number: "NFI/2025-26/2"},
		{Type: TypeTaxInvoice, Number: "NFI/2025-26/4"},
		{Type: TypeTaxInvoice, Number: "NFI/2025-26/5"},
	}
	// Max-seen plus one, never gap fill.
	assert.Equal(t, "NFI/2025-26/6", Next(existing, TypeTaxInvoice, june2025))
}

func TestNextIgnoresOtherTypesAndForeignNumbers(t *testing.T) {
	existing := []Document{
		{Type: TypeQuotation, Number: "QT/2526/9"},
		{Type: TypeTaxInvoice, Number: "INV-OLD-7"},
		{Type: TypeTaxInvoice, Number: "NFI/2024-25/12"},
		{Type: TypeTaxInvoice, Number: "NFI/2025-26/3"},
	}
	assert.Equal(t, "NFI/2025-26/4", Next(existing, TypeTaxInvoice, june2025))
	assert.Equal(t, "QT/2526/10", Next(existing, TypeQuotation, june2025))
	assert.Equal(t, "NFI/PI/2526/1", Next(existing, TypeProforma, june2025))
}

func TestTypeValid(t *testing.T) {
	assert.True(t, TypeTaxInvoice.Valid())
	assert.True(t, TypeProforma.Valid())
	assert.True(t, TypeQuotation.Valid())
	assert.False(t, Type("Credit Note").Valid())
}
