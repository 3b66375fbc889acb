package domain

import (
	"sort"

	json "github.com/goccy/go-json"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Breakdown keys used by the footprint calculation.
const (
	KeyIncomeTax              = "incomeTax"
	KeyNationalInsurance      = "nationalInsurance"
	KeyStudentLoan            = "studentLoan"
	KeyCouncilTax             = "councilTax"
	KeyVAT                    = "vat"
	KeyTransport              = "transport"
	KeyTVLicence              = "tvLicense"
	KeyAlcoholTobaccoDuty     = "alcoholTobaccoDuty"
	KeyInsurancePremiumTax    = "insurancePremiumTax"
	KeyLandlordTaxPassthrough = "landlordTaxPassthrough"
	KeyCapitalGainsTax        = "capitalGainsTax"
	KeyDividendTax            = "dividendTax"
)

// BreakdownOrder is the presentation order of footprint breakdown keys.
var BreakdownOrder = []string{
	KeyIncomeTax,
	KeyNationalInsurance,
	KeyStudentLoan,
	KeyCouncilTax,
	KeyVAT,
	KeyTransport,
	KeyTVLicence,
	KeyAlcoholTobaccoDuty,
	KeyInsurancePremiumTax,
	KeyLandlordTaxPassthrough,
	KeyCapitalGainsTax,
	KeyDividendTax,
}

// BreakdownEntry is one line of a tax breakdown. The set of implementations is
// closed: DirectEntry, IndirectEntry and MixedEntry.
type BreakdownEntry interface {
	Kind() TaxType
	Total() decimal.Decimal
	// Split returns the portions of Total that are direct and indirect.
	Split() (direct, indirect decimal.Decimal)
	breakdownEntry()
}

// DirectEntry is a tax paid straight to the state.
type DirectEntry struct {
	Amount decimal.Decimal
}

func (DirectEntry) Kind() TaxType { return TaxTypeDirect }

func (e DirectEntry) Total() decimal.Decimal { return e.Amount }

func (e DirectEntry) Split() (decimal.Decimal, decimal.Decimal) {
	return e.Amount, decimal.Zero
}

func (DirectEntry) breakdownEntry() {}

// IndirectEntry is a tax embedded in the price of goods or services.
type IndirectEntry struct {
	Amount decimal.Decimal
}

func (IndirectEntry) Kind() TaxType { return TaxTypeIndirect }

func (e IndirectEntry) Total() decimal.Decimal { return e.Amount }

func (e IndirectEntry) Split() (decimal.Decimal, decimal.Decimal) {
	return decimal.Zero, e.Amount
}

func (IndirectEntry) breakdownEntry() {}

// MixedEntry carries both direct and indirect portions; its total is always
// their sum. Transport keeps the detail it was derived from, when there is one.
type MixedEntry struct {
	DirectAmount   decimal.Decimal
	IndirectAmount decimal.Decimal
	Transport      *TransportTaxes
}

func (MixedEntry) Kind() TaxType { return TaxTypeMixed }

func (e MixedEntry) Total() decimal.Decimal {
	return e.DirectAmount.Add(e.IndirectAmount)
}

func (e MixedEntry) Split() (decimal.Decimal, decimal.Decimal) {
	return e.DirectAmount, e.IndirectAmount
}

func (MixedEntry) breakdownEntry() {}

type entryJSON struct {
	Amount         decimal.Decimal  `json:"amount"`
	Type           TaxType          `json:"type"`
	DirectAmount   *decimal.Decimal `json:"direct_amount,omitempty"`
	IndirectAmount *decimal.Decimal `json:"indirect_amount,omitempty"`
	Breakdown      *TransportTaxes  `json:"breakdown,omitempty"`
}

func (e DirectEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(entryJSON{Amount: e.Amount, Type: TaxTypeDirect})
}

func (e IndirectEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(entryJSON{Amount: e.Amount, Type: TaxTypeIndirect})
}

func (e MixedEntry) MarshalJSON() ([]byte, error) {
	direct, indirect := e.DirectAmount, e.IndirectAmount
	return json.Marshal(entryJSON{
		Amount:         e.Total(),
		Type:           TaxTypeMixed,
		DirectAmount:   &direct,
		IndirectAmount: &indirect,
		Breakdown:      e.Transport,
	})
}

// NewEntry builds a single-kind entry from a rate record's type tag.
func NewEntry(kind TaxType, amount decimal.Decimal) BreakdownEntry {
	if kind == TaxTypeIndirect {
		return IndirectEntry{Amount: amount}
	}
	return DirectEntry{Amount: amount}
}

// TaxBreakdown maps breakdown keys to entries.
type TaxBreakdown map[string]BreakdownEntry

// Keys returns the breakdown keys in presentation order; unknown keys follow
// in lexical order.
func (b TaxBreakdown) Keys() []string {
	keys := lo.Filter(BreakdownOrder, func(k string, _ int) bool {
		_, ok := b[k]
		return ok
	})
	extra := lo.Filter(lo.Keys(b), func(k string, _ int) bool {
		return !lo.Contains(BreakdownOrder, k)
	})
	sort.Strings(extra)
	return append(keys, extra...)
}

// Total sums every entry.
func (b TaxBreakdown) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range b {
		total = total.Add(e.Total())
	}
	return total
}
