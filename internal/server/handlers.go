package server

import (
	"net/http"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/taxfootprint/footprint-calculator/internal/calculation"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
	"github.com/taxfootprint/footprint-calculator/internal/output"
)

// Health reports liveness.
func (h *handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "tax_year": h.engine.Rates.TaxYear})
}

// Footprint computes a full footprint. With ?format= the report is rendered by
// the named formatter instead of returned as JSON.
func (h *handler) Footprint(w http.ResponseWriter, r *http.Request) {
	form, err := decodeForm(w, r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	report := output.NewReport(h.engine, form)
	h.log.WithFields(logrus.Fields{
		"request_id": RequestIDFromContext(r.Context()),
		"income":     report.Footprint.AnnualIncome.String(),
		"total":      report.Footprint.TotalAnnualTax.String(),
	}).Debug("footprint calculated")

	format := r.URL.Query().Get("format")
	if format == "" || output.NormalizeFormatName(format) == "json" {
		writeJSON(w, http.StatusOK, report)
		return
	}

	f, err := output.LookupFormatter(format)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	body, err := f.Format(report)
	if err != nil {
		h.log.WithError(err).Error("failed to render report")
		writeError(w, r, http.StatusInternalServerError, "failed to render report")
		return
	}
	w.Header().Set("Content-Type", contentTypeFor(f.Name()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func contentTypeFor(format string) string {
	switch format {
	case "html":
		return "text/html; charset=utf-8"
	case "csv", "detailed-csv":
		return "text/csv; charset=utf-8"
	case "markdown":
		return "text/markdown; charset=utf-8"
	}
	return "text/plain; charset=utf-8"
}

// LiveResponse pairs the live estimate with its one-line summary.
type LiveResponse struct {
	Result  *domain.LiveResult  `json:"result"`
	Summary domain.DisplayValue `json:"summary"`
}

// Live computes the quick estimate shown while the questionnaire is filled in.
func (h *handler) Live(w http.ResponseWriter, r *http.Request) {
	form, err := decodeForm(w, r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, LiveResponse{
		Result:  h.engine.LiveTaxPercentage(form),
		Summary: h.engine.LiveTaxDisplay(form),
	})
}

// Display evaluates every display binding against the form, or only those
// named by repeated ?key= parameters.
func (h *handler) Display(w http.ResponseWriter, r *http.Request) {
	form, err := decodeForm(w, r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	bindings := h.engine.DisplayBindings()
	keys := r.URL.Query()["key"]
	if len(keys) == 0 {
		for k := range bindings {
			keys = append(keys, k)
		}
		sort.Strings(keys)
	}

	values := make([]domain.DisplayValue, 0, len(keys))
	for _, k := range keys {
		fn, ok := bindings[k]
		if !ok {
			writeError(w, r, http.StatusBadRequest, "unknown display key: "+k)
			return
		}
		values = append(values, fn(form))
	}
	writeJSON(w, http.StatusOK, values)
}

// IncomeFromHours converts hoursPerWeek and hourlyRate to pay.
func (h *handler) IncomeFromHours(w http.ResponseWriter, r *http.Request) {
	form, err := decodeForm(w, r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, calculation.IncomeFromHours(form.Decimal("hoursPerWeek"), form.Decimal("hourlyRate")))
}

// BusinessTaxes is the response of the business endpoint.
type BusinessTaxes struct {
	CorporationTax      decimal.Decimal `json:"corporation_tax"`
	GamingDuty          decimal.Decimal `json:"gaming_duty"`
	BettingDuty         decimal.Decimal `json:"betting_duty"`
	PlasticPackagingTax decimal.Decimal `json:"plastic_packaging_tax"`
	LandfillTax         decimal.Decimal `json:"landfill_tax"`
	Total               decimal.Decimal `json:"total"`
}

// Business prices the taxes a business pays on its profits and activities.
func (h *handler) Business(w http.ResponseWriter, r *http.Request) {
	form, err := decodeForm(w, r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	b := h.engine.Business
	res := BusinessTaxes{
		CorporationTax:      b.CorporationTax(form.Decimal("profits")).Round(2),
		GamingDuty:          b.GamingDuty(form.Decimal("gamingYield")).Round(2),
		BettingDuty:         b.BettingDuty(form.Decimal("bettingProfits"), form.Bool("remoteBetting")).Round(2),
		PlasticPackagingTax: b.PlasticPackagingTax(form.Decimal("plasticTonnes")).Round(2),
		LandfillTax:         b.LandfillTax(form.Decimal("landfillTonnes"), form.Bool("landfillLowerRate")).Round(2),
	}
	res.Total = decimal.Sum(res.CorporationTax, res.GamingDuty, res.BettingDuty, res.PlasticPackagingTax, res.LandfillTax)
	writeJSON(w, http.StatusOK, res)
}

// InheritanceResponse is the response of the inheritance endpoint.
type InheritanceResponse struct {
	EstateValue    decimal.Decimal `json:"estate_value"`
	InheritanceTax decimal.Decimal `json:"inheritance_tax"`
}

// Inheritance prices inheritance tax on an estate.
func (h *handler) Inheritance(w http.ResponseWriter, r *http.Request) {
	form, err := decodeForm(w, r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	estate := form.Decimal("estateValue")
	tax := h.engine.InheritanceTax.Calculate(estate, form.Bool("includesMainResidence"), form.Bool("toDirectDescendants"))
	writeJSON(w, http.StatusOK, InheritanceResponse{EstateValue: estate, InheritanceTax: tax.Round(2)})
}

// Rates returns the rate table the engine was built with.
func (h *handler) Rates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.Rates)
}

// Formats lists the report formats accepted by ?format=.
func (h *handler) Formats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"formats": output.AvailableFormatterNames(),
		"aliases": output.AvailableFormatAliases(),
	})
}

func (h *handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found")
}

func (h *handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}
