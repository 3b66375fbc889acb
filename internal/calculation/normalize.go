package calculation

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
)

// SpendDomain names a vocabulary of range keys used by one form question.
type SpendDomain string

const (
	SpendFuel          SpendDomain = "fuel"
	SpendEnergy        SpendDomain = "energy"
	SpendSubscriptions SpendDomain = "subscriptions"
	SpendGroceries     SpendDomain = "groceries"
	SpendInsurance     SpendDomain = "insurance"
	SpendAlcohol       SpendDomain = "alcohol"
	SpendTobacco       SpendDomain = "tobacco"
	SpendTrain         SpendDomain = "train"
	SpendBus           SpendDomain = "bus"
	SpendTaxi          SpendDomain = "taxi"
	SpendParking       SpendDomain = "parking"
)

// DefaultIncome is assumed when no usable income is supplied.
var DefaultIncome = decimal.NewFromInt(30000)

var incomeBrackets = map[string]int64{
	"under15000":     12000,
	"15000to25000":   20000,
	"25000to35000":   30000,
	"35000to50000":   42500,
	"50000to100000":  75000,
	"100000to150000": 125000,
	"over150000":     175000,
}

var (
	subscriptionRanges = map[string]int64{
		"under10": 5,
		"10to30":  20,
		"30to50":  40,
		"50to100": 75,
		"over100": 125,
	}
	utilityRanges = map[string]int64{
		"under50":  25,
		"50to100":  75,
		"100to150": 125,
		"150to200": 175,
		"200to300": 250,
		"over300":  350,
	}
	fuelRanges = map[string]int64{
		"under50":  25,
		"50to100":  75,
		"100to150": 125,
		"100to200": 150,
		"150to200": 175,
		"200to300": 250,
		"over300":  350,
	}
	groceryRanges = map[string]int64{
		"under100": 75,
		"100to200": 150,
		"200to300": 250,
		"300to500": 400,
		"over500":  600,
	}
	smallSpendRanges = map[string]int64{
		"under20": 10,
		"20to50":  35,
		"50to100": 75,
		"over100": 125,
	}
	trainRanges = map[string]int64{
		"none":     0,
		"under50":  25,
		"50to100":  75,
		"100to200": 150,
		"200to300": 250,
		"300to500": 400,
		"over500":  600,
	}
	localTravelRanges = map[string]int64{
		"none":     0,
		"under20":  10,
		"20to50":   35,
		"50to100":  75,
		"100to200": 150,
		"over200":  250,
	}
)

var spendTables = map[SpendDomain]map[string]int64{
	SpendFuel:          fuelRanges,
	SpendEnergy:        utilityRanges,
	SpendSubscriptions: subscriptionRanges,
	SpendGroceries:     groceryRanges,
	SpendInsurance:     smallSpendRanges,
	SpendAlcohol:       smallSpendRanges,
	SpendTobacco:       smallSpendRanges,
	SpendTrain:         trainRanges,
	SpendBus:           localTravelRanges,
	SpendTaxi:          localTravelRanges,
	SpendParking:       localTravelRanges,
}

// legacySpendRanges merges the subscription, utility and grocery vocabularies
// into one table; on a key collision the later vocabulary wins.
var legacySpendRanges = func() map[string]int64 {
	merged := make(map[string]int64)
	for _, table := range []map[string]int64{subscriptionRanges, utilityRanges, groceryRanges} {
		for k, v := range table {
			merged[k] = v
		}
	}
	return merged
}()

// IncomeFromInput resolves an income answer. Numbers and numeric strings are
// used as-is; range keys map to bracket midpoints; anything else, including
// an empty answer, falls back to DefaultIncome.
func IncomeFromInput(value any) decimal.Decimal {
	switch v := value.(type) {
	case nil:
		return DefaultIncome
	case string:
		v = strings.TrimSpace(v)
		if v == "" {
			return DefaultIncome
		}
		if d, ok := domain.ParseNumber(v); ok {
			return d
		}
		if amount, ok := incomeBrackets[v]; ok {
			return decimal.NewFromInt(amount)
		}
		return DefaultIncome
	}
	if d, ok := domain.ParseNumber(value); ok && !d.IsZero() {
		return d
	}
	return DefaultIncome
}

// MonthlySpendFromRange maps a range key from any spend question to a
// representative monthly amount using the merged legacy vocabulary. Unknown
// keys yield zero. Calculators use SpendFromRange instead.
func MonthlySpendFromRange(key string) decimal.Decimal {
	return decimal.NewFromInt(legacySpendRanges[key])
}

// SpendFromRange maps a range key to a monthly amount using the vocabulary of
// one form question. Numeric answers pass through unchanged; unknown keys
// yield zero.
func SpendFromRange(vocab SpendDomain, value any) decimal.Decimal {
	if d, ok := domain.ParseNumber(value); ok {
		return positive(d)
	}
	key, _ := value.(string)
	return decimal.NewFromInt(spendTables[vocab][key])
}
