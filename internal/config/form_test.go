package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlForm = `income: 45000
employmentStatus: employed
councilTaxBand: C
vehicles:
  - vehicleType: car
    fuelType: petrol
    monthlyFuelSpend: 120
flights:
  - flightType: shortHaul
    flightsPerYear: 2
    isReturn: true
`

func TestLoadForm_YAML(t *testing.T) {
	path := writeTemp(t, "form.yaml", yamlForm)

	form, err := LoadForm(path)
	require.NoError(t, err)

	assert.Equal(t, "45000", form.String("income"))
	assert.True(t, form.Is("employmentStatus", "employed"))
	assert.Equal(t, "C", form.String("councilTaxBand"))

	vehicles := form.Records("vehicles")
	require.Len(t, vehicles, 1)
	assert.Equal(t, "petrol", vehicles[0].String("fuelType"))
	assert.Equal(t, 2, form.Records("flights")[0].Int("flightsPerYear", 0))
}

func TestLoadForm_JSON(t *testing.T) {
	path := writeTemp(t, "form.json", `{"income": 30000.50, "studentLoan": "plan2", "tvLicence": "yes"}`)

	form, err := LoadForm(path)
	require.NoError(t, err)

	assert.Equal(t, "30000.5", form.Decimal("income").String())
	assert.True(t, form.Has("studentLoan"))
	assert.True(t, form.Bool("tvLicence"))
}

func TestLoadForm_SniffsUnknownExtension(t *testing.T) {
	jsonPath := writeTemp(t, "form.txt", `  {"incomeRange": "30to40"}`)
	form, err := LoadForm(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "30to40", form.String("incomeRange"))

	yamlPath := writeTemp(t, "form.in", "incomeRange: 60to80\n")
	form, err = LoadForm(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "60to80", form.String("incomeRange"))
}

func TestLoadForm_Errors(t *testing.T) {
	_, err := LoadForm("nonexistent_form.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")

	_, err = LoadForm(writeTemp(t, "bad.json", `{"income": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse JSON")

	_, err = LoadForm(writeTemp(t, "bad.yaml", "income: [1, 2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")

	_, err = LoadForm(writeTemp(t, "empty.yaml", ""))
	assert.ErrorIs(t, err, ErrEmptyForm)
}

func TestDecodeFormJSON(t *testing.T) {
	form, err := DecodeFormJSON(strings.NewReader(`{"income": 123456789012345678, "housingStatus": "rent"}`))
	require.NoError(t, err)
	assert.Equal(t, "123456789012345678", form.Decimal("income").String())
	assert.True(t, form.Is("housingStatus", "rent"))

	_, err = DecodeFormJSON(strings.NewReader(`{}`))
	assert.ErrorIs(t, err, ErrEmptyForm)

	_, err = DecodeFormJSON(strings.NewReader(`[1, 2]`))
	assert.Error(t, err)
}
