package dca

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePrices(t *testing.T) {
	o := NewHistoryOracle()
	err := o.DecodePrices("prices.jsonl", strings.NewReader(`
{"date":"2024-01-02","symbol":"BTC","price":"42000.5"}
{"date":"2024-1-1","symbol":"BTC","price":41000}

{"date":"2024-01-01","symbol":"ETH","price":"2300"}
`))
	require.NoError(t, err)
	assert.Equal(t, 3, o.Len())
	p, ok := o.HistoricalPrice(day("2024-01-02"), "BTC")
	require.True(t, ok)
	assertDecimal(t, "price", "42000.5", p)
}

func TestDecodePricesErrors(t *testing.T) {
	tests := []struct {
		name, input, want string
	}{
		{"bad json", "{\"date\":\"2024-01-01\",\"symbol\":\"BTC\",\"price\":\"1\"}\n{oops}\n", "line 2"},
		{"missing symbol", `{"date":"2024-01-01","price":"1"}`, "missing symbol"},
		{"bad date", `{"date":"01/01/2024","symbol":"BTC","price":"1"}`, "invalid date"},
		{"missing price", `{"date":"2024-01-01","symbol":"BTC"}`, "non positive price"},
		{"zero price", "{\"date\":\"2024-01-01\",\"symbol\":\"BTC\",\"price\":\"1\"}\n{\"date\":\"2024-01-02\",\"symbol\":\"BTC\",\"price\":0}\n", "line 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewHistoryOracle().DecodePrices("prices.jsonl", strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), "prices.jsonl")
		})
	}
}

func TestDecodePricesCSV(t *testing.T) {
	o := NewHistoryOracle()
	err := o.DecodePricesCSV("prices.csv", strings.NewReader("date,symbol,price\n2024-01-01,BTC,41000\n2024-01-01, ETH ,2300.25\n"))
	require.NoError(t, err)
	p, ok := o.HistoricalPrice(day("2024-01-01"), "ETH")
	require.True(t, ok)
	assertDecimal(t, "price", "2300.25", p)

	err = NewHistoryOracle().DecodePricesCSV("prices.csv", strings.NewReader("date,symbol,price\n2024-01-01,BTC,abc\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	err = NewHistoryOracle().DecodePricesCSV("prices.csv", strings.NewReader("date,symbol,price\n2024-01-01,BTC,1\n2024-01-02,BTC,-3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), "non positive price")
}

func TestEncodePrices(t *testing.T) {
	o := NewHistoryOracle()
	o.SetPrice(day("2024-01-02"), "ETH", D(2))
	o.SetPrice(day("2024-01-01"), "BTC", D(1.5))

	var b bytes.Buffer
	require.NoError(t, o.EncodePrices(&b))
	assert.Equal(t, `{"date":"2024-01-01","symbol":"BTC","price":"1.5"}
{"date":"2024-01-02","symbol":"ETH","price":"2"}
`, b.String())

	b.Reset()
	require.NoError(t, o.EncodePricesCSV(&b))
	assert.Equal(t, "date,symbol,price\n2024-01-01,BTC,1.5\n2024-01-02,ETH,2\n", b.String())
}

func TestLoadPrices(t *testing.T) {
	dir := t.TempDir()
	csv := filepath.Join(dir, "btc.csv")
	jsonl := filepath.Join(dir, "eth.jsonl")
	require.NoError(t, os.WriteFile(csv, []byte("date,symbol,price\n2024-01-01,BTC,41000\n"), 0644))
	require.NoError(t, os.WriteFile(jsonl, []byte(`{"date":"2024-01-01","symbol":"ETH","price":"2300"}`+"\n"), 0644))

	o, err := LoadPrices(csv, jsonl)
	require.NoError(t, err)
	assert.Equal(t, []string{"BTC", "ETH"}, o.AvailableSymbols())

	_, err = LoadPrices(csv, filepath.Join(dir, "missing.csv"), filepath.Join(dir, "other.jsonl"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.csv")
	assert.Contains(t, err.Error(), "other.jsonl")
}

const scenarioJSON = `{
  "name": "btc-eth",
  "startDate": "2024-01-01",
  "endDate": "2024-03-01",
  "initialInvestment": 0,
  "periodicInvestment": "1000",
  "intervalUnit": "month",
  "frequency": 1,
  "customScheduleDays": [1],
  "slippage": 0,
  "feeRate": 0,
  "allocations": [
    {"assetSymbol": "BTC", "weight": 0.6},
    {"assetSymbol": "ETH", "weight": 0.4}
  ]
}`

func TestDecodeScenario(t *testing.T) {
	c, err := DecodeScenario(strings.NewReader(scenarioJSON))
	require.NoError(t, err)
	assert.Equal(t, "btc-eth", c.Name)
	assert.Equal(t, Month, c.Interval)
	assert.Equal(t, DefaultCurrency, c.Currency)
	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.NoError(t, c.Validate())

	again, err := DecodeScenario(strings.NewReader(scenarioJSON))
	require.NoError(t, err)
	assert.Equal(t, c.ID, again.ID, "ids derive from the content")

	var b bytes.Buffer
	require.NoError(t, EncodeScenario(&b, c))
	assert.Contains(t, b.String(), `"intervalUnit": "month"`)
	assert.Contains(t, b.String(), `"id": "`+c.ID.String()+`"`)
}

func TestDecodeScenarioErrors(t *testing.T) {
	for name, input := range map[string]string{
		"unknown field":    `{"monthlyInvestment": 10}`,
		"unknown interval": `{"intervalUnit": "year"}`,
		"bad date":         `{"startDate": "tomorrow"}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeScenario(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}
