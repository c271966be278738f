package dca

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
)

// DefaultCurrency is the reporting currency of scenarios that do not set one.
const DefaultCurrency = "USD"

// DecodeScenario reads a JSON scenario.
//
// Unknown fields are rejected. A scenario without "id" gets one derived from
// its content, so decoding the same file twice gives the same id.
func DecodeScenario(r io.Reader) (ScenarioConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return ScenarioConfig{}, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var c ScenarioConfig
	if err := dec.Decode(&c); err != nil {
		return ScenarioConfig{}, fmt.Errorf("invalid scenario: %w", err)
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.NewSHA1(uuid.NameSpaceOID, data)
	}
	if c.Currency == "" {
		c.Currency = DefaultCurrency
	}
	return c, nil
}

// EncodeScenario writes c as indented JSON.
func EncodeScenario(w io.Writer, c ScenarioConfig) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// LoadScenario reads a JSON scenario file.
func LoadScenario(filename string) (ScenarioConfig, error) {
	f, err := os.Open(filename)
	if err != nil {
		return ScenarioConfig{}, err
	}
	defer f.Close()
	c, err := DecodeScenario(f)
	if err != nil {
		return ScenarioConfig{}, fmt.Errorf("%s: %w", filename, err)
	}
	return c, nil
}
