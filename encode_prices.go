package dca

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/dca/date"
	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// Price files come in two flavours, both holding one quote per record:
//
//	JSONL: {"date":"2024-01-01","symbol":"BTC","price":"42000.5"}
//	CSV:   date,symbol,price
//
// Records can appear in any order; a later quote for the same day and symbol wins.

// jprice is a price record as read from a file.
type jprice struct {
	Date   date.Date       `json:"date"`
	Symbol string          `json:"symbol"`
	Price  decimal.Decimal `json:"price"`
}

// csvPrice is a price record as read by gocsv, parsed after reading for better error messages.
type csvPrice struct {
	Date   string `csv:"date"`
	Symbol string `csv:"symbol"`
	Price  string `csv:"price"`
}

// DecodePrices reads JSONL price records into o.
// filename is for error message only.
func (o *HistoryOracle) DecodePrices(filename string, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var p jprice
		if err := json.Unmarshal(line, &p); err != nil {
			return fmt.Errorf("format error in %q on line %d: %w", filename, n, err)
		}
		if p.Symbol == "" || p.Date.IsZero() {
			return fmt.Errorf("format error in %q on line %d: missing symbol or date", filename, n)
		}
		if !p.Price.IsPositive() {
			return fmt.Errorf("format error in %q on line %d: missing or non positive price", filename, n)
		}
		o.SetPrice(p.Date, p.Symbol, p.Price)
	}
	return scanner.Err()
}

// DecodePricesCSV reads CSV price records into o. The header line is required.
// filename is for error message only.
func (o *HistoryOracle) DecodePricesCSV(filename string, r io.Reader) error {
	var rows []csvPrice
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return fmt.Errorf("format error in %q: %w", filename, err)
	}
	for i, row := range rows {
		line := i + 2 // after the header
		on, err := date.Parse(strings.TrimSpace(row.Date))
		if err != nil {
			return fmt.Errorf("format error in %q on line %d: %w", filename, line, err)
		}
		price, err := decimal.NewFromString(strings.TrimSpace(row.Price))
		if err != nil {
			return fmt.Errorf("format error in %q on line %d: invalid price %q: %w", filename, line, row.Price, err)
		}
		if !price.IsPositive() {
			return fmt.Errorf("format error in %q on line %d: non positive price %s", filename, line, price)
		}
		symbol := strings.TrimSpace(row.Symbol)
		if symbol == "" {
			return fmt.Errorf("format error in %q on line %d: missing symbol", filename, line)
		}
		o.SetPrice(on, symbol, price)
	}
	return nil
}

// records returns every recorded price sorted by symbol then date.
func (o *HistoryOracle) records() []jprice {
	var all []jprice
	for _, symbol := range o.AvailableSymbols() {
		for on, price := range o.prices[symbol].Values() {
			all = append(all, jprice{Date: on, Symbol: symbol, Price: price})
		}
	}
	return all
}

// EncodePrices writes every recorded price as JSONL, sorted by symbol then date.
func (o *HistoryOracle) EncodePrices(w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, p := range o.records() {
		if err := enc.Encode(p); err != nil {
			return err
		}
	}
	return nil
}

// EncodePricesCSV writes every recorded price as CSV with a header, sorted by symbol then date.
func (o *HistoryOracle) EncodePricesCSV(w io.Writer) error {
	records := o.records()
	rows := make([]csvPrice, 0, len(records))
	for _, p := range records {
		rows = append(rows, csvPrice{Date: p.Date.String(), Symbol: p.Symbol, Price: p.Price.String()})
	}
	return gocsv.Marshal(rows, w)
}

// LoadPrices reads price files into a new oracle. Files ending in ".csv" are
// read as CSV, any other as JSONL. Every file is read, errors are joined.
func LoadPrices(filenames ...string) (*HistoryOracle, error) {
	o := NewHistoryOracle()
	var errs []error
	for _, filename := range filenames {
		errs = append(errs, o.loadFile(filename))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *HistoryOracle) loadFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		return o.DecodePricesCSV(filename, f)
	}
	return o.DecodePrices(filename, f)
}
