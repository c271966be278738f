package dca

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// AssetAllocation directs a fraction of every contribution to one asset.
type AssetAllocation struct {
	Symbol  string          `json:"assetSymbol"`
	Weight  decimal.Decimal `json:"weight"` // in [0, 1]
	Enabled bool            `json:"isEnabled"`
}

// Allocation returns an enabled allocation.
func Allocation[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](symbol string, weight T) AssetAllocation {
	return AssetAllocation{Symbol: symbol, Weight: newDecimal(weight), Enabled: true}
}

// WeightPercent returns the weight as a percentage.
func (a AssetAllocation) WeightPercent() decimal.Decimal { return a.Weight.Mul(hundred) }

// funded reports whether contributions are routed to this allocation.
func (a AssetAllocation) funded() bool { return a.Enabled && a.Weight.IsPositive() }

// UnmarshalJSON reads an allocation, "isEnabled" defaults to true when absent.
func (a *AssetAllocation) UnmarshalJSON(b []byte) error {
	var j struct {
		Symbol  string          `json:"assetSymbol"`
		Weight  decimal.Decimal `json:"weight"`
		Enabled *bool           `json:"isEnabled"`
	}
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	*a = AssetAllocation{Symbol: j.Symbol, Weight: j.Weight, Enabled: j.Enabled == nil || *j.Enabled}
	return nil
}

// weightTolerance is the accepted distance, in percent, between the weights sum and 100%.
var weightTolerance = decimal.RequireFromString("0.05")

// TotalWeightPercent returns the sum of all allocation weights, in percent.
func (c *ScenarioConfig) TotalWeightPercent() decimal.Decimal {
	total := decimal.Zero
	for _, a := range c.Allocations {
		total = total.Add(a.WeightPercent())
	}
	return total
}

// enabledWeightPercent returns the sum of enabled allocation weights, in percent.
func (c *ScenarioConfig) enabledWeightPercent() decimal.Decimal {
	total := decimal.Zero
	for _, a := range c.Allocations {
		if a.Enabled {
			total = total.Add(a.WeightPercent())
		}
	}
	return total
}

// IsValidWeightDistribution reports whether the weights sum to 100% within tolerance.
func (c *ScenarioConfig) IsValidWeightDistribution() bool {
	return c.TotalWeightPercent().Sub(hundred).Abs().LessThanOrEqual(weightTolerance)
}

// index returns the position of symbol in the allocations, or -1.
func (c *ScenarioConfig) index(symbol string) int {
	for i, a := range c.Allocations {
		if a.Symbol == symbol {
			return i
		}
	}
	return -1
}

// AddAsset appends an enabled allocation, or updates the weight if symbol is already allocated.
func (c *ScenarioConfig) AddAsset(symbol string, weight decimal.Decimal) {
	if i := c.index(symbol); i >= 0 {
		c.Allocations[i].Weight = weight
		return
	}
	c.Allocations = append(c.Allocations, AssetAllocation{Symbol: symbol, Weight: weight, Enabled: true})
}

// RemoveAsset removes every allocation to symbol.
func (c *ScenarioConfig) RemoveAsset(symbol string) {
	kept := c.Allocations[:0]
	for _, a := range c.Allocations {
		if a.Symbol != symbol {
			kept = append(kept, a)
		}
	}
	c.Allocations = kept
}

// UpdateAssetWeight sets the weight of symbol, it returns false if symbol is not allocated.
func (c *ScenarioConfig) UpdateAssetWeight(symbol string, weight decimal.Decimal) bool {
	i := c.index(symbol)
	if i < 0 {
		return false
	}
	c.Allocations[i].Weight = weight
	return true
}

// ResetWeights sets every weight to zero.
func (c *ScenarioConfig) ResetWeights() {
	for i := range c.Allocations {
		c.Allocations[i].Weight = decimal.Zero
	}
}

// DistributeWeightsEqually gives every allocation the same weight.
func (c *ScenarioConfig) DistributeWeightsEqually() {
	if len(c.Allocations) == 0 {
		return
	}
	base := round4(div(one, D(len(c.Allocations))))
	for i := range c.Allocations {
		c.Allocations[i].Weight = base
	}
	c.NormalizeWeights()
}

// FillRemainingEvenly spreads what is missing to reach 100% evenly on every allocation.
func (c *ScenarioConfig) FillRemainingEvenly() {
	if len(c.Allocations) == 0 {
		return
	}
	total := decimal.Zero
	for _, a := range c.Allocations {
		total = total.Add(maxZero(a.Weight))
	}
	remaining := round4(one.Sub(total))
	if total.GreaterThanOrEqual(one) || !remaining.IsPositive() {
		c.NormalizeWeights()
		return
	}
	share := round4(div(remaining, D(len(c.Allocations))))
	for i, a := range c.Allocations {
		c.Allocations[i].Weight = round4(maxZero(a.Weight).Add(share))
	}
	c.NormalizeWeights()
}

// NormalizeWeights rescales the weights so that they sum to exactly 1 with 4 decimals.
//
// Negative weights count as zero. The last allocation takes the remainder, and
// any residual rounding error is absorbed by the largest weight. When every
// weight is zero, the first allocation gets everything.
func (c *ScenarioConfig) NormalizeWeights() {
	n := len(c.Allocations)
	switch n {
	case 0:
		return
	case 1:
		c.Allocations[0].Weight = one
		return
	}

	total := decimal.Zero
	for _, a := range c.Allocations {
		total = total.Add(maxZero(a.Weight))
	}
	if !total.IsPositive() {
		for i := range c.Allocations {
			c.Allocations[i].Weight = decimal.Zero
		}
		c.Allocations[0].Weight = one
		return
	}

	weights := make([]decimal.Decimal, n)
	cumulative := decimal.Zero
	for i, a := range c.Allocations[:n-1] {
		weights[i] = round4(div(maxZero(a.Weight), total))
		cumulative = cumulative.Add(weights[i])
	}
	weights[n-1] = maxZero(round4(one.Sub(cumulative)))

	sum := decimal.Sum(decimal.Zero, weights...)
	if !sum.Equal(one) {
		largest := 0
		for i, w := range weights {
			if w.GreaterThan(weights[largest]) {
				largest = i
			}
		}
		weights[largest] = round4(weights[largest].Add(one.Sub(sum)))
	}
	for i := range c.Allocations {
		c.Allocations[i].Weight = maxZero(weights[i])
	}
}
