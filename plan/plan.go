// Package plan loads harness clock plans from HCL files. A plan names the
// source strategy and the clocks the harness must provide:
//
//	strategy = "absolute_freq"
//
//	clock "core" { frequency = "1GHz" }
//	clock "io"   { frequency = "500MHz" }
//
// Frequencies are written either as strings with a unit suffix or as bare
// numbers in hertz.
package plan

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/chiplab/harnessclock/harness"
	"github.com/chiplab/harnessclock/timing"
)

// ClockSpec is one clock block of a plan.
type ClockSpec struct {
	Name string
	Freq timing.Freq
}

// Plan is a decoded clock plan.
type Plan struct {
	Strategy string
	Clocks   []ClockSpec
}

var planSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "strategy", Required: true},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "clock", LabelNames: []string{"name"}},
	},
}

var clockSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "frequency", Required: true},
	},
}

// Load reads and decodes the plan file at path.
func Load(path string) (*Plan, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("plan: reading %s: %w", path, err)
	}

	return Decode(src, path)
}

// Decode parses HCL source into a Plan. filename is used in diagnostics.
func Decode(src []byte, filename string) (*Plan, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	content, diags := file.Body.Content(planSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	strategyVal, diags := content.Attributes["strategy"].Expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if strategyVal.Type() != cty.String {
		return nil, fmt.Errorf("plan: strategy must be a string, got %s",
			strategyVal.Type().FriendlyName())
	}

	decoded := &Plan{Strategy: strategyVal.AsString()}

	for _, block := range content.Blocks {
		name := block.Labels[0]

		blockContent, diags := block.Body.Content(clockSchema)
		if diags.HasErrors() {
			return nil, diags
		}

		freqVal, diags := blockContent.Attributes["frequency"].Expr.Value(nil)
		if diags.HasErrors() {
			return nil, diags
		}

		freq, err := freqFromCty(freqVal)
		if err != nil {
			return nil, fmt.Errorf("plan: clock %q: %w", name, err)
		}

		decoded.Clocks = append(decoded.Clocks, ClockSpec{
			Name: name,
			Freq: freq,
		})
	}

	return decoded, nil
}

func freqFromCty(v cty.Value) (timing.Freq, error) {
	switch v.Type() {
	case cty.String:
		return timing.ParseFreq(v.AsString())
	case cty.Number:
		// Float64 saturates to +Inf for literals beyond the float64 range.
		value, _ := v.AsBigFloat().Float64()
		if !timing.Freq(value).IsValid() {
			return 0, fmt.Errorf("%w: %g", timing.ErrBadFrequency, value)
		}
		return timing.Freq(value), nil
	default:
		return 0, fmt.Errorf("%w: frequency must be a string or a number",
			timing.ErrBadFrequency)
	}
}

// NewStrategy builds the source strategy the plan selects.
func (p *Plan) NewStrategy() (harness.Strategy, error) {
	return harness.NewStrategy(p.Strategy)
}

// Apply replays the plan's clock requests into the instantiator, in file
// order. A duplicate clock block with a conflicting frequency surfaces as
// the registry's configuration mismatch error.
func (p *Plan) Apply(inst *harness.Instantiator) error {
	for _, clock := range p.Clocks {
		if _, err := inst.RequestClockBundle(clock.Name, clock.Freq); err != nil {
			return fmt.Errorf("plan: requesting clock %q: %w", clock.Name, err)
		}
	}

	return nil
}
