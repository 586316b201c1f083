package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/usagesearch/internal/model"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// isAbsent reports whether an optional expression was omitted or set to null.
// gohcl fills missing optional expressions with a static null value.
func isAbsent(expr hcl.Expression) (bool, hcl.Diagnostics) {
	if expr == nil {
		return true, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return false, diags
	}
	return val.IsNull(), nil
}

// evalOrderedMap evaluates a map literal and keeps its declared key order,
// which a plain cty object value would lose.
func evalOrderedMap(expr hcl.Expression) ([]model.Option, hcl.Diagnostics) {
	absent, diags := isAbsent(expr)
	if diags.HasErrors() || absent {
		return nil, diags
	}

	pairs, diags := hcl.ExprMap(expr)
	if diags.HasErrors() {
		return nil, diags
	}

	options := make([]model.Option, 0, len(pairs))
	for _, pair := range pairs {
		keyVal, keyDiags := pair.Key.Value(nil)
		diags = append(diags, keyDiags...)
		if keyDiags.HasErrors() {
			continue
		}
		keyVal, err := convert.Convert(keyVal, cty.String)
		if err != nil || keyVal.IsNull() || !keyVal.IsKnown() {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid map key",
				Detail:   "Map keys must be strings.",
				Subject:  pair.Key.Range().Ptr(),
			})
			continue
		}

		val, valDiags := pair.Value.Value(nil)
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() {
			continue
		}
		options = append(options, model.Option{Key: keyVal.AsString(), Value: val})
	}
	return options, diags
}

// evalParameters evaluates a parameter map. Every value must be representable
// as a string.
func evalParameters(expr hcl.Expression) ([]model.Parameter, hcl.Diagnostics) {
	options, diags := evalOrderedMap(expr)
	if diags.HasErrors() {
		return nil, diags
	}

	params := make([]model.Parameter, 0, len(options))
	for _, opt := range options {
		if !opt.Value.IsNull() && !opt.Value.Type().IsPrimitiveType() {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid parameter value",
				Detail:   fmt.Sprintf("Parameter %q must be a string, number or bool, got %s.", opt.Key, opt.Value.Type().FriendlyName()),
				Subject:  expr.Range().Ptr(),
			})
			continue
		}
		params = append(params, model.Parameter{Name: opt.Key, Value: opt.String()})
	}
	return params, diags
}
