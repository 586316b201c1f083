package yamlconfig

import (
	"fmt"
	"math"

	"github.com/specialistvlad/usagesearch/internal/model"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
	"gopkg.in/yaml.v3"
)

// orderedMap reads a mapping node into options, keeping key order. A zero
// node (field omitted) or an explicit null yields no options.
func orderedMap(node *yaml.Node, field string) ([]model.Option, error) {
	if node.Kind == 0 || isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: %s must be a mapping", node.Line, field)
	}

	options := make([]model.Option, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: %s keys must be scalars", key.Line, field)
		}
		val, err := toCty(value)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s %q: %w", value.Line, field, key.Value, err)
		}
		options = append(options, model.Option{Key: key.Value, Value: val})
	}
	return options, nil
}

// parameters reads a mapping node whose values must all be scalars.
func parameters(node *yaml.Node, field string) ([]model.Parameter, error) {
	options, err := orderedMap(node, field)
	if err != nil {
		return nil, err
	}
	params := make([]model.Parameter, 0, len(options))
	for _, opt := range options {
		if !opt.Value.IsNull() && !opt.Value.Type().IsPrimitiveType() {
			return nil, fmt.Errorf("%s %q must be a scalar, got %s", field, opt.Key, opt.Value.Type().FriendlyName())
		}
		params = append(params, model.Parameter{Name: opt.Key, Value: opt.String()})
	}
	return params, nil
}

// toCty converts a YAML node into a cty value. Sequences become tuples and
// mappings become objects.
func toCty(node *yaml.Node) (cty.Value, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return toCty(node.Alias)
	case yaml.SequenceNode:
		if len(node.Content) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, 0, len(node.Content))
		for _, c := range node.Content {
			v, err := toCty(c)
			if err != nil {
				return cty.NilVal, err
			}
			elems = append(elems, v)
		}
		return cty.TupleVal(elems), nil
	case yaml.MappingNode:
		attrs := make(map[string]cty.Value, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			v, err := toCty(node.Content[i+1])
			if err != nil {
				return cty.NilVal, err
			}
			attrs[node.Content[i].Value] = v
		}
		if len(attrs) == 0 {
			return cty.EmptyObjectVal, nil
		}
		return cty.ObjectVal(attrs), nil
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!null":
			return cty.NullVal(cty.DynamicPseudoType), nil
		case "!!int", "!!float", "!!bool":
			var raw any
			if err := node.Decode(&raw); err != nil {
				return cty.NilVal, err
			}
			if f, ok := raw.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
				return cty.StringVal(node.Value), nil
			}
			ty, err := gocty.ImpliedType(raw)
			if err != nil {
				return cty.NilVal, err
			}
			return gocty.ToCtyValue(raw, ty)
		default:
			// Strings, timestamps and custom tags keep their literal text.
			return cty.StringVal(node.Value), nil
		}
	default:
		return cty.NilVal, fmt.Errorf("unsupported YAML node kind %d", node.Kind)
	}
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}
