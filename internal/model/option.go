// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Options keep the type their source gave them (a boolean "clean checkout"
// flag, a numeric timeout, a string branch filter). The search only ever sees
// their string form, so String is the single place that decides how a typed
// value is rendered.
package model

import (
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Option is a typed general or version-control setting of a build type,
// template or snapshot dependency.
type Option struct {
	Key   string
	Value cty.Value
}

// StringOption is a shorthand for an option holding a string value.
func StringOption(key, value string) Option {
	return Option{Key: key, Value: cty.StringVal(value)}
}

// String renders the option value. Null and unknown values render as the
// empty string; primitives use the cty string conversion; collections are
// rendered as JSON.
func (o Option) String() string {
	if o.Value == cty.NilVal {
		return ""
	}
	v, _ := o.Value.UnmarkDeep()
	if !v.IsWhollyKnown() || v.IsNull() {
		return ""
	}

	if v.Type() == cty.String {
		return v.AsString()
	}
	if v.Type().IsPrimitiveType() {
		sv, err := convert.Convert(v, cty.String)
		if err == nil {
			return sv.AsString()
		}
	}
	raw, err := ctyjson.Marshal(v, v.Type())
	if err != nil {
		return v.GoString()
	}
	return string(raw)
}
