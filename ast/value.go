package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueKind tags the four closed alternatives a Value may hold.
type ValueKind int

const (
	ValueNil ValueKind = iota
	ValueBoolean
	ValueNumber
	ValueString
)

// Value is the runtime-polymorphic datum produced by evaluation and
// stored in environments. At most one of Bool/Num/Str is meaningful
// (none for Nil), selected by Kind.
type Value struct {
	Kind ValueKind
	Bool bool
	Num  float64
	Str  string
}

var Nil = Value{Kind: ValueNil}

func Bool(b bool) Value      { return Value{Kind: ValueBoolean, Bool: b} }
func Number(n float64) Value { return Value{Kind: ValueNumber, Num: n} }
func String(s string) Value  { return Value{Kind: ValueString, Str: s} }

// Truthy reports the boolean projection used by conditions: only Nil
// and boolean false are falsy.
func (v Value) Truthy() bool {
	switch v.Kind {
	case ValueNil:
		return false
	case ValueBoolean:
		return v.Bool
	default:
		return true
	}
}

// Equal implements the language's structural, non-coercing equality:
// Nil equals only Nil, cross-type comparisons are false (never an
// error), and same-type comparisons use the natural Go comparison.
func (v Value) Equal(other Value) bool {
	if v.Kind == ValueNil || other.Kind == ValueNil {
		return v.Kind == ValueNil && other.Kind == ValueNil
	}
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case ValueBoolean:
		return v.Bool == other.Bool
	case ValueNumber:
		return v.Num == other.Num
	case ValueString:
		return v.Str == other.Str
	default:
		return false
	}
}

// Render formats v the way a print statement does: Nil as "none",
// integer-valued numbers without a trailing ".0", everything else via
// its natural text form.
func (v Value) Render() string {
	switch v.Kind {
	case ValueNil:
		return "none"
	case ValueBoolean:
		if v.Bool {
			return "true"
		}
		return "false"
	case ValueString:
		return v.Str
	case ValueNumber:
		text := strconv.FormatFloat(v.Num, 'f', -1, 64)
		return strings.TrimSuffix(text, ".0")
	default:
		return fmt.Sprintf("%v", v)
	}
}
