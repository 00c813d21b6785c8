/*
File    : golox/object/object.go
Package object is the runtime value domain the interpreter operates
on. Unlike the teacher package's GoMixObject (every value boxed behind
a tagged interface with GetType/ToString/ToObject), Lox values are
represented directly as Go's native nil, bool, float64, and string,
with Callable and *Instance covering functions, classes, and class
instances. This mirrors how the reference jlox implementation (see
original_source/) represents values as plain Object references — Lox's
value domain is small enough that a wrapper type per kind would only
add boilerplate, not clarity.

Stringify, IsTruthy, and IsEqual are the three value-domain operations
every other package needs, so they live here rather than duplicated in
interpreter and repl.
*/
package object

import (
	"strconv"
	"strings"
)

// IsTruthy applies Lox's truthiness rule: nil and false are falsy,
// everything else — including 0 and "" — is truthy.
func IsTruthy(v interface{}) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// IsEqual applies Lox's `==` rule: nil only equals nil, numbers and
// strings compare by value, and anything else (functions, classes,
// instances) compares by identity. There is no implicit numeric/string
// coercion.
func IsEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return a == b
	}
}

// Stringify renders a value the way `print` and the REPL do. Whole
// numbers print without a trailing ".0" (64 -> "64", not "64.0"),
// matching the jlox reference's Double-to-string trimming.
func Stringify(v interface{}) string {
	if v == nil {
		return "nil"
	}
	switch val := v.(type) {
	case bool:
		return strconv.FormatBool(val)
	case float64:
		text := strconv.FormatFloat(val, 'f', -1, 64)
		if strings.HasSuffix(text, ".0") {
			text = text[:len(text)-2]
		}
		return text
	case string:
		return val
	default:
		if s, ok := v.(interface{ String() string }); ok {
			return s.String()
		}
		return ""
	}
}
