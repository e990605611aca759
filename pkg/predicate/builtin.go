package predicate

import "reflect"

// Not negates an expected side. If x is a predicate the result
// is its negation; otherwise the result is "not deep-equal to
// x".
func Not(x any) Predicate {
	if p, ok := asPredicate(x); ok {
		return func(value any) bool {
			return !p(value)
		}
	}
	return func(value any) bool {
		return !reflect.DeepEqual(x, value)
	}
}

// NotNil passes for any value that is not nil, including typed
// nil pointers, maps, slices, channels, and functions.
func NotNil(value any) bool {
	if value == nil {
		return false
	}
	return !isNilValue(value)
}

// Truthy passes unless the value is nil or the boolean false.
func Truthy(value any) bool {
	if value == nil || isNilValue(value) {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}

// Falsy is the negation of Truthy.
func Falsy(value any) bool {
	return !Truthy(value)
}

// Identical returns a predicate testing identity with want:
// pointer-like values compare by referent, comparable values
// by ==. Uncomparable non-pointer values are never identical.
func Identical(want any) Predicate {
	return func(got any) bool {
		wv := reflect.ValueOf(want)
		gv := reflect.ValueOf(got)
		if !wv.IsValid() || !gv.IsValid() {
			return want == got
		}
		if wv.Kind() != gv.Kind() {
			return false
		}

		switch wv.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Chan,
			reflect.Func, reflect.UnsafePointer:
			return wv.Pointer() == gv.Pointer()
		case reflect.Slice:
			return wv.Pointer() == gv.Pointer() &&
				wv.Len() == gv.Len()
		}

		if wv.Comparable() && gv.Comparable() {
			return want == got
		}
		return false
	}
}

// isNilValue reports whether value holds a typed nil.
func isNilValue(value any) bool {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}
