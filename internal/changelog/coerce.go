package changelog

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Stringify renders a field value in its canonical string form.
// nil, nil pointers and nil interfaces have no value and return nil.
//
// Numbers render without type information so that 5, int64(5), 5.0 and "5"
// all coerce to "5". Timestamps render as RFC3339Nano in UTC.
func Stringify(v any) *string {
	s, ok := coerce(v)
	if !ok {
		return nil
	}
	return &s
}

// MemberList renders relation member IDs as a sorted JSON array of strings.
// An empty relation renders as "[]".
func MemberList(ids []uuid.UUID) string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	slices.Sort(out)
	b, _ := json.Marshal(out) //nolint:errcheck // []string always marshals
	return string(b)
}

func coerce(v any) (string, bool) {
	if v == nil {
		return "", false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "", false
		}
		elem := rv.Elem().Interface()
		// String with a pointer receiver is only reachable through the pointer.
		if s, ok := v.(fmt.Stringer); ok {
			if _, elemOK := elem.(fmt.Stringer); !elemOK {
				return s.String(), true
			}
		}
		return coerce(elem)
	}

	switch x := v.(type) {
	case string:
		return x, true
	case []byte:
		return string(x), true
	case bool:
		return strconv.FormatBool(x), true
	case time.Time:
		return x.UTC().Format(time.RFC3339Nano), true
	case uuid.UUID:
		return x.String(), true
	case []uuid.UUID:
		return MemberList(x), true
	case json.RawMessage:
		return string(x), true
	}

	if s, ok := v.(fmt.Stringer); ok {
		return s.String(), true
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Slice, reflect.Array:
		return coerceList(rv), true
	case reflect.Map, reflect.Struct:
		if b, err := json.Marshal(v); err == nil {
			return string(b), true
		}
	}
	return fmt.Sprint(v), true
}

// coerceList renders every element with coerce and joins them as a JSON
// array, so nil and empty slices both become "[]".
func coerceList(rv reflect.Value) string {
	out := make([]*string, rv.Len())
	for i := range out {
		if s, ok := coerce(rv.Index(i).Interface()); ok {
			out[i] = &s
		}
	}
	b, _ := json.Marshal(out) //nolint:errcheck // []*string always marshals
	return string(b)
}
