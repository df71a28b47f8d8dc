package dialect

import (
	"encoding/hex"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// QuoteValue renders a scalar as a SQL literal.
//
// Text is the only kind that is quoted: it is escaped with escape and wrapped
// in double quotes. Every other kind is rendered as its direct textual
// representation (NULL, TRUE/FALSE, decimal numbers, X'..' for bytes).
// NaN and infinite floats have no SQL literal and render as NULL.
// time.Time values are treated as text in RFC 3339 form.
//
// This is string concatenation, not parameter binding: the output must not be
// treated as an injection boundary.
func QuoteValue(value any, escape func(string) string) string {
	switch v := value.(type) {
	case nil:
		return "NULL"
	case string:
		return `"` + escape(v) + `"`
	case []byte:
		if v == nil {
			return "NULL"
		}
		return "X'" + strings.ToUpper(hex.EncodeToString(v)) + "'"
	case time.Time:
		return `"` + escape(v.Format(time.RFC3339Nano)) + `"`
	case bool:
		if v {
			return "TRUE"
		}
		return "FALSE"
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return `"` + escape(rv.String()) + `"`
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		// SQL has no literal for NaN or infinity
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "NULL"
		}
		return strconv.FormatFloat(f, 'g', -1, rv.Type().Bits())
	case reflect.Bool:
		return QuoteValue(rv.Bool(), escape)
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "NULL"
		}
		return QuoteValue(rv.Elem().Interface(), escape)
	}
	return fmt.Sprint(value)
}

// BackslashEscape escapes backslashes and double quotes with a backslash.
func BackslashEscape(s string) string {
	if !strings.ContainsAny(s, `"\`) {
		return s
	}
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

// DoubleQuoteEscape doubles embedded double quotes.
func DoubleQuoteEscape(s string) string {
	return strings.ReplaceAll(s, `"`, `""`)
}
