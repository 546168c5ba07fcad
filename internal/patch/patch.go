// Package patch describes which columns of a table may be changed by a partial
// update and turns a decoded JSON object into a validated column → value map.
package patch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

type Kind int

const (
	Text Kind = iota
	Integer
	Decimal
	Timestamp
	Enum
)

var (
	ErrNoFields  = errors.New("Nenhum campo enviado para atualização")
	ErrMalformed = errors.New("Corpo da requisição inválido")
)

// Accepted timestamp layouts, most specific first.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

type Field struct {
	Kind     Kind
	Nullable bool
	Values   []string

	// Text bounds, counted in characters. Len fixes an exact length.
	NonEmpty bool
	MaxLen   int
	Len      int
	Digits   bool

	// Numeric bounds. Max is ignored when zero.
	Positive    bool
	NonNegative bool
	Max         float64
}

// Schema lists the mutable columns of Table, keyed by KeyColumn.
type Schema struct {
	Table     string
	KeyColumn string
	Fields    map[string]Field
}

// FieldError names the offending field of a rejected update.
type FieldError struct {
	Field      string
	Disallowed bool
}

func (e *FieldError) Error() string {
	if e.Disallowed {
		return "Campo não permitido: " + e.Field
	}
	return "Valor inválido para o campo: " + e.Field
}

// Decode reads a JSON object, keeping numbers as json.Number.
func Decode(r io.Reader) (map[string]any, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, ErrNoFields
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return nil, ErrMalformed
	}
	if body == nil {
		return nil, ErrMalformed
	}

	return body, nil
}

// Changes validates body against the schema. Fields are checked in name order so
// the reported field is deterministic.
func (s Schema) Changes(body map[string]any) (map[string]any, error) {
	if len(body) == 0 {
		return nil, ErrNoFields
	}

	names := make([]string, 0, len(body))
	for name := range body {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, ok := s.Fields[name]; !ok {
			return nil, &FieldError{Field: name, Disallowed: true}
		}
	}

	changes := make(map[string]any, len(body))
	for _, name := range names {
		v, err := s.Fields[name].convert(body[name])
		if err != nil {
			return nil, &FieldError{Field: name}
		}
		changes[name] = v
	}

	return changes, nil
}

func (s Schema) Allows(name string) bool {
	_, ok := s.Fields[name]
	return ok
}

func (f Field) convert(v any) (any, error) {
	if v == nil {
		if f.Nullable {
			return nil, nil
		}
		return nil, errors.New("null")
	}

	out, err := f.parse(v)
	if err != nil {
		return nil, err
	}
	if err := f.check(out); err != nil {
		return nil, err
	}

	return out, nil
}

func (f Field) parse(v any) (any, error) {
	switch f.Kind {
	case Text:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", v)
		}
		return s, nil

	case Integer:
		return toInt(v)

	case Decimal:
		return toFloat(v)

	case Timestamp:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected timestamp string, got %T", v)
		}
		return ParseTimestamp(s)

	case Enum:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", v)
		}
		for _, allowed := range f.Values {
			if s == allowed {
				return s, nil
			}
		}
		return nil, fmt.Errorf("%q not in %s", s, strings.Join(f.Values, ", "))
	}

	return nil, fmt.Errorf("unknown kind %d", f.Kind)
}

func (f Field) check(v any) error {
	switch x := v.(type) {
	case string:
		n := utf8.RuneCountInString(x)
		if f.NonEmpty && strings.TrimSpace(x) == "" {
			return errors.New("empty")
		}
		if f.MaxLen > 0 && n > f.MaxLen {
			return fmt.Errorf("longer than %d", f.MaxLen)
		}
		if f.Len > 0 && n != f.Len {
			return fmt.Errorf("length must be %d", f.Len)
		}
		if f.Digits && strings.Trim(x, "0123456789") != "" {
			return errors.New("digits only")
		}
	case int64:
		return f.checkNumber(float64(x))
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return errors.New("not a finite number")
		}
		return f.checkNumber(x)
	}

	return nil
}

func (f Field) checkNumber(n float64) error {
	if f.Positive && n <= 0 {
		return errors.New("must be positive")
	}
	if f.NonNegative && n < 0 {
		return errors.New("must not be negative")
	}
	if f.Max != 0 && n > f.Max {
		return fmt.Errorf("greater than %v", f.Max)
	}
	return nil
}

func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// Numeric form fields frequently arrive as strings, so both forms are accepted.
func toInt(v any) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		return n.Int64()
	case string:
		return strconv.ParseInt(strings.TrimSpace(n), 10, 64)
	case float64:
		if n != float64(int64(n)) {
			return 0, fmt.Errorf("not an integer: %v", n)
		}
		return int64(n), nil
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	}
	return 0, fmt.Errorf("expected integer, got %T", v)
}

// Decimal strings may use a comma as separator.
func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case json.Number:
		return n.Float64()
	case string:
		return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(n), ",", "."), 64)
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("expected number, got %T", v)
}
