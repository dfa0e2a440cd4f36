// Package reprfmt renders trait records as mapping literals:
//
//	{'vertices': 1000, 'edges': 2000, 'faces': 500}
//
// Keys keep record order. Strings are single-quoted unless they contain a
// single quote and no double quote. Floats always carry a decimal point or an
// exponent so they never read as integers.
package reprfmt

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/satishgoda/OpenAssetIO/internal/domain"
)

// Record renders r as a mapping literal.
func Record(r domain.Record) (string, error) {
	var b strings.Builder
	if err := writeRecord(&b, r); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Value renders a single field value.
func Value(v any) (string, error) {
	var b strings.Builder
	if err := writeValue(&b, v); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Report writes one "<Title>: <primary trait>" line per specification.
func Report(w io.Writer, p *domain.Pipeline) error {
	for _, spec := range p.Specifications() {
		line, err := Record(spec.Primary().Fields())
		if err != nil {
			return fmt.Errorf("%s: %w", spec.Title(), err)
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", spec.Title(), line); err != nil {
			return err
		}
	}
	return nil
}

func writeRecord(b *strings.Builder, r domain.Record) error {
	b.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(Quote(f.Name))
		b.WriteString(": ")
		if err := writeValue(b, f.Value); err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}
	}
	b.WriteByte('}')
	return nil
}

func writeValue(b *strings.Builder, v any) error {
	switch t := v.(type) {
	case nil:
		b.WriteString("None")
	case bool:
		if t {
			b.WriteString("True")
		} else {
			b.WriteString("False")
		}
	case int:
		b.WriteString(strconv.Itoa(t))
	case int64:
		b.WriteString(strconv.FormatInt(t, 10))
	case float64:
		b.WriteString(Float(t))
	case string:
		b.WriteString(Quote(t))
	case []string:
		b.WriteByte('[')
		for i, s := range t {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(Quote(s))
		}
		b.WriteByte(']')
	case domain.Record:
		return writeRecord(b, t)
	case []domain.Record:
		b.WriteByte('[')
		for i, r := range t {
			if i > 0 {
				b.WriteString(", ")
			}
			if err := writeRecord(b, r); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		b.WriteByte(']')
	case domain.Recorder:
		return writeRecord(b, t.AsRecord())
	default:
		return fmt.Errorf("unsupported value type %T", v)
	}
	return nil
}

// Float renders f with the shortest digits that round-trip. Values in
// [1e-4, 1e16) use positional notation with a trailing ".0" when integral;
// everything else uses exponent notation (1e+16, 1.5e-05).
func Float(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if f == 0 {
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	exp := strconv.FormatFloat(f, 'e', -1, 64)
	i := strings.LastIndexByte(exp, 'e')
	n, _ := strconv.Atoi(exp[i+1:])
	if n < -4 || n >= 16 {
		return exp
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// Quote renders s as a quoted string literal.
func Quote(s string) string {
	q := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(q)
	for _, r := range s {
		switch {
		case r == rune(q) || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == unicode.ReplacementChar:
			b.WriteRune(r)
		case !unicode.IsPrint(r) && r != ' ':
			switch {
			case r < 0x100:
				fmt.Fprintf(&b, `\x%02x`, r)
			case r < 0x10000:
				fmt.Fprintf(&b, `\u%04x`, r)
			default:
				fmt.Fprintf(&b, `\U%08x`, r)
			}
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(q)
	return b.String()
}
