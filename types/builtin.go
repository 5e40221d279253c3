package types

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/xaanit/ArgumentParse/result"
)

func builtins() []Type {
	return []Type{
		integerType{kind: KindByte, bits: 8},
		integerType{kind: KindShort, bits: 16},
		integerType{kind: KindInteger, bits: 32},
		integerType{kind: KindLong, bits: 64},
		floatType{kind: KindFloat, bits: 32},
		floatType{kind: KindDouble, bits: 64},
		booleanType{},
		quotedStringType{},
		charType{},
		unitType{},
		durationType{},
	}
}

var (
	_ Type = integerType{}
	_ Type = floatType{}
	_ Type = booleanType{}
	_ Type = quotedStringType{}
	_ Type = charType{}
	_ Type = unitType{}
	_ Type = durationType{}
)

// delimiterScan returns the prefix of text up to but excluding the
// first space, CR, or LF, or the whole text if none occurs. No token
// exists when the text is empty or starts with a delimiter.
func delimiterScan(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case ' ', '\r', '\n':
			if i == 0 {
				return "", false
			}
			return text[:i], true
		}
	}
	return text, true
}

// stripCRLF removes stray carriage returns and line feeds that a chat
// transport may have left inside a token.
func stripCRLF(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	s = strings.ReplaceAll(s, "\r", "")
	return strings.ReplaceAll(s, "\n", "")
}

// integerType covers the signed integral kinds. bits selects the
// accepted range: 8 for byte, 16 for short, 32 for integer, 64 for long.
type integerType struct {
	kind string
	bits int
}

func (t integerType) Kind() string { return t.kind }

func (t integerType) Extract(text string) (string, bool) {
	return delimiterScan(text)
}

func (t integerType) Validate(candidate string) bool {
	_, err := strconv.ParseInt(stripCRLF(candidate), 10, t.bits)
	return err == nil
}

func (t integerType) Convert(candidate string) result.Outcome[any] {
	n, err := strconv.ParseInt(stripCRLF(candidate), 10, t.bits)
	if err != nil {
		return result.Error[any](fmt.Errorf("convert %q as %s: %w", candidate, t.kind, err))
	}
	switch t.bits {
	case 8:
		return result.Value[any](int8(n))
	case 16:
		return result.Value[any](int16(n))
	case 32:
		return result.Value[any](int32(n))
	default:
		return result.Value[any](n)
	}
}

// floatType covers float (32-bit) and double (64-bit).
type floatType struct {
	kind string
	bits int
}

func (t floatType) Kind() string { return t.kind }

func (t floatType) Extract(text string) (string, bool) {
	return delimiterScan(text)
}

func (t floatType) Validate(candidate string) bool {
	_, err := strconv.ParseFloat(stripCRLF(candidate), t.bits)
	return err == nil
}

func (t floatType) Convert(candidate string) result.Outcome[any] {
	f, err := strconv.ParseFloat(stripCRLF(candidate), t.bits)
	if err != nil {
		return result.Error[any](fmt.Errorf("convert %q as %s: %w", candidate, t.kind, err))
	}
	if t.bits == 32 {
		return result.Value[any](float32(f))
	}
	return result.Value[any](f)
}

type booleanType struct{}

func (booleanType) Kind() string { return KindBoolean }

func (booleanType) Extract(text string) (string, bool) {
	return delimiterScan(text)
}

func (booleanType) Validate(candidate string) bool {
	s := stripCRLF(candidate)
	return s == "true" || s == "false"
}

func (booleanType) Convert(candidate string) result.Outcome[any] {
	return result.Value[any](stripCRLF(candidate) == "true")
}

// quotedStringType matches the first double-quoted group in the
// remaining text, allowing backslash escapes inside it. Unlike the
// token kinds it may skip over leading unrelated text to find its
// opening quote.
type quotedStringType struct{}

func (quotedStringType) Kind() string { return KindString }

func (quotedStringType) Extract(text string) (string, bool) {
	from := 0
	for {
		rel := strings.IndexByte(text[from:], '"')
		if rel < 0 {
			return "", false
		}
		start := from + rel
		escaped := false
		for i := start + 1; i < len(text); i++ {
			if escaped {
				escaped = false
				continue
			}
			switch text[i] {
			case '\\':
				escaped = true
			case '"':
				return text[start : i+1], true
			}
		}
		from = start + 1
	}
}

func (quotedStringType) Validate(candidate string) bool {
	return len(candidate) >= 2 && candidate[0] == '"' && candidate[len(candidate)-1] == '"'
}

func (quotedStringType) Convert(candidate string) result.Outcome[any] {
	inner := candidate[1 : len(candidate)-1]
	if !strings.ContainsRune(inner, '\\') {
		return result.Value[any](inner)
	}

	var b strings.Builder
	b.Grow(len(inner))
	escaped := false
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		b.WriteByte(c)
	}
	return result.Value[any](b.String())
}

// charType is the fixed-width rule: exactly the first character of the
// remaining text.
type charType struct{}

func (charType) Kind() string { return KindChar }

func (charType) Extract(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	_, size := utf8.DecodeRuneInString(text)
	return text[:size], true
}

func (charType) Validate(candidate string) bool {
	return utf8.RuneCountInString(candidate) == 1
}

func (charType) Convert(candidate string) result.Outcome[any] {
	r, _ := utf8.DecodeRuneInString(candidate)
	return result.Value[any](r)
}

// unitType matches emptily and declines to produce a value: the slot is
// consumed without recording anything, the escape hatch for
// presence-only arguments.
type unitType struct{}

func (unitType) Kind() string { return KindUnit }

func (unitType) Extract(string) (string, bool) {
	return "", true
}

func (unitType) Validate(string) bool { return true }

func (unitType) Convert(string) result.Outcome[any] {
	return result.Empty[any]()
}

type durationType struct{}

func (durationType) Kind() string { return KindDuration }

func (durationType) Extract(text string) (string, bool) {
	return delimiterScan(text)
}

func (durationType) Validate(candidate string) bool {
	_, err := ParseDuration(stripCRLF(candidate))
	return err == nil
}

func (durationType) Convert(candidate string) result.Outcome[any] {
	d, err := ParseDuration(stripCRLF(candidate))
	if err != nil {
		return result.Error[any](fmt.Errorf("convert %q as duration: %w", candidate, err))
	}
	return result.Value[any](d)
}
