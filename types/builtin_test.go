package types

import (
	"testing"
	"time"
)

func lookupBuiltin(t *testing.T, kind string) Type {
	t.Helper()
	typ, ok := Default().Lookup(kind)
	if !ok {
		t.Fatalf("built-in kind %q not registered", kind)
	}
	return typ
}

func TestDelimiterScan(t *testing.T) {
	tests := []struct {
		text string
		want string
		ok   bool
	}{
		{"123 rest", "123", true},
		{"123", "123", true},
		{"a\rb", "a", true},
		{"a\nb", "a", true},
		{"", "", false},
		{" leading", "", false},
	}

	for _, tt := range tests {
		got, ok := delimiterScan(tt.text)
		if got != tt.want || ok != tt.ok {
			t.Errorf("delimiterScan(%q) = (%q, %v), want (%q, %v)", tt.text, got, ok, tt.want, tt.ok)
		}
	}
}

func TestIntegerExtractValidateConvert(t *testing.T) {
	typ := lookupBuiltin(t, KindInteger)

	candidate, ok := typ.Extract("123 rest of text")
	if !ok || candidate != "123" {
		t.Fatalf("Extract = (%q, %v), want (\"123\", true)", candidate, ok)
	}
	if !typ.Validate(candidate) {
		t.Fatal("'123' should validate as integer")
	}

	v, ok := typ.Convert(candidate).Get()
	if !ok {
		t.Fatal("Convert should produce a value")
	}
	if v != int32(123) {
		t.Errorf("expected int32(123), got %v (%T)", v, v)
	}
}

func TestIntegerRejectsNonNumericToken(t *testing.T) {
	typ := lookupBuiltin(t, KindInteger)

	candidate, ok := typ.Extract("abc 123")
	if !ok || candidate != "abc" {
		t.Fatalf("Extract = (%q, %v), want (\"abc\", true)", candidate, ok)
	}
	if typ.Validate(candidate) {
		t.Error("'abc' should not validate as integer")
	}
}

func TestIntegerRangeByWidth(t *testing.T) {
	tests := []struct {
		kind      string
		candidate string
		valid     bool
	}{
		{KindByte, "127", true},
		{KindByte, "-128", true},
		{KindByte, "128", false},
		{KindShort, "32767", true},
		{KindShort, "32768", false},
		{KindInteger, "2147483647", true},
		{KindInteger, "2147483648", false},
		{KindLong, "2147483648", true},
		{KindLong, "9223372036854775807", true},
		{KindLong, "9223372036854775808", false},
	}

	for _, tt := range tests {
		typ := lookupBuiltin(t, tt.kind)
		if got := typ.Validate(tt.candidate); got != tt.valid {
			t.Errorf("%s.Validate(%q) = %v, want %v", tt.kind, tt.candidate, got, tt.valid)
		}
	}
}

func TestIntegerValidateStripsCRLF(t *testing.T) {
	typ := lookupBuiltin(t, KindInteger)

	if !typ.Validate("12\r\n3") {
		t.Error("CR/LF inside the candidate should be stripped before the parse attempt")
	}
	v, _ := typ.Convert("12\r\n3").Get()
	if v != int32(123) {
		t.Errorf("expected int32(123), got %v", v)
	}
}

func TestFloatAndDoubleWidths(t *testing.T) {
	floatTyp := lookupBuiltin(t, KindFloat)
	doubleTyp := lookupBuiltin(t, KindDouble)

	if !floatTyp.Validate("3.5") || !doubleTyp.Validate("3.5") {
		t.Fatal("'3.5' should validate for both float kinds")
	}

	fv, _ := floatTyp.Convert("3.5").Get()
	if fv != float32(3.5) {
		t.Errorf("float convert: expected float32(3.5), got %v (%T)", fv, fv)
	}

	dv, _ := doubleTyp.Convert("3.5").Get()
	if dv != float64(3.5) {
		t.Errorf("double convert: expected float64(3.5), got %v (%T)", dv, dv)
	}

	if floatTyp.Validate("not-a-number") {
		t.Error("'not-a-number' should not validate as float")
	}
}

func TestBoolean(t *testing.T) {
	typ := lookupBuiltin(t, KindBoolean)

	for candidate, want := range map[string]bool{"true": true, "false": false} {
		if !typ.Validate(candidate) {
			t.Errorf("%q should validate as boolean", candidate)
			continue
		}
		v, _ := typ.Convert(candidate).Get()
		if v != want {
			t.Errorf("Convert(%q) = %v, want %v", candidate, v, want)
		}
	}

	for _, candidate := range []string{"TRUE", "yes", "1", ""} {
		if typ.Validate(candidate) {
			t.Errorf("%q should not validate as boolean", candidate)
		}
	}
}

func TestQuotedStringExtract(t *testing.T) {
	typ := lookupBuiltin(t, KindString)

	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"at start", `"hello" rest`, `"hello"`, true},
		{"skips leading text", `true "Being a jerk to everyone" 42`, `"Being a jerk to everyone"`, true},
		{"escaped quote inside", `say "a \"quoted\" word" end`, `"a \"quoted\" word"`, true},
		{"unterminated", `"unterminated`, "", false},
		{"no quotes at all", `plain text`, "", false},
		{"empty quotes", `""`, `""`, true},
	}

	for _, tt := range tests {
		got, ok := typ.Extract(tt.text)
		if got != tt.want || ok != tt.ok {
			t.Errorf("%s: Extract(%q) = (%q, %v), want (%q, %v)", tt.name, tt.text, got, ok, tt.want, tt.ok)
		}
	}
}

func TestQuotedStringConvert(t *testing.T) {
	typ := lookupBuiltin(t, KindString)

	tests := []struct {
		candidate string
		want      string
	}{
		{`"hello"`, "hello"},
		{`"a \"quoted\" word"`, `a "quoted" word`},
		{`"back\\slash"`, `back\slash`},
		{`""`, ""},
	}

	for _, tt := range tests {
		if !typ.Validate(tt.candidate) {
			t.Errorf("%q should validate", tt.candidate)
			continue
		}
		v, ok := typ.Convert(tt.candidate).Get()
		if !ok {
			t.Errorf("Convert(%q) should produce a value", tt.candidate)
			continue
		}
		if v != tt.want {
			t.Errorf("Convert(%q) = %q, want %q", tt.candidate, v, tt.want)
		}
	}
}

func TestCharFixedWidth(t *testing.T) {
	typ := lookupBuiltin(t, KindChar)

	candidate, ok := typ.Extract("xyz")
	if !ok || candidate != "x" {
		t.Fatalf("Extract = (%q, %v), want (\"x\", true)", candidate, ok)
	}
	v, _ := typ.Convert(candidate).Get()
	if v != 'x' {
		t.Errorf("expected 'x', got %v", v)
	}

	if _, ok := typ.Extract(""); ok {
		t.Error("Extract on empty text should find nothing")
	}
}

func TestCharMultibyteRune(t *testing.T) {
	typ := lookupBuiltin(t, KindChar)

	candidate, ok := typ.Extract("éclair")
	if !ok || candidate != "é" {
		t.Fatalf("Extract = (%q, %v), want (\"é\", true)", candidate, ok)
	}
	if !typ.Validate(candidate) {
		t.Error("a single multibyte rune should validate")
	}
	v, _ := typ.Convert(candidate).Get()
	if v != 'é' {
		t.Errorf("expected 'é', got %v", v)
	}
}

func TestUnitMatchesEmptilyAndConvertsToNothing(t *testing.T) {
	typ := lookupBuiltin(t, KindUnit)

	candidate, ok := typ.Extract("anything at all")
	if !ok || candidate != "" {
		t.Fatalf("Extract = (%q, %v), want (\"\", true)", candidate, ok)
	}
	if !typ.Validate(candidate) {
		t.Error("unit candidate should always validate")
	}
	if !typ.Convert(candidate).IsEmpty() {
		t.Error("unit Convert should be Empty")
	}
}

func TestDurationKind(t *testing.T) {
	typ := lookupBuiltin(t, KindDuration)

	candidate, ok := typ.Extract("1h30m later")
	if !ok || candidate != "1h30m" {
		t.Fatalf("Extract = (%q, %v), want (\"1h30m\", true)", candidate, ok)
	}
	if !typ.Validate(candidate) {
		t.Fatal("'1h30m' should validate as duration")
	}

	v, ok := typ.Convert(candidate).Get()
	if !ok {
		t.Fatal("Convert should produce a value")
	}
	if v != 90*time.Minute {
		t.Errorf("expected 90m, got %v", v)
	}

	if typ.Validate("30m1h") {
		t.Error("ascending unit order should not validate")
	}
}
