package rope

import (
	"bytes"
	"strings"
	"testing"
	"testing/quick"
)

func TestNew(t *testing.T) {
	r := New()
	if r.Len() != 0 {
		t.Errorf("New rope should have length 0, got %d", r.Len())
	}
	if r.String() != "" {
		t.Errorf("New rope String() should be empty, got %q", r.String())
	}
}

func TestFromString(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"single char", "a"},
		{"short string", "hello"},
		{"long string", strings.Repeat("abcdefghij", 200)},
		{"very long string", strings.Repeat("x", 20000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromString(tt.input)
			if r.String() != tt.input {
				t.Errorf("String() = %q, want %q", r.String(), tt.input)
			}
			if r.Len() != len(tt.input) {
				t.Errorf("Len() = %d, want %d", r.Len(), len(tt.input))
			}
		})
	}
}

// Scenario A.
func TestScenarioHelloWorld(t *testing.T) {
	r := FromString("hello").AppendString(" world")
	if r.Len() != 11 {
		t.Fatalf("Len() = %d, want 11", r.Len())
	}
	if r.Get(6) != 'w' {
		t.Fatalf("Get(6) = %q, want 'w'", r.Get(6))
	}
	if r.String() != "hello world" {
		t.Fatalf("String() = %q, want %q", r.String(), "hello world")
	}
}

// Scenario B.
func TestScenarioSubSequenceReverse(t *testing.T) {
	r := FromString("abcdef").SubSequence(1, 5).Reverse()
	if r.String() != "edcb" {
		t.Fatalf("String() = %q, want %q", r.String(), "edcb")
	}
}

// Scenario C.
func TestScenarioDelete(t *testing.T) {
	r := FromString("the quick brown fox").Delete(4, 10)
	if r.String() != "the brown fox" {
		t.Fatalf("String() = %q, want %q", r.String(), "the brown fox")
	}
}

// Scenario D.
func TestScenarioInsert(t *testing.T) {
	r := FromString("aaa").InsertString(1, "BB")
	if r.String() != "aBBaa" {
		t.Fatalf("String() = %q, want %q", r.String(), "aBBaa")
	}
}

// Scenario E.
func TestScenarioRepeat(t *testing.T) {
	r := FromString("ab").Times(5)
	if r.String() != "ababababab" {
		t.Fatalf("String() = %q, want %q", r.String(), "ababababab")
	}
	if r.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", r.Len())
	}
}

func TestAppendInsertDelete(t *testing.T) {
	tests := []struct {
		name     string
		initial  string
		op       func(Rope) Rope
		expected string
	}{
		{"insert at start", "world", func(r Rope) Rope { return r.InsertString(0, "hello ") }, "hello world"},
		{"insert at end", "hello", func(r Rope) Rope { return r.InsertString(5, " world") }, "hello world"},
		{"insert in middle", "helloworld", func(r Rope) Rope { return r.InsertString(5, " ") }, "hello world"},
		{"insert into empty", "", func(r Rope) Rope { return r.InsertString(0, "hello") }, "hello"},
		{"insert empty string", "hello", func(r Rope) Rope { return r.InsertString(3, "") }, "hello"},
		{"delete middle", "hello world", func(r Rope) Rope { return r.Delete(5, 6) }, "helloworld"},
		{"delete nothing", "hello", func(r Rope) Rope { return r.Delete(2, 2) }, "hello"},
		{"delete all", "hello", func(r Rope) Rope { return r.Delete(0, 5) }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.op(FromString(tt.initial))
			if got := r.String(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAppendRange(t *testing.T) {
	tests := []struct {
		name     string
		initial  string
		b        string
		s, e     int
		expected string
	}{
		{"whole slice", "hello", " world", 0, 6, "hello world"},
		{"inner slice", "ab", "xworldx", 1, 6, "abworld"},
		{"empty slice", "abc", "xyz", 2, 2, "abc"},
		{"prefix slice", "go", "golang extra", 0, 6, "gogolang"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromString(tt.initial).AppendRange([]byte(tt.b), tt.s, tt.e)
			if got := r.String(); got != tt.expected {
				t.Errorf("AppendRange(%q, %d, %d) on %q = %q, want %q", tt.b, tt.s, tt.e, tt.initial, got, tt.expected)
			}
		})
	}
}

func TestAppendRangeOutOfRangePanics(t *testing.T) {
	defer func() {
		r := recover()
		e, ok := r.(*Error)
		if !ok || e.Kind != OutOfRange {
			t.Fatalf("expected OutOfRange panic, got %v", r)
		}
	}()
	FromString("hello").AppendRange([]byte("xyz"), 1, 10)
}

func TestWriteRange(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		offset, length int
		want           string
	}{
		{"whole rope", "hello world", 0, 11, "hello world"},
		{"middle slice", "hello world", 6, 5, "world"},
		{"zero length", "hello world", 3, 0, ""},
		{"empty rope", "", 0, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromString(tt.text)
			var buf bytes.Buffer
			n, err := r.WriteRange(&buf, tt.offset, tt.length)
			if err != nil {
				t.Fatalf("WriteRange(%d, %d) error: %v", tt.offset, tt.length, err)
			}
			if n != int64(len(tt.want)) {
				t.Errorf("WriteRange(%d, %d) n = %d, want %d", tt.offset, tt.length, n, len(tt.want))
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("WriteRange(%d, %d) wrote %q, want %q", tt.offset, tt.length, got, tt.want)
			}
		})
	}
}

func TestWriteRangeNegativePanics(t *testing.T) {
	defer func() {
		r := recover()
		e, ok := r.(*Error)
		if !ok || e.Kind != OutOfRange {
			t.Fatalf("expected OutOfRange panic, got %v", r)
		}
	}()
	var buf bytes.Buffer
	FromString("hello").WriteRange(&buf, -1, 2)
}

func TestWriteRangeOverLengthPanics(t *testing.T) {
	defer func() {
		r := recover()
		e, ok := r.(*Error)
		if !ok || e.Kind != InvalidArgument {
			t.Fatalf("expected InvalidArgument panic, got %v", r)
		}
	}()
	var buf bytes.Buffer
	FromString("hello").WriteRange(&buf, 3, 10)
}

func TestGetOutOfRangePanics(t *testing.T) {
	defer func() {
		r := recover()
		e, ok := r.(*Error)
		if !ok || e.Kind != OutOfRange {
			t.Fatalf("expected OutOfRange panic, got %v", r)
		}
	}()
	FromString("abc").Get(3)
}

func TestRepeatNegativePanics(t *testing.T) {
	defer func() {
		r := recover()
		e, ok := r.(*Error)
		if !ok || e.Kind != InvalidArgument {
			t.Fatalf("expected InvalidArgument panic, got %v", r)
		}
	}()
	FromString("abc").Repeat(-1)
}

func TestPadTrim(t *testing.T) {
	r := FromString("hi").PadStart(5, '-')
	if r.String() != "---hi" {
		t.Fatalf("PadStart: got %q", r.String())
	}
	r = FromString("hi").PadEnd(5, '-')
	if r.String() != "hi---" {
		t.Fatalf("PadEnd: got %q", r.String())
	}
	r = FromString("  hi there  ").Trim()
	if r.String() != "hi there" {
		t.Fatalf("Trim: got %q", r.String())
	}
}

// Universal law 1: indexing equivalence.
func TestLawIndexingEquivalence(t *testing.T) {
	f := func(s string) bool {
		r := FromString(s)
		str := r.String()
		for i := 0; i < len(str); i++ {
			if r.Get(i) != str[i] {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

// Universal law 2: length additivity.
func TestLawLengthAdditivity(t *testing.T) {
	f := func(a, b string) bool {
		r := FromString(a).AppendString(b)
		return r.Len() == len(a)+len(b)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

// Universal law 3: concatenation associativity (value).
func TestLawConcatAssociativity(t *testing.T) {
	f := func(a, b, c string) bool {
		left := FromString(a).AppendString(b).AppendString(c)
		right := FromString(a).Plus(FromString(b).AppendString(c))
		return left.Equals(right)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

// Universal law 4: double reverse.
func TestLawDoubleReverse(t *testing.T) {
	f := func(s string) bool {
		r := FromString(s)
		return r.Reverse().Reverse().Equals(r)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

// Universal law 5: substring round-trip.
func TestLawSubstringRoundTrip(t *testing.T) {
	f := func(s string, seed uint16) bool {
		r := FromString(s)
		n := len(s)
		if n == 0 {
			return r.SubSequence(0, 0).String() == ""
		}
		a := int(seed) % (n + 1)
		b := a + int(seed>>8)%(n-a+1)
		return r.SubSequence(a, b).String() == s[a:b]
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

// Universal law 6: insert-delete inverse.
func TestLawInsertDeleteInverse(t *testing.T) {
	f := func(base, ins string, seed uint16) bool {
		r := FromString(base)
		n := len(base)
		k := 0
		if n > 0 {
			k = int(seed) % (n + 1)
		}
		inserted := r.InsertString(k, ins)
		back := inserted.Delete(k, k+len(ins))
		return back.Equals(r)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

// Universal law 11: hash/equality compatibility.
func TestLawHashEqualityCompatibility(t *testing.T) {
	f := func(a, b string) bool {
		ra, rb := FromString(a), FromString(b)
		if !ra.Equals(rb) {
			return true
		}
		return ra.Hash() == rb.Hash()
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

// Scenario F: 10,000 random appends of substrings of r0 keep the depth
// bound and total length.
func TestScenarioManyRandomAppends(t *testing.T) {
	base := strings.Repeat("the quick brown fox jumps over the lazy dog ", 50)
	r0 := FromString(base)
	r := r0
	total := r0.Len()
	for i := 0; i < 10000; i++ {
		a := (i * 7) % r0.Len()
		b := a + 1 + (i*13)%(r0.Len()-a)
		chunk := r0.SubSequence(a, b)
		r = r.Plus(chunk)
		total += chunk.Len()
	}
	if r.Len() != total {
		t.Fatalf("Len() = %d, want %d", r.Len(), total)
	}
	if r.Depth() > 64 {
		t.Fatalf("Depth() = %d, exceeds bound 64", r.Depth())
	}
}

func TestCompare(t *testing.T) {
	if FromString("abc").Compare(FromString("abd")) >= 0 {
		t.Error("expected abc < abd")
	}
	if FromString("abc").Compare(FromString("ab")) <= 0 {
		t.Error("expected abc > ab")
	}
	if FromString("abc").Compare(FromString("abc")) != 0 {
		t.Error("expected abc == abc")
	}
}
