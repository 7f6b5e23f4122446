package syntax

import "testing"

func TestSpanDetached(t *testing.T) {
	span := Detached()

	if !span.IsDetached() {
		t.Error("Detached span should report IsDetached() == true")
	}

	if span.Id() != NoFile {
		t.Errorf("Detached span should have NoFile id, got %v", span.Id())
	}

	if _, _, ok := span.Range(); ok {
		t.Error("Detached span should not have a range")
	}
}

func TestSpanNumberEncoding(t *testing.T) {
	id := FileIdFromRaw(5)
	span, ok := SpanFromNumber(id, 10)

	if !ok {
		t.Fatal("SpanFromNumber should succeed for valid number")
	}

	if span.Id() != id {
		t.Errorf("Expected file id %v, got %v", id, span.Id())
	}

	if span.Number() != 10 {
		t.Errorf("Expected number 10, got %d", span.Number())
	}

	if _, _, ok := span.Range(); ok {
		t.Error("Numbered span should not have a range")
	}
}

func TestSpanNumberInvalidRange(t *testing.T) {
	id := FileIdFromRaw(1)

	if _, ok := SpanFromNumber(id, 0); ok {
		t.Error("SpanFromNumber should fail for number 0")
	}

	if _, ok := SpanFromNumber(id, 1); ok {
		t.Error("SpanFromNumber should fail for number 1")
	}

	if _, ok := SpanFromNumber(id, 2); !ok {
		t.Error("SpanFromNumber should succeed for number 2")
	}

	if _, ok := SpanFromNumber(id, 1<<47); ok {
		t.Error("SpanFromNumber should fail for number >= 2^47")
	}
}

func TestSpanRangeEncoding(t *testing.T) {
	id := FileIdFromRaw(65535)

	testCases := []struct {
		start, end int
	}{
		{0, 0},
		{177, 233},
		{0, 8388607},
		{8388606, 8388607},
	}

	for _, tc := range testCases {
		span := SpanFromRange(id, tc.start, tc.end)

		if span.Id() != id {
			t.Errorf("Range span: expected file id %v, got %v", id, span.Id())
		}

		start, end, ok := span.Range()
		if !ok {
			t.Errorf("Range span %d..%d should have a range", tc.start, tc.end)
			continue
		}

		if start != tc.start || end != tc.end {
			t.Errorf("Expected range %d..%d, got %d..%d", tc.start, tc.end, start, end)
		}
	}
}

func TestSpanRangeSaturation(t *testing.T) {
	id := FileIdFromRaw(1)
	maxVal := (1 << 23) - 1

	span := SpanFromRange(id, maxVal+1000, maxVal+2000)

	start, end, ok := span.Range()
	if !ok {
		t.Fatal("Range span should have a range")
	}

	if start != maxVal {
		t.Errorf("Start should be saturated to %d, got %d", maxVal, start)
	}

	if end != maxVal {
		t.Errorf("End should be saturated to %d, got %d", maxVal, end)
	}
}

func TestSpanOr(t *testing.T) {
	id := FileIdFromRaw(1)
	attached, _ := SpanFromNumber(id, 10)
	detached := Detached()

	if detached.Or(attached).IsDetached() {
		t.Error("Detached.Or(attached) should return attached span")
	}

	if attached.Or(detached).IsDetached() {
		t.Error("attached.Or(detached) should return attached span")
	}
}

func TestFindSpan(t *testing.T) {
	id := FileIdFromRaw(1)
	attached, _ := SpanFromNumber(id, 10)
	detached := Detached()

	if !FindSpan([]Span{}).IsDetached() {
		t.Error("FindSpan of empty slice should return detached")
	}

	if !FindSpan([]Span{detached, detached}).IsDetached() {
		t.Error("FindSpan of all detached should return detached")
	}

	result := FindSpan([]Span{detached, attached, detached})
	if result.IsDetached() {
		t.Error("FindSpan should find attached span")
	}
	if result.Number() != 10 {
		t.Errorf("Expected number 10, got %d", result.Number())
	}
}

func TestSpanned(t *testing.T) {
	id := FileIdFromRaw(1)
	span, _ := SpanFromNumber(id, 100)

	s := NewSpanned("hello", span)
	if s.V != "hello" {
		t.Errorf("Expected value 'hello', got %q", s.V)
	}
	if s.Span != span {
		t.Error("Span mismatch")
	}

	d := SpannedDetached("world")
	if d.V != "world" {
		t.Errorf("Expected value 'world', got %q", d.V)
	}
	if !d.Span.IsDetached() {
		t.Error("SpannedDetached should have detached span")
	}

	intSpan := NewSpanned(5, span)
	doubled := intSpan.Map(func(x int) int { return x * 2 })
	if doubled.V != 10 {
		t.Errorf("Expected mapped value 10, got %d", doubled.V)
	}
	if doubled.Span != span {
		t.Error("Map should preserve span")
	}
}

func TestSpanRawRoundtrip(t *testing.T) {
	id := FileIdFromRaw(123)
	original, _ := SpanFromNumber(id, 456)

	restored := SpanFromRaw(original.Raw())

	if restored.Id() != original.Id() {
		t.Error("Raw roundtrip should preserve file id")
	}

	if restored.Number() != original.Number() {
		t.Error("Raw roundtrip should preserve number")
	}
}

func TestSpanString(t *testing.T) {
	d := Detached()
	if d.String() != "Span(detached)" {
		t.Errorf("Unexpected detached string: %s", d.String())
	}

	id := FileIdFromRaw(1)
	n, _ := SpanFromNumber(id, 42)
	expected := "Span(file=1, number=42)"
	if n.String() != expected {
		t.Errorf("Expected %q, got %q", expected, n.String())
	}

	r := SpanFromRange(id, 10, 20)
	expected = "Span(file=1, range=10..20)"
	if r.String() != expected {
		t.Errorf("Expected %q, got %q", expected, r.String())
	}
}

func TestFileId(t *testing.T) {
	if NoFile.IsValid() {
		t.Error("NoFile should not be valid")
	}
	id := FileIdFromRaw(7)
	if !id.IsValid() {
		t.Error("a non-zero FileId should be valid")
	}
	if id.Raw() != 7 {
		t.Errorf("expected raw 7, got %d", id.Raw())
	}
}
