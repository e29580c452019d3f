package diag

import (
	"testing"

	"jslex/internal/source"
)

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	for i := 0; i < 3; i++ {
		ok := b.Add(Diagnostic{Severity: SevWarning, Code: LexInfo})
		if want := i < 2; ok != want {
			t.Fatalf("Add #%d = %v, want %v", i, ok, want)
		}
	}
	if b.Len() != 2 || !b.HasWarnings() || b.HasErrors() {
		t.Fatalf("unexpected bag state: len=%d", b.Len())
	}
}

func TestBagClampsLimit(t *testing.T) {
	if NewBag(-1).Cap() != 0 {
		t.Error("negative limit must clamp to 0")
	}
	if NewBag(1 << 20).Cap() != ^uint16(0) {
		t.Error("huge limit must clamp to max uint16")
	}
}

func TestBagSort(t *testing.T) {
	b := NewBag(10)
	b.Add(Diagnostic{Severity: SevWarning, Code: LexInfo, Primary: source.Span{File: 1, Start: 0, End: 1}})
	b.Add(Diagnostic{Severity: SevError, Code: LexBadNumber, Primary: source.Span{File: 0, Start: 5, End: 6}})
	b.Add(Diagnostic{Severity: SevError, Code: LexUnknownChar, Primary: source.Span{File: 0, Start: 1, End: 2}})
	b.Add(Diagnostic{Severity: SevInfo, Code: LexInfo, Primary: source.Span{File: 0, Start: 1, End: 2}})
	b.Sort()

	want := []Code{LexUnknownChar, LexInfo, LexBadNumber, LexInfo}
	for i, d := range b.Items() {
		if d.Code != want[i] {
			t.Fatalf("item %d: got %v, want %v", i, d.Code.ID(), want[i].ID())
		}
	}
	if b.Items()[0].Severity != SevError {
		t.Error("error must sort before info at the same span")
	}
}

func TestMergeGrowsLimit(t *testing.T) {
	a, c := NewBag(1), NewBag(2)
	a.Add(Diagnostic{Code: LexInfo})
	c.Add(Diagnostic{Code: LexBadNumber})
	c.Add(Diagnostic{Code: LexBadEscape})
	a.Merge(c)
	if a.Len() != 3 || a.Cap() != 3 {
		t.Fatalf("merge: len=%d cap=%d", a.Len(), a.Cap())
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: bag})
	sp := source.Span{Start: 3, End: 4}
	ReportError(r, LexUnknownChar, sp, "unexpected character '#'")
	ReportError(r, LexUnknownChar, sp, "unexpected character '#'")
	ReportError(r, LexUnknownChar, source.Span{Start: 9, End: 10}, "unexpected character '#'")
	if bag.Len() != 2 {
		t.Fatalf("expected 2 unique diagnostics, got %d", bag.Len())
	}
	ReportError(nil, LexInfo, sp, "dropped")
}

func TestCodeID(t *testing.T) {
	cases := map[Code]string{
		UnknownCode:     "E0000",
		LexBadNumber:    "LEX1004",
		IOLoadFileError: "IO4001",
	}
	for c, want := range cases {
		if c.ID() != want {
			t.Errorf("%d.ID() = %q, want %q", c, c.ID(), want)
		}
	}
	if Code(1999).Title() != "Unknown error" {
		t.Errorf("unknown code title: %q", Code(1999).Title())
	}
}
