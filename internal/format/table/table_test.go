package table

import (
	"reflect"
	"testing"
)

func TestFormatPadsByCellWidth(t *testing.T) {
	rows := [][]string{
		{"😀", "grinning face", "3"},
		{"A", "letter", "12"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft, AlignRight})
	want := []string{
		"😀  grinning face   3",
		"A   letter         12",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatLeavesLastLeftColumnUnpadded(t *testing.T) {
	got := Format([][]string{{"a", "x"}, {"bbb", "yyyy"}}, nil)
	want := []string{"a    x", "bbb  yyyy"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatRaggedRows(t *testing.T) {
	got := Format([][]string{{"a"}, {"bb", "c"}}, nil)
	want := []string{"a", "bb  c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatEmpty(t *testing.T) {
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}
