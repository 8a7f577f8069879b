package table

import (
	"reflect"
	"strings"
	"testing"
)

func TestToTSV(t *testing.T) {
	expected := `Name	Age
Ann	30
Bo	25
`

	tbl := New([]string{"Name", "Age"}, [][]string{
		{"Ann", "30"},
		{"Bo", "25"},
	})

	var f strings.Builder
	if err := tbl.ToTSV(&f); err != nil {
		t.Fatalf("Unexpected error returned from ToTSV (%v)", err)
	}

	if f.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %s\n   got:      %s\n", expected, f.String())
	}
}

func TestToTSVWithoutHeader(t *testing.T) {
	tbl := Table{}

	var f strings.Builder
	if err := tbl.ToTSV(&f); err == nil {
		t.Fatalf("Expected error return for table without header, got %v", err)
	}
}

func TestFromTSV(t *testing.T) {
	expected := Table{
		Header: []string{"Name", "Age"},
		Records: [][]string{
			{"Ann", "30"},
			{"Bo", "25"},
		},
	}

	tsv := `Name	Age
Ann	30
Bo	25
`

	tbl, err := FromTSV(strings.NewReader(tsv))
	if err != nil {
		t.Fatalf("Unexpected error returned from FromTSV (%v)", err)
	}

	if !reflect.DeepEqual(*tbl, expected) {
		t.Errorf("Incorrect table\n   expected: %v\n   got:      %v\n", expected, *tbl)
	}
}

func TestFromTSVWithEmptyFile(t *testing.T) {
	if _, err := FromTSV(strings.NewReader("")); err == nil {
		t.Fatalf("Expected error return for empty file, got %v", err)
	}
}

func TestTSVRoundTrip(t *testing.T) {
	expected := Table{
		Header: []string{"Name", "Age"},
		Records: [][]string{
			{"Ann", "30"},
			{"Bo", "25"},
		},
	}

	var f strings.Builder
	if err := expected.ToTSV(&f); err != nil {
		t.Fatalf("Unexpected error returned from ToTSV (%v)", err)
	}

	tbl, err := FromTSV(strings.NewReader(f.String()))
	if err != nil {
		t.Fatalf("Unexpected error returned from FromTSV (%v)", err)
	}

	if !reflect.DeepEqual(*tbl, expected) {
		t.Errorf("Incorrect table\n   expected: %v\n   got:      %v\n", expected, *tbl)
	}
}
