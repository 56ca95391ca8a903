package freq

import (
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	src := `the
be am is are
of
THE offering
`
	table, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}

	tests := []struct {
		word     string
		wantRank int
		wantOK   bool
	}{
		{"the", 1, true},
		{"be", 2, true},
		{"is", 2, true},  // every form on the line shares its rank
		{"are", 2, true}, // every form on the line shares its rank
		{"of", 3, true},
		{"offering", 4, true},
		{"missing", 0, false},
	}

	for _, tt := range tests {
		rank, ok := table.Rank(tt.word)
		if ok != tt.wantOK || rank != tt.wantRank {
			t.Errorf("Rank(%q) = (%d, %v), want (%d, %v)", tt.word, rank, ok, tt.wantRank, tt.wantOK)
		}
	}

	if table.Lines() != 4 {
		t.Errorf("Lines() = %d, want 4", table.Lines())
	}
	if table.Len() != 7 {
		t.Errorf("Len() = %d, want 7 distinct forms", table.Len())
	}
}

func TestRead_FirstSeenWins(t *testing.T) {
	table, err := Read(strings.NewReader("water\nwater drink\n"))
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}

	if rank, _ := table.Rank("water"); rank != 1 {
		t.Errorf("Rank(water) = %d, want 1 (first occurrence wins)", rank)
	}
	if rank, _ := table.Rank("drink"); rank != 2 {
		t.Errorf("Rank(drink) = %d, want 2", rank)
	}
}

func TestRank_CaseInsensitive(t *testing.T) {
	table, err := Read(strings.NewReader("Accord\n"))
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}

	for _, word := range []string{"accord", "ACCORD", " Accord "} {
		if rank, ok := table.Rank(word); !ok || rank != 1 {
			t.Errorf("Rank(%q) = (%d, %v), want (1, true)", word, rank, ok)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("testdata/does-not-exist.txt"); err == nil {
		t.Fatal("Load of a missing file must return an error")
	}
}
