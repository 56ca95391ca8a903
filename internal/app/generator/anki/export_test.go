package anki

import (
	"strings"
	"testing"

	"github.com/heartmarshall/collocards/internal/domain"
)

func TestBuildImportFile_RecordShape(t *testing.T) {
	cards := []domain.SenseCard{
		{
			Word: "accord", POS: "verb",
			DefinitionEN: "to agree with sth", DefinitionCN: "符合",
			FreqRank: "1234",
			Groups: []domain.CollocationGroup{{
				Category: "PREPOSITION",
				Items:    []domain.CollocationItem{{Words: []string{"accord with"}}},
			}},
		},
		{
			Word: "pitch", POS: "noun", SenseNumber: "1",
			DefinitionEN: "area of ground for playing a sport",
			Groups: []domain.CollocationGroup{{
				Category: "VERB + PITCH",
				Items:    []domain.CollocationItem{{Words: []string{"invade"}}},
			}},
		},
	}

	out := BuildImportFile(cards)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want one per card (2)", len(lines))
	}

	for i, line := range lines {
		fields := strings.Split(line, "\t")
		if len(fields) != FieldsPerRecord {
			t.Fatalf("line %d has %d fields, want %d", i, len(fields), FieldsPerRecord)
		}
	}

	first := strings.Split(lines[0], "\t")
	if first[0] != "accord" || first[1] != "verb" || first[2] != "" {
		t.Errorf("unexpected leading fields: %v", first[:3])
	}
	if first[3] != "to agree with sth" || first[4] != "符合" {
		t.Errorf("unexpected definition fields: %q, %q", first[3], first[4])
	}
	if first[6] != "1234" {
		t.Errorf("freq rank field = %q, want %q", first[6], "1234")
	}
	if first[7] != "accord" {
		t.Errorf("tag field = %q, want the word itself", first[7])
	}

	second := strings.Split(lines[1], "\t")
	if second[2] != "1" {
		t.Errorf("sense number field = %q, want %q", second[2], "1")
	}
	if second[6] != "" {
		t.Errorf("unset freq rank = %q, want empty string", second[6])
	}
}

func TestBuildImportFile_SameWordTwoSenses(t *testing.T) {
	groups := []domain.CollocationGroup{{
		Category: "VERBS",
		Items:    []domain.CollocationItem{{Words: []string{"be"}}},
	}}
	cards := []domain.SenseCard{
		{Word: "pitch", SenseNumber: "1", DefinitionEN: "sport ground", Groups: groups},
		{Word: "pitch", SenseNumber: "2", DefinitionEN: "degree or strength", Groups: groups},
	}

	lines := strings.Split(BuildImportFile(cards), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	a := strings.Split(lines[0], "\t")
	b := strings.Split(lines[1], "\t")
	if a[0] != b[0] {
		t.Errorf("word fields differ: %q vs %q", a[0], b[0])
	}
	if a[2] == b[2] || a[3] == b[3] {
		t.Error("sense number and definition must differ between the two records")
	}
}

func TestBuildImportFile_Empty(t *testing.T) {
	if out := BuildImportFile(nil); out != "" {
		t.Errorf("empty input produced %q, want empty string", out)
	}
}
