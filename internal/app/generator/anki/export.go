package anki

import (
	"strings"

	"github.com/heartmarshall/collocards/internal/domain"
)

// FieldsPerRecord is the fixed column count of the import file. Downstream
// importers map columns by position, so the order below must not change:
// word, POS, sense number, definition EN, definition CN, collocations HTML,
// frequency rank, tag.
const FieldsPerRecord = 8

var newlineStripper = strings.NewReplacer("\n", "", "\r", "")

// BuildImportFile serializes cards into Anki's tab-separated import format:
// one record per line, fields joined by a single tab, records joined by a
// single newline. The rendered fragment is stripped of CR/LF so a record can
// never span lines — the importer splits strictly on newline.
func BuildImportFile(cards []domain.SenseCard) string {
	lines := make([]string, 0, len(cards))
	for _, card := range cards {
		fields := []string{
			card.Word,
			card.POS,
			card.SenseNumber,
			card.DefinitionEN,
			card.DefinitionCN,
			newlineStripper.Replace(RenderCollocations(card)),
			card.FreqRank,
			card.Word, // tag
		}
		lines = append(lines, strings.Join(fields, "\t"))
	}
	return strings.Join(lines, "\n")
}
