package oxford

import (
	"strings"

	"github.com/heartmarshall/collocards/internal/domain"
)

// keepBlockTypes is the fixed allow-list of collocation block type codes
// (the sl attribute). Blocks of any other type are skipped entirely.
var keepBlockTypes = map[string]bool{
	"verbs":      true, // VERBS (adjective/adverb entries)
	"verbandhwd": true, // VERB + WORD
	"hwdandverb": true, // WORD + VERB
	"prep":       true, // PREPOSITION
}

// Tags of spans embedded in otherwise-English text. Chinese glosses are
// captured before these are excluded from the surrounding text.
const (
	tagChinese      = "chn"
	tagChineseSep   = "chnsep"
	tagPhoneticMark = "fthzmark"
)

// ExtractCards walks every <entry> in the document and returns one card per
// sense that has at least one verb or preposition collocation. The queried
// word is the headword fallback when an entry carries no <h> element.
//
// The function is total over a parsed tree: missing sub-structure degrades to
// empty fields, and entries without qualifying collocations produce nothing.
func ExtractCards(doc *Node, word string) []domain.SenseCard {
	if doc == nil {
		return nil
	}

	var cards []domain.SenseCard
	for _, entry := range doc.FindAll("entry") {
		if card, ok := extractEntry(entry, word); ok {
			cards = append(cards, card)
		}
	}
	return cards
}

// extractEntry turns one <entry> into a card. ok is false when the entry has
// no kept collocation groups: a sense without verb/preposition collocations
// is not a card.
func extractEntry(entry *Node, word string) (domain.SenseCard, bool) {
	card := domain.SenseCard{Word: word}

	if h := entry.FindFirst("h"); h != nil {
		if headword := domain.CollapseSpace(h.Text()); headword != "" {
			card.Word = headword
		}
	}

	if head := entry.FindFirst("head"); head != nil {
		if p := head.FindFirst("p"); p != nil {
			card.POS = domain.CollapseSpace(p.Text())
		}
		if num := head.FindFirst("n-num"); num != nil {
			card.SenseNumber = domain.CollapseSpace(num.Text())
		}
		if def := head.FindFirst("def"); def != nil {
			// Capture the Chinese span first; only then read the definition
			// with Chinese spans excluded. The other order loses the gloss.
			if chn := def.FindFirst(tagChinese); chn != nil {
				card.DefinitionCN = domain.CollapseSpace(chn.Text())
			}
			card.DefinitionEN = domain.CollapseSpace(def.TextExcluding(tagChinese, tagChineseSep))
		}
	}

	for _, blk := range entry.FindAll("sl-g-blk") {
		blockType := blk.Attr("sl")
		if !keepBlockTypes[blockType] {
			continue
		}

		category := strings.ToUpper(blockType)
		if head := blk.FindFirst("sl-g-head"); head != nil {
			category = domain.CollapseSpace(head.Text())
		}

		var items []domain.CollocationItem
		for _, sb := range blk.FindAll("sb-g") {
			if item, ok := parseSubGroup(sb); ok {
				items = append(items, item)
			}
		}
		if len(items) == 0 {
			continue
		}

		card.Groups = append(card.Groups, domain.CollocationGroup{
			Category: category,
			Items:    items,
		})
	}

	if len(card.Groups) == 0 {
		return domain.SenseCard{}, false
	}
	return card, true
}

// parseSubGroup reads one <sb-g> block: collocation phrases from its direct
// <cl> children and example pairs from its direct <x-blk> children. ok is
// false when no phrase survives extraction; gloss and examples are optional.
func parseSubGroup(sb *Node) (domain.CollocationItem, bool) {
	var item domain.CollocationItem

	for _, cl := range sb.ChildrenByTag("cl") {
		// One gloss per item; when several phrase nodes carry one,
		// the last wins.
		if chn := cl.FindFirst(tagChinese); chn != nil {
			item.GlossCN = domain.CollapseSpace(chn.Text())
		}
		phrase := domain.CollapseSpace(cl.TextExcluding(tagChinese, tagChineseSep))
		if phrase != "" {
			item.Words = append(item.Words, phrase)
		}
	}
	if len(item.Words) == 0 {
		return domain.CollocationItem{}, false
	}

	for _, xblk := range sb.ChildrenByTag("x-blk") {
		x := xblk.FindFirst("x")
		if x == nil {
			continue
		}
		var cn string
		if chn := x.FindFirst(tagChinese); chn != nil {
			cn = domain.CollapseSpace(chn.Text())
		}
		en := domain.CollapseSpace(x.TextExcluding(tagChinese, tagChineseSep, tagPhoneticMark))
		if en == "" {
			continue
		}
		item.Examples = append(item.Examples, domain.ExamplePair{EN: en, CN: cn})
	}

	return item, true
}
