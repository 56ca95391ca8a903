// Package anki turns sense cards into the Anki import format: an HTML
// collocation fragment per card, a tab-separated import file, and the static
// note templates and stylesheet the deck uses.
package anki

import (
	"html"
	"strings"

	"github.com/heartmarshall/collocards/internal/domain"
)

// RenderCollocations produces the HTML fragment for one card's collocation
// content. Groups, items and examples are emitted strictly in input order;
// the ordering comes from the dictionary markup and is part of the card.
// Chinese spans are always present in the fragment — the card stylesheet
// decides their visibility.
func RenderCollocations(card domain.SenseCard) string {
	var b strings.Builder

	for _, group := range card.Groups {
		b.WriteString(`<div class="colloc-group">`)
		b.WriteString(`<div class="colloc-category">`)
		b.WriteString(html.EscapeString(group.Category))
		b.WriteString(`</div>`)

		for _, item := range group.Items {
			b.WriteString(`<div class="colloc-item">`)

			b.WriteString(`<div class="colloc-words">`)
			for i, word := range item.Words {
				if i > 0 {
					b.WriteString(` <span class="sep">|</span> `)
				}
				b.WriteString(`<span class="colloc-word">`)
				b.WriteString(html.EscapeString(word))
				b.WriteString(`</span>`)
			}
			if item.GlossCN != "" {
				b.WriteString(`<span class="colloc-chn">`)
				b.WriteString(html.EscapeString(item.GlossCN))
				b.WriteString(`</span>`)
			}
			b.WriteString(`</div>`)

			for _, ex := range item.Examples {
				b.WriteString(`<div class="colloc-example">`)
				b.WriteString(`<div class="ex-en">✦ `)
				b.WriteString(html.EscapeString(ex.EN))
				b.WriteString(`</div>`)
				if ex.CN != "" {
					b.WriteString(`<div class="ex-cn">`)
					b.WriteString(html.EscapeString(ex.CN))
					b.WriteString(`</div>`)
				}
				b.WriteString(`</div>`)
			}

			b.WriteString(`</div>`)
		}

		b.WriteString(`</div>`)
	}

	return b.String()
}
