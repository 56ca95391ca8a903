package anki

import (
	"fmt"
	"os"
	"path/filepath"
)

// File names of the static deck assets written next to the import file.
const (
	StyleFileName    = "anki_card_style.css"
	TemplateFileName = "anki_card_template.txt"
)

// WriteAssets writes the card stylesheet and note templates into dir.
// The template file bundles front, back and CSS sections for pasting into
// Anki's note type editor.
func WriteAssets(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("anki: create assets dir: %w", err)
	}

	cssPath := filepath.Join(dir, StyleFileName)
	if err := os.WriteFile(cssPath, []byte(CardCSS), 0o644); err != nil {
		return fmt.Errorf("anki: write %s: %w", cssPath, err)
	}

	tmplPath := filepath.Join(dir, TemplateFileName)
	content := "=== Front template ===\n" + TemplateFront +
		"\n\n=== Back template ===\n" + TemplateBack +
		"\n\n=== Styling (CSS) ===\n" + CardCSS
	if err := os.WriteFile(tmplPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("anki: write %s: %w", tmplPath, err)
	}

	return nil
}

// CardCSS styles the collocation cards. The front template adds the hide-cn
// class so Chinese glosses and translations only show on the back.
const CardCSS = `/* Collocation card styles */

.card {
  font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Arial, sans-serif;
  font-size: 16px;
  text-align: left;
  background: #f5f5f5;
  padding: 20px;
}

.colloc-card {
  max-width: 600px;
  margin: 0 auto;
  background: #fff;
  padding: 28px;
  border-radius: 12px;
  box-shadow: 0 2px 12px rgba(0,0,0,0.08);
}

/* Headword */
.word {
  font-size: 36px;
  font-weight: bold;
  color: #2c3e50;
  margin-bottom: 6px;
}

/* Part of speech + sense number */
.meta {
  margin-bottom: 12px;
}

.pos {
  color: #9b59b6;
  font-style: italic;
  font-size: 16px;
  font-weight: 600;
  margin-right: 10px;
}

.sense-num {
  display: inline-block;
  background: #e74c3c;
  color: white;
  padding: 2px 10px;
  border-radius: 12px;
  font-weight: bold;
  font-size: 14px;
}

.freq-rank {
  font-size: 14px;
  color: #95a5a6;
  font-weight: normal;
  margin-left: 8px;
}

/* Definition */
.definition {
  padding: 12px 16px;
  background: #f8f9fa;
  border-radius: 8px;
  border-left: 4px solid #3498db;
  margin-bottom: 8px;
}

.def-en {
  color: #2c3e50;
  font-size: 18px;
  font-weight: 500;
}

.def-cn {
  color: #7f8c8d;
  font-size: 16px;
  margin-left: 8px;
}

/* Divider */
.divider {
  margin: 20px 0;
  border: none;
  border-top: 2px solid #ecf0f1;
}

/* Collocation group */
.colloc-group {
  margin-bottom: 20px;
}

.colloc-category {
  font-size: 13px;
  font-weight: 700;
  color: #e67e22;
  text-transform: uppercase;
  letter-spacing: 1px;
  padding: 4px 10px;
  background: #fef5e7;
  border-radius: 4px;
  margin-bottom: 10px;
  display: inline-block;
}

/* Collocation item */
.colloc-item {
  margin-bottom: 12px;
  padding-left: 8px;
}

.colloc-words {
  margin-bottom: 4px;
  line-height: 1.8;
}

.colloc-word {
  color: #2980b9;
  font-weight: 600;
  font-size: 16px;
}

.sep {
  color: #bdc3c7;
  margin: 0 4px;
}

.colloc-chn {
  color: #7f8c8d;
  font-size: 14px;
  margin-left: 8px;
}

/* Examples */
.colloc-example {
  padding: 6px 12px;
  margin: 4px 0 4px 12px;
  border-left: 2px solid #e0e0e0;
}

.ex-en {
  color: #555;
  font-style: italic;
  font-size: 15px;
  line-height: 1.6;
}

.ex-cn {
  color: #95a5a6;
  font-size: 14px;
  line-height: 1.5;
  margin-left: 16px;
}

/* Hide Chinese on the front */
.hide-cn .def-cn,
.hide-cn .colloc-chn,
.hide-cn .ex-cn {
  display: none;
}
`

// TemplateFront is the Anki front template. Field names match the import
// file's column order.
const TemplateFront = `<div class="colloc-card hide-cn">
  <div class="word">{{Word}}{{#FreqRank}}<span class="freq-rank">#{{FreqRank}}</span>{{/FreqRank}}</div>
  <div class="meta">
    <span class="pos">{{POS}}</span>
    {{#SenseNum}}<span class="sense-num">#{{SenseNum}}</span>{{/SenseNum}}
  </div>
  {{#DefEN}}
  <div class="definition">
    <span class="def-en">{{DefEN}}</span>
    <span class="def-cn">{{DefCN}}</span>
  </div>
  {{/DefEN}}
  <hr class="divider">
  <div class="colloc-content">{{Collocations}}</div>
</div>`

// TemplateBack is the Anki back template: same layout with Chinese visible.
const TemplateBack = `<div class="colloc-card">
  <div class="word">{{Word}}{{#FreqRank}}<span class="freq-rank">#{{FreqRank}}</span>{{/FreqRank}}</div>
  <div class="meta">
    <span class="pos">{{POS}}</span>
    {{#SenseNum}}<span class="sense-num">#{{SenseNum}}</span>{{/SenseNum}}
  </div>
  {{#DefEN}}
  <div class="definition">
    <span class="def-en">{{DefEN}}</span>
    <span class="def-cn">{{DefCN}}</span>
  </div>
  {{/DefEN}}
  <hr class="divider">
  <div class="colloc-content">{{Collocations}}</div>
</div>`
