package oxford

import (
	"strings"
	"testing"
)

func mustParse(t *testing.T, markup string) *Node {
	t.Helper()
	doc, err := ParseDocument(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("ParseDocument returned error: %v", err)
	}
	return doc
}

func TestParseDocument_HeadInsideEntry(t *testing.T) {
	// The dictionary nests <head> inside <entry>; an HTML5 tree builder
	// drops in-body <head> tags, so this is the case the custom tree exists for.
	doc := mustParse(t, `<entry><head><def>a sport ground</def></head></entry>`)

	entry := doc.FindFirst("entry")
	if entry == nil {
		t.Fatal("entry not found")
	}
	head := entry.FindFirst("head")
	if head == nil {
		t.Fatal("head not found inside entry")
	}
	def := head.FindFirst("def")
	if def == nil {
		t.Fatal("def not found inside head")
	}
	if got := def.Text(); got != "a sport ground" {
		t.Errorf("def text = %q, want %q", got, "a sport ground")
	}
}

func TestParseDocument_AttributesAndCase(t *testing.T) {
	doc := mustParse(t, `<SL-G-BLK SL="prep"><sl-g-head>PREPOSITION</sl-g-head></SL-G-BLK>`)

	blk := doc.FindFirst("sl-g-blk")
	if blk == nil {
		t.Fatal("sl-g-blk not found (tags should be lowercased)")
	}
	if got := blk.Attr("sl"); got != "prep" {
		t.Errorf("Attr(sl) = %q, want %q", got, "prep")
	}
	if got := blk.Attr("missing"); got != "" {
		t.Errorf("Attr(missing) = %q, want empty", got)
	}
}

func TestParseDocument_StrayEndTagAndUnclosed(t *testing.T) {
	doc := mustParse(t, `</x><entry><cl>invade`)

	entry := doc.FindFirst("entry")
	if entry == nil {
		t.Fatal("entry not found")
	}
	cl := entry.FindFirst("cl")
	if cl == nil {
		t.Fatal("unclosed cl not found")
	}
	if got := cl.Text(); got != "invade" {
		t.Errorf("cl text = %q, want %q", got, "invade")
	}
}

func TestFindAll_DocumentOrder(t *testing.T) {
	doc := mustParse(t, `<a><sb-g>1</sb-g><b><sb-g>2</sb-g></b></a><sb-g>3</sb-g>`)

	all := doc.FindAll("sb-g")
	if len(all) != 3 {
		t.Fatalf("FindAll returned %d nodes, want 3", len(all))
	}
	for i, want := range []string{"1", "2", "3"} {
		if got := all[i].Text(); got != want {
			t.Errorf("node %d text = %q, want %q", i, got, want)
		}
	}
}

func TestChildrenByTag_DirectOnly(t *testing.T) {
	doc := mustParse(t, `<sb-g><cl>direct</cl><wrap><cl>nested</cl></wrap></sb-g>`)

	sb := doc.FindFirst("sb-g")
	direct := sb.ChildrenByTag("cl")
	if len(direct) != 1 {
		t.Fatalf("ChildrenByTag returned %d nodes, want 1", len(direct))
	}
	if got := direct[0].Text(); got != "direct" {
		t.Errorf("direct child text = %q, want %q", got, "direct")
	}
}

func TestTextExcluding_PureAndComplete(t *testing.T) {
	doc := mustParse(t, `<def>an agreement <chnsep>•</chnsep><chn>一致</chn></def>`)
	def := doc.FindFirst("def")

	got := def.TextExcluding("chn", "chnsep")
	if got != "an agreement " {
		t.Errorf("TextExcluding = %q, want %q", got, "an agreement ")
	}

	// Exclusion must not mutate the tree: the full text is still intact
	// and a second call returns the same result.
	if full := def.Text(); full != "an agreement •一致" {
		t.Errorf("Text after TextExcluding = %q, want %q", full, "an agreement •一致")
	}
	if again := def.TextExcluding("chn", "chnsep"); again != got {
		t.Errorf("second TextExcluding = %q, want %q", again, got)
	}
}

func TestParseDocument_UnescapesEntities(t *testing.T) {
	doc := mustParse(t, `<cl>bits &amp; pieces</cl>`)
	if got := doc.FindFirst("cl").Text(); got != "bits & pieces" {
		t.Errorf("text = %q, want %q", got, "bits & pieces")
	}
}
