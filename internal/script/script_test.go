package script

import "testing"

func TestLetterTableShape(t *testing.T) {
	letters := Letters()
	if len(letters) != 45 {
		t.Fatalf("expected 45 letters, got %d", len(letters))
	}
	for i, l := range letters {
		if l.Brahmi == "" || l.Devanagari == "" || l.Sound == "" {
			t.Fatalf("letter %d has empty fields: %+v", i, l)
		}
	}
}

func TestLetterTableKeepsDuplicateGlyph(t *testing.T) {
	// The source table carries the same glyph for "au" and "kha".
	// That duplicate is intentional and must survive.
	seen := make(map[string]int)
	for _, l := range Letters() {
		seen[l.Brahmi]++
	}
	if seen["\U00011014"] != 2 {
		t.Fatalf("expected glyph \U00011014 twice in the table, got %d", seen["\U00011014"])
	}
}

func TestBrahmiForWord(t *testing.T) {
	if got := BrahmiForWord("सेब"); got != "\U00011032\U00011042\U00011029" {
		t.Fatalf("unexpected rendering for सेब: %q", got)
	}
	if got := BrahmiForWord("not-a-word"); got != PlaceholderRendering {
		t.Fatalf("unknown word should map to placeholder, got %q", got)
	}
}

func TestVocabularyCoversCategories(t *testing.T) {
	words := Words()
	renderings := Renderings()
	if len(words) != 19 || len(renderings) != 19 {
		t.Fatalf("expected 19 vocabulary entries, got %d words / %d renderings", len(words), len(renderings))
	}

	for i, word := range words {
		if BrahmiForWord(word) != renderings[i] {
			t.Fatalf("rendering mismatch for %q", word)
		}
	}

	flattened := 0
	for _, category := range Categories() {
		if len(category.Words) == 0 {
			t.Fatalf("category %q has no words", category.Name)
		}
		flattened += len(category.Words)
	}
	if flattened != len(words) {
		t.Fatalf("categories flatten to %d words, want %d", flattened, len(words))
	}
}
