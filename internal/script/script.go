// Package script holds the static Brahmi reference tables: the letter
// table with Devanagari transliterations and phonetic sounds, and the
// categorized vocabulary with Brahmi renderings. All data is read-only
// for the lifetime of the process.
package script

// Letter is one row of the Brahmi letter table.
type Letter struct {
	Brahmi     string
	Devanagari string
	Sound      string
}

// VocabularyEntry maps a Devanagari word to its Brahmi rendering and
// the category it belongs to.
type VocabularyEntry struct {
	Word     string
	Brahmi   string
	Category string
}

// Category groups vocabulary words under a display name.
type Category struct {
	Name  string
	Words []string
}

// PlaceholderRendering is returned for words with no Brahmi mapping.
const PlaceholderRendering = "\U00011005\U00011005\U00011005" // 𑀅𑀅𑀅

var renderingByWord map[string]string

func init() {
	renderingByWord = make(map[string]string, len(vocabulary))
	for _, entry := range vocabulary {
		renderingByWord[entry.Word] = entry.Brahmi
	}
}

// Letters returns the full letter table in source order. The table is
// known to contain a duplicated glyph row; callers draw by index and
// must not assume glyph uniqueness.
func Letters() []Letter {
	return letters
}

// Vocabulary returns all vocabulary entries in category order.
func Vocabulary() []VocabularyEntry {
	return vocabulary
}

// Categories returns the vocabulary grouped by category, in source order.
func Categories() []Category {
	categories := make([]Category, 0, 8)
	var current *Category
	for _, entry := range vocabulary {
		if current == nil || current.Name != entry.Category {
			categories = append(categories, Category{Name: entry.Category})
			current = &categories[len(categories)-1]
		}
		current.Words = append(current.Words, entry.Word)
	}
	return categories
}

// Words returns every vocabulary word, flattened across categories in
// source order.
func Words() []string {
	words := make([]string, len(vocabulary))
	for i, entry := range vocabulary {
		words[i] = entry.Word
	}
	return words
}

// Renderings returns every Brahmi rendering in the vocabulary, in
// source order.
func Renderings() []string {
	renderings := make([]string, len(vocabulary))
	for i, entry := range vocabulary {
		renderings[i] = entry.Brahmi
	}
	return renderings
}

// BrahmiForWord returns the Brahmi rendering of a vocabulary word.
// Unknown words map to PlaceholderRendering rather than an error.
func BrahmiForWord(word string) string {
	if rendering, ok := renderingByWord[word]; ok {
		return rendering
	}
	return PlaceholderRendering
}
