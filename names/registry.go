package names

import "fmt"

// Category is a nationality with its training surnames.
type Category struct {
	Name  string
	Words []string
}

// Corpus is an ordered list of categories. The position of each category is
// its one-hot index, so the order must stay fixed for the lifetime of a
// model trained on it.
type Corpus []Category

// Registry binds an alphabet to a corpus and resolves both directions of
// the category mapping.
type Registry struct {
	alphabet   *Alphabet
	corpus     Corpus
	categoryIx map[string]int
}

// NewRegistry builds a registry over the given corpus using the standard
// alphabet. Category one-hot indices follow corpus order. Every word in the
// corpus is validated against the alphabet up front so tensorization cannot
// fail mid-training; the first offending rune is returned as
// *UnknownLetterError.
func NewRegistry(corpus Corpus) (*Registry, error) {
	return NewRegistryWithAlphabet(corpus, Default())
}

// NewRegistryWithAlphabet is NewRegistry with a custom alphabet.
func NewRegistryWithAlphabet(corpus Corpus, alphabet *Alphabet) (*Registry, error) {
	r := &Registry{
		alphabet:   alphabet,
		corpus:     corpus,
		categoryIx: make(map[string]int, len(corpus)),
	}
	for i, c := range corpus {
		if len(c.Words) == 0 {
			return nil, fmt.Errorf("names: category %q has no words", c.Name)
		}
		r.categoryIx[c.Name] = i
		for _, w := range c.Words {
			if err := alphabet.Validate(w); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

// Alphabet returns the registry's alphabet.
func (r *Registry) Alphabet() *Alphabet {
	return r.alphabet
}

// Corpus returns the ordered categories.
func (r *Registry) Corpus() Corpus {
	return r.corpus
}

// NumCategories returns the number of output classes.
func (r *Registry) NumCategories() int {
	return len(r.corpus)
}

// CategoryIndex returns the one-hot index of a category name. Returns
// *UnknownCategoryError for names not in the corpus.
func (r *Registry) CategoryIndex(name string) (int, error) {
	i, ok := r.categoryIx[name]
	if !ok {
		return 0, &UnknownCategoryError{Category: name}
	}
	return i, nil
}

// CategoryName returns the category name at the given index. Panics if the
// index is out of range, an index can only come from this registry's own
// output width.
func (r *Registry) CategoryName(index int) string {
	return r.corpus[index].Name
}
