// Package names maps surnames and nationality categories to tensors: a
// fixed character alphabet, a category registry, one-hot tensorization and
// a uniform training sampler.
package names

// DefaultLetters is the standard alphabet: ASCII letters in both cases plus
// the four punctuation marks that appear in romanized surnames. Order
// matters, the position of each rune is its one-hot index.
const DefaultLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ .,;'"

// Alphabet maps runes to dense one-hot indices. The zero value is not
// usable, construct with NewAlphabet or use Default.
type Alphabet struct {
	letters string
	index   map[rune]int
}

// NewAlphabet builds an alphabet from an ordered string of unique runes.
// Indices count runes, not bytes, so multi-byte runes are valid letters.
func NewAlphabet(letters string) *Alphabet {
	a := &Alphabet{
		letters: letters,
		index:   make(map[rune]int, len(letters)),
	}
	i := 0
	for _, r := range letters {
		a.index[r] = i
		i++
	}
	return a
}

// Default returns the standard surname alphabet.
func Default() *Alphabet {
	return NewAlphabet(DefaultLetters)
}

// Size returns the number of letters, and therefore the one-hot width.
func (a *Alphabet) Size() int {
	return len(a.index)
}

// Index returns the one-hot index of r. Returns *UnknownLetterError for
// runes outside the alphabet.
func (a *Alphabet) Index(r rune) (int, error) {
	i, ok := a.index[r]
	if !ok {
		return 0, &UnknownLetterError{Letter: r}
	}
	return i, nil
}

// Contains reports whether r is in the alphabet.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// Validate checks that every rune of word is in the alphabet and returns
// the first offender as *UnknownLetterError.
func (a *Alphabet) Validate(word string) error {
	for _, r := range word {
		if !a.Contains(r) {
			return &UnknownLetterError{Letter: r}
		}
	}
	return nil
}

// String returns the ordered letters.
func (a *Alphabet) String() string {
	return a.letters
}
