package names

import (
	"github.com/onoma-ml/onoma/tensor"
)

// LetterToTensor encodes a single rune as a [1, alphabetSize] one-hot row.
func LetterToTensor[B tensor.Backend](a *Alphabet, letter rune, backend B) (*tensor.Tensor[B], error) {
	ix, err := a.Index(letter)
	if err != nil {
		return nil, err
	}
	return tensor.OneHot(a.Size(), ix, backend)
}

// WordToTensor encodes a word as a sequence of one-hot rows, one per rune.
// Returns *tensor.EmptySequenceError for the empty string and
// *UnknownLetterError for runes outside the alphabet.
func WordToTensor[B tensor.Backend](a *Alphabet, word string, backend B) ([]*tensor.Tensor[B], error) {
	if word == "" {
		return nil, &tensor.EmptySequenceError{Op: "word to tensor"}
	}

	runes := []rune(word)
	seq := make([]*tensor.Tensor[B], 0, len(runes))
	for _, r := range runes {
		t, err := LetterToTensor(a, r, backend)
		if err != nil {
			return nil, err
		}
		seq = append(seq, t)
	}
	return seq, nil
}

// CategoryToTensor encodes a category name as a [1, numCategories] one-hot
// row, the training target for that category.
func CategoryToTensor[B tensor.Backend](r *Registry, name string, backend B) (*tensor.Tensor[B], error) {
	ix, err := r.CategoryIndex(name)
	if err != nil {
		return nil, err
	}
	return tensor.OneHot(r.NumCategories(), ix, backend)
}
