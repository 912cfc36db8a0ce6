package names

import (
	"math/rand"
)

// Example is one training pair.
type Example struct {
	Category string
	Word     string
}

// Sampler draws training examples uniformly with replacement from the
// flattened (category, word) multiset. Sampling is proportional to how many
// words each category contributes, so categories with more names are
// over-represented during training. That imbalance is part of the data
// contract; the sampler never stratifies by category.
type Sampler struct {
	examples []Example
	rng      *rand.Rand
}

// NewSampler creates a sampler over the corpus. The same seed over the same
// corpus reproduces the same draw sequence.
func NewSampler(corpus Corpus, seed int64) *Sampler {
	var examples []Example
	for _, c := range corpus {
		for _, w := range c.Words {
			examples = append(examples, Example{Category: c.Name, Word: w})
		}
	}
	return &Sampler{
		examples: examples,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Len returns the number of (category, word) pairs in the flattened corpus.
func (s *Sampler) Len() int {
	return len(s.examples)
}

// Sample draws the next example. Panics on an empty corpus;
// NewRegistry-validated corpora always have at least one word per category.
func (s *Sampler) Sample() Example {
	return s.examples[s.rng.Intn(len(s.examples))]
}
