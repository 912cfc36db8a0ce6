package names

import "fmt"

// UnknownLetterError reports a character outside the alphabet.
type UnknownLetterError struct {
	Letter rune
}

func (e *UnknownLetterError) Error() string {
	return fmt.Sprintf("names: letter %q is not in the alphabet", e.Letter)
}

// UnknownCategoryError reports a category name not present in the registry.
type UnknownCategoryError struct {
	Category string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("names: unknown category %q", e.Category)
}
