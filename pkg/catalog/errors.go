package catalog

import "fmt"

// MalformedEventError reports corrupt static data found while building
// the catalogue. It is fatal to construction: there is no partially
// built catalogue, and it never surfaces from a query.
type MalformedEventError struct {
	Era      Era
	Category string
	Date     string
	Err      error
}

func (e *MalformedEventError) Error() string {
	return fmt.Sprintf("malformed event date %q in %s/%s: %v", e.Date, e.Era, e.Category, e.Err)
}

func (e *MalformedEventError) Unwrap() error { return e.Err }

// UnknownEraError reports an era label that is not Past, Present or
// Future. A well-behaved caller never triggers it, so it fails loudly
// instead of silently returning nothing.
type UnknownEraError struct {
	Era Era
}

func (e *UnknownEraError) Error() string {
	return fmt.Sprintf("unknown era %q", string(e.Era))
}

// UnknownCategoryError reports a category label that does not exist
// under the given era.
type UnknownCategoryError struct {
	Era      Era
	Category string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category %q in era %q", e.Category, string(e.Era))
}

// InvalidQueryError reports an empty or whitespace-only search keyword.
type InvalidQueryError struct {
	Keyword string
}

func (e *InvalidQueryError) Error() string {
	return "search keyword is empty"
}
