package feed

import "fmt"

// Source produces feed items.
type Source interface {
	Page(generation, page, size int) []string
}

// SourceFunc adapts a function to Source.
type SourceFunc func(generation, page, size int) []string

func (f SourceFunc) Page(generation, page, size int) []string { return f(generation, page, size) }

// NumberedSource labels every item with its position and the refresh that
// produced it.
var NumberedSource = SourceFunc(func(generation, page, size int) []string {
	items := make([]string, size)
	for i := range items {
		items[i] = fmt.Sprintf("Item %d · refresh %d · page %d", i+1, generation, page)
	}
	return items
})
