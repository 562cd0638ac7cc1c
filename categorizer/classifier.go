package categorizer

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Classifier resolves a description against a class table and a subclass
// table. The two lookups are independent of each other.
type Classifier struct {
	classes    *KeywordTable
	subclasses *KeywordTable
	cache      *lru.Cache[string, Result]
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithCache memoizes results for up to size distinct descriptions. Retail
// datasets repeat the same description on many invoice lines. size <= 0
// disables the cache.
func WithCache(size int) Option {
	return func(c *Classifier) {
		if size <= 0 {
			c.cache = nil
			return
		}
		cache, err := lru.New[string, Result](size)
		if err != nil {
			return
		}
		c.cache = cache
	}
}

// NewClassifier builds a classifier over the given tables.
func NewClassifier(classes, subclasses *KeywordTable, opts ...Option) *Classifier {
	c := &Classifier{classes: classes, subclasses: subclasses}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DefaultClassifier uses the built-in product tables.
func DefaultClassifier(opts ...Option) *Classifier {
	return NewClassifier(ProductClassTable(), ProductSubclassTable(), opts...)
}

// Classify lowercases description and returns the first matching class and
// subclass. Matching is plain substring containment, so "card" matches
// "cardboard".
func (c *Classifier) Classify(description string) Result {
	if c.cache != nil {
		if res, ok := c.cache.Get(description); ok {
			return res
		}
	}
	text := lowerText(description)
	res := Result{
		Class:    c.classes.Match(text),
		Subclass: c.subclasses.Match(text),
	}
	if c.cache != nil {
		c.cache.Add(description, res)
	}
	return res
}

// ClassifyOptional treats a nil description as empty text.
func (c *Classifier) ClassifyOptional(description *string) Result {
	if description == nil {
		return c.Classify("")
	}
	return c.Classify(*description)
}
