package domain

// Catalog is the immutable, ordered set of questionnaire questions.
// It is constructed once at startup and shared by reference; nothing
// mutates it afterwards, so it is safe for concurrent readers.
type Catalog struct {
	questions []Question
	byID      map[string]*Question

	// per-category grouping, catalog order within a category and
	// first-seen category order across categories
	categoryOrder []Category
	byCategory    map[Category][]Question
}

// NewCatalog builds a catalog from an ordered question list. Every
// question must carry a unique ID and one of the seven fixed categories;
// violations are a programming error in the catalog data.
func NewCatalog(questions []Question) (*Catalog, error) {
	c := &Catalog{
		questions:  make([]Question, len(questions)),
		byID:       make(map[string]*Question, len(questions)),
		byCategory: make(map[Category][]Question),
	}
	copy(c.questions, questions)

	for i := range c.questions {
		q := &c.questions[i]
		if q.ID == "" {
			return nil, NewInvalidInputError("catalog question without ID")
		}
		if !q.Category.IsValid() {
			return nil, NewInvalidCategoryError(string(q.Category))
		}
		if _, dup := c.byID[q.ID]; dup {
			return nil, NewInvalidInputError("duplicate catalog question ID: " + q.ID)
		}
		c.byID[q.ID] = q
		if _, seen := c.byCategory[q.Category]; !seen {
			c.categoryOrder = append(c.categoryOrder, q.Category)
		}
		c.byCategory[q.Category] = append(c.byCategory[q.Category], *q)
	}
	return c, nil
}

// MustNewCatalog is NewCatalog for static catalog data; it panics on
// inconsistent data, which can only happen at process initialization.
func MustNewCatalog(questions []Question) *Catalog {
	c, err := NewCatalog(questions)
	if err != nil {
		panic(err)
	}
	return c
}

// Questions returns the full ordered question sequence.
func (c *Catalog) Questions() []Question {
	out := make([]Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// Len returns the number of questions in the catalog.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// QuestionByID returns the question with the given ID, or nil.
func (c *Catalog) QuestionByID(id string) *Question {
	return c.byID[id]
}

// CategoryOrder returns the categories in first-seen catalog order.
func (c *Catalog) CategoryOrder() []Category {
	out := make([]Category, len(c.categoryOrder))
	copy(out, c.categoryOrder)
	return out
}

// QuestionsByCategory returns the ordered questions of one category.
func (c *Catalog) QuestionsByCategory(category Category) []Question {
	qs := c.byCategory[category]
	out := make([]Question, len(qs))
	copy(out, qs)
	return out
}

// GroupedQuestions returns the per-category grouping, preserving catalog
// order within each category and first-seen order across categories.
func (c *Catalog) GroupedQuestions() map[Category][]Question {
	out := make(map[Category][]Question, len(c.byCategory))
	for cat := range c.byCategory {
		out[cat] = c.QuestionsByCategory(cat)
	}
	return out
}

// RequiredQuestionIDs returns the IDs of all required questions in
// catalog order.
func (c *Catalog) RequiredQuestionIDs() []string {
	var ids []string
	for i := range c.questions {
		if c.questions[i].Required {
			ids = append(ids, c.questions[i].ID)
		}
	}
	return ids
}

// MaxPossibleScore sums max option points times weight over the entire
// catalog. It depends only on the catalog, never on a given answer set.
func (c *Catalog) MaxPossibleScore() int {
	total := 0
	for i := range c.questions {
		total += c.questions[i].MaxPoints() * c.questions[i].Weight
	}
	return total
}
