package domain

// IndexSnapshot is a flattened, deterministic copy of the lookup tables,
// used to export the index to other systems.
type IndexSnapshot struct {
	Classes      []IndexedClass
	LemmaClasses []IndexLink
	SenseClasses []IndexLink
}

// IndexedClass is one row of the class -> document table.
type IndexedClass struct {
	ID         string
	ShortID    string
	DocumentID string
}

// IndexLink ties a lemma or sense id to a class. Position preserves the
// order of the class list for that key.
type IndexLink struct {
	Key      string
	ClassID  string
	Position int
}
