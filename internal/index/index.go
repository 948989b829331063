// Package index builds the VerbNet lookup tables (lemma, sense id and
// document per class, short id to long id) and answers identifier
// conversions. Two builders fill the same tables: BuildQuick scans raw
// document text with a regular expression, BuildFull walks decoded trees.
//
// An Index is immutable once built and safe for concurrent readers.
package index

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/heartmarshall/verbnet-reader/internal/domain"
)

type documentLister interface {
	ListDocuments(ctx context.Context) ([]string, error)
}

type rawSource interface {
	documentLister
	OpenRaw(ctx context.Context, documentID string) (string, error)
}

type treeSource interface {
	documentLister
	OpenParsed(ctx context.Context, documentID string) (*domain.ClassNode, error)
}

// Index holds the lookup tables derived from a corpus.
type Index struct {
	lemmaToClasses  map[string][]string
	senseToClasses  map[string][]string
	classToDocument map[string]string
	shortToLong     map[string]string
	documents       []string
	documentSet     map[string]bool
}

// Stats summarises an index for logging and metrics.
type Stats struct {
	Documents int
	Classes   int
	Lemmas    int
	SenseIDs  int
}

func newIndex(documents []string) *Index {
	x := &Index{
		lemmaToClasses:  make(map[string][]string),
		senseToClasses:  make(map[string][]string),
		classToDocument: make(map[string]string),
		shortToLong:     make(map[string]string),
		documents:       documents,
		documentSet:     make(map[string]bool, len(documents)),
	}
	for _, d := range documents {
		x.documentSet[d] = true
	}
	return x
}

// addClass records a class and its short id. Later classes with the same
// short id win.
func (x *Index) addClass(classID, documentID string) error {
	short, err := ShortID(classID)
	if err != nil {
		return fmt.Errorf("index class %q in %s: %w", classID, documentID, err)
	}
	x.classToDocument[classID] = documentID
	x.shortToLong[short] = classID
	return nil
}

func (x *Index) addMember(classID, lemma string, senseIDs []string) {
	x.lemmaToClasses[lemma] = append(x.lemmaToClasses[lemma], classID)
	for _, sense := range senseIDs {
		x.senseToClasses[sense] = append(x.senseToClasses[sense], classID)
	}
}

// Stats returns table sizes.
func (x *Index) Stats() Stats {
	return Stats{
		Documents: len(x.documents),
		Classes:   len(x.classToDocument),
		Lemmas:    len(x.lemmaToClasses),
		SenseIDs:  len(x.senseToClasses),
	}
}

// Documents returns every document id in store order.
func (x *Index) Documents() []string {
	return slices.Clone(x.documents)
}

// HasDocument reports whether documentID is part of the corpus.
func (x *Index) HasDocument(documentID string) bool {
	return x.documentSet[documentID]
}

// DocumentOf returns the document that defines classID (long form).
func (x *Index) DocumentOf(classID string) (string, bool) {
	doc, ok := x.classToDocument[classID]
	return doc, ok
}

// ClassesForLemma returns the classes containing lemma, in corpus order.
// A lemma listed twice in one class appears twice.
func (x *Index) ClassesForLemma(lemma string) []string {
	return slices.Clone(x.lemmaToClasses[lemma])
}

// ClassesForSense returns the classes containing a member with senseID.
func (x *Index) ClassesForSense(senseID string) []string {
	return slices.Clone(x.senseToClasses[senseID])
}

// ClassesInDocument returns the sorted ids of every class and subclass
// defined by documentID.
func (x *Index) ClassesInDocument(documentID string) []string {
	var ids []string
	for classID, doc := range x.classToDocument {
		if doc == documentID {
			ids = append(ids, classID)
		}
	}
	slices.Sort(ids)
	return ids
}

// ClassIDs returns every class and subclass id, sorted.
func (x *Index) ClassIDs() []string {
	return slices.Sorted(maps.Keys(x.classToDocument))
}

// Lemmas returns every lemma, sorted.
func (x *Index) Lemmas() []string {
	return slices.Sorted(maps.Keys(x.lemmaToClasses))
}

// SenseIDs returns every sense id, sorted.
func (x *Index) SenseIDs() []string {
	return slices.Sorted(maps.Keys(x.senseToClasses))
}

// Snapshot flattens the tables into deterministic rows.
func (x *Index) Snapshot() domain.IndexSnapshot {
	var snap domain.IndexSnapshot

	for _, classID := range x.ClassIDs() {
		short, _ := ShortID(classID)
		snap.Classes = append(snap.Classes, domain.IndexedClass{
			ID:         classID,
			ShortID:    short,
			DocumentID: x.classToDocument[classID],
		})
	}
	snap.LemmaClasses = links(x.lemmaToClasses)
	snap.SenseClasses = links(x.senseToClasses)

	return snap
}

func links(table map[string][]string) []domain.IndexLink {
	var out []domain.IndexLink
	for _, key := range slices.Sorted(maps.Keys(table)) {
		for i, classID := range table[key] {
			out = append(out, domain.IndexLink{Key: key, ClassID: classID, Position: i})
		}
	}
	return out
}
