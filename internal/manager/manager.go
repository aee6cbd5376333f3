package manager

import (
	"errors"
	"fmt"
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// ErrDocumentNotFound is returned for URIs that are not open.
var ErrDocumentNotFound = errors.New("document not found")

// DocumentManager holds the current text of every open URI.
type DocumentManager struct {
	mu   sync.Mutex
	docs map[string]string
}

// NewDocumentManager creates an initialized DocumentManager.
func NewDocumentManager() *DocumentManager {
	return &DocumentManager{
		docs: make(map[string]string),
	}
}

// GetDocument returns the current text for a URI.
func (dm *DocumentManager) GetDocument(uri string) (string, error) {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	doc, ok := dm.docs[uri]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrDocumentNotFound, uri)
	}
	return doc, nil
}

// UpdateDocument replaces the text for a URI, opening it if needed.
func (dm *DocumentManager) UpdateDocument(uri string, content string) {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	dm.docs[uri] = content
}

// ApplyChanges applies the content changes of one didChange notification in
// order and returns the resulting text. Ranged changes are spliced in,
// whole-document changes replace the text.
func (dm *DocumentManager) ApplyChanges(uri string, changes []any) (string, error) {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	doc, ok := dm.docs[uri]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrDocumentNotFound, uri)
	}

	for _, raw := range changes {
		switch change := raw.(type) {
		case protocol.TextDocumentContentChangeEvent:
			if change.Range == nil {
				doc = change.Text
				continue
			}
			doc = ApplyTextEdit(*change.Range, change.Text, doc)
		case protocol.TextDocumentContentChangeEventWhole:
			doc = change.Text
		default:
			return "", fmt.Errorf("unexpected change event type %T", raw)
		}
	}

	dm.docs[uri] = doc
	return doc, nil
}

// Release forgets the document for a URI.
func (dm *DocumentManager) Release(uri string) {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	delete(dm.docs, uri)
}

// CloseAll forgets every document.
func (dm *DocumentManager) CloseAll() {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	dm.docs = make(map[string]string)
}
