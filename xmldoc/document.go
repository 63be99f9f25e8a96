// Package xmldoc reads and prunes XML documentation files: a <doc> root whose
// <member name="..."> entries each document one identifier.
package xmldoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
)

// EntryTag is the element name of a documentation entry.
const EntryTag = "member"

// NameAttr is the attribute holding an entry's identifier.
const NameAttr = "name"

// Document is a parsed documentation file.
type Document struct {
	doc *etree.Document
}

// Entry is one documentation entry inside a Document.
type Entry struct {
	el *etree.Element
}

// Load parses a documentation file from r.
func Load(r io.Reader) (*Document, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("parse documentation: %w", err)
	}
	if doc.Root() == nil {
		return nil, errors.New("parse documentation: no root element")
	}
	return &Document{doc: doc}, nil
}

// Parse parses a documentation file held in memory.
func Parse(b []byte) (*Document, error) {
	return Load(bytes.NewReader(b))
}

// LoadFile parses the documentation file at path.
func LoadFile(path string) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("read documentation %s: %w", path, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("read documentation %s: no root element", path)
	}
	return &Document{doc: doc}, nil
}

// Entries returns every <member> element in document order, at any depth.
func (d *Document) Entries() []*Entry {
	els := d.doc.FindElements("//" + EntryTag)
	entries := make([]*Entry, len(els))
	for i, el := range els {
		entries[i] = &Entry{el: el}
	}
	return entries
}

// Len returns the number of entries.
func (d *Document) Len() int {
	return len(d.doc.FindElements("//" + EntryTag))
}

// Names returns the name attribute of every named entry, in document order.
func (d *Document) Names() []string {
	var names []string
	for _, e := range d.Entries() {
		if name, ok := e.Name(); ok {
			names = append(names, name)
		}
	}
	return names
}

// Name returns the entry's name attribute and whether it is present.
func (e *Entry) Name() (string, bool) {
	attr := e.el.SelectAttr(NameAttr)
	if attr == nil {
		return "", false
	}
	return attr.Value, true
}

// NameOf returns the entry's name attribute and whether it is present.
func NameOf(e *Entry) (string, bool) {
	return e.Name()
}

// Remove detaches e from the document together with the indentation text
// immediately before it, so removed entries leave no blank lines. It reports
// whether the entry was still attached.
func (d *Document) Remove(e *Entry) bool {
	parent := e.el.Parent()
	if parent == nil {
		return false
	}
	idx := e.el.Index()
	if idx < 0 {
		return false
	}
	parent.RemoveChildAt(idx)
	if idx > 0 {
		if cd, ok := parent.Child[idx-1].(*etree.CharData); ok && strings.TrimSpace(cd.Data) == "" {
			parent.RemoveChildAt(idx - 1)
		}
	}
	return true
}

// WriteTo serializes the document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return d.doc.WriteTo(w)
}

// Bytes serializes the document.
func (d *Document) Bytes() ([]byte, error) {
	return d.doc.WriteToBytes()
}
