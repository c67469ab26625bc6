package web

import (
	"html/template"
	"sync"

	"github.com/naveenspark/skillhub/internal/markup"
)

// Document is the server-side view of one page: a fixed set of named
// containers that controllers mount content into. Each container keeps
// its mount history so a render can be inspected step by step.
type Document struct {
	mu      sync.Mutex
	order   []string
	mounted map[string][]template.HTML
}

// NewDocument creates a document holding the given containers, all empty.
func NewDocument(ids ...string) *Document {
	d := &Document{mounted: make(map[string][]template.HTML, len(ids))}
	for _, id := range ids {
		if _, dup := d.mounted[id]; dup {
			continue
		}
		d.order = append(d.order, id)
		d.mounted[id] = nil
	}
	return d
}

// Has reports whether the container exists.
func (d *Document) Has(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.mounted[id]
	return ok
}

// Mount replaces a container's content. It returns false, and does
// nothing, when the container does not exist.
func (d *Document) Mount(id string, html template.HTML) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	h, ok := d.mounted[id]
	if !ok {
		return false
	}
	d.mounted[id] = append(h, html)
	return true
}

// Content returns the container's current content.
func (d *Document) Content(id string) template.HTML {
	d.mu.Lock()
	defer d.mu.Unlock()
	h := d.mounted[id]
	if len(h) == 0 {
		return ""
	}
	return h[len(h)-1]
}

// History returns every content mounted into the container, oldest first.
func (d *Document) History(id string) []template.HTML {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]template.HTML(nil), d.mounted[id]...)
}

// Containers returns the final content of every container in creation order.
func (d *Document) Containers() []markup.Container {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]markup.Container, 0, len(d.order))
	for _, id := range d.order {
		var html template.HTML
		if h := d.mounted[id]; len(h) > 0 {
			html = h[len(h)-1]
		}
		out = append(out, markup.Container{ID: id, HTML: html})
	}
	return out
}
