package app

// document is the root surface of the program. Global styling (the page
// background and the status bar theme badge) keys on its markers.
type document struct {
	markers map[string]bool
}

func newDocument() *document {
	return &document{markers: map[string]bool{}}
}

// SetMarker implements theme.Document.
func (d *document) SetMarker(name string, present bool) {
	if present {
		d.markers[name] = true
		return
	}
	delete(d.markers, name)
}

// Has reports whether a marker is present.
func (d *document) Has(name string) bool {
	return d.markers[name]
}
