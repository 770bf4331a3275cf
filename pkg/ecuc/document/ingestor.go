package document

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"strings"

	ecucerrors "ecutools/arcfg/pkg/ecuc/errors"
)

// Ingestor parses one document per call and retains the namespace bindings
// harvested from the most recent parse.
type Ingestor struct {
	namespaces map[string]string
}

// NewIngestor creates an Ingestor.
func NewIngestor() *Ingestor {
	return &Ingestor{namespaces: map[string]string{}}
}

// Namespaces returns the prefix-to-URI bindings collected by the last parse.
// The default namespace, when present, is stored under the empty prefix.
func (in *Ingestor) Namespaces() map[string]string {
	return in.namespaces
}

// Parse reads and parses the file at path, returning the root element.
// It fails with KindFileNotFound when the path does not resolve and
// KindMalformedDocument on XML syntax errors.
func (in *Ingestor) Parse(path string) (*Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ecucerrors.Newf(ecucerrors.KindFileNotFound, "file not found: %s", path).WithPath(path)
		}
		return nil, ecucerrors.Newf(ecucerrors.KindFileNotFound, "cannot read %s: %v", path, err).WithPath(path)
	}
	return in.ParseBytes(data, path)
}

// ParseBytes parses an in-memory document. sourcePath is used only for
// error reporting.
func (in *Ingestor) ParseBytes(data []byte, sourcePath string) (*Element, error) {
	in.namespaces = map[string]string{}
	if err := in.harvestNamespaces(data); err != nil {
		return nil, ecucerrors.Newf(ecucerrors.KindMalformedDocument, "xml syntax error in %s: %v", sourcePath, err).WithPath(sourcePath)
	}

	root, err := buildTree(data)
	if err != nil {
		return nil, ecucerrors.Newf(ecucerrors.KindMalformedDocument, "xml syntax error in %s: %v", sourcePath, err).WithPath(sourcePath)
	}
	if root == nil {
		return nil, ecucerrors.Newf(ecucerrors.KindMalformedDocument, "no root element in %s", sourcePath).WithPath(sourcePath)
	}
	return root, nil
}

// harvestNamespaces is the pre-pass over the whole document: it records
// every xmlns binding and, when no explicit default binding exists, infers
// the default namespace from the root element's qualified name.
func (in *Ingestor) harvestNamespaces(data []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	sawRoot := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		for _, attr := range start.Attr {
			switch {
			case attr.Name.Space == "xmlns":
				in.namespaces[attr.Name.Local] = attr.Value
			case attr.Name.Space == "" && attr.Name.Local == "xmlns":
				in.namespaces[""] = attr.Value
			}
		}
		if !sawRoot {
			sawRoot = true
			if _, ok := in.namespaces[""]; !ok && start.Name.Space != "" {
				in.namespaces[""] = start.Name.Space
			}
		}
	}
	return nil
}

// buildTree is the structural pass: it decodes the token stream into an
// Element tree with local names only.
func buildTree(data []byte) (*Element, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var root *Element
	var stack []*Element
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name.Local, Space: t.Name.Space}
			for _, attr := range t.Attr {
				if attr.Name.Space == "xmlns" || attr.Name.Local == "xmlns" {
					continue
				}
				if el.Attrs == nil {
					el.Attrs = map[string]string{}
				}
				el.Attrs[attr.Name.Local] = attr.Value
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, io.ErrUnexpectedEOF
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, io.ErrUnexpectedEOF
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				text := strings.TrimSpace(string(t))
				if text != "" {
					cur := stack[len(stack)-1]
					if cur.Text == "" {
						cur.Text = text
					} else {
						cur.Text += " " + text
					}
				}
			}
		}
	}
	if len(stack) != 0 {
		return nil, io.ErrUnexpectedEOF
	}
	return root, nil
}
