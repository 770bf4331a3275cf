package document

import (
	"os"
	"path/filepath"
	"testing"

	ecucerrors "ecutools/arcfg/pkg/ecuc/errors"
)

const namespacedDoc = `<?xml version="1.0" encoding="UTF-8"?>
<AUTOSAR xmlns="http://autosar.org/schema/r4.0" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <AR-PACKAGES>
    <AR-PACKAGE>
      <SHORT-NAME>Lin</SHORT-NAME>
      <ELEMENTS>
        <ECUC-MODULE-DEF>
          <SHORT-NAME>LinDriver</SHORT-NAME>
        </ECUC-MODULE-DEF>
      </ELEMENTS>
    </AR-PACKAGE>
  </AR-PACKAGES>
</AUTOSAR>`

func TestIngestor_ParseBytes_Namespaces(t *testing.T) {
	in := NewIngestor()
	root, err := in.ParseBytes([]byte(namespacedDoc), "test.arxml")
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}

	if root.Name != "AUTOSAR" {
		t.Errorf("root.Name = %q, want %q", root.Name, "AUTOSAR")
	}

	ns := in.Namespaces()
	if got := ns[""]; got != "http://autosar.org/schema/r4.0" {
		t.Errorf("default namespace = %q, want autosar r4.0 URI", got)
	}
	if got := ns["xsi"]; got != "http://www.w3.org/2001/XMLSchema-instance" {
		t.Errorf("xsi namespace = %q, want XMLSchema-instance URI", got)
	}
}

func TestIngestor_ParseBytes_DefaultNamespaceFromRoot(t *testing.T) {
	// No explicit xmlns declaration on a prefix the decoder reports, but
	// the root tag is qualified; the default binding must be inferred.
	doc := `<root xmlns="urn:example"><child>x</child></root>`
	in := NewIngestor()
	if _, err := in.ParseBytes([]byte(doc), "x.xml"); err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}
	if got := in.Namespaces()[""]; got != "urn:example" {
		t.Errorf("default namespace = %q, want %q", got, "urn:example")
	}
}

func TestIngestor_ParseBytes_Malformed(t *testing.T) {
	in := NewIngestor()
	_, err := in.ParseBytes([]byte(`<AUTOSAR><BROKEN>`), "broken.arxml")
	if err == nil {
		t.Fatal("ParseBytes() succeeded on malformed input")
	}
	if !ecucerrors.IsKind(err, ecucerrors.KindMalformedDocument) {
		t.Errorf("error kind = %q, want %q", ecucerrors.KindOf(err), ecucerrors.KindMalformedDocument)
	}
}

func TestIngestor_Parse_FileNotFound(t *testing.T) {
	in := NewIngestor()
	_, err := in.Parse(filepath.Join(t.TempDir(), "missing.arxml"))
	if err == nil {
		t.Fatal("Parse() succeeded on missing file")
	}
	if !ecucerrors.IsKind(err, ecucerrors.KindFileNotFound) {
		t.Errorf("error kind = %q, want %q", ecucerrors.KindOf(err), ecucerrors.KindFileNotFound)
	}
}

func TestIngestor_Parse_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.arxml")
	if err := os.WriteFile(path, []byte(namespacedDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	in := NewIngestor()
	root, err := in.Parse(path)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if root.Count() != 7 {
		t.Errorf("Count() = %d, want 7", root.Count())
	}
}

func TestElement_FindAndChildText(t *testing.T) {
	in := NewIngestor()
	root, err := in.ParseBytes([]byte(namespacedDoc), "test.arxml")
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}

	pkgs := root.FindAll("AR-PACKAGE")
	if len(pkgs) != 1 {
		t.Fatalf("FindAll(AR-PACKAGE) returned %d elements, want 1", len(pkgs))
	}
	if got := pkgs[0].ChildText("SHORT-NAME"); got != "Lin" {
		t.Errorf("ChildText(SHORT-NAME) = %q, want %q", got, "Lin")
	}

	moduleDef := root.Find("ECUC-MODULE-DEF")
	if moduleDef == nil {
		t.Fatal("Find(ECUC-MODULE-DEF) returned nil")
	}
	if got := moduleDef.ChildText("SHORT-NAME"); got != "LinDriver" {
		t.Errorf("module short name = %q, want %q", got, "LinDriver")
	}
}

func TestElement_FindAllStopsAtMatch(t *testing.T) {
	doc := `<a><b><b><c/></b></b></a>`
	in := NewIngestor()
	root, err := in.ParseBytes([]byte(doc), "nested.xml")
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}
	// FindAll must not descend into a matched element.
	if got := len(root.FindAll("b")); got != 1 {
		t.Errorf("FindAll(b) returned %d matches, want 1", got)
	}
}
