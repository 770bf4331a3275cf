package projection

import (
	"testing"

	"ecutools/arcfg/pkg/ecuc/model"
	"ecutools/arcfg/pkg/ecuc/record"
)

func sampleExtraction(t *testing.T) *record.Extraction {
	t.Helper()
	ex := record.NewExtraction()
	ex.AddContainer(&record.ContainerRecord{Name: "Lin", Path: "Lin", Kind: record.KindValue, Multiplicity: "1"})
	ex.AddContainer(&record.ContainerRecord{Name: "LinGeneral", Path: "Lin/LinGeneral", Kind: record.KindValue, Multiplicity: "1"})
	ex.AddParameter(&record.ParameterRecord{
		Name:          "LinDevErrorDetect",
		Path:          "Lin/LinGeneral/LinDevErrorDetect",
		ContainerPath: "Lin/LinGeneral",
		Type:          record.TypeBoolean,
		Value:         "true",
	})
	return ex
}

func TestFromExtraction(t *testing.T) {
	root := (&Builder{}).FromExtraction(sampleExtraction(t))
	if root.ID != "root" || root.Type != "root" {
		t.Errorf("root = {ID:%q Type:%q}, want virtual root", root.ID, root.Type)
	}
	if len(root.Children) != 1 {
		t.Fatalf("len(root.Children) = %d, want 1", len(root.Children))
	}

	lin := root.Children[0]
	if lin.Path != "Lin" || lin.Type != "container" {
		t.Errorf("child = {Path:%q Type:%q}, want Lin container", lin.Path, lin.Type)
	}
	if len(lin.Children) != 1 {
		t.Fatalf("len(lin.Children) = %d, want 1", len(lin.Children))
	}

	general := lin.Children[0]
	if len(general.Parameters) != 1 {
		t.Fatalf("len(general.Parameters) = %d, want 1", len(general.Parameters))
	}
	p := general.Parameters[0]
	if p.Name != "LinDevErrorDetect" || p.Value != "true" || p.Type != "parameter" {
		t.Errorf("param = {Name:%q Value:%q Type:%q}", p.Name, p.Value, p.Type)
	}
	if got := p.Metadata["type"]; got != "BOOLEAN" {
		t.Errorf("param metadata type = %v, want BOOLEAN", got)
	}
	if general.Metadata["hasChildren"] != true {
		t.Error("hasChildren = false for node with parameters")
	}
}

func TestFromExtractionOrphanAttachesToRoot(t *testing.T) {
	ex := record.NewExtraction()
	ex.AddContainer(&record.ContainerRecord{Name: "Deep", Path: "Missing/Deep", Kind: record.KindValue, Multiplicity: "1"})
	root := (&Builder{}).FromExtraction(ex)
	if len(root.Children) != 1 || root.Children[0].Path != "Missing/Deep" {
		t.Errorf("orphan container did not attach to the virtual root: %+v", root.Children)
	}
}

func TestFromModel(t *testing.T) {
	m, err := model.New(sampleExtraction(t), model.Options{})
	if err != nil {
		t.Fatalf("model.New() error = %v", err)
	}
	if err := m.SetVariableValue("Lin/LinGeneral", "LinDevErrorDetect", "false", model.CurrentID); err != nil {
		t.Fatalf("SetVariableValue() error = %v", err)
	}

	root := (&Builder{}).FromModel(m)
	general := Find(root, "Lin/LinGeneral")
	if general == nil {
		t.Fatal("Find(Lin/LinGeneral) = nil")
	}
	if got := general.Metadata["instanceCount"]; got != 1 {
		t.Errorf("instanceCount = %v, want 1", got)
	}
	if len(general.Parameters) != 1 {
		t.Fatalf("len(Parameters) = %d, want 1", len(general.Parameters))
	}
	if got := general.Parameters[0].Value; got != "false" {
		t.Errorf("projected value = %q, want current-instance %q", got, "false")
	}
}

func TestDigestIDs(t *testing.T) {
	b := &Builder{IDMode: IDByDigest}
	root := b.FromExtraction(sampleExtraction(t))
	lin := Find(root, "Lin")
	if lin == nil {
		t.Fatal("Find(Lin) = nil")
	}
	if lin.ID == "Lin" {
		t.Error("digest mode still emitted the path as id")
	}
	if len(lin.ID) != 12 {
		t.Errorf("len(ID) = %d, want 12 hex chars", len(lin.ID))
	}
	if root.ID != "root" {
		t.Errorf("root.ID = %q, want %q", root.ID, "root")
	}

	again := b.FromExtraction(sampleExtraction(t))
	if got := Find(again, "Lin").ID; got != lin.ID {
		t.Errorf("digest not stable across builds: %q vs %q", got, lin.ID)
	}
}

func TestNormalizeType(t *testing.T) {
	tests := []struct{ in, want string }{
		{"folder", "container"},
		{"leaf", "container"},
		{"module", "container"},
		{"package", "container"},
		{"variable", "parameter"},
		{"parameter", "parameter"},
		{"root", "root"},
		{"MODULE-DEF", "container"},
		{"", "container"},
	}
	for _, tt := range tests {
		if got := NormalizeType(tt.in); got != tt.want {
			t.Errorf("NormalizeType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCount(t *testing.T) {
	root := (&Builder{}).FromExtraction(sampleExtraction(t))
	s := Count(root)
	if s.Containers != 2 {
		t.Errorf("Containers = %d, want 2", s.Containers)
	}
	if s.Parameters != 1 {
		t.Errorf("Parameters = %d, want 1", s.Parameters)
	}
	if s.Total != 3 {
		t.Errorf("Total = %d, want 3", s.Total)
	}
}

func TestFindMissing(t *testing.T) {
	root := (&Builder{}).FromExtraction(sampleExtraction(t))
	if Find(root, "No/Such/Path") != nil {
		t.Error("Find() found a node for a missing path")
	}
}
