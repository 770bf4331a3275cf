package model

import (
	"testing"

	"ecutools/arcfg/pkg/ecuc/record"
)

func flatExtraction(t *testing.T) *record.Extraction {
	t.Helper()
	ex := record.NewExtraction()
	ex.AddContainer(&record.ContainerRecord{Name: "Flat", Path: "Flat", Kind: record.KindValue, Multiplicity: "1"})
	ex.AddParameter(&record.ParameterRecord{
		Name:          "LinChannelBaudRate",
		Path:          "Flat/LinChannelBaudRate",
		ContainerPath: "Flat",
		Type:          record.TypeInteger,
		Default:       "19200",
	})
	ex.AddContainer(&record.ContainerRecord{Name: "Orphan", Path: "Orphan", Kind: record.KindValue, Multiplicity: "1"})
	return ex
}

func TestShapeClaimsVariablesByName(t *testing.T) {
	m, err := New(flatExtraction(t), Options{Shape: DefaultShape()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	val, err := m.GetVariableValue("Lin/LinGlobalConfig/LinChannel", "LinChannelBaudRate", CurrentID)
	if err != nil {
		t.Fatalf("GetVariableValue() error = %v", err)
	}
	if val != "19200" {
		t.Errorf("value = %q, want %q", val, "19200")
	}
}

func TestShapeDropsUnmatched(t *testing.T) {
	m, err := New(flatExtraction(t), Options{Shape: DefaultShape()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := m.Container("Orphan"); err == nil {
		t.Error("unmatched container survived the drop policy")
	}
	dropped := m.Unmatched()
	if len(dropped) != 2 {
		t.Fatalf("len(Unmatched()) = %d, want 2", len(dropped))
	}
}

func TestShapeAttachesUnmatched(t *testing.T) {
	m, err := New(flatExtraction(t), Options{Shape: DefaultShape(), Unmatched: UnmatchedAttach})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := m.Container("Orphan"); err != nil {
		t.Errorf("Container(Orphan) error = %v, want attached root", err)
	}
	if len(m.Unmatched()) != 0 {
		t.Errorf("Unmatched() = %v, want empty", m.Unmatched())
	}
}

func TestParseShape(t *testing.T) {
	const src = `
containers:
  Can:
    type: MODULE-DEF
    multiplicity: "1"
    children:
      CanController:
        multiplicity: "*"
        variables: [CanControllerBaudRate]
`
	s, err := ParseShape([]byte(src))
	if err != nil {
		t.Fatalf("ParseShape() error = %v", err)
	}
	can, ok := s.Containers["Can"]
	if !ok {
		t.Fatal("Containers missing Can")
	}
	ctrl, ok := can.Children["CanController"]
	if !ok {
		t.Fatal("Children missing CanController")
	}
	if ctrl.Multiplicity != "*" {
		t.Errorf("Multiplicity = %q, want %q", ctrl.Multiplicity, "*")
	}
	if len(ctrl.Variables) != 1 || ctrl.Variables[0] != "CanControllerBaudRate" {
		t.Errorf("Variables = %v", ctrl.Variables)
	}
}

func TestParseShapeMalformed(t *testing.T) {
	if _, err := ParseShape([]byte("containers: [not a map")); err == nil {
		t.Fatal("ParseShape() error = nil, want decode error")
	}
}

func TestDefaultShapeHierarchy(t *testing.T) {
	m, err := New(record.NewExtraction(), Options{Shape: DefaultShape()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	c, err := m.Container("Lin/LinGlobalConfig/LinChannel")
	if err != nil {
		t.Fatalf("Container() error = %v", err)
	}
	if c.Multiplicity != "*" {
		t.Errorf("Multiplicity = %q, want %q", c.Multiplicity, "*")
	}
	if c.Parent() == nil || c.Parent().Name != "LinGlobalConfig" {
		t.Error("parent link does not point at LinGlobalConfig")
	}
}
