package arxml

import (
	"testing"

	"ecutools/arcfg/pkg/ecuc/errors"
	"ecutools/arcfg/pkg/ecuc/record"
)

const valueFile = `<?xml version="1.0" encoding="UTF-8"?>
<AUTOSAR xmlns="http://autosar.org/schema/r4.0">
  <AR-PACKAGES>
    <AR-PACKAGE>
      <SHORT-NAME>Lin</SHORT-NAME>
      <ELEMENTS>
        <ECUC-MODULE-CONFIGURATION-VALUES>
          <SHORT-NAME>Lin</SHORT-NAME>
          <DEFINITION-REF DEST="ECUC-MODULE-DEF">/AUTOSAR/EcucDefs/Lin</DEFINITION-REF>
          <CONTAINERS>
            <ECUC-CONTAINER-VALUE>
              <SHORT-NAME>LinGeneral</SHORT-NAME>
              <DEFINITION-REF DEST="ECUC-PARAM-CONF-CONTAINER-DEF">/AUTOSAR/EcucDefs/Lin/LinGeneral</DEFINITION-REF>
              <PARAMETER-VALUES>
                <ECUC-NUMERICAL-PARAM-VALUE>
                  <DEFINITION-REF DEST="ECUC-BOOLEAN-PARAM-DEF">/AUTOSAR/EcucDefs/Lin/LinGeneral/LinDevErrorDetect</DEFINITION-REF>
                  <VALUE>1</VALUE>
                </ECUC-NUMERICAL-PARAM-VALUE>
                <ECUC-NUMERICAL-PARAM-VALUE>
                  <DEFINITION-REF DEST="ECUC-INTEGER-PARAM-DEF">/AUTOSAR/EcucDefs/Lin/LinGeneral/LinTimeoutDuration</DEFINITION-REF>
                  <VALUE>250</VALUE>
                </ECUC-NUMERICAL-PARAM-VALUE>
                <ECUC-TEXTUAL-PARAM-VALUE>
                  <DEFINITION-REF DEST="ECUC-ENUMERATION-PARAM-DEF">/AUTOSAR/EcucDefs/Lin/LinGeneral/LinChecksumType</DEFINITION-REF>
                  <VALUE>ENHANCED</VALUE>
                </ECUC-TEXTUAL-PARAM-VALUE>
              </PARAMETER-VALUES>
              <SUB-CONTAINERS>
                <ECUC-CONTAINER-VALUE>
                  <SHORT-NAME>LinClockRef</SHORT-NAME>
                  <DEFINITION-REF DEST="ECUC-PARAM-CONF-CONTAINER-DEF">/AUTOSAR/EcucDefs/Lin/LinGeneral/LinClockRef</DEFINITION-REF>
                  <REFERENCE-VALUES>
                    <ECUC-REFERENCE-VALUE>
                      <DEFINITION-REF DEST="ECUC-REFERENCE-DEF">/AUTOSAR/EcucDefs/Lin/LinGeneral/LinClockRef/LinClockSource</DEFINITION-REF>
                      <VALUE-REF DEST="ECUC-CONTAINER-VALUE">/ActiveEcuC/Mcu/McuClockSettingConfig</VALUE-REF>
                    </ECUC-REFERENCE-VALUE>
                  </REFERENCE-VALUES>
                </ECUC-CONTAINER-VALUE>
              </SUB-CONTAINERS>
            </ECUC-CONTAINER-VALUE>
          </CONTAINERS>
        </ECUC-MODULE-CONFIGURATION-VALUES>
      </ELEMENTS>
    </AR-PACKAGE>
  </AR-PACKAGES>
</AUTOSAR>`

func TestExtract(t *testing.T) {
	out, err := NewExtractor().Extract([]byte(valueFile))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got, want := out.Stats.Containers, 3; got != want {
		t.Errorf("Stats.Containers = %d, want %d", got, want)
	}
	if got, want := out.Stats.Parameters, 4; got != want {
		t.Errorf("Stats.Parameters = %d, want %d", got, want)
	}
	if got, want := out.Stats.Packages, 1; got != want {
		t.Errorf("Stats.Packages = %d, want %d", got, want)
	}
	if out.Stats.Skipped != 0 {
		t.Errorf("Stats.Skipped = %d, want 0", out.Stats.Skipped)
	}

	general, ok := out.Containers["Lin/LinGeneral"]
	if !ok {
		t.Fatalf("Containers missing %q", "Lin/LinGeneral")
	}
	if general.Kind != record.KindValue {
		t.Errorf("Kind = %q, want %q", general.Kind, record.KindValue)
	}
	if got, want := len(general.Children), 1; got != want {
		t.Errorf("len(Children) = %d, want %d", got, want)
	}
}

func TestExtractParameterValues(t *testing.T) {
	out, err := NewExtractor().Extract([]byte(valueFile))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	tests := []struct {
		path  string
		typ   record.ParameterType
		value string
	}{
		{"Lin/LinGeneral/LinDevErrorDetect", record.TypeBoolean, "true"},
		{"Lin/LinGeneral/LinTimeoutDuration", record.TypeInteger, "250"},
		{"Lin/LinGeneral/LinChecksumType", record.TypeEnumeration, "ENHANCED"},
		{"Lin/LinGeneral/LinClockRef/LinClockSource", record.TypeReference, "/ActiveEcuC/Mcu/McuClockSettingConfig"},
	}
	for _, tt := range tests {
		p, ok := out.Parameters[tt.path]
		if !ok {
			t.Errorf("Parameters missing %q", tt.path)
			continue
		}
		if p.Type != tt.typ {
			t.Errorf("%s: Type = %q, want %q", tt.path, p.Type, tt.typ)
		}
		if p.Value != tt.value {
			t.Errorf("%s: Value = %q, want %q", tt.path, p.Value, tt.value)
		}
	}
}

func TestExtractNameFallsBackToDefinitionRef(t *testing.T) {
	out, err := NewExtractor().Extract([]byte(valueFile))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	p, ok := out.Parameters["Lin/LinGeneral/LinTimeoutDuration"]
	if !ok {
		t.Fatal("parameter without SHORT-NAME was not named from its definition reference")
	}
	if p.Name != "LinTimeoutDuration" {
		t.Errorf("Name = %q, want %q", p.Name, "LinTimeoutDuration")
	}
}

func TestExtractSkipsUnnamed(t *testing.T) {
	const doc = `<AUTOSAR><AR-PACKAGES><AR-PACKAGE>
	  <SHORT-NAME>P</SHORT-NAME>
	  <ELEMENTS><ECUC-MODULE-CONFIGURATION-VALUES>
	    <SHORT-NAME>Mod</SHORT-NAME>
	    <CONTAINERS><ECUC-CONTAINER-VALUE>
	      <PARAMETER-VALUES>
	        <ECUC-NUMERICAL-PARAM-VALUE><VALUE>5</VALUE></ECUC-NUMERICAL-PARAM-VALUE>
	      </PARAMETER-VALUES>
	    </ECUC-CONTAINER-VALUE></CONTAINERS>
	  </ECUC-MODULE-CONFIGURATION-VALUES></ELEMENTS>
	</AR-PACKAGE></AR-PACKAGES></AUTOSAR>`
	out, err := NewExtractor().Extract([]byte(doc))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got, want := out.Stats.Skipped, 1; got != want {
		t.Errorf("Stats.Skipped = %d, want %d", got, want)
	}
	if got, want := out.Stats.Containers, 1; got != want {
		t.Errorf("Stats.Containers = %d, want %d", got, want)
	}
}

func TestExtractMalformed(t *testing.T) {
	_, err := NewExtractor().Extract([]byte("<AUTOSAR><AR-PACKAGES>"))
	if err == nil {
		t.Fatal("Extract() error = nil, want malformed-document error")
	}
	if !errors.IsKind(err, errors.KindMalformedDocument) {
		t.Errorf("kind = %q, want %q", errors.KindOf(err), errors.KindMalformedDocument)
	}
}

func TestExtractEmptyDocument(t *testing.T) {
	out, err := NewExtractor().Extract([]byte(`<AUTOSAR><AR-PACKAGES><AR-PACKAGE><SHORT-NAME>Empty</SHORT-NAME></AR-PACKAGE></AR-PACKAGES></AUTOSAR>`))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !out.Empty() {
		t.Error("Empty() = false, want true")
	}
}

func TestCoerceValue(t *testing.T) {
	tests := []struct {
		raw  string
		ref  string
		want string
		typ  record.ParameterType
	}{
		{"1", "/Defs/LinDevErrorDetect_BOOLEAN", "true", record.TypeBoolean},
		{"0", "/Defs/LinDevErrorDetect_BOOLEAN", "false", record.TypeBoolean},
		{"42", "/Defs/Something", "42", record.TypeInteger},
		{"3.14", "/Defs/Something", "3.14", record.TypeFloat},
		{"TRUE", "/Defs/Something", "true", record.TypeBoolean},
		{"hello", "/Defs/Something", "hello", record.TypeString},
	}
	for _, tt := range tests {
		got, typ := CoerceValue(tt.raw, tt.ref)
		if got != tt.want || typ != tt.typ {
			t.Errorf("CoerceValue(%q, %q) = (%q, %q), want (%q, %q)",
				tt.raw, tt.ref, got, typ, tt.want, tt.typ)
		}
	}
}
