package arxml

import "encoding/xml"

// Typed representation of the value-file dialect. Field tags use local
// names only, so the decoder matches elements regardless of namespace
// prefix usage in the source. Slice fields absorb both singular and
// list-shaped children transparently.

type autosarDoc struct {
	XMLName  xml.Name    `xml:"AUTOSAR"`
	Packages []arPackage `xml:"AR-PACKAGES>AR-PACKAGE"`
}

type arPackage struct {
	ShortName string          `xml:"SHORT-NAME"`
	Packages  []arPackage     `xml:"AR-PACKAGES>AR-PACKAGE"`
	Elements  packageElements `xml:"ELEMENTS"`
}

type packageElements struct {
	ModuleValues []moduleValues `xml:"ECUC-MODULE-CONFIGURATION-VALUES"`
}

type moduleValues struct {
	ShortName     string           `xml:"SHORT-NAME"`
	DefinitionRef reference        `xml:"DEFINITION-REF"`
	Containers    []containerValue `xml:"CONTAINERS>ECUC-CONTAINER-VALUE"`
}

type containerValue struct {
	ShortName     string           `xml:"SHORT-NAME"`
	DefinitionRef reference        `xml:"DEFINITION-REF"`
	Parameters    parameterValues  `xml:"PARAMETER-VALUES"`
	References    referenceValues  `xml:"REFERENCE-VALUES"`
	SubContainers []containerValue `xml:"SUB-CONTAINERS>ECUC-CONTAINER-VALUE"`
}

type parameterValues struct {
	Numerical []parameterValue `xml:"ECUC-NUMERICAL-PARAM-VALUE"`
	Textual   []parameterValue `xml:"ECUC-TEXTUAL-PARAM-VALUE"`
}

type referenceValues struct {
	References []referenceValue `xml:"ECUC-REFERENCE-VALUE"`
}

type parameterValue struct {
	ShortName     string    `xml:"SHORT-NAME"`
	DefinitionRef reference `xml:"DEFINITION-REF"`
	Value         string    `xml:"VALUE"`
}

type referenceValue struct {
	ShortName     string    `xml:"SHORT-NAME"`
	DefinitionRef reference `xml:"DEFINITION-REF"`
	ValueRef      reference `xml:"VALUE-REF"`
}

// reference is a DEFINITION-REF / VALUE-REF element: a destination type
// attribute plus the reference path as character data.
type reference struct {
	Dest string `xml:"DEST,attr"`
	Ref  string `xml:",chardata"`
}
