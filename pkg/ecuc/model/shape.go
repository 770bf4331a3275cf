package model

import (
	"os"

	"gopkg.in/yaml.v3"

	"ecutools/arcfg/pkg/ecuc/errors"
)

// Shape declares the canonical container hierarchy for a dialect whose
// files flatten it away. Top-level map keys are root container names.
type Shape struct {
	Containers map[string]*ShapeContainer `yaml:"containers"`
}

// ShapeContainer declares one container of a shape.
type ShapeContainer struct {
	Type         string                     `yaml:"type"`
	Multiplicity string                     `yaml:"multiplicity"`
	Variables    []string                   `yaml:"variables"`
	Children     map[string]*ShapeContainer `yaml:"children"`
}

// LoadShape reads a shape declaration from a YAML file.
func LoadShape(path string) (*Shape, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.KindFileNotFound, "shape file does not exist").WithPath(path)
		}
		return nil, err
	}
	return ParseShape(data)
}

// ParseShape decodes a YAML shape declaration.
func ParseShape(data []byte) (*Shape, error) {
	var s Shape
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Newf(errors.KindMalformedDocument, "decode shape: %v", err)
	}
	return &s, nil
}

// DefaultShape is the built-in hierarchy for LIN driver configuration
// files, which carry their containers flattened.
func DefaultShape() *Shape {
	return &Shape{
		Containers: map[string]*ShapeContainer{
			"Lin": {
				Type:         "MODULE-DEF",
				Multiplicity: "*",
				Variables:    []string{"IMPLEMENTATION_CONFIG_VARIANT"},
				Children: map[string]*ShapeContainer{
					"LinDemEventParameterRefs": {
						Type:         "IDENTIFIABLE",
						Multiplicity: "1",
					},
					"LinGeneral": {
						Type:         "IDENTIFIABLE",
						Multiplicity: "1",
						Variables: []string{
							"LinDevErrorDetect", "LinMultiCoreErrorDetect", "LinIndex",
							"LinTimeoutDuration", "LinVersionInfoApi", "LinHwMcuTrigSleepEnable",
							"LinCsrClksel", "LinInitApiMode", "LinInterruptEnable",
						},
					},
					"LinGlobalConfig": {
						Type:         "IDENTIFIABLE",
						Multiplicity: "1",
						Children: map[string]*ShapeContainer{
							"LinChannel": {
								Type:         "IDENTIFIABLE",
								Multiplicity: "*",
								Variables: []string{
									"LinChannelBaudRate", "LinChannelId", "LinChannelWakeupSupport",
									"LinChanAssignedHw", "LinAutoCalcBaudParams", "LinChannelBaudNumerator",
									"LinChannelBaudDenominator", "LinChannelBaudPreScalar", "LinInterByteSpace",
									"LinRxAlternateInputSignal",
								},
							},
						},
					},
					"CommonPublishedInformation": {
						Type:         "IDENTIFIABLE",
						Multiplicity: "1",
						Variables: []string{
							"ArMajorVersion", "ArMinorVersion", "ArPatchVersion",
							"SwMajorVersion", "SwMinorVersion", "SwPatchVersion",
							"ModuleId", "VendorId", "VendorApiInfix", "Release",
						},
					},
				},
			},
		},
	}
}
