package record

import (
	"sort"
	"strings"
)

// The closed tag sets below replace repeated substring probing of tag
// names: every element is classified exactly once at ingestion time and
// the resulting kind travels on the record.

// parameterDefTags maps parameter/reference definition tags (local names)
// to their declared type.
var parameterDefTags = map[string]ParameterType{
	"ECUC-INTEGER-PARAM-DEF":           TypeInteger,
	"ECUC-FLOAT-PARAM-DEF":             TypeFloat,
	"ECUC-STRING-PARAM-DEF":            TypeString,
	"ECUC-TEXTUAL-PARAM-DEF":           TypeString,
	"ECUC-BOOLEAN-PARAM-DEF":           TypeBoolean,
	"ECUC-ENUMERATION-PARAM-DEF":       TypeEnumeration,
	"ECUC-FUNCTION-NAME-DEF":           TypeFunction,
	"ECUC-REFERENCE-DEF":               TypeReference,
	"ECUC-FOREIGN-REFERENCE-DEF":       TypeReference,
	"ECUC-SYMBOLIC-NAME-REFERENCE-DEF": TypeReference,
	"ECUC-CHOICE-REFERENCE-DEF":        TypeReference,
}

// containerDefTags is the closed set of container definition tags.
var containerDefTags = map[string]bool{
	"ECUC-PARAM-CONF-CONTAINER-DEF": true,
	"ECUC-CHOICE-CONTAINER-DEF":     true,
}

// containerValueTags is the closed set of container value tags.
var containerValueTags = map[string]bool{
	"ECUC-CONTAINER-VALUE": true,
}

// parameterValueTags is the closed set of parameter/reference value tags.
var parameterValueTags = map[string]bool{
	"ECUC-NUMERICAL-PARAM-VALUE": true,
	"ECUC-TEXTUAL-PARAM-VALUE":   true,
	"ECUC-REFERENCE-VALUE":       true,
}

// ClassifyParameterDef returns the declared type for a parameter or
// reference definition tag, and whether the tag belongs to the closed set.
func ClassifyParameterDef(local string) (ParameterType, bool) {
	t, ok := parameterDefTags[local]
	return t, ok
}

// IsContainerDef reports whether the local tag names a container definition.
func IsContainerDef(local string) bool {
	return containerDefTags[local]
}

// IsContainerValue reports whether the local tag names a container value.
func IsContainerValue(local string) bool {
	return containerValueTags[local]
}

// IsParameterValue reports whether the local tag names a parameter or
// reference value.
func IsParameterValue(local string) bool {
	return parameterValueTags[local]
}

// InferTypeFromRef derives a parameter type from a definition-reference
// path, falling back to classification by value shape. The reference path
// wins because it names the defining parameter's tag.
func InferTypeFromRef(definitionRef string, fallback ParameterType) ParameterType {
	upper := strings.ToUpper(definitionRef)
	switch {
	case strings.Contains(upper, "INTEGER"):
		return TypeInteger
	case strings.Contains(upper, "FLOAT"):
		return TypeFloat
	case strings.Contains(upper, "BOOLEAN"):
		return TypeBoolean
	case strings.Contains(upper, "ENUMERATION"):
		return TypeEnumeration
	case strings.Contains(upper, "FUNCTION"):
		return TypeFunction
	case strings.Contains(upper, "REFERENCE"):
		return TypeReference
	case strings.Contains(upper, "STRING"), strings.Contains(upper, "TEXTUAL"):
		return TypeString
	}
	return fallback
}

func sortedContainerPaths(m map[string]*ContainerRecord) []string {
	paths := make([]string, 0, len(m))
	for p := range m {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
