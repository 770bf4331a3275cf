package arxml

import (
	"encoding/xml"
	"strconv"
	"strings"

	"ecutools/arcfg/pkg/ecuc/errors"
	"ecutools/arcfg/pkg/ecuc/record"
)

// Extractor flattens a value-file document into container and parameter
// records. Zero value is ready to use.
type Extractor struct{}

// NewExtractor creates a schema-aware extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract decodes the document into the typed graph and flattens every
// module configuration found. A document that decodes but carries no
// module values yields an empty extraction, not an error.
func (x *Extractor) Extract(data []byte) (*record.Extraction, error) {
	var doc autosarDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Newf(errors.KindMalformedDocument, "decode value file: %v", err)
	}
	out := record.NewExtraction()
	for i := range doc.Packages {
		x.walkPackage(&doc.Packages[i], out)
	}
	return out, nil
}

func (x *Extractor) walkPackage(pkg *arPackage, out *record.Extraction) {
	out.Stats.Packages++
	for i := range pkg.Elements.ModuleValues {
		x.flattenModule(&pkg.Elements.ModuleValues[i], out)
	}
	for i := range pkg.Packages {
		x.walkPackage(&pkg.Packages[i], out)
	}
}

func (x *Extractor) flattenModule(mod *moduleValues, out *record.Extraction) {
	name, ok := resolveName(mod.ShortName, mod.DefinitionRef.Ref)
	if !ok {
		name = "unnamed_module"
	}
	out.AddContainer(&record.ContainerRecord{
		Name:         name,
		Path:         name,
		Kind:         record.KindValue,
		Multiplicity: "1",
	})
	for i := range mod.Containers {
		x.flattenContainer(&mod.Containers[i], name, out)
	}
}

func (x *Extractor) flattenContainer(c *containerValue, parentPath string, out *record.Extraction) {
	name, ok := resolveName(c.ShortName, c.DefinitionRef.Ref)
	if !ok {
		out.Stats.Skipped++
		return
	}
	path := parentPath + "/" + name
	out.AddContainer(&record.ContainerRecord{
		Name:         name,
		Path:         path,
		Kind:         record.KindValue,
		Multiplicity: "1",
	})
	for i := range c.Parameters.Numerical {
		x.flattenParameter(&c.Parameters.Numerical[i], path, out)
	}
	for i := range c.Parameters.Textual {
		x.flattenParameter(&c.Parameters.Textual[i], path, out)
	}
	for i := range c.References.References {
		x.flattenReference(&c.References.References[i], path, out)
	}
	for i := range c.SubContainers {
		x.flattenContainer(&c.SubContainers[i], path, out)
	}
}

func (x *Extractor) flattenParameter(p *parameterValue, containerPath string, out *record.Extraction) {
	name, ok := resolveName(p.ShortName, p.DefinitionRef.Ref)
	if !ok {
		out.Stats.Skipped++
		return
	}
	value, inferred := CoerceValue(p.Value, p.DefinitionRef.Ref)
	out.AddParameter(&record.ParameterRecord{
		Name:          name,
		Path:          containerPath + "/" + name,
		ContainerPath: containerPath,
		Type:          record.InferTypeFromRef(p.DefinitionRef.Ref, inferred),
		Value:         value,
		DefinitionRef: p.DefinitionRef.Ref,
	})
}

func (x *Extractor) flattenReference(r *referenceValue, containerPath string, out *record.Extraction) {
	name, ok := resolveName(r.ShortName, r.DefinitionRef.Ref)
	if !ok {
		out.Stats.Skipped++
		return
	}
	out.AddParameter(&record.ParameterRecord{
		Name:          name,
		Path:          containerPath + "/" + name,
		ContainerPath: containerPath,
		Type:          record.TypeReference,
		Value:         r.ValueRef.Ref,
		DefinitionRef: r.DefinitionRef.Ref,
	})
}

// resolveName picks an element name: its own short name first, then the
// final segment of its definition reference.
func resolveName(shortName, definitionRef string) (string, bool) {
	if shortName != "" {
		return shortName, true
	}
	if definitionRef != "" {
		if base := refBasename(definitionRef); base != "" {
			return base, true
		}
	}
	return "", false
}

func refBasename(ref string) string {
	ref = strings.TrimRight(ref, "/")
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

// CoerceValue normalizes a raw parameter value against its definition
// reference. Numeric text stays as written. A value belonging to a
// boolean definition is rewritten to true/false, with "1" the only truthy
// numeric spelling. The second result is the type the value's own shape
// suggests, used when the reference path names no type.
func CoerceValue(raw, definitionRef string) (string, record.ParameterType) {
	trimmed := strings.TrimSpace(raw)
	if strings.Contains(strings.ToUpper(definitionRef), "BOOLEAN") {
		if trimmed == "1" || strings.EqualFold(trimmed, "true") {
			return "true", record.TypeBoolean
		}
		return "false", record.TypeBoolean
	}
	if _, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return trimmed, record.TypeInteger
	}
	if _, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return trimmed, record.TypeFloat
	}
	if strings.EqualFold(trimmed, "true") || strings.EqualFold(trimmed, "false") {
		return strings.ToLower(trimmed), record.TypeBoolean
	}
	return trimmed, record.TypeString
}
