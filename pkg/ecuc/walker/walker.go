package walker

import (
	"ecutools/arcfg/pkg/ecuc/document"
	"ecutools/arcfg/pkg/ecuc/record"
)

var moduleTags = map[string]bool{
	"ECUC-MODULE-DEF":                  true,
	"ECUC-MODULE-CONFIGURATION-VALUES": true,
}

// Walker extracts container and parameter records from a raw element
// tree. Zero value is ready to use.
type Walker struct{}

// NewWalker creates a generic walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Extract walks the tree from the root, descending package structure and
// flattening every module definition or module value set it finds. A tree
// with no recognizable modules yields an empty extraction, not an error.
func (w *Walker) Extract(root *document.Element) (*record.Extraction, error) {
	out := record.NewExtraction()
	packages := root.FindAll("AR-PACKAGE")
	if len(packages) == 0 {
		// No package structure. Scan the whole tree for modules, then
		// fall back to the attribute-carried xdm nesting.
		for _, mod := range findModules(root) {
			w.flattenModule(mod, out)
		}
		if out.Empty() {
			w.walkXDM(root, "", out)
		}
		return out, nil
	}
	for _, pkg := range packages {
		w.walkPackage(pkg, out)
	}
	return out, nil
}

func (w *Walker) walkPackage(pkg *document.Element, out *record.Extraction) {
	out.Stats.Packages++
	if elements := pkg.Child("ELEMENTS"); elements != nil {
		for _, el := range elements.Children {
			if moduleTags[el.Name] {
				w.flattenModule(el, out)
			}
		}
	}
	for _, nested := range pkg.FindAll("AR-PACKAGE") {
		w.walkPackage(nested, out)
	}
}

func (w *Walker) flattenModule(mod *document.Element, out *record.Extraction) {
	name, ok := record.LookupChildText(mod, record.ShortNameSynonyms)
	if !ok {
		out.Stats.Skipped++
		return
	}
	kind := record.KindDefinition
	if record.IsContainerValue(mod.Name) || mod.Name == "ECUC-MODULE-CONFIGURATION-VALUES" {
		kind = record.KindValue
	}
	out.AddContainer(&record.ContainerRecord{
		Name:         name,
		Path:         name,
		Kind:         kind,
		Multiplicity: multiplicityOf(mod),
		Description:  descriptionOf(mod),
	})
	w.walkChildContainers(mod, name, out)
}

func (w *Walker) walkChildContainers(el *document.Element, parentPath string, out *record.Extraction) {
	for _, group := range []string{"CONTAINERS", "SUB-CONTAINERS"} {
		list := el.Child(group)
		if list == nil {
			continue
		}
		for _, child := range list.Children {
			if record.IsContainerDef(child.Name) || record.IsContainerValue(child.Name) {
				w.flattenContainer(child, parentPath, out)
			}
		}
	}
}

func (w *Walker) flattenContainer(el *document.Element, parentPath string, out *record.Extraction) {
	name, ok := record.LookupChildText(el, record.ShortNameSynonyms)
	if !ok {
		out.Stats.Skipped++
		return
	}
	kind := record.KindDefinition
	if record.IsContainerValue(el.Name) {
		kind = record.KindValue
	}
	path := parentPath + "/" + name
	out.AddContainer(&record.ContainerRecord{
		Name:         name,
		Path:         path,
		Kind:         kind,
		Multiplicity: multiplicityOf(el),
		Description:  descriptionOf(el),
	})
	for _, group := range []string{"PARAMETERS", "REFERENCES", "PARAMETER-VALUES", "REFERENCE-VALUES"} {
		list := el.Child(group)
		if list == nil {
			continue
		}
		for _, p := range list.Children {
			w.flattenParameter(p, path, out)
		}
	}
	w.walkChildContainers(el, path, out)
}

func (w *Walker) flattenParameter(el *document.Element, containerPath string, out *record.Extraction) {
	typ, isDef := record.ClassifyParameterDef(el.Name)
	if !isDef && !record.IsParameterValue(el.Name) {
		return
	}
	defRef := el.ChildText("DEFINITION-REF")
	name, ok := record.LookupChildText(el, record.ShortNameSynonyms)
	if !ok {
		if base := refBasename(defRef); base != "" {
			name = base
		} else {
			out.Stats.Skipped++
			return
		}
	}
	rec := &record.ParameterRecord{
		Name:          name,
		Path:          containerPath + "/" + name,
		ContainerPath: containerPath,
		DefinitionRef: defRef,
		Description:   descriptionOf(el),
	}
	if isDef {
		rec.Type = typ
		rec.Default, _ = record.LookupChildText(el, record.DefaultValueSynonyms)
		rec.Constraints = constraintsOf(el)
	} else {
		rec.Type = record.InferTypeFromRef(defRef, record.TypeString)
		if ref := el.ChildText("VALUE-REF"); ref != "" {
			rec.Value = ref
			rec.Type = record.TypeReference
		} else {
			rec.Value = el.ChildText("VALUE")
		}
	}
	out.AddParameter(rec)
}

func multiplicityOf(el *document.Element) string {
	if upper := el.ChildText("UPPER-MULTIPLICITY"); upper != "" {
		return upper
	}
	if el.Child("UPPER-MULTIPLICITY-INFINITE") != nil {
		return "*"
	}
	return "1"
}

func descriptionOf(el *document.Element) string {
	for _, tag := range record.DescriptionSynonyms {
		d := el.Child(tag)
		if d == nil {
			continue
		}
		if l2 := d.ChildText("L-2"); l2 != "" {
			return l2
		}
		if d.Text != "" {
			return d.Text
		}
	}
	return ""
}

func constraintsOf(el *document.Element) *record.Constraints {
	c := &record.Constraints{
		Min:               el.ChildText("MIN"),
		Max:               el.ChildText("MAX"),
		LowerMultiplicity: el.ChildText("LOWER-MULTIPLICITY"),
		UpperMultiplicity: el.ChildText("UPPER-MULTIPLICITY"),
	}
	if *c == (record.Constraints{}) {
		return nil
	}
	return c
}

func findModules(root *document.Element) []*document.Element {
	var found []*document.Element
	for tag := range moduleTags {
		found = append(found, root.FindAll(tag)...)
	}
	return found
}

func refBasename(ref string) string {
	for i := len(ref) - 1; i >= 0; i-- {
		if ref[i] == '/' {
			return ref[i+1:]
		}
	}
	return ref
}
