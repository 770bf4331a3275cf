package walker

import (
	"strings"

	"ecutools/arcfg/pkg/ecuc/document"
	"ecutools/arcfg/pkg/ecuc/record"
)

// The xdm dialect nests ctr (container) and var (variable) elements with
// the interesting data in attributes. Grouping elements between them are
// descended through transparently.

func (w *Walker) walkXDM(el *document.Element, parentPath string, out *record.Extraction) {
	for _, child := range el.Children {
		switch child.Name {
		case "ctr":
			w.xdmContainer(child, parentPath, out)
		case "var":
			w.xdmVariable(child, parentPath, out)
		default:
			w.walkXDM(child, parentPath, out)
		}
	}
}

func (w *Walker) xdmContainer(el *document.Element, parentPath string, out *record.Extraction) {
	name := el.Attr("name")
	if name == "" {
		out.Stats.Skipped++
		return
	}
	path := name
	if parentPath != "" {
		path = parentPath + "/" + name
	}
	out.AddContainer(&record.ContainerRecord{
		Name:         name,
		Path:         path,
		Kind:         record.KindValue,
		Multiplicity: "1",
		Description:  attrOr(el, "desc", ""),
	})
	w.walkXDM(el, path, out)
}

func (w *Walker) xdmVariable(el *document.Element, containerPath string, out *record.Extraction) {
	name := el.Attr("name")
	if name == "" || containerPath == "" {
		out.Stats.Skipped++
		return
	}
	def := attrOr(el, "default", "")
	value := strings.TrimSpace(el.Text)
	if value == "" {
		value = el.Attr("value")
	}
	for _, child := range el.Children {
		switch {
		case child.Name == "da" && child.Attr("name") == "DEFAULT":
			if v := child.Attr("value"); v != "" {
				def = v
			}
		case child.Name == "v" && value == "":
			value = strings.TrimSpace(child.Text)
		}
	}
	if value == "" {
		value = def
	}
	out.AddParameter(&record.ParameterRecord{
		Name:          name,
		Path:          containerPath + "/" + name,
		ContainerPath: containerPath,
		Type:          record.InferTypeFromRef(attrOr(el, "type", ""), record.TypeString),
		Default:       def,
		Value:         value,
		Description:   attrOr(el, "desc", ""),
	})
}

func attrOr(el *document.Element, name, fallback string) string {
	if v := el.Attr(name); v != "" {
		return v
	}
	return fallback
}
