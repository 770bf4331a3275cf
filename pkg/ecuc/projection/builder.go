package projection

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"

	"ecutools/arcfg/pkg/ecuc/model"
	"ecutools/arcfg/pkg/ecuc/record"
)

// IDMode selects how node ids are derived.
type IDMode string

const (
	// IDByPath uses the node path itself as the id.
	IDByPath IDMode = "path"
	// IDByDigest uses a short content digest of the path, for frontends
	// that need opaque fixed-width ids.
	IDByDigest IDMode = "digest"
)

// Builder renders trees. The zero value uses path ids.
type Builder struct {
	IDMode IDMode
}

func (b *Builder) id(path string) string {
	if path == "" {
		return "root"
	}
	if b.IDMode == IDByDigest {
		sum := sha256.Sum256([]byte(path))
		return hex.EncodeToString(sum[:6])
	}
	return path
}

func newRoot() *Node {
	return &Node{
		ID:       "root",
		Name:     "root",
		Type:     "root",
		Path:     "",
		Metadata: map[string]any{"isExpandable": true, "hasChildren": true},
	}
}

// FromExtraction projects a flat extraction into the node tree. Containers
// whose parent path is unknown attach to the virtual root.
func (b *Builder) FromExtraction(ex *record.Extraction) *Node {
	root := newRoot()
	nodes := map[string]*Node{"": root}

	paths := make([]string, 0, len(ex.Containers))
	for p := range ex.Containers {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, path := range paths {
		rec := ex.Containers[path]
		node := &Node{
			ID:   b.id(path),
			Name: rec.Name,
			Type: NormalizeType("container"),
			Path: path,
			Metadata: map[string]any{
				"description": rec.Description,
			},
		}
		for _, name := range sortedParamNames(rec.Parameters) {
			node.Parameters = append(node.Parameters, b.paramFromRecord(path, rec.Parameters[name]))
		}
		nodes[path] = node
	}
	for _, path := range paths {
		node := nodes[path]
		parent, ok := nodes[parentOf(path)]
		if !ok {
			parent = root
		}
		parent.Children = append(parent.Children, node)
	}
	for _, node := range nodes {
		has := len(node.Children) > 0 || len(node.Parameters) > 0
		node.Metadata["hasChildren"] = has
		node.Metadata["isExpandable"] = has
	}
	root.Metadata["hasChildren"] = true
	root.Metadata["isExpandable"] = true
	return root
}

func (b *Builder) paramFromRecord(containerPath string, p *record.ParameterRecord) *Param {
	value := p.Value
	if value == "" {
		value = p.Default
	}
	return &Param{
		ID:          b.id(containerPath + "/" + p.Name),
		Name:        p.Name,
		Type:        NormalizeType("parameter"),
		Value:       value,
		Description: p.Description,
		Metadata: map[string]any{
			"type":    string(p.Type),
			"default": p.Default,
		},
	}
}

// FromModel projects the live tree, reading each container's
// current-instance values.
func (b *Builder) FromModel(m *model.Model) *Node {
	root := newRoot()
	for _, c := range m.Roots() {
		root.Children = append(root.Children, b.fromContainer(c))
	}
	return root
}

func (b *Builder) fromContainer(c *model.Container) *Node {
	node := &Node{
		ID:   b.id(c.Path),
		Name: c.Name,
		Type: NormalizeType(c.Type),
		Path: c.Path,
		Metadata: map[string]any{
			"multiplicity":    c.Multiplicity,
			"instanceCount":   len(c.Instances),
			"currentInstance": c.Current,
		},
	}
	names := make([]string, 0, len(c.Variables))
	for n := range c.Variables {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, name := range names {
		v := c.Variables[name]
		value := v.DefaultValue()
		if c.Current < len(c.Instances) {
			if cur, ok := c.Instances[c.Current].Variables[name]; ok {
				value = cur
			}
		}
		param := &Param{
			ID:    b.id(c.Path + "/" + name),
			Name:  name,
			Type:  NormalizeType("parameter"),
			Value: value,
			Metadata: map[string]any{
				"default": v.DefaultValue(),
			},
		}
		if v.Definition != nil {
			param.Description = v.Definition.Description
			param.Metadata["type"] = string(v.Definition.Type)
		}
		node.Parameters = append(node.Parameters, param)
	}
	for _, child := range c.Children {
		node.Children = append(node.Children, b.fromContainer(child))
	}
	has := len(node.Children) > 0 || len(node.Parameters) > 0
	node.Metadata["hasChildren"] = has
	node.Metadata["isExpandable"] = has
	return node
}

func sortedParamNames(m map[string]*record.ParameterRecord) []string {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func parentOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i]
		}
	}
	return ""
}
