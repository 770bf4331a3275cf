package model

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"ecutools/arcfg/pkg/ecuc/errors"
	"ecutools/arcfg/pkg/ecuc/record"
)

// UnmatchedPolicy decides what happens to extracted containers a declared
// shape does not name.
type UnmatchedPolicy string

const (
	// UnmatchedDrop discards containers outside the shape.
	UnmatchedDrop UnmatchedPolicy = "drop"
	// UnmatchedAttach keeps containers outside the shape as extra roots.
	UnmatchedAttach UnmatchedPolicy = "attach"
)

// Options controls model construction.
type Options struct {
	// Shape imposes a canonical hierarchy. Nil builds the tree directly
	// from the extraction's own paths.
	Shape *Shape
	// Unmatched applies only when Shape is set. Empty means UnmatchedDrop.
	Unmatched UnmatchedPolicy
}

// Variable is one configurable value slot of a container. Values holds one
// entry per instance, index-aligned with the instance ids.
type Variable struct {
	Name       string
	Definition *record.ParameterRecord
	Values     []string
}

// DefaultValue is the value a fresh instance starts the variable at.
func (v *Variable) DefaultValue() string {
	if v.Definition == nil {
		return ""
	}
	if v.Definition.Default != "" {
		return v.Definition.Default
	}
	return v.Definition.Value
}

// Instance is one occurrence of a multi-instance container.
type Instance struct {
	ID        int               `json:"id"`
	Name      string            `json:"name"`
	Created   time.Time         `json:"created"`
	Variables map[string]string `json:"variables"`
}

// Container is a node of the live tree. Instance ids are dense and
// zero-based at all times; deleting renumbers the survivors.
type Container struct {
	Name         string
	Path         string
	Type         string
	Multiplicity string
	Children     []*Container
	Variables    map[string]*Variable
	Instances    []*Instance
	Current      int

	parent *Container
}

// Parent returns the owning container, nil for roots.
func (c *Container) Parent() *Container { return c.parent }

func (c *Container) createInstance() (int, error) {
	if c.Multiplicity != "*" {
		if limit, err := strconv.Atoi(c.Multiplicity); err == nil && len(c.Instances) >= limit {
			return 0, errors.Newf(errors.KindInstanceLimitExceeded,
				"container already holds %d of %s instances", len(c.Instances), c.Multiplicity).WithPath(c.Path)
		}
	}
	id := len(c.Instances)
	inst := &Instance{
		ID:        id,
		Name:      fmt.Sprintf("%s_%d", c.Name, id),
		Created:   time.Now(),
		Variables: map[string]string{},
	}
	for name, v := range c.Variables {
		def := v.DefaultValue()
		inst.Variables[name] = def
		for len(v.Values) <= id {
			v.Values = append(v.Values, def)
		}
	}
	c.Instances = append(c.Instances, inst)
	return id, nil
}

func (c *Container) deleteInstance(id int) error {
	if id < 0 || id >= len(c.Instances) {
		return errors.Newf(errors.KindInstanceNotFound, "instance %d does not exist", id).WithPath(c.Path)
	}
	c.Instances = append(c.Instances[:id], c.Instances[id+1:]...)
	for i, inst := range c.Instances {
		inst.ID = i
		inst.Name = fmt.Sprintf("%s_%d", c.Name, i)
	}
	for _, v := range c.Variables {
		if id < len(v.Values) {
			v.Values = append(v.Values[:id], v.Values[id+1:]...)
		}
	}
	if c.Current >= len(c.Instances) {
		c.Current = len(c.Instances) - 1
		if c.Current < 0 {
			c.Current = 0
		}
	}
	return nil
}

func (c *Container) setValue(name, value string, id int) error {
	v, ok := c.Variables[name]
	if !ok {
		return errors.Newf(errors.KindUnknownPath, "variable %q does not exist", name).WithPath(c.Path)
	}
	if id < 0 || id >= len(c.Instances) {
		return errors.Newf(errors.KindInstanceNotFound, "instance %d does not exist", id).WithPath(c.Path)
	}
	c.Instances[id].Variables[name] = value
	for len(v.Values) <= id {
		v.Values = append(v.Values, v.DefaultValue())
	}
	v.Values[id] = value
	return nil
}

func (c *Container) value(name string, id int) (string, error) {
	v, ok := c.Variables[name]
	if !ok {
		return "", errors.Newf(errors.KindUnknownPath, "variable %q does not exist", name).WithPath(c.Path)
	}
	if id < 0 || id >= len(c.Instances) {
		return v.DefaultValue(), nil
	}
	if val, ok := c.Instances[id].Variables[name]; ok {
		return val, nil
	}
	return v.DefaultValue(), nil
}

// Model is the live configuration state for one parsed document.
type Model struct {
	containers map[string]*Container
	roots      []*Container
	history    []ChangeRecord
	unmatched  []string
}

// New builds a model from an extraction. Every container starts with one
// default instance; a container whose multiplicity bound forbids any
// instance stays empty. The bound is enforced on explicit creates, never
// on parsing.
func New(ex *record.Extraction, opts Options) (*Model, error) {
	m := &Model{containers: map[string]*Container{}}
	if opts.Shape == nil {
		m.buildFromExtraction(ex)
	} else {
		m.buildFromShape(opts.Shape, ex)
		policy := opts.Unmatched
		if policy == "" {
			policy = UnmatchedDrop
		}
		m.applyUnmatched(policy, ex)
	}
	for _, c := range m.walkAll() {
		if _, err := c.createInstance(); err != nil {
			if errors.IsKind(err, errors.KindInstanceLimitExceeded) {
				continue
			}
			return nil, err
		}
	}
	return m, nil
}

func (m *Model) buildFromShape(shape *Shape, ex *record.Extraction) {
	for _, name := range sortedShapeNames(shape.Containers) {
		m.addShapeContainer(name, shape.Containers[name], nil, ex)
	}
}

func (m *Model) addShapeContainer(name string, sc *ShapeContainer, parent *Container, ex *record.Extraction) {
	path := name
	if parent != nil {
		path = parent.Path + "/" + name
	}
	c := &Container{
		Name:         name,
		Path:         path,
		Type:         typeOrDefault(sc.Type),
		Multiplicity: multiplicityOrDefault(sc.Multiplicity),
		Variables:    map[string]*Variable{},
		parent:       parent,
	}
	for _, varName := range sc.Variables {
		def := ex.ParameterByName(varName)
		if def == nil {
			continue
		}
		c.Variables[varName] = &Variable{Name: varName, Definition: def}
	}
	m.link(c)
	for _, childName := range sortedShapeNames(sc.Children) {
		m.addShapeContainer(childName, sc.Children[childName], c, ex)
	}
}

func (m *Model) buildFromExtraction(ex *record.Extraction) {
	for _, path := range sortedPaths(ex.Containers) {
		m.addExtractedContainer(ex.Containers[path])
	}
}

func (m *Model) addExtractedContainer(rec *record.ContainerRecord) {
	parent := m.containers[parentOf(rec.Path)]
	typ := "IDENTIFIABLE"
	if parent == nil {
		typ = "MODULE-DEF"
	}
	c := &Container{
		Name:         rec.Name,
		Path:         rec.Path,
		Type:         typ,
		Multiplicity: multiplicityOrDefault(rec.Multiplicity),
		Variables:    map[string]*Variable{},
		parent:       parent,
	}
	for name, p := range rec.Parameters {
		c.Variables[name] = &Variable{Name: name, Definition: p}
	}
	m.link(c)
}

// applyUnmatched handles extraction roots the shape did not claim.
func (m *Model) applyUnmatched(policy UnmatchedPolicy, ex *record.Extraction) {
	for _, path := range sortedPaths(ex.Containers) {
		if _, claimed := m.containers[path]; claimed {
			continue
		}
		if policy == UnmatchedAttach {
			m.addExtractedContainer(ex.Containers[path])
			continue
		}
		m.unmatched = append(m.unmatched, path)
	}
}

func (m *Model) link(c *Container) {
	m.containers[c.Path] = c
	if c.parent == nil {
		m.roots = append(m.roots, c)
	} else {
		c.parent.Children = append(c.parent.Children, c)
	}
}

// Container resolves a path to its live container.
func (m *Model) Container(path string) (*Container, error) {
	c, ok := m.containers[path]
	if !ok {
		return nil, errors.New(errors.KindUnknownPath, "container does not exist").WithPath(path)
	}
	return c, nil
}

// Roots returns the top-level containers in stable order.
func (m *Model) Roots() []*Container { return m.roots }

// Unmatched lists the extracted container paths dropped by the shape
// policy.
func (m *Model) Unmatched() []string { return m.unmatched }

func (m *Model) walkAll() []*Container {
	var all []*Container
	var walk func(c *Container)
	walk = func(c *Container) {
		all = append(all, c)
		for _, child := range c.Children {
			walk(child)
		}
	}
	for _, r := range m.roots {
		walk(r)
	}
	return all
}

func typeOrDefault(t string) string {
	if t == "" {
		return "IDENTIFIABLE"
	}
	return t
}

func multiplicityOrDefault(mul string) string {
	if mul == "" {
		return "1"
	}
	return mul
}

func parentOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i]
		}
	}
	return ""
}

func sortedShapeNames(m map[string]*ShapeContainer) []string {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func sortedPaths(m map[string]*record.ContainerRecord) []string {
	paths := make([]string, 0, len(m))
	for p := range m {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
