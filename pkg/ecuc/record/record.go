package record

// ParameterType is the declared type of a configuration parameter.
type ParameterType string

const (
	TypeInteger     ParameterType = "INTEGER"
	TypeFloat       ParameterType = "FLOAT"
	TypeString      ParameterType = "STRING"
	TypeBoolean     ParameterType = "BOOLEAN"
	TypeEnumeration ParameterType = "ENUMERATION"
	TypeReference   ParameterType = "REFERENCE"
	TypeFunction    ParameterType = "FUNCTION"
)

// ContainerKind distinguishes the two source dialects a container record can
// originate from.
type ContainerKind string

const (
	// KindDefinition marks a container parsed from a definition (schema)
	// file.
	KindDefinition ContainerKind = "definition"
	// KindValue marks a container parsed from a value file.
	KindValue ContainerKind = "value"
)

// Constraints carries the optional numeric and multiplicity bounds declared
// on a parameter definition. Values are kept as source text.
type Constraints struct {
	Min               string `json:"min,omitempty"`
	Max               string `json:"max,omitempty"`
	LowerMultiplicity string `json:"lowerMultiplicity,omitempty"`
	UpperMultiplicity string `json:"upperMultiplicity,omitempty"`
}

// ParameterRecord is the flat description of one parameter, produced by a
// parser and consumed (unmodified) by the configuration model.
type ParameterRecord struct {
	Name          string        `json:"name"`
	Path          string        `json:"path"`
	ContainerPath string        `json:"containerPath"`
	Type          ParameterType `json:"type"`
	Default       string        `json:"default"`
	Value         string        `json:"value"`
	DefinitionRef string        `json:"definitionRef,omitempty"`
	Description   string        `json:"description,omitempty"`
	Constraints   *Constraints  `json:"constraints,omitempty"`
}

// ContainerRecord is the flat description of one container.
type ContainerRecord struct {
	Name         string                      `json:"name"`
	Path         string                      `json:"path"`
	Kind         ContainerKind               `json:"kind"`
	Multiplicity string                      `json:"multiplicity"`
	Description  string                      `json:"description,omitempty"`
	Children     []string                    `json:"children"`
	Parameters   map[string]*ParameterRecord `json:"parameters"`
}

// Stats tallies what one extraction pass produced and dropped.
type Stats struct {
	Packages   int `json:"packages"`
	Containers int `json:"containers"`
	Parameters int `json:"parameters"`
	// Skipped counts elements dropped for lack of a resolvable name.
	// Skips are never fatal.
	Skipped int `json:"skipped"`
}

// Extraction is the complete flat output of one parser run. Paths are
// unique within one extraction; both maps are keyed by path.
type Extraction struct {
	Containers map[string]*ContainerRecord `json:"containers"`
	Parameters map[string]*ParameterRecord `json:"parameters"`
	Stats      Stats                       `json:"stats"`
}

// NewExtraction creates an empty extraction.
func NewExtraction() *Extraction {
	return &Extraction{
		Containers: map[string]*ContainerRecord{},
		Parameters: map[string]*ParameterRecord{},
	}
}

// Empty reports whether the extraction yielded no containers and no
// parameters. An empty extraction triggers the fallback chain.
func (e *Extraction) Empty() bool {
	return len(e.Containers) == 0 && len(e.Parameters) == 0
}

// AddContainer registers a container record under its path and links it
// into its parent's child list when the parent is known. A record whose
// path is already taken is rejected, preserving path uniqueness.
func (e *Extraction) AddContainer(c *ContainerRecord) bool {
	if _, exists := e.Containers[c.Path]; exists {
		return false
	}
	if c.Parameters == nil {
		c.Parameters = map[string]*ParameterRecord{}
	}
	e.Containers[c.Path] = c
	e.Stats.Containers++
	if parent := parentPath(c.Path); parent != "" {
		if p, ok := e.Containers[parent]; ok {
			p.Children = append(p.Children, c.Name)
		}
	}
	return true
}

// AddParameter registers a parameter record under its path and links it to
// its owning container.
func (e *Extraction) AddParameter(p *ParameterRecord) bool {
	if _, exists := e.Parameters[p.Path]; exists {
		return false
	}
	e.Parameters[p.Path] = p
	e.Stats.Parameters++
	if c, ok := e.Containers[p.ContainerPath]; ok {
		c.Parameters[p.Name] = p
	}
	return true
}

// ParameterByName returns the first parameter with the given name,
// regardless of owning container. Used when a declared shape references
// variables by bare name.
func (e *Extraction) ParameterByName(name string) *ParameterRecord {
	for _, c := range sortedContainerPaths(e.Containers) {
		if p, ok := e.Containers[c].Parameters[name]; ok {
			return p
		}
	}
	return nil
}

func parentPath(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i]
		}
	}
	return ""
}
