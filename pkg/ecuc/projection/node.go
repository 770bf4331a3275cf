package projection

// Node is the externally visible tree shape. Field names are part of the
// frontend contract and must not change.
type Node struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Path       string         `json:"path"`
	Children   []*Node        `json:"children"`
	Parameters []*Param       `json:"parameters"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// Param is one parameter entry attached to a node.
type Param struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	Value       string         `json:"value"`
	Description string         `json:"description,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// typeSynonyms maps producer-side node type spellings onto the external
// vocabulary. Unknown spellings normalize to container.
var typeSynonyms = map[string]string{
	"folder":    "container",
	"leaf":      "container",
	"module":    "container",
	"package":   "container",
	"container": "container",
	"root":      "root",
	"parameter": "parameter",
	"variable":  "parameter",
}

// NormalizeType maps a node type spelling onto the external vocabulary.
func NormalizeType(t string) string {
	if normalized, ok := typeSynonyms[t]; ok {
		return normalized
	}
	return "container"
}

// Stats summarizes one projected tree.
type Stats struct {
	Containers int `json:"containers"`
	Parameters int `json:"parameters"`
	Total      int `json:"total"`
}

// Count tallies containers and parameters over the tree. The virtual root
// is not counted as a container.
func Count(root *Node) Stats {
	var s Stats
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Type == "container" {
			s.Containers++
		}
		s.Parameters += len(n.Parameters)
		for _, c := range n.Children {
			walk(c)
		}
	}
	if root != nil {
		walk(root)
	}
	s.Total = s.Containers + s.Parameters
	return s
}

// Find returns the node with the given path, or nil.
func Find(root *Node, path string) *Node {
	if root == nil {
		return nil
	}
	if root.Path == path {
		return root
	}
	for _, c := range root.Children {
		if found := Find(c, path); found != nil {
			return found
		}
	}
	return nil
}
