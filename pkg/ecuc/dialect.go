package ecuc

import (
	"path/filepath"
	"strings"

	"ecutools/arcfg/pkg/ecuc/arxml"
	"ecutools/arcfg/pkg/ecuc/document"
	"ecutools/arcfg/pkg/ecuc/record"
	"ecutools/arcfg/pkg/ecuc/walker"
)

// Dialect identifies the configuration file family a document belongs to.
type Dialect string

const (
	// DialectValue is an AUTOSAR value file (.arxml).
	DialectValue Dialect = "arxml"
	// DialectDefinition is a module definition file (.bmd, or a file
	// carrying a bswmd marker in its name).
	DialectDefinition Dialect = "bswmd"
	// DialectXDM is a tooling configuration file with a flattened
	// hierarchy (.xdm).
	DialectXDM Dialect = "xdm"
	// DialectUnknown is any other extension. Unknown files get the full
	// fallback chain.
	DialectUnknown Dialect = "unknown"
)

// DetectDialect classifies a document by its file name alone. A bswmd
// marker anywhere in the name wins over the extension, because vendors
// ship definition files with a plain .arxml extension.
func DetectDialect(path string) Dialect {
	base := strings.ToLower(filepath.Base(path))
	if strings.Contains(base, "bswmd") {
		return DialectDefinition
	}
	switch filepath.Ext(base) {
	case ".arxml":
		return DialectValue
	case ".bmd":
		return DialectDefinition
	case ".xdm":
		return DialectXDM
	}
	return DialectUnknown
}

// Strategy is one parser in a fallback chain. A strategy that fails or
// yields an empty extraction hands over to the next one.
type Strategy interface {
	Name() string
	Extract(data []byte, root *document.Element) (*record.Extraction, error)
}

// FallbackPolicy is the ordered strategy chain for one dialect.
type FallbackPolicy struct {
	Strategies []Strategy
}

type schemaStrategy struct {
	extractor *arxml.Extractor
}

func (s *schemaStrategy) Name() string { return "schema" }

func (s *schemaStrategy) Extract(data []byte, _ *document.Element) (*record.Extraction, error) {
	return s.extractor.Extract(data)
}

type walkerStrategy struct {
	walker *walker.Walker
}

func (s *walkerStrategy) Name() string { return "walker" }

func (s *walkerStrategy) Extract(_ []byte, root *document.Element) (*record.Extraction, error) {
	return s.walker.Extract(root)
}

// PolicyFor returns the fallback chain for a dialect. Value files try the
// schema-aware extractor before the generic walker; definition and xdm
// files go straight to the walker.
func PolicyFor(dialect Dialect) FallbackPolicy {
	schema := &schemaStrategy{extractor: arxml.NewExtractor()}
	generic := &walkerStrategy{walker: walker.NewWalker()}
	switch dialect {
	case DialectDefinition, DialectXDM:
		return FallbackPolicy{Strategies: []Strategy{generic}}
	default:
		return FallbackPolicy{Strategies: []Strategy{schema, generic}}
	}
}
