package ecuc

import (
	"log/slog"
	"os"

	"ecutools/arcfg/pkg/ecuc/document"
	"ecutools/arcfg/pkg/ecuc/errors"
	"ecutools/arcfg/pkg/ecuc/model"
	"ecutools/arcfg/pkg/ecuc/projection"
	"ecutools/arcfg/pkg/ecuc/record"
)

// Options configures a Processor.
type Options struct {
	// Shape overrides the built-in hierarchy applied to xdm documents.
	Shape *model.Shape
	// Unmatched is the policy for extracted containers outside the shape.
	Unmatched model.UnmatchedPolicy
	// IDMode selects projection node ids.
	IDMode projection.IDMode
	Logger *slog.Logger
}

// Metadata summarizes one parsed document.
type Metadata struct {
	RootTag         string `json:"rootTag"`
	TotalElements   int    `json:"totalElements"`
	TotalContainers int    `json:"totalContainers"`
	TotalParameters int    `json:"totalParameters"`
}

// Result is the complete outcome of parsing one document.
type Result struct {
	FileType   Dialect            `json:"fileType"`
	FilePath   string             `json:"filePath"`
	Strategy   string             `json:"strategy"`
	Tree       *projection.Node   `json:"treeStructure"`
	Metadata   Metadata           `json:"metadata"`
	Extraction *record.Extraction `json:"-"`
	Model      *model.Model       `json:"-"`
	Namespaces map[string]string  `json:"-"`
}

// Processor parses configuration documents into results.
type Processor struct {
	opts   Options
	logger *slog.Logger
}

// NewProcessor creates a processor.
func NewProcessor(opts Options) *Processor {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{opts: opts, logger: logger}
}

// ParseFile ingests, extracts, models and projects one document. The
// dialect's strategies run in fallback order; when every strategy fails
// or yields nothing the document is reported as an unsupported dialect.
func (p *Processor) ParseFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.KindFileNotFound, "file does not exist").WithPath(path)
		}
		return nil, errors.Newf(errors.KindFileNotFound, "cannot read %s: %v", path, err).WithPath(path)
	}
	return p.parse(data, path)
}

func (p *Processor) parse(data []byte, path string) (*Result, error) {
	ingestor := document.NewIngestor()
	root, err := ingestor.ParseBytes(data, path)
	if err != nil {
		return nil, err
	}
	dialect := DetectDialect(path)

	var extraction *record.Extraction
	var strategyName string
	for _, strategy := range PolicyFor(dialect).Strategies {
		ex, err := strategy.Extract(data, root)
		if err != nil {
			p.logger.Warn("parser strategy failed",
				"strategy", strategy.Name(), "path", path, "error", err)
			continue
		}
		if ex.Empty() {
			p.logger.Debug("parser strategy yielded nothing",
				"strategy", strategy.Name(), "path", path)
			continue
		}
		extraction, strategyName = ex, strategy.Name()
		break
	}
	if extraction == nil {
		return nil, errors.New(errors.KindUnsupportedDialect,
			"no parser strategy recognized the document").WithPath(path)
	}
	if extraction.Stats.Skipped > 0 {
		p.logger.Debug("unnamed elements skipped",
			"path", path, "skipped", extraction.Stats.Skipped)
	}

	m, err := model.New(extraction, p.modelOptions(dialect))
	if err != nil {
		return nil, err
	}

	builder := &projection.Builder{IDMode: p.opts.IDMode}
	var tree *projection.Node
	if dialect == DialectXDM {
		tree = builder.FromModel(m)
	} else {
		tree = builder.FromExtraction(extraction)
	}
	stats := projection.Count(tree)

	return &Result{
		FileType: dialect,
		FilePath: path,
		Strategy: strategyName,
		Tree:     tree,
		Metadata: Metadata{
			RootTag:         root.Name,
			TotalElements:   root.Count(),
			TotalContainers: stats.Containers,
			TotalParameters: stats.Parameters,
		},
		Extraction: extraction,
		Model:      m,
		Namespaces: ingestor.Namespaces(),
	}, nil
}

func (p *Processor) modelOptions(dialect Dialect) model.Options {
	opts := model.Options{Unmatched: p.opts.Unmatched}
	if dialect == DialectXDM {
		opts.Shape = p.opts.Shape
		if opts.Shape == nil {
			opts.Shape = model.DefaultShape()
		}
	}
	return opts
}

// Locate resolves a node path inside a result's tree.
func Locate(res *Result, path string) (*projection.Node, error) {
	if node := projection.Find(res.Tree, path); node != nil {
		return node, nil
	}
	return nil, errors.New(errors.KindUnknownPath, "node does not exist").WithPath(path)
}
