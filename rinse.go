package xmldocrinse

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/trevorprinn/XmlDocRinse/docid"
	"github.com/trevorprinn/XmlDocRinse/provider"
	"github.com/trevorprinn/XmlDocRinse/sink"
	"github.com/trevorprinn/XmlDocRinse/xmldoc"
)

// DefaultBackupSuffix is appended to the documentation file's path to name
// its backup copy.
const DefaultBackupSuffix = ".backup"

// Rinser prunes one documentation file down to the public surface of one
// module. Configure it with the With methods, then call Run.
type Rinser struct {
	modulePath   string
	docPath      string
	logger       *slog.Logger
	sink         sink.OutputSink
	backupSuffix string
	cacheSize    int
	dryRun       bool
}

// Result describes a completed run.
type Result struct {
	ModulePath string
	DocPath    string
	// BackupPath is empty for a dry run.
	BackupPath  string
	SurfaceSize int
	Stats       xmldoc.Stats
}

// New returns a Rinser for the module at modulePath: a metadata file or a
// Go package directory.
func New(modulePath string) *Rinser {
	return &Rinser{
		modulePath:   modulePath,
		backupSuffix: DefaultBackupSuffix,
	}
}

// DefaultDocPath returns the documentation file expected next to a module:
// the module path with its extension replaced by ".xml".
func DefaultDocPath(modulePath string) string {
	return strings.TrimSuffix(modulePath, filepath.Ext(modulePath)) + ".xml"
}

// WithDocPath sets the documentation file. Default is DefaultDocPath.
func (r *Rinser) WithDocPath(path string) *Rinser {
	r.docPath = path
	return r
}

// WithLogger sets a custom logger.
// If not set, slog.Default() will be used.
func (r *Rinser) WithLogger(logger *slog.Logger) *Rinser {
	r.logger = logger
	return r
}

// WithSink sets where the rinsed document is written, under the base name
// of the documentation file. Default is the file's own directory.
func (r *Rinser) WithSink(s sink.OutputSink) *Rinser {
	r.sink = s
	return r
}

// WithBackupSuffix sets the suffix naming the backup copy.
func (r *Rinser) WithBackupSuffix(suffix string) *Rinser {
	r.backupSuffix = suffix
	return r
}

// WithCacheSize bounds the rendered type name cache. Zero disables it.
func (r *Rinser) WithCacheSize(n int) *Rinser {
	r.cacheSize = n
	return r
}

// DryRun makes Run filter without taking a backup or writing.
func (r *Rinser) DryRun(dryRun bool) *Rinser {
	r.dryRun = dryRun
	return r
}

// DocPath returns the documentation file Run will rewrite.
func (r *Rinser) DocPath() string {
	if r.docPath != "" {
		return r.docPath
	}
	return DefaultDocPath(r.modulePath)
}

func (r *Rinser) getLogger() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return slog.Default()
}

// Surface loads the module's metadata and collects its public surface.
func (r *Rinser) Surface(ctx context.Context) (*docid.Surface, error) {
	if r.modulePath == "" {
		return nil, NewError(CodeUsage, "a module path is required")
	}
	if err := requireFile(r.modulePath, "module '%s' not found"); err != nil {
		return nil, err
	}
	return r.surface(ctx)
}

func (r *Rinser) surface(ctx context.Context) (*docid.Surface, error) {
	if r.cacheSize < 0 {
		return nil, Errorf(CodeInvalidConfig, "cache size must be at least 0, got %d", r.cacheSize)
	}
	builder, err := docid.NewBuilder(r.cacheSize)
	if err != nil {
		return nil, Wrap(CodeInvalidConfig, err, "create identifier builder")
	}

	module, err := provider.Load(ctx, r.modulePath)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, Wrap(CodeCanceled, err, "load metadata")
		}
		return nil, Wrap(CodeMetadataLoad, err, "load metadata from "+r.modulePath).
			WithDetail("path", r.modulePath)
	}
	return docid.NewWalker(builder, r.getLogger()).Build(module), nil
}

// Run rinses the documentation file:
//
//  1. both files must exist, otherwise nothing is touched;
//  2. the documentation file is copied to its backup;
//  3. the module's public surface is collected;
//  4. every entry not naming a surface identifier is removed;
//  5. the document is written back.
//
// A dry run skips steps 2 and 5.
func (r *Rinser) Run(ctx context.Context) (*Result, error) {
	logger := r.getLogger()
	if r.modulePath == "" {
		return nil, NewError(CodeUsage, "a module path is required")
	}
	docPath := r.DocPath()
	if err := requireFile(r.modulePath, "module '%s' not found"); err != nil {
		return nil, err
	}
	if err := requireFile(docPath, "XML doc file '%s' not found"); err != nil {
		return nil, err
	}

	result := &Result{ModulePath: r.modulePath, DocPath: docPath}

	if !r.dryRun {
		backup, err := sink.Backup(ctx, docPath, r.backupSuffix)
		if err != nil {
			return nil, Wrap(CodeWrite, err, "back up documentation").WithDetail("path", docPath)
		}
		result.BackupPath = backup
		logger.Info("backup written", slog.String("path", backup))
	}

	surface, err := r.surface(ctx)
	if err != nil {
		return nil, err
	}
	result.SurfaceSize = surface.Len()

	doc, err := xmldoc.LoadFile(docPath)
	if err != nil {
		return nil, Wrap(CodeDocumentLoad, err, "load documentation").WithDetail("path", docPath)
	}
	result.Stats = xmldoc.Filter(doc, surface, xmldoc.FilterOptions{Logger: logger})

	if !r.dryRun {
		if err := r.write(ctx, docPath, doc); err != nil {
			return nil, err
		}
	}

	logger.Info("rinsed",
		slog.String("path", docPath),
		slog.Bool("dry_run", r.dryRun),
		slog.Int("kept", result.Stats.Kept),
		slog.Int("removed", result.Stats.Removed),
		slog.Int("unnamed", result.Stats.Unnamed))
	return result, nil
}

func (r *Rinser) write(ctx context.Context, docPath string, doc *xmldoc.Document) error {
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return Wrap(CodeWrite, err, "serialize documentation")
	}
	out := r.sink
	if out == nil {
		out = sink.NewFilesystemSink(filepath.Dir(docPath))
	}
	if err := out.WriteFile(ctx, filepath.Base(docPath), buf.Bytes()); err != nil {
		return Wrap(CodeWrite, err, "write documentation").WithDetail("path", docPath)
	}
	return nil
}

// requireFile returns a CodeMissingFile error built from format when path
// does not exist.
func requireFile(path, format string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return Errorf(CodeMissingFile, format, path).WithDetail("path", path)
	}
	return Wrap(CodeMissingFile, err, "stat "+path)
}
