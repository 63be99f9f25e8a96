// Package provider implements the metadata sources a rinse run reads type
// information from: a pre-extracted metadata file, or Go source packages.
package provider

import (
	"context"
	"fmt"
	"os"

	"github.com/trevorprinn/XmlDocRinse/ir"
)

// Source is the read-only query interface over a module's type metadata.
// *ir.Module implements it.
type Source interface {
	// ExportedTypes returns the module's top-level types.
	ExportedTypes() []*ir.TypeDescriptor

	// Members returns every declared member of t, whatever its access.
	Members(t *ir.TypeDescriptor) []*ir.MemberDescriptor
}

var _ Source = (*ir.Module)(nil)

// Load reads the module metadata at path. A directory is loaded as a Go
// package with SourceProvider; a .json, .yaml or .yml file is decoded with
// FileProvider. The returned module is linked and validated.
func Load(ctx context.Context, path string) (*ir.Module, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		p := &SourceProvider{Dir: path}
		return p.Load(ctx, ".")
	}
	if _, err := ir.FormatForPath(path); err != nil {
		return nil, fmt.Errorf("cannot load metadata from %s: %w", path, err)
	}
	return (&FileProvider{Path: path}).Load(ctx)
}
