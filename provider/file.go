package provider

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/trevorprinn/XmlDocRinse/ir"
)

// FileProvider reads a metadata file written by an extraction tool, or by
// the extract command.
type FileProvider struct {
	// Path is the metadata file. Its extension selects the format.
	Path string
}

// Load decodes the file. A module without a name is named after the file.
func (p *FileProvider) Load(ctx context.Context) (*ir.Module, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	format, err := ir.FormatForPath(p.Path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := ir.Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Path, err)
	}
	if m.Name == "" {
		base := filepath.Base(p.Path)
		m.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return m, nil
}
