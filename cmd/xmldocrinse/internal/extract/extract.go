package extract

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	xmldocrinse "github.com/trevorprinn/XmlDocRinse"
	"github.com/trevorprinn/XmlDocRinse/cmd/xmldocrinse/internal/app"
	"github.com/trevorprinn/XmlDocRinse/ir"
	"github.com/trevorprinn/XmlDocRinse/provider"
	"github.com/trevorprinn/XmlDocRinse/sink"
)

type Cmd struct {
	Package string `arg:"" optional:"" default:"." help:"Package directory or import path to extract (default: current directory)."`
	Out     string `help:"Output file (default: stdout)." short:"o"`
	Format  string `help:"Output format (default: from the output file's extension, else yaml)."`
}

func (c *Cmd) Run(env *app.Env) error {
	p := &provider.SourceProvider{}
	pattern := c.Package
	if info, err := os.Stat(c.Package); err == nil && info.IsDir() {
		p.Dir = c.Package
		pattern = "."
	}
	m, err := p.Load(env.Context, pattern)
	if err != nil {
		return xmldocrinse.Wrap(xmldocrinse.CodeMetadataLoad, err, "extract "+c.Package)
	}

	format, err := c.format()
	if err != nil {
		return xmldocrinse.Wrap(xmldocrinse.CodeUsage, err, "choose output format")
	}

	var buf bytes.Buffer
	if err := ir.Encode(&buf, m, format); err != nil {
		return xmldocrinse.Wrap(xmldocrinse.CodeInternal, err, "encode metadata")
	}

	if c.Out == "" {
		_, err := env.Stdout.Write(buf.Bytes())
		return err
	}
	out := sink.NewFilesystemSink(filepath.Dir(c.Out))
	if err := out.WriteFile(env.Context, filepath.Base(c.Out), buf.Bytes()); err != nil {
		return xmldocrinse.Wrap(xmldocrinse.CodeWrite, err, "write "+c.Out)
	}
	env.Logger.Info("metadata written",
		slog.String("path", c.Out),
		slog.Int("types", len(m.Types)))
	fmt.Fprintf(env.Stdout, "Wrote '%s'\n", c.Out)
	return nil
}

func (c *Cmd) format() (ir.Format, error) {
	switch {
	case c.Format == string(ir.FormatYAML), c.Format == string(ir.FormatJSON):
		return ir.Format(c.Format), nil
	case c.Format != "":
		return "", fmt.Errorf("unknown format %q (expected yaml or json)", c.Format)
	case c.Out != "":
		return ir.FormatForPath(c.Out)
	default:
		return ir.FormatYAML, nil
	}
}
