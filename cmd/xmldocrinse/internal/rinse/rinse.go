package rinse

import (
	"fmt"

	"github.com/alecthomas/kong"

	xmldocrinse "github.com/trevorprinn/XmlDocRinse"
	"github.com/trevorprinn/XmlDocRinse/cmd/xmldocrinse/internal/app"
)

type Cmd struct {
	ModulePath   string `arg:"" optional:"" help:"Module metadata file (.json, .yaml) or Go package directory."`
	DocPath      string `arg:"" optional:"" help:"XML documentation file (default: module path with .xml extension)."`
	DryRun       bool   `help:"Report what would be removed without writing." short:"n"`
	BackupSuffix string `help:"Suffix of the backup copy (default from settings)."`
}

func (c *Cmd) Run(env *app.Env, kctx *kong.Context) error {
	if c.ModulePath == "" {
		return kctx.PrintUsage(false)
	}

	suffix := env.Settings.BackupSuffix
	if c.BackupSuffix != "" {
		suffix = c.BackupSuffix
	}
	dryRun := c.DryRun || env.Settings.DryRun

	rinser := xmldocrinse.New(c.ModulePath).
		WithLogger(env.Logger).
		WithBackupSuffix(suffix).
		WithCacheSize(env.Settings.CacheSize).
		DryRun(dryRun)
	if c.DocPath != "" {
		rinser.WithDocPath(c.DocPath)
	}

	res, err := rinser.Run(env.Context)
	if err != nil {
		return err
	}

	if dryRun {
		fmt.Fprintf(env.Stdout, "Would remove %d of %d entries from '%s'\n",
			res.Stats.Removed, res.Stats.Total, res.DocPath)
		return nil
	}
	fmt.Fprintf(env.Stdout, "Rinsed '%s'\n", res.DocPath)
	return nil
}
