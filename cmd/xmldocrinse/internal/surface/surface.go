package surface

import (
	"fmt"

	xmldocrinse "github.com/trevorprinn/XmlDocRinse"
	"github.com/trevorprinn/XmlDocRinse/cmd/xmldocrinse/internal/app"
)

type Cmd struct {
	ModulePath string `arg:"" help:"Module metadata file (.json, .yaml) or Go package directory."`
}

// Run prints the module's public surface, one identifier per line.
func (c *Cmd) Run(env *app.Env) error {
	s, err := xmldocrinse.New(c.ModulePath).
		WithLogger(env.Logger).
		WithCacheSize(env.Settings.CacheSize).
		Surface(env.Context)
	if err != nil {
		return err
	}
	for _, id := range s.IDs() {
		fmt.Fprintln(env.Stdout, id)
	}
	return nil
}
