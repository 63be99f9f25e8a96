package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	xmldocrinse "github.com/trevorprinn/XmlDocRinse"
	"github.com/trevorprinn/XmlDocRinse/cmd/xmldocrinse/internal/app"
	"github.com/trevorprinn/XmlDocRinse/cmd/xmldocrinse/internal/extract"
	"github.com/trevorprinn/XmlDocRinse/cmd/xmldocrinse/internal/rinse"
	"github.com/trevorprinn/XmlDocRinse/cmd/xmldocrinse/internal/surface"
	"github.com/trevorprinn/XmlDocRinse/internal/config"
)

type CLI struct {
	Config    string `help:"Env file with XMLDOCRINSE_* settings." type:"path"`
	LogLevel  string `help:"Log level: debug, info, warn or error."`
	LogFormat string `help:"Log format: text or json."`

	Rinse   rinse.Cmd   `cmd:"" default:"withargs" help:"Remove documentation of non-public members (default command)."`
	Surface surface.Cmd `cmd:"" help:"Print the documentation identifiers of the public surface."`
	Extract extract.Cmd `cmd:"" help:"Write the metadata of a Go package as YAML or JSON."`
	Version VersionCmd  `cmd:"" help:"Print version information."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run(env *app.Env) error {
	fmt.Fprintln(env.Stdout, Version())
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Environ(), os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run parses args and executes the selected command, returning the exit
// status.
func run(ctx context.Context, args, environ []string, stdout, stderr io.Writer) int {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("xmldocrinse"),
		kong.Description("Removes documentation entries for non-public API from an XML documentation file."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		fmt.Fprintf(stderr, "xmldocrinse: error: %v\n", err)
		return 1
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "xmldocrinse: error: %v\n", err)
		return xmldocrinse.CodeUsage.ExitCode()
	}

	env, err := newEnv(ctx, cli, environ, stdout, stderr)
	if err == nil {
		err = kctx.Run(env)
	}
	if runErr := xmldocrinse.AsError(err); runErr != nil {
		fmt.Fprintf(stderr, "xmldocrinse: error: %s\n", runErr.Message)
		return runErr.Code.ExitCode()
	}
	return 0
}

// newEnv layers the global flags over the env file and environment settings.
func newEnv(ctx context.Context, cli *CLI, environ []string, stdout, stderr io.Writer) (*app.Env, error) {
	settings, err := config.Load(cli.Config, environ)
	if err != nil {
		return nil, err
	}
	if cli.LogLevel != "" {
		settings.LogLevel = cli.LogLevel
	}
	if cli.LogFormat != "" {
		settings.LogFormat = cli.LogFormat
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &app.Env{
		Context:  ctx,
		Settings: settings,
		Logger:   settings.Logger(stderr),
		Stdout:   stdout,
	}, nil
}
