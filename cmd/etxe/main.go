// Copyright 2022-2025 Hexbee
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command etxe checks etxe configuration files for lexical errors and dumps
// their token streams.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/hexbee-net/etxe/config"
	"github.com/hexbee-net/etxe/lexer"
	"github.com/hexbee-net/etxe/report"
	"github.com/hexbee-net/etxe/scan"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		var exit cli.ExitCoder
		if errors.As(err, &exit) {
			if msg := exit.Error(); msg != "" {
				fmt.Fprintln(os.Stderr, msg)
			}
			os.Exit(exit.ExitCode())
		}
		fmt.Fprintln(os.Stderr, "etxe:", err)
		os.Exit(2)
	}
}

// app holds the state shared by every command.
type app struct {
	stdout, stderr io.Writer
	logger         *logrus.Logger
	config         *config.Config
}

func newApp(stdout, stderr io.Writer) *cli.App {
	a := &app{stdout: stdout, stderr: stderr, logger: logrus.New()}
	a.logger.SetOutput(stderr)
	a.logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return &cli.App{
		Name:                   "etxe",
		Usage:                  "infrastructure as code done right",
		Writer:                 stdout,
		ErrWriter:              stderr,
		UseShortOptionHandling: true,
		// Exit codes are handled by main, so that tests can observe them.
		ExitErrHandler: func(*cli.Context, error) {},

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: config.DefaultPath,
				Usage: "load project configuration from `FILE`",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log every token and context change",
			},
			&cli.BoolFlag{
				Name:  "color",
				Usage: "render diagnostics in color",
			},
		},
		Before: a.before,

		Commands: []*cli.Command{
			{
				Name:     "check",
				Category: "Main commands",
				Usage:    "Check whether the configuration is valid",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "input",
						Value: ".",
						Usage: "check the files under `DIR`",
					},
				},
				Action: a.check,
			},
			{
				Name:      "tokens",
				Category:  "Debugging commands",
				Usage:     "Print the tokens of a file",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: "tsv",
						Usage: "output `FORMAT`, tsv or yaml",
					},
				},
				Action: a.tokens,
			},
			{
				Name:      "inspect",
				Category:  "Debugging commands",
				Usage:     "Print the token at a position in a file",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "at",
						Required: true,
						Usage:    "one-based `LINE:COL` position",
					},
				},
				Action: a.inspect,
			},
		},
	}
}

func (a *app) before(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.Bool("debug") {
		cfg.Debug = true
	}
	if c.Bool("color") {
		cfg.Style = report.Colored.String()
	}
	if cfg.Debug {
		a.logger.SetLevel(logrus.DebugLevel)
	}
	a.config = cfg
	return nil
}

// scan lexes paths according to the configuration.
func (a *app) scan(c *cli.Context, paths ...string) ([]*scan.Result, error) {
	parallelism := a.config.Parallelism
	if parallelism == 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}
	return scan.Files(c.Context, paths,
		scan.WithParallelism(parallelism),
		scan.WithLogger(a.logger),
		scan.WithDebug(a.config.Debug),
	)
}

// render writes out the diagnostics of a report.
func (a *app) render(r report.Report) error {
	if len(r) == 0 {
		return nil
	}
	style, err := a.config.ReportStyle()
	if err != nil {
		return err
	}
	_, err = io.WriteString(a.stderr, r.Render(style))
	return err
}

func (a *app) check(c *cli.Context) error {
	input := c.String("input")
	paths, err := scan.Discover(input, a.config.Include, a.config.Exclude)
	if err != nil {
		return err
	}
	a.logger.WithFields(logrus.Fields{"input": input, "files": len(paths)}).Debug("check: discovered")

	results, err := a.scan(c, paths...)
	if err != nil {
		return err
	}

	var all report.Report
	if len(paths) == 0 {
		all.Warn(errors.New("no files to check"),
			report.MentionFile(input),
			report.Help("files are selected by the include globs %q", a.config.Include),
		)
	}
	for _, res := range results {
		all = append(all, res.Report()...)
	}
	if err := a.render(all); err != nil {
		return err
	}
	if all.Count(report.Error) > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

// fileArg lexes the single file named on the command line.
func (a *app) fileArg(c *cli.Context) (*scan.Result, error) {
	if c.NArg() != 1 {
		return nil, fmt.Errorf("%s: expected exactly one FILE argument", c.Command.Name)
	}
	results, err := a.scan(c, c.Args().First())
	if err != nil {
		return nil, err
	}
	return results[0], nil
}

// itemRecord is the YAML form of a [lexer.Item].
type itemRecord struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
	Kind  string `yaml:"kind"`
	Value string `yaml:"value,omitempty"`
}

func (a *app) tokens(c *cli.Context) error {
	res, err := a.fileArg(c)
	if err != nil {
		return err
	}

	switch format := c.String("format"); format {
	case "tsv":
		err = lexer.WriteTSV(a.stdout, res.Items)
	case "yaml":
		records := make([]itemRecord, 0, len(res.Items))
		for _, item := range res.Items {
			kind, value := item.Fields()
			records = append(records, itemRecord{
				Start: item.Span.Start.String(),
				End:   item.Span.End.String(),
				Kind:  kind,
				Value: value,
			})
		}
		enc := yaml.NewEncoder(a.stdout)
		if err = enc.Encode(records); err == nil {
			err = enc.Close()
		}
	default:
		return fmt.Errorf("tokens: unknown format %q", format)
	}
	if err != nil {
		return err
	}
	return a.render(res.Report())
}

func (a *app) inspect(c *cli.Context) error {
	var line, col int
	at := c.String("at")
	if _, err := fmt.Sscanf(at, "%d:%d", &line, &col); err != nil {
		return fmt.Errorf("inspect: invalid position %q: %w", at, err)
	}

	res, err := a.fileArg(c)
	if err != nil {
		return err
	}
	offset, ok := res.File.Offset(line-1, col-1)
	if !ok {
		return fmt.Errorf("inspect: %s has no position %s", res.Path, at)
	}

	item, ok := lexer.NewIndex(res.Items).At(offset)
	if !ok {
		fmt.Fprintf(a.stdout, "no token at %s\n", at)
	} else if err := lexer.WriteTSV(a.stdout, []lexer.Item{item}); err != nil {
		return err
	}

	for _, d := range res.Diagnostics {
		if d.Span.Contains(offset) {
			fmt.Fprintf(a.stdout, "%v\t%v\tdiagnostic\t%s\n", d.Span.Start, d.Span.End, d.Value.String())
		}
	}
	return nil
}
