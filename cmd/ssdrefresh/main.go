package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"
)

// Rev is set on build time to the git HEAD
var Rev = ""

// Version is incremented using bump2version
const Version = "0.1.0"

var allOptions = []cli.Flag{
	&cli.BoolFlag{
		Name:    "bar",
		Aliases: []string{"b"},
		EnvVars: []string{"SSDREFRESH_BAR"},
		Usage:   "render a progress bar instead of a status line",
	},
	&cli.BoolFlag{
		Name:    "show-current-file",
		Aliases: []string{"current"},
		EnvVars: []string{"SSDREFRESH_SHOW_CURRENT_FILE"},
		Usage:   "name the file being read next to the progress bar",
	},
	&cli.StringFlag{
		Name:    "log",
		Aliases: []string{"log-level"},
		EnvVars: []string{"LOG", "LOG_LEVEL"},
		Value:   "info",
		Usage:   "log level (info|debug|warn|fatal|trace|error|panic)",
	},
}

func newApp(name string, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      name,
		Usage:     "Read every file below a directory to refresh the storage it lives on",
		ArgsUsage: "<directory>",
		Version:   versionString(),
		Flags:     allOptions,
		Writer:    stdout,
		ErrWriter: stderr,
		// Exit codes are returned by run
		ExitErrHandler: func(c *cli.Context, err error) {},
		Action: func(c *cli.Context) error {
			setLogOutput(c.App.ErrWriter)
			setLogLevel(c)
			root, err := parseRoot(c)
			if err != nil {
				return err
			}
			return refresh(c, root)
		},
	}
}

func versionString() string {
	if Rev == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, Rev)
}

func run(args []string, stdout, stderr io.Writer) int {
	name := "ssdrefresh"
	if len(args) > 0 {
		name = filepath.Base(args[0])
	}
	app := newApp(name, stdout, stderr)
	if err := app.Run(args); err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(stderr, msg)
		}
		if exitErr, ok := err.(cli.ExitCoder); ok {
			return exitErr.ExitCode()
		}
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
