package main

import (
	"errors"
	"fmt"
	"io"

	opt "github.com/romnn/configo"
	"github.com/romnn/ssdrefresh"
	"github.com/romnn/ssdrefresh/validation"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func setLogOutput(w io.Writer) {
	if w != nil {
		log.SetOutput(w)
	}
}

func setLogLevel(c *cli.Context) {
	level, err := log.ParseLevel(c.String("log"))
	if err != nil {
		log.Warnf("Log level '%s' does not exist.", c.String("log"))
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

func usage(c *cli.Context) string {
	return fmt.Sprintf("Usage: %s [options] %s", c.App.Name, c.App.ArgsUsage)
}

func parseRoot(c *cli.Context) (string, error) {
	if c.Args().Len() != 1 {
		return "", cli.Exit(usage(c), 1)
	}
	root := c.Args().First()
	if err := validation.ValidRoot(root); err != nil {
		log.Debug(err)
		if errors.Is(err, validation.ErrNotDirectory) {
			return "", cli.Exit(fmt.Sprintf("Error: Directory '%s' does not exist.", root), 1)
		}
		return "", cli.Exit(err.Error(), 1)
	}
	return root, nil
}

func parseOptions(c *cli.Context) ssdrefresh.Options {
	return ssdrefresh.Options{
		Output:          c.App.Writer,
		ShowBar:         opt.SetFlag(c.Bool("bar")),
		ShowCurrentFile: opt.SetFlag(c.Bool("show-current-file")),
	}
}

func refresh(c *cli.Context, root string) error {
	r := ssdrefresh.New(root, parseOptions(c))
	result, err := r.Start()
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	if result.State == ssdrefresh.Complete {
		log.WithFields(result.Fields()).Info(result.Summary())
	}
	return nil
}
