package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tagforge/tagforge/internal/config"
	"github.com/tagforge/tagforge/pkg/parse"
	"github.com/tagforge/tagforge/pkg/render"
)

func fmtCmd(verbose *bool) *cobra.Command {
	var (
		write   bool
		pretty  bool
		compact bool
	)

	cmd := &cobra.Command{
		Use:   "fmt [files...]",
		Short: "Parse and re-render HTML documents",
		Long: `Fmt parses each input document and re-renders it through the
renderer, normalizing attribute order, quoting, and entity escaping.

With no arguments, fmt reads from stdin and writes to stdout.
With --write, files are rewritten in place. Formatting options come
from tagforge.json in the working directory (or any parent), unless
overridden by flags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*verbose)
			defer logger.Sync()

			cfg, err := config.Load(".")
			if err != nil {
				logger.Warn("config load failed, using defaults", zap.Error(err))
			}
			if cmd.Flags().Changed("pretty") {
				cfg.Pretty = pretty
			}
			if compact {
				cfg.Pretty = false
			}

			renderer := render.NewRenderer(render.Config{
				Pretty: cfg.Pretty,
				Indent: cfg.Indent,
			})

			if len(args) == 0 {
				return formatStream(os.Stdin, os.Stdout, renderer, logger)
			}

			for _, path := range args {
				if err := formatFile(path, renderer, write, logger); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Rewrite files in place")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent output")
	cmd.Flags().BoolVar(&compact, "compact", false, "Emit output on a single line")

	return cmd
}

func formatStream(in io.Reader, out io.Writer, renderer *render.Renderer, logger *zap.Logger) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	formatted, err := format(data, renderer, logger)
	if err != nil {
		return err
	}
	_, err = out.Write(formatted)
	return err
}

func formatFile(path string, renderer *render.Renderer, write bool, logger *zap.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	formatted, err := format(data, renderer, logger)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if !write {
		_, err = os.Stdout.Write(formatted)
		return err
	}
	if err := os.WriteFile(path, formatted, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logger.Debug("formatted", zap.String("path", path), zap.Int("bytes", len(formatted)))
	return nil
}

func format(data []byte, renderer *render.Renderer, logger *zap.Logger) ([]byte, error) {
	element, err := parse.Parse(string(data))
	if err != nil {
		var perr *parse.Error
		if errors.As(err, &perr) {
			logger.Debug("parse failed", zap.Int("offset", perr.Offset))
		}
		return nil, err
	}

	out, err := renderer.Render(element.ToNode())
	if err != nil {
		return nil, err
	}
	return append([]byte(out.HTML), '\n'), nil
}
