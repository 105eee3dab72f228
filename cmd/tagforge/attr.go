package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tagforge/tagforge/pkg/attrkey"
)

func attrCmd(verbose *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attr [keys...]",
		Short: "Show the wire form of shorthand attribute keys",
		Long: `Attr expands each shorthand attribute key to its wire form,
the name actually written into rendered HTML.

With no arguments, keys are read one per line from stdin.

Examples:
  tagforge attr on_click cls ds_bind_value
  tagforge attr on_keys_ctrl_k__debounce_500ms`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*verbose)
			defer logger.Sync()

			if len(args) > 0 {
				return expandKeys(args, logger)
			}

			scanner := bufio.NewScanner(os.Stdin)
			var keys []string
			for scanner.Scan() {
				line := scanner.Text()
				if line != "" {
					keys = append(keys, line)
				}
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			return expandKeys(keys, logger)
		},
	}

	return cmd
}

func expandKeys(keys []string, logger *zap.Logger) error {
	cache := attrkey.AcquireCache()
	defer attrkey.ReleaseCache(cache)

	var failed bool
	for _, key := range keys {
		transformed, err := cache.Transform(key)
		if err != nil {
			failed = true
			fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s: %s\n", key, err)
			continue
		}
		fmt.Printf("%s\t%s\n", key, transformed.Wire())
		logger.Debug("expanded",
			zap.String("key", key),
			zap.String("wire", transformed.Wire()))
	}
	if failed {
		return errors.New("some keys were invalid")
	}
	return nil
}
