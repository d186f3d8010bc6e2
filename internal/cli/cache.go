package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openmesh-network/meshviz/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the rendered artifact cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached artifacts from the configured backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if b := c.cfg.Cache.Backend; b == "" || b == cache.BackendNone {
				printInfo("Cache is disabled")
				return nil
			}

			store, err := c.openCache(ctx, false)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := cache.Clear(ctx, store); err != nil {
				return fmt.Errorf("clear %s cache: %w", c.cfg.Cache.Backend, err)
			}

			printSuccess("Cleared %s cache", c.cfg.Cache.Backend)
			if c.cfg.Cache.Backend == cache.BackendFile {
				printDetail("Directory: %s", c.cfg.Cache.Dir)
			}
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the file cache directory path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), c.cfg.Cache.Dir)
			return nil
		},
	}
}
