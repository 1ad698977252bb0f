package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/framechart/pkg/cache"
)

// cacheCommand groups the subcommands that inspect and clear the on-disk
// cache used by render and layout.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the layout and artifact cache",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "info",
			Short: "Show cache location, entry count and size",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withCache(func(dir string, fc *cache.FileCache) error {
					entries, size, err := fc.Stats()
					if err != nil {
						return err
					}
					printInfo("%s, %s", plural(entries, "cached file"), humanBytes(size))
					printDetail("Directory: %s", dir)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove all cached layouts and artifacts",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withCache(func(dir string, fc *cache.FileCache) error {
					n, err := fc.Clear()
					if err != nil {
						return err
					}
					printSuccess("Cleared %s", plural(n, "cached file"))
					printDetail("Directory: %s", dir)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the cache directory path",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				dir, err := cacheDir()
				if err != nil {
					return fmt.Errorf("get cache dir: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), dir)
				return nil
			},
		},
	)
	return cmd
}

// withCache opens the CLI cache for fn. A cache directory that was never
// created is reported as empty without creating it.
func withCache(fn func(dir string, fc *cache.FileCache) error) error {
	dir, err := cacheDir()
	if err != nil {
		return fmt.Errorf("get cache dir: %w", err)
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		printInfo("Cache is empty")
		return nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return err
	}
	defer fc.Close()
	return fn(dir, fc)
}

func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
