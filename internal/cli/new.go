package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/framechart/pkg/errors"
	"github.com/matzehuels/framechart/pkg/figfile"
)

// newCommand creates the new command, which writes a sample figure document.
func (c *CLI) newCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "new [file]",
		Short: "Write a sample figure document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "figure.toml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := writeSample(path, force); err != nil {
				return err
			}
			printSuccess("Created %s", path)
			printNextStep("Render it", appName+" render "+path+" -f svg,png")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

// writeSample writes the sample document to path, or to stdout for "-".
func writeSample(path string, force bool) error {
	data, err := figfile.Sample().Encode()
	if err != nil {
		return err
	}
	if path != "-" && !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ErrCodeInvalidPath, "%s already exists (use --force to overwrite)", path)
		}
	}
	return writeFile(path, data)
}
