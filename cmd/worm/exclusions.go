package worm

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/worm/worm/internal/rules"
)

// exclusionListing is the YAML shape printed by `worm exclusions`.
type exclusionListing struct {
	ExcludedDirs []string `yaml:"excluded_dirs"`
	BinaryExts   []string `yaml:"binary_extensions"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "exclusions",
		Short: "List the built-in directory and extension exclusions",
		Long: `Prints the directory names that are never descended into and the file
extensions that are skipped as binary, as YAML.`,
		RunE: runExclusions,
	}
	rootCmd.AddCommand(cmd)
}

func runExclusions(cmd *cobra.Command, _ []string) error {
	r := rules.Default()
	b, err := yaml.Marshal(exclusionListing{
		ExcludedDirs: r.ExcludedDirs(),
		BinaryExts:   r.BinaryExts(),
	})
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(b))
	return nil
}
