package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/orthanc-tools/embedres/internal/config"
	"github.com/orthanc-tools/embedres/internal/generator"
	"github.com/orthanc-tools/embedres/internal/templates"
	"github.com/orthanc-tools/embedres/internal/ui"
	"github.com/orthanc-tools/embedres/version"
	"github.com/spf13/cobra"
)

var forceInit bool

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a starter " + config.DefaultFileName + " manifest",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		path, err := runInit(dir, forceInit)
		if err != nil {
			ui.PrintError(cmd.ErrOrStderr(), "init", err.Error())
			os.Exit(1)
		}
		ui.PrintSuccess(cmd.OutOrStdout(), "manifest", path)
		fmt.Fprintln(cmd.OutOrStdout(), "Next steps:")
		fmt.Fprintf(cmd.OutOrStdout(), "  embedres generate --config %s\n", path)
	},
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing manifest")
	rootCmd.AddCommand(initCmd)
}

// runInit scaffolds a manifest in dir and returns its path.
//
// Parameters:
//   - dir: The directory receiving the manifest; created when missing.
//   - force: Overwrite an existing manifest.
//
// Returns:
//   - string: The path of the written manifest.
//   - error: An error if the manifest exists and force is unset, or writing fails.
func runInit(dir string, force bool) (string, error) {
	path := filepath.Join(dir, config.DefaultFileName)
	if !force {
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			return "", fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	t, err := templates.Parse(templates.Manifest, nil)
	if err != nil {
		return "", err
	}
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data := struct {
		Namespace string
		Version   string
	}{
		Namespace: generator.DefaultNamespace,
		Version:   version.Version,
	}
	if err := t.Execute(f, data); err != nil {
		return "", err
	}
	return path, f.Close()
}
