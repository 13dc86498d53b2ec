package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/orthanc-tools/embedres/internal/generator"
	"github.com/orthanc-tools/embedres/internal/ui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate [flags] <targetBasePath> [<ResourceName> <SourcePath>]...",
	Short: "Generate <targetBasePath>.h and <targetBasePath>.cpp embedding the resources",
	Long: `Registers every <ResourceName> <SourcePath> pair in order. A file becomes a
file resource; a directory becomes a directory resource holding every file
below it, except hidden entries and editor backups (names containing '~').

Any failure aborts with a non-zero status. Unless --atomic is given, artifacts
left on disk by a failed run must be regenerated or discarded.`,
	Args:    validateGenerateArgs,
	PreRunE: bindResourceFlags,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGenerate(cmd.Context(), resourceOptionsFromViper(), args, cmd.OutOrStdout()); err != nil {
			ui.PrintError(cmd.ErrOrStderr(), "generate", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	addResourceFlags(generateCmd)
	generateCmd.Flags().Bool(flagAtomic, false, "Write both artifacts to temporary files and replace the targets only on success")
	generateCmd.Flags().Bool(flagLock, false, "Hold <targetBasePath>.lock while generating")
	generateCmd.Flags().Duration(flagLockTimeout, 0, "How long to wait for the lock (default 30s)")
	rootCmd.AddCommand(generateCmd)
}

// validateGenerateArgs requires a target followed by complete pairs, unless a
// manifest provides them.
func validateGenerateArgs(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed(flagConfig) || viper.GetString(flagConfig) != "" {
		if len(args) > 0 && len(args)%2 == 0 {
			return fmt.Errorf("expected [<targetBasePath>] followed by <ResourceName> <SourcePath> pairs, got %d arguments", len(args))
		}
		return nil
	}
	if len(args) < 1 || len(args)%2 == 0 {
		return fmt.Errorf("expected <targetBasePath> followed by <ResourceName> <SourcePath> pairs, got %d arguments", len(args))
	}
	return nil
}

// runGenerate builds the catalog and writes both artifacts.
//
// Parameters:
//   - ctx: Bounds the wait for the target lock.
//   - opts: Flags, environment and manifest location.
//   - args: [<targetBasePath>] followed by name/path pairs.
//   - out: Receives the human-readable summary.
//
// Returns:
//   - error: The first validation or I/O failure.
func runGenerate(ctx context.Context, opts resourceOptions, args []string, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	p, err := buildPlan(opts, args, true)
	if err != nil {
		return err
	}

	fsys := afero.NewOsFs()
	cat, err := buildCatalog(fsys, p)
	if err != nil {
		return err
	}

	// Make sure the destination directory exists
	if dir := filepath.Dir(p.Target); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if err := generator.Generate(ctx, fsys, cat, p.Target, p.Generator); err != nil {
		return err
	}

	ui.PrintSuccess(out, "declarations", p.Target+generator.HeaderExt)
	ui.PrintSuccess(out, "definitions", p.Target+generator.SourceExt)
	ui.PrintSuccess(out, "resources", fmt.Sprintf("%d files, %d directories, %d buffers",
		len(cat.Files()), len(cat.Directories()), cat.Count()))
	return nil
}
