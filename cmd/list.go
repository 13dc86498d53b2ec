package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/orthanc-tools/embedres/internal/catalog"
	"github.com/orthanc-tools/embedres/internal/ui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// listCmd prints the catalog that generate would emit.
var listCmd = &cobra.Command{
	Use:   "list [flags] [<ResourceName> <SourcePath>]...",
	Short: "Show the resources, indices and paths that would be embedded",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args)%2 != 0 {
			return fmt.Errorf("expected <ResourceName> <SourcePath> pairs, got %d arguments", len(args))
		}
		return nil
	},
	PreRunE: bindResourceFlags,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runList(resourceOptionsFromViper(), args, cmd.OutOrStdout()); err != nil {
			ui.PrintError(cmd.ErrOrStderr(), "list", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	addResourceFlags(listCmd)
	rootCmd.AddCommand(listCmd)
}

func runList(opts resourceOptions, args []string, out io.Writer) error {
	p, err := buildPlan(opts, args, false)
	if err != nil {
		return err
	}
	cat, err := buildCatalog(afero.NewOsFs(), p)
	if err != nil {
		return err
	}
	printCatalog(out, cat)
	return nil
}

func printCatalog(out io.Writer, cat *catalog.Catalog) {
	for _, r := range cat.Resources() {
		switch r := r.(type) {
		case *catalog.File:
			fmt.Fprintf(out, "%-20s file       #%-5d %s\n", r.Name, r.Index, r.SourcePath)
		case *catalog.Directory:
			fmt.Fprintf(out, "%-20s directory  %d files in %s\n", r.Name, len(r.Files()), r.Root)
			for _, p := range r.SortedPaths() {
				e, _ := r.Lookup(p)
				fmt.Fprintf(out, "  #%-5d %s\n", e.Index, p)
			}
		}
	}
	fmt.Fprintf(out, "%d buffers\n", cat.Count())
}
