package cmd

import (
	"io"
	"os/exec"
	"runtime"

	"github.com/orthanc-tools/embedres/internal/ui"
	"github.com/spf13/cobra"
)

// doctorCmd represents the doctor command.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check for a C++ compiler able to build the generated sources",
	Run: func(cmd *cobra.Command, args []string) {
		ui.PrintHeader(cmd.OutOrStdout(), "Checking environment...")
		checkCompiler(cmd.OutOrStdout(), exec.LookPath)
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// compilers are probed in this order; the first one found is reported.
var compilers = []struct {
	exe  string
	name string
}{
	{"cl.exe", "MSVC (cl.exe)"},
	{"g++", "g++"},
	{"clang++", "clang++"},
	{"c++", "c++"},
}

// checkCompiler reports the first C++ compiler available in PATH and returns
// whether one was found.
func checkCompiler(w io.Writer, lookPath func(string) (string, error)) bool {
	for _, c := range compilers {
		if path, err := lookPath(c.exe); err == nil {
			ui.PrintSuccess(w, "C++ compiler", c.name+" at "+path)
			return true
		}
	}

	ui.PrintWarning(w, "C++ compiler", "NOT FOUND: generated sources cannot be built here")
	if runtime.GOOS == "windows" {
		ui.PrintWarning(w, "tip", "winget install -e --id BrechtSanders.WinLibs.POSIX.UCRT")
	}
	return false
}
