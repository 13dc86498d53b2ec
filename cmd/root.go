package cmd

import (
	"os"
	"strings"

	"github.com/orthanc-tools/embedres/pkg/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	keyLogLevel = "log.level"
	keyLogFile  = "log.file"
	envPrefix   = "embedres"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "embedres",
	Short: "Embed files and directories into generated C++ sources",
	Long: `embedres turns a declared set of named files and directory trees into a
C++ header/source pair holding their bytes, so that shipped data (web UI
assets, templates, certificates) needs no filesystem at runtime.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return log.Init(viper.GetString(keyLogFile), viper.GetString(keyLogLevel))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	log.Close()
	if err != nil {
		os.Exit(1)
	}
}

// init initializes the root command and its flags.
func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file instead of stderr")
	_ = viper.BindPFlag(keyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(keyLogFile, rootCmd.PersistentFlags().Lookup("log-file"))

	// EMBEDRES_NAMESPACE, EMBEDRES_NO_UPCASE_CHECK, EMBEDRES_LOG_LEVEL, ...
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()
}
