package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "rotoclone-zone",
	Short: "A markdown blog engine with deferred comments",
	Long: `rotoclone-zone renders a directory of markdown blog entries into a
website, serves it with live reload during writing, and defers loading
the third-party comment widget until a reader actually asks for it.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".rotoclone.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
