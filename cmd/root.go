package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "reportguard",
	Short: "reportguard - normalized JSON/HTML reports from static-analysis findings",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
