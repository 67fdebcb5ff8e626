package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const app = "cvmatch"

var rootCmd = &cobra.Command{
	Use:   app,
	Short: "cvmatch scores resumes against job descriptions",
}

func init() {
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json-logs", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json-logs", rootCmd.PersistentFlags().Lookup("json-logs"))
}
