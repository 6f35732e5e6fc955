// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the oft2eml CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/oft2eml/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the oft2eml CLI.
var rootCmd = &cobra.Command{
	Use:   "oft2eml",
	Short: "Convert Outlook template files to EML",
	Long: `oft2eml converts Outlook Template (.oft) and message (.msg) files into
RFC 5322 EML files. Parsing of the compound-document MSG format is delegated
to a Python entry point built on extract-msg; the CLI locates a capable
interpreter, launches the entry point per input file, and reports a
structured outcome.

Use convert to translate files and doctor to diagnose interpreter discovery.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./oft2eml.yaml or ~/.config/oft2eml/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("oft2eml")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "oft2eml"))
		}
	}

	viper.SetEnvPrefix("OFT2EML")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// stringSetting reads a flag, falling back to the config file / environment
// when the flag was not set on the command line.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

func boolSetting(cmd *cobra.Command, flag, key string) bool {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetBool(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	v, _ := cmd.Flags().GetBool(flag)
	return v
}

func intSetting(cmd *cobra.Command, flag, key string) int {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetInt(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	v, _ := cmd.Flags().GetInt(flag)
	return v
}

// resolverConfig assembles interpreter-discovery settings from flags,
// the config file, and the environment.
func resolverConfig(cmd *cobra.Command) types.ResolverConfig {
	return types.ResolverConfig{
		Runtime:           stringSetting(cmd, "runtime", "resolver.runtime"),
		Candidates:        viper.GetStringSlice("resolver.candidates"),
		CandidatesFile:    stringSetting(cmd, "candidates-file", "resolver.candidates_file"),
		RequireCapability: boolSetting(cmd, "require-capability", "resolver.require_capability"),
	}
}

// exeDir returns the directory holding the running binary, used to locate
// the bundled interpreter and the default entry point.
func exeDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

func defaultEntryPoint() string {
	return filepath.Join(exeDir(), "scripts", "oft_to_eml.py")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
