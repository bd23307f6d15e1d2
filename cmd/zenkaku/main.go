// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the zenkaku CLI, which transliterates
// ASCII digits in text to alternate Unicode digit glyphs and back.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/zenkaku/internal/scheme"
	"github.com/pdiddy/zenkaku/internal/transform"
	"github.com/pdiddy/zenkaku/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// registry holds the built-in schemes. Constructed once at startup and
// read-only afterwards.
var registry = scheme.Builtins()

// rootCmd is the base command for the zenkaku CLI. With text arguments it
// converts the joined arguments; without, it converts each line read from
// standard input.
var rootCmd = &cobra.Command{
	Use:   "zenkaku [text...]",
	Short: "Convert digits in text to various Unicode formats or reverse",
	Long: fmt.Sprintf(`zenkaku replaces ASCII digits in text with alternate Unicode digit glyphs
(full-width, circled, Roman numeral, Chinese, Thai) or, with --reverse,
maps such glyphs back to ASCII digits. Text is taken from the command
arguments, or read line by line from standard input when no arguments
are given.

Available types: %s.`, strings.Join(registry.Names(), ", ")),
	Args: cobra.ArbitraryArgs,
	RunE: runRoot,
}

func runRoot(cmd *cobra.Command, args []string) error {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	// The flag wins over the config file; the config file wins over the
	// built-in default.
	name, _ := cmd.Flags().GetString("type")
	if !cmd.Flags().Changed("type") && cfg.Type != "" {
		name = cfg.Type
	}
	reverse, _ := cmd.Flags().GetBool("reverse")

	s, err := registry.Resolve(name)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		return transform.Args(s, reverse, args, os.Stdout)
	}
	return transform.Stream(s, reverse, os.Stdin, os.Stdout)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./zenkaku.yaml or ~/.config/zenkaku/config.yaml)")
	rootCmd.Flags().StringP("type", "t", "fullwidth",
		"conversion type: "+strings.Join(registry.Names(), ", "))
	rootCmd.Flags().BoolP("reverse", "r", false,
		"reverse conversion from Unicode digits back to ASCII")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("zenkaku")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "zenkaku"))
		}
	}

	viper.SetEnvPrefix("ZENKAKU")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
