// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/zenkaku/pkg/types"
)

var schemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "List the available conversion schemes and their glyphs",
	Long: `Schemes prints each registered conversion scheme with the ten glyphs it
maps the digits 0-9 to. Use --json or --yaml for machine-readable output.`,
	RunE: runSchemes,
}

func runSchemes(cmd *cobra.Command, args []string) error {
	infos := schemeInfos()

	asJSON, _ := cmd.Flags().GetBool("json")
	asYAML, _ := cmd.Flags().GetBool("yaml")

	switch {
	case asJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	case asYAML:
		data, err := yaml.Marshal(infos)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = os.Stdout.Write(data)
		return err
	default:
		for _, info := range infos {
			fmt.Printf("%-10s", info.Name)
			for _, g := range info.Digits {
				fmt.Printf(" %s", g)
			}
			fmt.Println()
		}
		return nil
	}
}

// schemeInfos builds the listing from the registry, preserving its order.
func schemeInfos() []types.SchemeInfo {
	names := registry.Names()
	infos := make([]types.SchemeInfo, 0, len(names))
	for _, name := range names {
		s, err := registry.Resolve(name)
		if err != nil {
			continue
		}
		var digits [10]string
		for d, g := range s.Glyphs() {
			digits[d] = string(g)
		}
		infos = append(infos, types.SchemeInfo{Name: name, Digits: digits})
	}
	return infos
}

func init() {
	schemesCmd.Flags().Bool("json", false, "output the scheme list as JSON")
	schemesCmd.Flags().Bool("yaml", false, "output the scheme list as YAML")

	rootCmd.AddCommand(schemesCmd)
}
