package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/celiogix/backend/config"
)

const version = "1.0.0"

var (
	cfgFile      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "celiogix",
	Short: "Gluten-risk analysis and recipe scaling for celiac-safe cooking",
	Long: `Celiogix classifies packaged food labels for gluten risk and scales
recipes between kitchen units, entirely offline.

Commands:
  analyze       Classify a product from its name, ingredients and label notes
  alternatives  Suggest gluten-free substitutes for an ingredient
  barcode       Validate an EAN-13, UPC-A or EAN-8 barcode
  scale         Scale a YAML recipe file by a factor
  convert       Convert an amount between units
  suggest       List the known conversions for an amount
  scales        Show the standard scale factors`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch outputFormat {
		case formatYAML, formatJSON:
			return nil
		default:
			return fmt.Errorf("unknown output format: %s", outputFormat)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml, ./config/config.yaml or /etc/celiogix/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", formatYAML, "output format: yaml or json",
	)

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(alternativesCmd)
	rootCmd.AddCommand(barcodeCmd)
	rootCmd.AddCommand(scaleCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(scalesCmd)
}

// loadConfig reads the same configuration the server uses
func loadConfig() (*config.Config, error) {
	return config.LoadFile(cfgFile)
}
