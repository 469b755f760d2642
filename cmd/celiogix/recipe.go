package main

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/celiogix/backend/internal/domain"
	"github.com/celiogix/backend/internal/usecase"
)

var (
	scaleFile    string
	scaleFactor  float64
	scaleTargets []string
)

// recipeFile is the YAML recipe format read by scale and written back out
type recipeFile struct {
	Name        string              `json:"name,omitempty" yaml:"name,omitempty"`
	Ingredients []domain.Ingredient `json:"ingredients" yaml:"ingredients"`
}

// conversionResult is the output of convert
type conversionResult struct {
	Amount    float64 `json:"amount" yaml:"amount"`
	Unit      string  `json:"unit" yaml:"unit"`
	Formatted string  `json:"formatted" yaml:"formatted"`
}

var scaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Scale a recipe file by a factor",
	Long: `Scale multiplies every ingredient amount in a YAML recipe file and prints
the scaled recipe. Amounts may be plain numbers, fractions or mixed numbers.

--target may be repeated; each ingredient uses the first pattern contained in
its name and is converted to that unit when a conversion exists.

Recipe file format:
  name: Pancakes
  ingredients:
    - {name: rice flour, amount: "1 1/2", unit: cup}
    - {name: butter, amount: "1/4", unit: cup}`,
	Example: `  celiogix scale --file pancakes.yaml --factor 2 --target butter=tablespoon`,
	Args:    cobra.NoArgs,
	RunE:    runScale,
}

func init() {
	scaleCmd.Flags().StringVarP(&scaleFile, "file", "f", "", "recipe YAML file")
	scaleCmd.Flags().Float64Var(&scaleFactor, "factor", 1, "scale factor (must be positive)")
	scaleCmd.Flags().StringArrayVar(&scaleTargets, "target", nil, "target unit as pattern=unit (repeatable, first match wins)")
	_ = scaleCmd.MarkFlagRequired("file")
}

func runScale(cmd *cobra.Command, args []string) error {
	if scaleFactor <= 0 {
		return fmt.Errorf("%w: factor must be positive, got %v", domain.ErrInvalidRequest, scaleFactor)
	}

	targets, err := parseTargets(scaleTargets)
	if err != nil {
		return err
	}

	recipe, err := loadRecipe(scaleFile)
	if err != nil {
		return err
	}

	scaler := usecase.NewRecipeScaler()
	recipe.Ingredients = scaler.ScaleRecipe(recipe.Ingredients, scaleFactor, targets)

	return printResult(cmd, recipe)
}

// loadRecipe reads a YAML recipe file
func loadRecipe(path string) (*recipeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe: %w", err)
	}

	var recipe recipeFile
	if err := yaml.Unmarshal(data, &recipe); err != nil {
		return nil, fmt.Errorf("failed to parse recipe %s: %w", path, err)
	}
	if len(recipe.Ingredients) == 0 {
		return nil, fmt.Errorf("%w: recipe %s has no ingredients", domain.ErrInvalidRequest, path)
	}

	return &recipe, nil
}

// parseTargets turns pattern=unit flags into ordered target units
func parseTargets(raw []string) ([]domain.TargetUnit, error) {
	targets := make([]domain.TargetUnit, 0, len(raw))
	for _, r := range raw {
		pattern, unit, ok := strings.Cut(r, "=")
		pattern = strings.TrimSpace(pattern)
		unit = strings.TrimSpace(unit)
		if !ok || pattern == "" || unit == "" {
			return nil, fmt.Errorf("%w: target %q must be pattern=unit", domain.ErrInvalidRequest, r)
		}
		targets = append(targets, domain.TargetUnit{Pattern: pattern, Unit: unit})
	}
	return targets, nil
}

var convertCmd = &cobra.Command{
	Use:   "convert AMOUNT FROM TO",
	Short: "Convert an amount between units",
	Example: `  celiogix convert 2 cups tbsp
  celiogix convert "1 1/2" lb oz`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		scaler := usecase.NewRecipeScaler()

		converted, ok := scaler.ConvertAmount(scaler.ParseAmount(args[0]), args[1], args[2])
		if !ok {
			return domain.ErrNoConversion
		}
		if math.IsInf(converted, 0) || math.IsNaN(converted) {
			return fmt.Errorf("%w: converted amount is out of range", domain.ErrInvalidRequest)
		}

		return printResult(cmd, conversionResult{
			Amount:    converted,
			Unit:      scaler.NormalizeUnit(args[2]),
			Formatted: usecase.FormatAmount(converted),
		})
	},
}

var suggestCmd = &cobra.Command{
	Use:     "suggest AMOUNT UNIT",
	Short:   "List one-step conversions for an amount",
	Example: `  celiogix suggest 1 cup`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		scaler := usecase.NewRecipeScaler()
		return printResult(cmd, scaler.ConversionSuggestions(scaler.ParseAmount(args[0]), args[1]))
	},
}

var scalesCmd = &cobra.Command{
	Use:   "scales",
	Short: "Show the standard scale factors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(cmd, usecase.NewRecipeScaler().CommonScales())
	},
}
