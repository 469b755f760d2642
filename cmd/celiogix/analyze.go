package main

import (
	"github.com/spf13/cobra"

	"github.com/celiogix/backend/internal/domain"
	"github.com/celiogix/backend/internal/infrastructure/cache"
	"github.com/celiogix/backend/internal/usecase"
)

var (
	analyzeName        string
	analyzeIngredients string
	analyzeBarcode     string
	analyzeInfo        string
	analyzeBreakdown   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Classify a product's gluten risk",
	Long: `Analyze matches the ingredient list, product name and label notes against
known gluten sources, hidden gluten, safe ingredients, certification claims and
shared-facility warnings, then reports a risk level with a confidence score.

With --breakdown only the ingredient list is scanned and every category hit is
reported together with a combined risk score.`,
	Example: `  celiogix analyze --name "Rice Crackers" --ingredients "rice flour, sesame, salt"
  celiogix analyze --ingredients "wheat flour, soy sauce" --breakdown -o json`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeName, "name", "", "product name")
	analyzeCmd.Flags().StringVar(&analyzeIngredients, "ingredients", "", "ingredient list as printed on the label")
	analyzeCmd.Flags().StringVar(&analyzeBarcode, "barcode", "", "product barcode (validated, not looked up)")
	analyzeCmd.Flags().StringVar(&analyzeInfo, "info", "", "additional label text such as allergen statements")
	analyzeCmd.Flags().BoolVar(&analyzeBreakdown, "breakdown", false, "report a per-category breakdown of the ingredient list")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	analyzer := usecase.NewRiskAnalyzer()

	if analyzeBreakdown {
		if len(analyzeIngredients) > cfg.Analysis.MaxIngredientsLength {
			return domain.ErrInputTooLarge
		}
		return printResult(cmd, analyzer.AnalyzeIngredientList(analyzeIngredients))
	}

	memCache := cache.NewMemoryCache(0)
	defer memCache.Close()

	service := usecase.NewProductService(memCache, analyzer, nil, usecase.ProductServiceConfig{
		CacheTTL:             cfg.Cache.TTL,
		MaxIngredientsLength: cfg.Analysis.MaxIngredientsLength,
		EnableDebugLogging:   cfg.Analysis.EnableDebugLogging,
	})

	analysis, err := service.Analyze(cmd.Context(), &domain.AnalyzeRequest{
		ProductName:    analyzeName,
		Ingredients:    analyzeIngredients,
		Barcode:        analyzeBarcode,
		AdditionalInfo: analyzeInfo,
	})
	if err != nil {
		return err
	}

	return printResult(cmd, analysis)
}

var alternativesCmd = &cobra.Command{
	Use:     "alternatives INGREDIENT",
	Short:   "Suggest gluten-free substitutes for an ingredient",
	Example: `  celiogix alternatives "soy sauce"`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(cmd, map[string]any{
			"ingredient":   args[0],
			"alternatives": usecase.NewRiskAnalyzer().Alternatives(args[0]),
		})
	},
}

var barcodeCmd = &cobra.Command{
	Use:     "barcode CODE",
	Short:   "Validate a retail barcode's format and check digit",
	Example: `  celiogix barcode 4006381333931`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(cmd, usecase.ValidateBarcode(args[0]))
	},
}
