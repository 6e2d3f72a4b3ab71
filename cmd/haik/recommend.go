package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/haikapp/haik/internal/amenity"
	"github.com/haikapp/haik/internal/catalog"
	"github.com/haikapp/haik/internal/cli"
	"github.com/haikapp/haik/internal/models"
	"github.com/haikapp/haik/internal/pricedata"
	"github.com/haikapp/haik/internal/recommend"
)

var (
	answersFile string
	countsFile  string
	quiet       bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Run the recommendation pipeline for an answers file",
	Long: `Reads questionnaire answers from a YAML file, runs the full
pipeline, and prints the ranked neighborhoods.

Answers file format:

  selected:
    lifestyle: [active]
    priorities: [schools, entertainment]
    transport: [metro_sometimes]
    budget: [mid]
  anchors:
    near_work: الملقا

Amenity counts come from the places provider; use --counts to supply
a fixed count table instead of live lookups.`,
	RunE: runRecommend,
}

func setupRecommendFlags() {
	recommendCmd.Flags().StringVarP(&answersFile, "answers", "a", "", "answers YAML file (required)")
	recommendCmd.Flags().StringVar(&countsFile, "counts", "", "amenity counts fixture YAML file")
	recommendCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress output")
	_ = recommendCmd.MarkFlagRequired("answers")
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	answers, err := loadAnswers(answersFile)
	if err != nil {
		return err
	}

	searcher, err := buildSearcher()
	if err != nil {
		return err
	}

	prices, err := loadPriceService()
	if err != nil {
		return err
	}

	fetcher := amenity.NewFetcher(searcher, amenity.NewCountCache(), amenity.FetcherConfig{
		RadiusMeters:  cfg.Fetch.RadiusMeters,
		ResultLimit:   cfg.Fetch.ResultLimit,
		MaxConcurrent: cfg.Fetch.MaxConcurrent,
		LookupTimeout: cfg.Fetch.LookupTimeout,
	})

	engine, err := recommend.NewEngine(catalog.Riyadh(), prices, fetcher, cfg.Recommend)
	if err != nil {
		return err
	}

	tracker := cli.NewProgressTracker(cli.ProgressConfig{
		Writer: os.Stdout,
		Quiet:  quiet,
	})

	results, err := engine.Run(cmd.Context(), answers, tracker.Update)
	if err != nil {
		return fmt.Errorf("recommendation run failed: %w", err)
	}
	tracker.Finish()

	printResults(results)
	return nil
}

func loadAnswers(path string) (*models.AnswerSet, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers file: %w", err)
	}
	var answers models.AnswerSet
	if err := yaml.Unmarshal(b, &answers); err != nil {
		return nil, fmt.Errorf("decode answers file %s: %w", path, err)
	}
	return &answers, nil
}

func buildSearcher() (amenity.Searcher, error) {
	if countsFile != "" {
		return amenity.LoadFixtureSearcher(countsFile)
	}
	// Without a live provider every lookup degrades to zero counts;
	// scores then rest on geometry and price data alone.
	return amenity.NewFixtureSearcher(nil), nil
}

func loadPriceService() (*pricedata.Service, error) {
	if cfg.Data.PricesFile != "" {
		records, err := pricedata.LoadRecords(cfg.Data.PricesFile)
		if err != nil {
			return nil, err
		}
		return pricedata.NewService(records), nil
	}
	return pricedata.NewBundledService()
}

func printResults(results []models.RecommendedNeighborhood) {
	bold := color.New(color.Bold)
	gray := color.New(color.FgHiBlack)

	for i, r := range results {
		bold.Printf("%d. %s", i+1, r.Name)
		fmt.Printf("  %.1f/100\n", r.CompatibilityScore)
		gray.Printf("   lifestyle %.0f | priority %.0f | transport %.0f | price %.0f\n",
			r.LifestyleScore, r.PriorityScore, r.TransportScore, r.PriceScore)
		for _, reason := range r.Reasons {
			fmt.Printf("   - %s\n", reason.Label)
		}
	}
	if len(results) == 0 {
		fmt.Println("no recommendations produced")
	}
}
