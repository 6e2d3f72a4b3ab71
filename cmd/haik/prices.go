package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/haikapp/haik/internal/pricedata"
)

var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Inspect and manage the price reference dataset",
}

var pricesImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import the price dataset into the local SQLite store",
	RunE:  runPricesImport,
}

var pricesShowCmd = &cobra.Command{
	Use:   "show <neighborhood>",
	Short: "Show price data and tier for a neighborhood",
	Args:  cobra.ExactArgs(1),
	RunE:  runPricesShow,
}

func setupPricesFlags() {
	pricesCmd.AddCommand(pricesImportCmd)
	pricesCmd.AddCommand(pricesShowCmd)
}

func runPricesImport(_ *cobra.Command, _ []string) error {
	service, err := loadPriceService()
	if err != nil {
		return err
	}

	store, err := pricedata.OpenStore(cfg.Data.PricesDB)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.EnsureSchema(); err != nil {
		return err
	}
	if err := store.UpsertMany(service.Records()); err != nil {
		return fmt.Errorf("import price records: %w", err)
	}

	n, err := store.Count()
	if err != nil {
		return err
	}
	log.Info().Int("records", n).Str("db", cfg.Data.PricesDB).Msg("price dataset imported")
	return nil
}

func runPricesShow(_ *cobra.Command, args []string) error {
	service, err := loadPriceService()
	if err != nil {
		return err
	}

	name := args[0]
	record, ok := service.Record(name)
	if !ok {
		return fmt.Errorf("no price data for %q", name)
	}

	fmt.Printf("Neighborhood: %s\n", record.Neighborhood)
	if record.AvgPricePerMeter != nil {
		fmt.Printf("Avg price/m²: %.1f SAR\n", *record.AvgPricePerMeter)
	} else {
		fmt.Println("Avg price/m²: n/a")
	}
	fmt.Printf("Transactions: %d\n", record.TransactionsCount)
	fmt.Printf("Tier: %s\n", service.TierFor(name))
	return nil
}
