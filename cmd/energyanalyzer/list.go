package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var listKind string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored records",
	Long:  `Displays the consumption, price and inflation rows stored in the database.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listKind, "kind", "", "Only list one kind (consumption, prices or inflation)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	switch listKind {
	case "", "consumption", "prices", "inflation":
	default:
		return fmt.Errorf("unknown kind: %s (available: consumption, prices, inflation)", listKind)
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Open database
	db, err := openDB(cfg)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if listKind == "" || listKind == "consumption" {
		records, err := db.ListConsumption()
		if err != nil {
			return fmt.Errorf("listing consumption: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No consumption data found")
		} else {
			fmt.Printf("\nConsumption Records:\n")
			fmt.Println("--------------------------------------------------------------------")
			fmt.Printf("%-6s  %-10s  %-20s  %14s  %-8s\n", "Year", "Region", "Sector", "Consumption", "Units")
			fmt.Println("--------------------------------------------------------------------")
			for _, r := range records {
				fmt.Printf("%-6d  %-10s  %-20s  %14.2f  %-8s\n", r.Year, r.Region, r.Sector, r.Consumption, r.Units)
			}
			fmt.Println("--------------------------------------------------------------------")
			fmt.Printf("Total: %s records\n", humanize.Comma(int64(len(records))))
		}
	}

	if listKind == "" || listKind == "prices" {
		prices, err := db.ListPrices()
		if err != nil {
			return fmt.Errorf("listing prices: %w", err)
		}
		if len(prices) == 0 {
			fmt.Println("No price data found")
		} else {
			fmt.Printf("\nPrice Records:\n")
			fmt.Println("--------------------------------------------------------------------")
			fmt.Printf("%-6s  %-20s  %-14s  %10s  %-8s\n", "Year", "Sector", "Fuel Type", "Price", "Units")
			fmt.Println("--------------------------------------------------------------------")
			for _, p := range prices {
				fmt.Printf("%-6d  %-20s  %-14s  %10.4f  %-8s\n", p.Year, p.Sector, p.FuelType, p.Price, p.Units)
			}
			fmt.Println("--------------------------------------------------------------------")
			fmt.Printf("Total: %s records\n", humanize.Comma(int64(len(prices))))
		}
	}

	if listKind == "" || listKind == "inflation" {
		rates, err := db.ListInflation()
		if err != nil {
			return fmt.Errorf("listing inflation: %w", err)
		}
		if len(rates) == 0 {
			fmt.Println("No inflation data found")
		} else {
			fmt.Printf("\nInflation Rates:\n")
			fmt.Println("----------------------")
			fmt.Printf("%-6s  %12s\n", "Year", "Rate (%)")
			fmt.Println("----------------------")
			for _, r := range rates {
				fmt.Printf("%-6d  %12.2f\n", r.Year, r.Rate)
			}
			fmt.Println("----------------------")
			fmt.Printf("Total: %s years\n", humanize.Comma(int64(len(rates))))
		}
	}

	return nil
}
