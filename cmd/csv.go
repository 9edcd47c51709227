package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bizleads/local-leads/internal/export"
	"github.com/bizleads/local-leads/internal/model"
)

var (
	csvLocation string
	csvIndustry string
	csvTier     string
	csvOutput   string
)

var csvCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export the full result set as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := initService(cmd.Context())

		resp := svc.ExportCSV(cmd.Context(), model.ParseTier(csvTier), csvLocation, csvIndustry)
		if !resp.OK {
			return fmt.Errorf("%s", resp.Message)
		}

		out := export.CSV(resp.Leads)
		if csvOutput == "" {
			fmt.Print(out)
			return nil
		}
		if err := os.WriteFile(csvOutput, []byte(out), 0o644); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		fmt.Printf("wrote %d leads to %s\n", len(resp.Leads), csvOutput)
		return nil
	},
}

func init() {
	csvCmd.Flags().StringVar(&csvLocation, "location", "", "ZIP or city (required)")
	csvCmd.Flags().StringVar(&csvIndustry, "industry", "", "service keyword (required)")
	csvCmd.Flags().StringVar(&csvTier, "tier", "elite", "access tier: public, registered, pro, elite")
	csvCmd.Flags().StringVarP(&csvOutput, "output", "o", "", "output file (default stdout)")
	_ = csvCmd.MarkFlagRequired("location")
	_ = csvCmd.MarkFlagRequired("industry")
	rootCmd.AddCommand(csvCmd)
}
