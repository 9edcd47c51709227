package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bizleads/local-leads/internal/export"
	"github.com/bizleads/local-leads/internal/model"
)

var (
	searchLocation string
	searchIndustry string
	searchTier     string
	searchJSON     bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Find leads near a location",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := initService(cmd.Context())

		location := searchLocation
		if location == "" {
			location = cfg.Search.DefaultLocation
		}
		industry := searchIndustry
		if industry == "" {
			industry = cfg.Search.DefaultIndustry
		}

		resp := svc.Search(cmd.Context(), model.ParseTier(searchTier), location, industry)
		if !resp.OK {
			return fmt.Errorf("%s", resp.Message)
		}

		if searchJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		}

		fmt.Println(export.Table(resp.Leads))
		if !resp.Complete {
			fmt.Fprintln(os.Stderr, "note: some results may be incomplete (pipeline deadline expired)")
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchLocation, "location", "", "ZIP or city (default from config)")
	searchCmd.Flags().StringVar(&searchIndustry, "industry", "", "service keyword, e.g. roofer (default from config)")
	searchCmd.Flags().StringVar(&searchTier, "tier", "elite", "access tier: public, registered, pro, elite")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "print leads as JSON instead of an HTML table")
	rootCmd.AddCommand(searchCmd)
}
