package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bizleads/local-leads/internal/model"
)

var (
	emailLocation  string
	emailIndustry  string
	emailTier      string
	emailRecipient string
)

var emailCmd = &cobra.Command{
	Use:   "email",
	Short: "Email the full result set to a recipient",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := initService(cmd.Context())

		resp := svc.ExportEmail(cmd.Context(), model.ParseTier(emailTier), emailLocation, emailIndustry, emailRecipient)
		if !resp.OK {
			return fmt.Errorf("%s", resp.Message)
		}
		fmt.Println(resp.Message)
		return nil
	},
}

func init() {
	emailCmd.Flags().StringVar(&emailLocation, "location", "", "ZIP or city (required)")
	emailCmd.Flags().StringVar(&emailIndustry, "industry", "", "service keyword (required)")
	emailCmd.Flags().StringVar(&emailTier, "tier", "registered", "access tier: public, registered, pro, elite")
	emailCmd.Flags().StringVar(&emailRecipient, "to", "", "recipient address (required)")
	_ = emailCmd.MarkFlagRequired("location")
	_ = emailCmd.MarkFlagRequired("industry")
	_ = emailCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(emailCmd)
}
