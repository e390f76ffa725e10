package cmd

import (
	"crowdfund/internal/http/payload"
	"fmt"

	"github.com/spf13/cobra"
)

func newCampaignsCmd() *cobra.Command {
	var mine bool

	cmd := &cobra.Command{
		Use:   "campaigns",
		Short: "List campaigns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := newLogger()

			openSession := open
			if mine {
				openSession = connected
			}

			s, err := openSession(ctx, logger)
			if err != nil {
				return err
			}
			defer s.Close()

			getCampaigns := s.crowdfund.GetCampaigns
			if mine {
				getCampaigns = s.crowdfund.GetUserCampaigns
			}

			campaigns, err := getCampaigns(ctx)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), campaigns)
		},
	}

	cmd.Flags().BoolVar(&mine, "mine", false, "only campaigns owned by the wallet")

	return cmd
}

func newDonationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "donations <pId>",
		Short: "List the donations made to a campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pID, err := payload.ParseCampaignID(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			logger := newLogger()

			s, err := open(ctx, logger)
			if err != nil {
				return err
			}
			defer s.Close()

			donations, err := s.crowdfund.GetDonations(ctx, pID)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), donations)
		},
	}
}

func newDonateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "donate <pId> <amount>",
		Short: "Donate an amount in ether to a campaign",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pID, err := payload.ParseCampaignID(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			logger := newLogger()

			s, err := connected(ctx, logger)
			if err != nil {
				return err
			}
			defer s.Close()

			tx, err := s.crowdfund.Donate(ctx, pID, args[1])
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), map[string]any{
				"transactionHash": tx.Hash().Hex(),
				"nonce":           tx.Nonce(),
			})
		},
	}
}

func newCreateCmd() *cobra.Command {
	var req payload.CreateCampaignRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a new campaign owned by the wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := req.Validate(); err != nil {
				return fmt.Errorf("invalid campaign: %w", err)
			}

			form, err := req.ToCampaignForm()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			logger := newLogger()

			s, err := connected(ctx, logger)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.crowdfund.CreateCampaign(ctx, form); err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), map[string]string{
				"status": "submitted",
			})
		},
	}

	cmd.Flags().StringVar(&req.Title, "title", "", "campaign title")
	cmd.Flags().StringVar(&req.Description, "description", "", "campaign description")
	cmd.Flags().StringVar(&req.Target, "target", "", "funding target in ether")
	cmd.Flags().StringVar(&req.Deadline, "deadline", "", "deadline as 2006-01-02 or RFC3339")
	cmd.Flags().StringVar(&req.Image, "image", "", "image URL")

	for _, flag := range []string{"title", "description", "target", "deadline", "image"} {
		_ = cmd.MarkFlagRequired(flag)
	}

	return cmd
}
