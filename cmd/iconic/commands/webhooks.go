package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/DuneRaccoon/iconic-go/pkg/iconic"
)

// NewWebhooksCommand creates the webhooks command group.
func NewWebhooksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhooks",
		Short: "Manage webhook subscriptions",
	}

	cmd.AddCommand(newWebhooksListCommand())
	cmd.AddCommand(newWebhooksCreateCommand())
	cmd.AddCommand(newWebhooksDeleteCommand())
	cmd.AddCommand(newWebhooksEntitiesCommand())

	return cmd
}

func newWebhooksListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List webhook subscriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			webhooks, err := client.Webhooks().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list webhooks: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return StandardJSONRenderer(webhooks)
			case OutputFormatYAML:
				return StandardYAMLRenderer(webhooks)
			default:
				return renderWebhookTable(webhooks)
			}
		},
	}
}

func renderWebhookTable(webhooks []iconic.Webhook) error {
	if len(webhooks) == 0 {
		_, _ = os.Stdout.WriteString("No webhooks found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("UUID", "Callback URL", "Events", "Enabled")

	for _, webhook := range webhooks {
		_ = table.Append(
			webhook.UUID,
			webhook.CallbackURL,
			strings.Join(webhook.Events, ","),
			strconv.FormatBool(webhook.IsEnabled),
		)
	}

	return table.Render()
}

func newWebhooksCreateCommand() *cobra.Command {
	var events []string

	cmd := &cobra.Command{
		Use:   "create CALLBACK_URL",
		Short: "Create a webhook subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			webhook, err := client.Webhooks().Create(context.Background(), args[0], events)
			if err != nil {
				return fmt.Errorf("failed to create webhook: %w", err)
			}

			fmt.Printf("Created webhook %s\n", webhook.UUID)

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&events, "event", nil, "event to subscribe to (repeatable)")
	_ = cmd.MarkFlagRequired("event")

	return cmd
}

func newWebhooksDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete UUID",
		Short: "Delete a webhook subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Webhooks().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete webhook: %w", err)
			}

			fmt.Printf("Deleted webhook %s\n", args[0])

			return nil
		},
	}
}

func newWebhooksEntitiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "entities",
		Short: "List the entities available for subscription",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			entities, err := client.Webhooks().Entities(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list webhook entities: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return StandardYAMLRenderer(entities)
			default:
				return StandardJSONRenderer(entities)
			}
		},
	}
}
