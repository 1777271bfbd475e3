package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/DuneRaccoon/iconic-go/pkg/iconic"
)

// NewFinanceCommand creates the finance command group.
func NewFinanceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finance",
		Short: "Inspect finance statements",
	}

	cmd.AddCommand(newFinanceStatementsCommand())
	cmd.AddCommand(newFinanceStatementCommand())
	cmd.AddCommand(newFinanceDetailsCommand())

	return cmd
}

func newFinanceStatementsCommand() *cobra.Command {
	var paidOnly bool

	cmd := &cobra.Command{
		Use:   "statements",
		Short: "List finance statements",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := &iconic.ListFinanceStatementsParams{}
			if paidOnly {
				paid := true
				params.IsPaid = &paid
			}

			statements, err := client.Finance().ListStatements(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list finance statements: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return StandardJSONRenderer(statements)
			case OutputFormatYAML:
				return StandardYAMLRenderer(statements)
			default:
				return renderStatementTable(statements)
			}
		},
	}

	cmd.Flags().BoolVar(&paidOnly, "paid", false, "only show paid statements")

	return cmd
}

func renderStatementTable(statements []iconic.FinanceStatement) error {
	if len(statements) == 0 {
		_, _ = os.Stdout.WriteString("No finance statements found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Number", "Period", "Total", "Paid")

	for _, statement := range statements {
		_ = table.Append(
			strconv.Itoa(statement.ID),
			statement.Number,
			statement.StartDate+" - "+statement.EndDate,
			fmt.Sprintf("%.2f %s", statement.TotalAmount, statement.Currency),
			strconv.FormatBool(statement.IsPaid),
		)
	}

	return table.Render()
}

func newFinanceStatementCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "statement STATEMENT_ID",
		Short: "Get a finance statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			statementID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid statement ID %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			statement, err := client.Finance().GetStatement(context.Background(), statementID)
			if err != nil {
				return fmt.Errorf("failed to get finance statement: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return StandardYAMLRenderer(statement)
			default:
				return StandardJSONRenderer(statement)
			}
		},
	}
}

func newFinanceDetailsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "details STATEMENT_ID",
		Short: "Get the transaction breakdown of a statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			statementID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid statement ID %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			details, err := client.Finance().GetStatementDetails(context.Background(), statementID)
			if err != nil {
				return fmt.Errorf("failed to get statement details: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return StandardYAMLRenderer(details)
			default:
				return StandardJSONRenderer(details)
			}
		},
	}
}
