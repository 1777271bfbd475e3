package client

import (
	"context"
	"fmt"

	"github.com/DuneRaccoon/iconic-go/pkg/iconic"
)

// FinanceClientImpl implements iconic.FinanceClient.
type FinanceClientImpl struct {
	client *ClientImpl
}

// ListStatements returns finance statements matching the filter.
func (c *FinanceClientImpl) ListStatements(ctx context.Context, params *iconic.ListFinanceStatementsParams) ([]iconic.FinanceStatement, error) {
	var bag *iconic.Params
	if params != nil {
		bag = params.ToParams()
	}

	var statements []iconic.FinanceStatement

	err := c.client.executeInto(ctx, "GET", "/v2/finance/statements", bag, nil, &statements)
	if err != nil {
		return nil, fmt.Errorf("listing finance statements: %w", err)
	}

	return statements, nil
}

// GetStatement fetches one finance statement by ID.
func (c *FinanceClientImpl) GetStatement(ctx context.Context, statementID int) (*iconic.FinanceStatement, error) {
	var statement iconic.FinanceStatement

	path := fmt.Sprintf("/v2/finance/statements/%d", statementID)

	err := c.client.executeInto(ctx, "GET", path, nil, nil, &statement)
	if err != nil {
		return nil, fmt.Errorf("getting finance statement %d: %w", statementID, err)
	}

	return &statement, nil
}

// GetStatementDetails fetches the transaction breakdown of one statement.
func (c *FinanceClientImpl) GetStatementDetails(ctx context.Context, statementID int) (*iconic.FinanceStatementDetails, error) {
	var details iconic.FinanceStatementDetails

	path := fmt.Sprintf("/v2/finance/statements/%d/details", statementID)

	err := c.client.executeInto(ctx, "GET", path, nil, nil, &details)
	if err != nil {
		return nil, fmt.Errorf("getting finance statement %d details: %w", statementID, err)
	}

	return &details, nil
}

var _ iconic.FinanceClient = (*FinanceClientImpl)(nil)
