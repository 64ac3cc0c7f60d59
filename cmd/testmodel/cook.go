package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/testmodel/internal/builder"
	"github.com/Faultbox/testmodel/internal/config"
	"github.com/Faultbox/testmodel/internal/operator"
	"github.com/Faultbox/testmodel/pkg/geo"
)

// newTable returns an operator table with the test model registered.
func newTable(log *zap.Logger) (*operator.Table, error) {
	table := operator.NewTable()
	if err := operator.Register(table, log); err != nil {
		return nil, err
	}
	return table, nil
}

// cook creates a test model node, applies cfg and cooks into a fresh detail.
func cook(ctx context.Context, table *operator.Table, cfg *config.Config) (*geo.Detail, builder.Stats, error) {
	node, err := table.Create(operator.OperatorName)
	if err != nil {
		return nil, builder.Stats{}, err
	}
	if err := operator.ApplyConfig(node.Parameters(), cfg.Parameters); err != nil {
		return nil, builder.Stats{}, fmt.Errorf("parameters: %w", err)
	}

	detail := geo.NewDetail()
	stats, err := node.Cook(ctx, detail, cfg.Parameters.Time)
	return detail, stats, err
}
