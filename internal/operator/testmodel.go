package operator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/testmodel/internal/builder"
	"github.com/Faultbox/testmodel/pkg/dataset"
	"github.com/Faultbox/testmodel/pkg/geo"
)

// Test model operator identity.
const (
	OperatorName  = "testmodel"
	OperatorLabel = "Test Model"
)

// Node is an operator instance that cooks geometry into a sink.
type Node interface {
	Parameters() *Parameters
	Cook(ctx context.Context, sink geo.Sink, t float64) (builder.Stats, error)
}

// TestModel generates one of the compiled-in datasets.
type TestModel struct {
	params *Parameters
	log    *zap.Logger
}

var _ Node = (*TestModel)(nil)

// NewTestModel creates a node with default parameters. A nil logger
// disables logging.
func NewTestModel(log *zap.Logger) *TestModel {
	if log == nil {
		log = zap.NewNop()
	}
	return &TestModel{
		params: NewParameters(Templates()),
		log:    log,
	}
}

// Register adds the test model operator to table.
func Register(table *Table, log *zap.Logger) error {
	return table.Add(&Definition{
		Name:      OperatorName,
		Label:     OperatorLabel,
		Templates: Templates(),
		Generator: true,
		New:       func() Node { return NewTestModel(log) },
	})
}

// Parameters returns the node's parameters.
func (n *TestModel) Parameters() *Parameters {
	return n.params
}

// Cook clears sink and rebuilds the selected dataset with the parameters
// evaluated at time t. Cancelling ctx interrupts the build and leaves the
// partial result in sink.
func (n *TestModel) Cook(ctx context.Context, sink geo.Sink, t float64) (builder.Stats, error) {
	sink.ClearAll()

	intr := builder.ContextInterrupter(ctx)
	if intr.ShouldAbort() {
		return builder.Stats{}, builder.ErrCancelled
	}

	start := time.Now()
	model, settings := Snapshot(n.params, t)
	ds := dataset.Lookup(model)

	log := n.log.With(
		zap.String("cook", uuid.NewString()),
		zap.String("model", ds.Name),
	)
	log.Debug("cooking",
		zap.Float64("time", t),
		zap.Stringer("mode", settings.Mode),
		zap.Float32("scale", settings.Scale),
		zap.Bool("swap_yz", settings.SwapYZ),
		zap.Bool("normals", settings.Normals),
	)

	stats, err := builder.Build(ds, settings, sink, intr)
	if errors.Is(err, builder.ErrCancelled) {
		log.Warn("cook interrupted",
			zap.Int("triangles", stats.Triangles),
			zap.Int("total", ds.TriangleCount()),
		)
		return stats, err
	}
	if err != nil {
		return stats, fmt.Errorf("cooking %s: %w", ds.Name, err)
	}

	log.Info("cooked",
		zap.Int("points", stats.Points),
		zap.Int("faces", stats.Faces),
		zap.Int("welded", stats.Welded),
		zap.Bool("normals", stats.Normals),
		zap.Duration("elapsed", time.Since(start)),
	)
	return stats, nil
}

func modelChoices() []Choice {
	models := dataset.Models()
	choices := make([]Choice, len(models))
	for i, m := range models {
		ds := dataset.Lookup(m)
		choices[i] = Choice{Token: ds.Name, Label: ds.Label}
	}
	return choices
}
