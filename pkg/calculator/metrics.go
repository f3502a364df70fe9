package calculator

import (
	"context"

	"github.com/charithe/exprcalc/pkg/notation"
	"github.com/pkg/errors"
	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
	"go.uber.org/zap"
)

const (
	outcomeOK             = "ok"
	outcomeInvalid        = "invalid"
	outcomeDivisionByZero = "division_by_zero"
	outcomeError          = "error"
)

var (
	keyOperation, _ = tag.NewKey("operation")
	keyNotation, _  = tag.NewKey("notation")
	keyOutcome, _   = tag.NewKey("outcome")

	mRequests         = stats.Int64("exprcalc/requests", "Number of expression requests", "1")
	mExpressionLength = stats.Int64("exprcalc/expression_length", "Length of submitted expressions", "By")

	RequestCountView = &view.View{
		Name:        "exprcalc/requests",
		Description: "Count of expression requests by operation, notation and outcome",
		Measure:     mRequests,
		TagKeys:     []tag.Key{keyOperation, keyNotation, keyOutcome},
		Aggregation: view.Count(),
	}

	ExpressionLengthView = &view.View{
		Name:        "exprcalc/expression_length",
		Description: "Distribution of expression lengths in bytes",
		Measure:     mExpressionLength,
		TagKeys:     []tag.Key{keyOperation},
		Aggregation: view.Distribution(8, 16, 32, 64, 128, 256, 512, 1024, 4096),
	}
)

// RegisterViews registers the calculator views with OpenCensus.
func RegisterViews() error {
	return view.Register(RequestCountView, ExpressionLengthView)
}

func recordRequest(ctx context.Context, op string, n notation.Notation, length int, err error) {
	ctx, tagErr := tag.New(ctx,
		tag.Upsert(keyOperation, op),
		tag.Upsert(keyNotation, n.String()),
		tag.Upsert(keyOutcome, outcome(err)),
	)
	if tagErr != nil {
		zap.S().Debugw("Failed to tag request", "error", tagErr)
		return
	}

	stats.Record(ctx, mRequests.M(1), mExpressionLength.M(int64(length)))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, notation.ErrDivisionByZero):
		return outcomeDivisionByZero
	case errors.Is(err, notation.ErrInvalidExpression),
		errors.Is(err, notation.ErrInvalidCharacter),
		errors.Is(err, notation.ErrMalformedExpression):
		return outcomeInvalid
	default:
		return outcomeError
	}
}
