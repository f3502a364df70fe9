package calculator

import (
	"context"
	"io"

	"github.com/charithe/exprcalc/pkg/exprtree"
	"github.com/charithe/exprcalc/pkg/notation"
	"github.com/charithe/exprcalc/pkg/v1pb"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/status"
)

const graphName = "expression"

const (
	opValidate       = "validate"
	opConvert        = "convert"
	opEvaluate       = "evaluate"
	opEvaluateStream = "evaluate_stream"
	opGraph          = "graph"
)

// Service implements the RPC interface of the calculator
type Service struct {
	*health.Server
}

func NewService() *Service {
	return &Service{
		Server: health.NewServer(),
	}
}

func (s *Service) Validate(ctx context.Context, req *v1pb.ValidateRequest) (*v1pb.ValidateResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n, err := fromProto(req.Notation)
	if err != nil {
		return nil, err
	}

	err = notation.Validate(n, req.Expression)
	recordRequest(ctx, opValidate, n, len(req.Expression), err)
	if err != nil {
		if errors.Is(err, notation.ErrInvalidExpression) {
			return &v1pb.ValidateResponse{Valid: false, Reason: err.Error()}, nil
		}
		return nil, toStatus(err)
	}

	return &v1pb.ValidateResponse{Valid: true}, nil
}

func (s *Service) Convert(ctx context.Context, req *v1pb.ConvertRequest) (*v1pb.ConvertResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	from, err := fromProto(req.From)
	if err != nil {
		return nil, err
	}

	to, err := fromProto(req.To)
	if err != nil {
		return nil, err
	}

	expr, err := notation.Convert(from, to, req.Expression)
	recordRequest(ctx, opConvert, from, len(req.Expression), err)
	if err != nil {
		return nil, toStatus(err)
	}

	return &v1pb.ConvertResponse{Expression: expr}, nil
}

func (s *Service) Evaluate(ctx context.Context, req *v1pb.EvaluateRequest) (*v1pb.EvaluateResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n, err := fromProto(req.Notation)
	if err != nil {
		return nil, err
	}

	result, err := notation.Evaluate(n, req.Expression)
	recordRequest(ctx, opEvaluate, n, len(req.Expression), err)
	if err != nil {
		return nil, toStatus(err)
	}

	return &v1pb.EvaluateResponse{Result: result}, nil
}

// EvaluateStream reduces postfix tokens as they arrive and replies once the
// client closes its side of the stream.
func (s *Service) EvaluateStream(stream v1pb.Calculator_EvaluateStreamServer) error {
	ctx := stream.Context()
	rpn := notation.NewReducer()
	length := 0

	for {
		req, err := stream.Recv()
		if err != nil {
			if err == io.EOF {
				// end of the client-side stream so calculate the result
				result, err := rpn.Result()
				recordRequest(ctx, opEvaluateStream, notation.Postfix, length, err)
				if err != nil {
					return toStatus(err)
				}

				if err := stream.SendAndClose(&v1pb.EvaluateStreamResponse{Result: result}); err != nil {
					zap.S().Errorw("Failed to send response", "error", err)
					return err
				}

				return nil
			}

			zap.S().Warnw("Failed to receive request from stream", "error", err)
			return err
		}

		length += len(req.Token)
		tok, err := notation.ParseToken(req.Token)
		if err == nil {
			err = rpn.Push(tok)
		}

		if err != nil {
			recordRequest(ctx, opEvaluateStream, notation.Postfix, length, err)
			return toStatus(err)
		}
	}
}

func (s *Service) Graph(ctx context.Context, req *v1pb.GraphRequest) (*v1pb.GraphResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n, err := fromProto(req.Notation)
	if err != nil {
		return nil, err
	}

	root, err := exprtree.Build(n, req.Expression)
	recordRequest(ctx, opGraph, n, len(req.Expression), err)
	if err != nil {
		return nil, toStatus(err)
	}

	return &v1pb.GraphResponse{Dot: exprtree.NewGraphvizDot(root, graphName).String()}, nil
}

func fromProto(n v1pb.Notation) (notation.Notation, error) {
	switch n {
	case v1pb.INFIX:
		return notation.Infix, nil
	case v1pb.PREFIX:
		return notation.Prefix, nil
	case v1pb.POSTFIX:
		return notation.Postfix, nil
	default:
		return 0, status.Errorf(codes.InvalidArgument, "unknown notation: %d", int32(n))
	}
}

func toProto(n notation.Notation) v1pb.Notation {
	switch n {
	case notation.Prefix:
		return v1pb.PREFIX
	case notation.Postfix:
		return v1pb.POSTFIX
	default:
		return v1pb.INFIX
	}
}

// toStatus maps expression errors to gRPC status errors. Anything that is not
// a problem with the caller's input is logged and reported as internal.
func toStatus(err error) error {
	switch {
	case errors.Is(err, notation.ErrDivisionByZero):
		return status.Error(codes.OutOfRange, err.Error())
	case errors.Is(err, notation.ErrInvalidExpression),
		errors.Is(err, notation.ErrInvalidCharacter),
		errors.Is(err, notation.ErrMalformedExpression):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		zap.S().Errorw("Failed to process expression", "error", err)
		return status.Error(codes.Internal, err.Error())
	}
}
