package calculator

import (
	"context"
	"io"

	"github.com/charithe/exprcalc/pkg/notation"
	"github.com/charithe/exprcalc/pkg/v1pb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Calculator is implemented by both the RPC client and the in-process Local
// calculator so that callers can switch between them.
type Calculator interface {
	Validate(ctx context.Context, n notation.Notation, expr string) error
	Convert(ctx context.Context, from, to notation.Notation, expr string) (string, error)
	Evaluate(ctx context.Context, n notation.Notation, expr string) (int64, error)
	Graph(ctx context.Context, n notation.Notation, expr string) (string, error)
}

// Client implements the RPC client for the Calculator service
type Client struct {
	conn   *grpc.ClientConn
	client v1pb.CalculatorClient
}

func NewClient(conn *grpc.ClientConn) *Client {
	return &Client{
		conn:   conn,
		client: v1pb.NewCalculatorClient(conn),
	}
}

// Validate returns nil if the server accepts expr. A rejected expression is
// reported as an error matching notation.ErrInvalidExpression.
func (c *Client) Validate(ctx context.Context, n notation.Notation, expr string) error {
	resp, err := c.client.Validate(ctx, &v1pb.ValidateRequest{Notation: toProto(n), Expression: expr})
	if err != nil {
		return err
	}

	if !resp.Valid {
		return rejectedError(resp.Reason)
	}

	return nil
}

func (c *Client) Convert(ctx context.Context, from, to notation.Notation, expr string) (string, error) {
	resp, err := c.client.Convert(ctx, &v1pb.ConvertRequest{From: toProto(from), To: toProto(to), Expression: expr})
	if err != nil {
		return "", fromStatus(err)
	}

	return resp.Expression, nil
}

func (c *Client) Evaluate(ctx context.Context, n notation.Notation, expr string) (int64, error) {
	resp, err := c.client.Evaluate(ctx, &v1pb.EvaluateRequest{Notation: toProto(n), Expression: expr})
	if err != nil {
		return 0, fromStatus(err)
	}

	return resp.Result, nil
}

// EvaluateStream sends each postfix token received from tokens and returns
// the result once the channel is closed.
func (c *Client) EvaluateStream(tokens <-chan string) (int64, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, err := c.client.EvaluateStream(ctx)
	if err != nil {
		return 0, err
	}

	for tok := range tokens {
		if err := stream.Send(&v1pb.EvaluateStreamRequest{Token: tok}); err != nil {
			// unblock the producer
			go func() {
				for range tokens {
				}
			}()

			// the server has ended the stream so fetch the status it ended with
			if err == io.EOF {
				_, err = stream.CloseAndRecv()
			}
			return 0, fromStatus(err)
		}
	}

	resp, err := stream.CloseAndRecv()
	if err != nil {
		return 0, fromStatus(err)
	}

	return resp.Result, nil
}

func (c *Client) Graph(ctx context.Context, n notation.Notation, expr string) (string, error) {
	resp, err := c.client.Graph(ctx, &v1pb.GraphRequest{Notation: toProto(n), Expression: expr})
	if err != nil {
		return "", fromStatus(err)
	}

	return resp.Dot, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// remoteError is an expression error reported by the server. It matches the
// notation sentinel it was produced from and keeps its gRPC status.
type remoteError struct {
	kind error
	st   *status.Status
}

func (e *remoteError) Error() string {
	return e.st.Message()
}

func (e *remoteError) Is(target error) bool {
	return target == e.kind
}

func (e *remoteError) GRPCStatus() *status.Status {
	return e.st
}

func rejectedError(reason string) error {
	return &remoteError{kind: notation.ErrInvalidExpression, st: status.New(codes.InvalidArgument, reason)}
}

// fromStatus translates expression errors returned by the server back into
// errors matching the notation sentinels. Other errors are returned as is.
func fromStatus(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.InvalidArgument:
		return &remoteError{kind: notation.ErrInvalidExpression, st: st}
	case codes.OutOfRange:
		return &remoteError{kind: notation.ErrDivisionByZero, st: st}
	default:
		return err
	}
}
