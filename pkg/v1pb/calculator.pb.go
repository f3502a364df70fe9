// Bindings for calculator.proto in the layout of protoc-gen-gogo output.
// source: calculator.proto

package v1pb

import (
	context "context"
	fmt "fmt"
	math "math"

	proto "github.com/gogo/protobuf/proto"
	grpc "google.golang.org/grpc"
)

// Reference imports to suppress errors if they are not otherwise used.
var _ = proto.Marshal
var _ = fmt.Errorf
var _ = math.Inf

// This is a compile-time assertion to ensure that this generated file
// is compatible with the proto package it is being compiled against.
// A compilation error at this line likely means your copy of the
// proto package needs to be updated.
const _ = proto.GoGoProtoPackageIsVersion2 // please upgrade the proto package

type Notation int32

const (
	INFIX   Notation = 0
	PREFIX  Notation = 1
	POSTFIX Notation = 2
)

var Notation_name = map[int32]string{
	0: "INFIX",
	1: "PREFIX",
	2: "POSTFIX",
}

var Notation_value = map[string]int32{
	"INFIX":   0,
	"PREFIX":  1,
	"POSTFIX": 2,
}

func (x Notation) String() string {
	return proto.EnumName(Notation_name, int32(x))
}

type ValidateRequest struct {
	Notation   Notation `protobuf:"varint,1,opt,name=notation,proto3,enum=calculator.v1.Notation" json:"notation,omitempty"`
	Expression string   `protobuf:"bytes,2,opt,name=expression,proto3" json:"expression,omitempty"`
}

func (m *ValidateRequest) Reset()         { *m = ValidateRequest{} }
func (m *ValidateRequest) String() string { return proto.CompactTextString(m) }
func (*ValidateRequest) ProtoMessage()    {}

func (m *ValidateRequest) GetNotation() Notation {
	if m != nil {
		return m.Notation
	}
	return INFIX
}

func (m *ValidateRequest) GetExpression() string {
	if m != nil {
		return m.Expression
	}
	return ""
}

type ValidateResponse struct {
	Valid  bool   `protobuf:"varint,1,opt,name=valid,proto3" json:"valid,omitempty"`
	Reason string `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
}

func (m *ValidateResponse) Reset()         { *m = ValidateResponse{} }
func (m *ValidateResponse) String() string { return proto.CompactTextString(m) }
func (*ValidateResponse) ProtoMessage()    {}

func (m *ValidateResponse) GetValid() bool {
	if m != nil {
		return m.Valid
	}
	return false
}

func (m *ValidateResponse) GetReason() string {
	if m != nil {
		return m.Reason
	}
	return ""
}

type ConvertRequest struct {
	From       Notation `protobuf:"varint,1,opt,name=from,proto3,enum=calculator.v1.Notation" json:"from,omitempty"`
	To         Notation `protobuf:"varint,2,opt,name=to,proto3,enum=calculator.v1.Notation" json:"to,omitempty"`
	Expression string   `protobuf:"bytes,3,opt,name=expression,proto3" json:"expression,omitempty"`
}

func (m *ConvertRequest) Reset()         { *m = ConvertRequest{} }
func (m *ConvertRequest) String() string { return proto.CompactTextString(m) }
func (*ConvertRequest) ProtoMessage()    {}

func (m *ConvertRequest) GetFrom() Notation {
	if m != nil {
		return m.From
	}
	return INFIX
}

func (m *ConvertRequest) GetTo() Notation {
	if m != nil {
		return m.To
	}
	return INFIX
}

func (m *ConvertRequest) GetExpression() string {
	if m != nil {
		return m.Expression
	}
	return ""
}

type ConvertResponse struct {
	Expression string `protobuf:"bytes,1,opt,name=expression,proto3" json:"expression,omitempty"`
}

func (m *ConvertResponse) Reset()         { *m = ConvertResponse{} }
func (m *ConvertResponse) String() string { return proto.CompactTextString(m) }
func (*ConvertResponse) ProtoMessage()    {}

func (m *ConvertResponse) GetExpression() string {
	if m != nil {
		return m.Expression
	}
	return ""
}

type EvaluateRequest struct {
	Notation   Notation `protobuf:"varint,1,opt,name=notation,proto3,enum=calculator.v1.Notation" json:"notation,omitempty"`
	Expression string   `protobuf:"bytes,2,opt,name=expression,proto3" json:"expression,omitempty"`
}

func (m *EvaluateRequest) Reset()         { *m = EvaluateRequest{} }
func (m *EvaluateRequest) String() string { return proto.CompactTextString(m) }
func (*EvaluateRequest) ProtoMessage()    {}

func (m *EvaluateRequest) GetNotation() Notation {
	if m != nil {
		return m.Notation
	}
	return INFIX
}

func (m *EvaluateRequest) GetExpression() string {
	if m != nil {
		return m.Expression
	}
	return ""
}

type EvaluateResponse struct {
	Result int64 `protobuf:"varint,1,opt,name=result,proto3" json:"result,omitempty"`
}

func (m *EvaluateResponse) Reset()         { *m = EvaluateResponse{} }
func (m *EvaluateResponse) String() string { return proto.CompactTextString(m) }
func (*EvaluateResponse) ProtoMessage()    {}

func (m *EvaluateResponse) GetResult() int64 {
	if m != nil {
		return m.Result
	}
	return 0
}

type EvaluateStreamRequest struct {
	Token string `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
}

func (m *EvaluateStreamRequest) Reset()         { *m = EvaluateStreamRequest{} }
func (m *EvaluateStreamRequest) String() string { return proto.CompactTextString(m) }
func (*EvaluateStreamRequest) ProtoMessage()    {}

func (m *EvaluateStreamRequest) GetToken() string {
	if m != nil {
		return m.Token
	}
	return ""
}

type EvaluateStreamResponse struct {
	Result int64 `protobuf:"varint,1,opt,name=result,proto3" json:"result,omitempty"`
}

func (m *EvaluateStreamResponse) Reset()         { *m = EvaluateStreamResponse{} }
func (m *EvaluateStreamResponse) String() string { return proto.CompactTextString(m) }
func (*EvaluateStreamResponse) ProtoMessage()    {}

func (m *EvaluateStreamResponse) GetResult() int64 {
	if m != nil {
		return m.Result
	}
	return 0
}

type GraphRequest struct {
	Notation   Notation `protobuf:"varint,1,opt,name=notation,proto3,enum=calculator.v1.Notation" json:"notation,omitempty"`
	Expression string   `protobuf:"bytes,2,opt,name=expression,proto3" json:"expression,omitempty"`
}

func (m *GraphRequest) Reset()         { *m = GraphRequest{} }
func (m *GraphRequest) String() string { return proto.CompactTextString(m) }
func (*GraphRequest) ProtoMessage()    {}

func (m *GraphRequest) GetNotation() Notation {
	if m != nil {
		return m.Notation
	}
	return INFIX
}

func (m *GraphRequest) GetExpression() string {
	if m != nil {
		return m.Expression
	}
	return ""
}

type GraphResponse struct {
	Dot string `protobuf:"bytes,1,opt,name=dot,proto3" json:"dot,omitempty"`
}

func (m *GraphResponse) Reset()         { *m = GraphResponse{} }
func (m *GraphResponse) String() string { return proto.CompactTextString(m) }
func (*GraphResponse) ProtoMessage()    {}

func (m *GraphResponse) GetDot() string {
	if m != nil {
		return m.Dot
	}
	return ""
}

func init() {
	proto.RegisterEnum("calculator.v1.Notation", Notation_name, Notation_value)
	proto.RegisterType((*ValidateRequest)(nil), "calculator.v1.ValidateRequest")
	proto.RegisterType((*ValidateResponse)(nil), "calculator.v1.ValidateResponse")
	proto.RegisterType((*ConvertRequest)(nil), "calculator.v1.ConvertRequest")
	proto.RegisterType((*ConvertResponse)(nil), "calculator.v1.ConvertResponse")
	proto.RegisterType((*EvaluateRequest)(nil), "calculator.v1.EvaluateRequest")
	proto.RegisterType((*EvaluateResponse)(nil), "calculator.v1.EvaluateResponse")
	proto.RegisterType((*EvaluateStreamRequest)(nil), "calculator.v1.EvaluateStreamRequest")
	proto.RegisterType((*EvaluateStreamResponse)(nil), "calculator.v1.EvaluateStreamResponse")
	proto.RegisterType((*GraphRequest)(nil), "calculator.v1.GraphRequest")
	proto.RegisterType((*GraphResponse)(nil), "calculator.v1.GraphResponse")
}

// Reference imports to suppress errors if they are not otherwise used.
var _ context.Context
var _ grpc.ClientConn

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
const _ = grpc.SupportPackageIsVersion4

// CalculatorClient is the client API for Calculator service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://godoc.org/google.golang.org/grpc#ClientConn.NewStream.
type CalculatorClient interface {
	Validate(ctx context.Context, in *ValidateRequest, opts ...grpc.CallOption) (*ValidateResponse, error)
	Convert(ctx context.Context, in *ConvertRequest, opts ...grpc.CallOption) (*ConvertResponse, error)
	Evaluate(ctx context.Context, in *EvaluateRequest, opts ...grpc.CallOption) (*EvaluateResponse, error)
	EvaluateStream(ctx context.Context, opts ...grpc.CallOption) (Calculator_EvaluateStreamClient, error)
	Graph(ctx context.Context, in *GraphRequest, opts ...grpc.CallOption) (*GraphResponse, error)
}

type calculatorClient struct {
	cc *grpc.ClientConn
}

func NewCalculatorClient(cc *grpc.ClientConn) CalculatorClient {
	return &calculatorClient{cc}
}

func (c *calculatorClient) Validate(ctx context.Context, in *ValidateRequest, opts ...grpc.CallOption) (*ValidateResponse, error) {
	out := new(ValidateResponse)
	err := c.cc.Invoke(ctx, "/calculator.v1.Calculator/Validate", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calculatorClient) Convert(ctx context.Context, in *ConvertRequest, opts ...grpc.CallOption) (*ConvertResponse, error) {
	out := new(ConvertResponse)
	err := c.cc.Invoke(ctx, "/calculator.v1.Calculator/Convert", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calculatorClient) Evaluate(ctx context.Context, in *EvaluateRequest, opts ...grpc.CallOption) (*EvaluateResponse, error) {
	out := new(EvaluateResponse)
	err := c.cc.Invoke(ctx, "/calculator.v1.Calculator/Evaluate", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calculatorClient) Graph(ctx context.Context, in *GraphRequest, opts ...grpc.CallOption) (*GraphResponse, error) {
	out := new(GraphResponse)
	err := c.cc.Invoke(ctx, "/calculator.v1.Calculator/Graph", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calculatorClient) EvaluateStream(ctx context.Context, opts ...grpc.CallOption) (Calculator_EvaluateStreamClient, error) {
	stream, err := c.cc.NewStream(ctx, &_Calculator_serviceDesc.Streams[0], "/calculator.v1.Calculator/EvaluateStream", opts...)
	if err != nil {
		return nil, err
	}
	x := &calculatorEvaluateStreamClient{stream}
	return x, nil
}

type Calculator_EvaluateStreamClient interface {
	Send(*EvaluateStreamRequest) error
	CloseAndRecv() (*EvaluateStreamResponse, error)
	grpc.ClientStream
}

type calculatorEvaluateStreamClient struct {
	grpc.ClientStream
}

func (x *calculatorEvaluateStreamClient) Send(m *EvaluateStreamRequest) error {
	return x.ClientStream.SendMsg(m)
}

func (x *calculatorEvaluateStreamClient) CloseAndRecv() (*EvaluateStreamResponse, error) {
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	m := new(EvaluateStreamResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// CalculatorServer is the server API for Calculator service.
type CalculatorServer interface {
	Validate(context.Context, *ValidateRequest) (*ValidateResponse, error)
	Convert(context.Context, *ConvertRequest) (*ConvertResponse, error)
	Evaluate(context.Context, *EvaluateRequest) (*EvaluateResponse, error)
	EvaluateStream(Calculator_EvaluateStreamServer) error
	Graph(context.Context, *GraphRequest) (*GraphResponse, error)
}

func RegisterCalculatorServer(s *grpc.Server, srv CalculatorServer) {
	s.RegisterService(&_Calculator_serviceDesc, srv)
}

func _Calculator_Validate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ValidateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServer).Validate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/calculator.v1.Calculator/Validate",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalculatorServer).Validate(ctx, req.(*ValidateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Calculator_Convert_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConvertRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServer).Convert(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/calculator.v1.Calculator/Convert",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalculatorServer).Convert(ctx, req.(*ConvertRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Calculator_Evaluate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EvaluateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServer).Evaluate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/calculator.v1.Calculator/Evaluate",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalculatorServer).Evaluate(ctx, req.(*EvaluateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Calculator_Graph_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GraphRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServer).Graph(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/calculator.v1.Calculator/Graph",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalculatorServer).Graph(ctx, req.(*GraphRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Calculator_EvaluateStream_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(CalculatorServer).EvaluateStream(&calculatorEvaluateStreamServer{stream})
}

type Calculator_EvaluateStreamServer interface {
	SendAndClose(*EvaluateStreamResponse) error
	Recv() (*EvaluateStreamRequest, error)
	grpc.ServerStream
}

type calculatorEvaluateStreamServer struct {
	grpc.ServerStream
}

func (x *calculatorEvaluateStreamServer) SendAndClose(m *EvaluateStreamResponse) error {
	return x.ServerStream.SendMsg(m)
}

func (x *calculatorEvaluateStreamServer) Recv() (*EvaluateStreamRequest, error) {
	m := new(EvaluateStreamRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

var _Calculator_serviceDesc = grpc.ServiceDesc{
	ServiceName: "calculator.v1.Calculator",
	HandlerType: (*CalculatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Validate",
			Handler:    _Calculator_Validate_Handler,
		},
		{
			MethodName: "Convert",
			Handler:    _Calculator_Convert_Handler,
		},
		{
			MethodName: "Evaluate",
			Handler:    _Calculator_Evaluate_Handler,
		},
		{
			MethodName: "Graph",
			Handler:    _Calculator_Graph_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "EvaluateStream",
			Handler:       _Calculator_EvaluateStream_Handler,
			ClientStreams: true,
		},
	},
	Metadata: "calculator.proto",
}
