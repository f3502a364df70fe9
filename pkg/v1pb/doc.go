// Package v1pb contains the wire messages and gRPC bindings of the
// calculator.v1 service described in calculator.proto.
//
// The bindings follow the layout of protoc-gen-gogo output without the
// embedded file descriptor, so server reflection does not list the
// message schemas. Keep calculator.pb.go in sync when editing the proto.
package v1pb
