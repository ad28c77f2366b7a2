// Package matchmaker holds the generated Matchmaker gRPC contract. The source
// is proto/matchmaker/v1/matchmaker.proto.
package matchmaker

//go:generate protoc --proto_path=../../../proto --go_out=../../.. --go_opt=module=github.com/oggyb/matchbot --go-grpc_out=../../.. --go-grpc_opt=module=github.com/oggyb/matchbot matchmaker/v1/matchmaker.proto
