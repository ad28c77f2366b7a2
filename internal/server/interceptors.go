package server

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// AdminKeyHeader is the metadata key admin tools put the plain admin key in.
const AdminKeyHeader = "x-admin-key"

// AdminAuth guards the given methods with a bcrypt-hashed shared key.
//
// Behavior:
//   - Methods outside adminMethods pass through.
//   - An empty keyHash disables admin methods entirely (PermissionDenied).
//   - A missing or wrong key yields Unauthenticated.
func AdminAuth(keyHash string, adminMethods map[string]bool) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !adminMethods[info.FullMethod] {
			return handler(ctx, req)
		}
		if keyHash == "" {
			return nil, status.Error(codes.PermissionDenied, "admin methods are disabled")
		}
		md, _ := metadata.FromIncomingContext(ctx)
		keys := md.Get(AdminKeyHeader)
		if len(keys) == 0 || keys[0] == "" {
			return nil, status.Error(codes.Unauthenticated, "missing admin key")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(keys[0])); err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid admin key")
		}
		return handler(ctx, req)
	}
}

// Logging logs every call with its status code and duration.
func Logging(log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)

		level := slog.LevelDebug
		if code == codes.Internal || code == codes.Unknown {
			level = slog.LevelError
		}
		log.Log(ctx, level, "grpc call",
			"method", info.FullMethod,
			"code", code.String(),
			"duration", time.Since(start),
		)
		return resp, err
	}
}

// Recovery turns a handler panic into an Internal error.
func Recovery(log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("grpc handler panic", "method", info.FullMethod, "panic", r, "stack", string(debug.Stack()))
				err = status.Error(codes.Internal, "internal error")
			}
		}()
		return handler(ctx, req)
	}
}
