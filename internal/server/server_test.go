package server_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/oggyb/matchbot/internal/config"
	"github.com/oggyb/matchbot/internal/logger"
	"github.com/oggyb/matchbot/internal/server"
)

const adminMethod = "/test.Admin/Do"

func okHandler(context.Context, any) (any, error) { return "ok", nil }

func hashKey(t *testing.T, key string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func callAdmin(t *testing.T, hash, key, method string) error {
	t.Helper()
	ctx := context.Background()
	if key != "" {
		ctx = metadata.NewIncomingContext(ctx, metadata.Pairs(server.AdminKeyHeader, key))
	}
	guard := server.AdminAuth(hash, map[string]bool{adminMethod: true})
	_, err := guard(ctx, nil, &grpc.UnaryServerInfo{FullMethod: method}, okHandler)
	return err
}

func TestAdminAuth(t *testing.T) {
	hash := hashKey(t, "s3cret")

	t.Run("public methods pass without a key", func(t *testing.T) {
		assert.NoError(t, callAdmin(t, hash, "", "/test.Public/Do"))
	})

	t.Run("correct key", func(t *testing.T) {
		assert.NoError(t, callAdmin(t, hash, "s3cret", adminMethod))
	})

	t.Run("missing key", func(t *testing.T) {
		assert.Equal(t, codes.Unauthenticated, status.Code(callAdmin(t, hash, "", adminMethod)))
	})

	t.Run("wrong key", func(t *testing.T) {
		assert.Equal(t, codes.Unauthenticated, status.Code(callAdmin(t, hash, "guess", adminMethod)))
	})

	t.Run("no hash configured", func(t *testing.T) {
		assert.Equal(t, codes.PermissionDenied, status.Code(callAdmin(t, "", "s3cret", adminMethod)))
	})
}

func TestRecovery(t *testing.T) {
	rec := server.Recovery(logger.Discard())
	_, err := rec(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/x/y"},
		func(context.Context, any) (any, error) { panic("boom") })
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestServeHealthAndGracefulStop(t *testing.T) {
	cfg := config.New()
	srv := server.NewGRPCServer(cfg, logger.Discard(), nil)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	defer conn.Close()

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
