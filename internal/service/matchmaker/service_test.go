package matchmaker_test

import (
	"context"
	"net"
	"slices"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"

	"github.com/oggyb/matchbot/internal/app"
	"github.com/oggyb/matchbot/internal/cache"
	"github.com/oggyb/matchbot/internal/config"
	"github.com/oggyb/matchbot/internal/coordinator"
	"github.com/oggyb/matchbot/internal/db"
	"github.com/oggyb/matchbot/internal/db/dbtest"
	"github.com/oggyb/matchbot/internal/logger"
	pb "github.com/oggyb/matchbot/internal/proto/matchmaker"
	"github.com/oggyb/matchbot/internal/server"
	"github.com/oggyb/matchbot/internal/service/matchmaker"
)

const adminKey = "admin-secret"

//
// Test helpers
//

type sink struct {
	mu   sync.Mutex
	sent []coordinator.Outbound
}

func (s *sink) Deliver(_ context.Context, out coordinator.Outbound) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, out)
	return nil
}

// kinds lists the notice kinds addressed to any of ids, in send order.
func (s *sink) kinds(ids ...int64) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, o := range s.sent {
		if slices.Contains(ids, o.To) {
			out = append(out, o.Kind)
		}
	}
	return out
}

type env struct {
	client pb.MatchmakerClient
	redis  *miniredis.Miniredis
	sink   *sink
}

// setupService spins up an in-memory SQLite DB, a miniredis, and serves the
// Matchmaker service over bufconn through the real server stack.
//
// Dataset:
//   - 1 (male), 2 (female), 3 (female), all discoverable
//   - like 2 -> 1
func setupService(t *testing.T) *env {
	t.Helper()

	gdb := dbtest.Open(t)
	dbtest.Insert(t, gdb,
		dbtest.Profile(1, db.GenderMale),
		dbtest.Profile(2, db.GenderFemale),
		dbtest.Profile(3, db.GenderFemale),
	)
	dbtest.Like(t, gdb, [2]int64{2, 1})

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	hash, err := bcrypt.GenerateFromPassword([]byte(adminKey), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()
	cfg.Admin.KeyHash = string(hash)
	cfg.Bot.AdminID = 900
	cfg.Coins.MessageCost = 2
	cfg.Coins.ViewAllLikersCost = 10
	cfg.Coins.RegistrationBonus = 10
	cfg.Registration.MinPhotos = 2
	cfg.Registration.FinalizeDelay = 0

	rdb := cache.NewRedisCache(cfg)
	t.Cleanup(func() { _ = rdb.Close() })

	s := &sink{}
	appCtx := app.New(cfg, gdb, rdb, logger.Discard(), s)
	srv := server.NewGRPCServer(cfg, logger.Discard(), matchmaker.AdminMethods, matchmaker.NewRegistrar(appCtx))

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = srv.Serve(ctx, lis)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &env{client: pb.NewMatchmakerClient(conn), redis: mr, sink: s}
}

func asAdmin(ctx context.Context) context.Context {
	return metadata.AppendToOutgoingContext(ctx, server.AdminKeyHeader, adminKey)
}

//
// Tests
//

func TestInvalidUserID(t *testing.T) {
	e := setupService(t)

	_, err := e.client.Browse(context.Background(), &pb.BrowseRequest{UserId: 0})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = e.client.Like(context.Background(), &pb.ActionRequest{UserId: 1, TargetId: -4})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestLikeMutualAndCounts likes back a user who liked first, then checks
// matches and the cache-first counters.
func TestLikeMutualAndCounts(t *testing.T) {
	ctx := context.Background()
	e := setupService(t)

	browse, err := e.client.Browse(ctx, &pb.BrowseRequest{UserId: 1})
	require.NoError(t, err)
	assert.NotEmpty(t, browse.SessionId)
	assert.Contains(t, []int64{2, 3}, browse.Candidate.UserId)

	like, err := e.client.Like(ctx, &pb.ActionRequest{UserId: 1, TargetId: 2})
	require.NoError(t, err)
	assert.True(t, like.Mutual)
	assert.False(t, like.AlreadyLiked)

	again, err := e.client.Like(ctx, &pb.ActionRequest{UserId: 1, TargetId: 2})
	require.NoError(t, err)
	assert.True(t, again.AlreadyLiked)

	matches, err := e.client.ListMatches(ctx, &pb.ListMatchesRequest{UserId: 1})
	require.NoError(t, err)
	require.Len(t, matches.Matches, 1)
	assert.Equal(t, int64(2), matches.Matches[0].UserId)

	counts, err := e.client.CountLikes(ctx, &pb.CountLikesRequest{UserId: 1})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), counts.LikesReceived)
	assert.Equal(t, uint64(1), counts.Matches)
	assert.True(t, e.redis.Exists(cache.Key(cache.LikesReceived, 1)))

	// second call served from cache
	counts, err = e.client.CountLikes(ctx, &pb.CountLikesRequest{UserId: 1})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), counts.LikesReceived)
}

func TestLikeAcrossBlock(t *testing.T) {
	ctx := context.Background()
	e := setupService(t)

	_, err := e.client.Block(ctx, &pb.ActionRequest{UserId: 2, TargetId: 1})
	require.NoError(t, err)

	like, err := e.client.Like(ctx, &pb.ActionRequest{UserId: 1, TargetId: 2})
	require.NoError(t, err)
	assert.True(t, like.Blocked)
	assert.False(t, like.Mutual)
	assert.Empty(t, e.sink.kinds(2))

	_, err = e.client.GetConversation(ctx, &pb.GetConversationRequest{UserId: 1, OtherId: 2})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	_, err = e.client.GetConversation(ctx, &pb.GetConversationRequest{UserId: 1})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

// Optional fields must survive the wire so that a zero value is still an
// explicit update.
func TestUpdateMaskSurvivesWire(t *testing.T) {
	zero := int32(0)
	in := &pb.UpdateProfileRequest{UserId: 7, Age: &zero}
	raw, err := proto.Marshal(in)
	require.NoError(t, err)

	var out pb.UpdateProfileRequest
	require.NoError(t, proto.Unmarshal(raw, &out))
	require.NotNil(t, out.Age)
	assert.Zero(t, *out.Age)
	assert.Nil(t, out.Bio)
	assert.True(t, proto.Equal(in, &out))

	svc := pb.File_matchmaker_v1_matchmaker_proto.Services().ByName("Matchmaker")
	require.NotNil(t, svc)
	assert.NotNil(t, svc.Methods().ByName("GetConversation"))
}

func TestListLikers(t *testing.T) {
	ctx := context.Background()
	e := setupService(t)

	resp, err := e.client.ListLikers(ctx, &pb.ListLikersRequest{UserId: 1})
	require.NoError(t, err)
	require.Len(t, resp.Likers, 1)
	assert.Equal(t, int64(2), resp.Likers[0].Profile.UserId)
	assert.Empty(t, resp.GetNextPaginationToken())

	bad := "%%%"
	_, err = e.client.ListLikers(ctx, &pb.ListLikersRequest{UserId: 1, PaginationToken: &bad})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestViewAllLikersStatuses(t *testing.T) {
	ctx := context.Background()
	e := setupService(t)

	resp, err := e.client.ViewAllLikers(ctx, &pb.ViewAllLikersRequest{UserId: 1})
	require.NoError(t, err)
	assert.Equal(t, "insufficient_funds", resp.Status)
	assert.Empty(t, resp.Likers)

	for _, id := range []int64{1, 3} {
		_, err = e.client.CreditCoins(asAdmin(ctx), &pb.CreditCoinsRequest{UserId: id, Amount: 15})
		require.NoError(t, err)
	}

	// nobody liked 3: nothing to show, nothing charged
	resp, err = e.client.ViewAllLikers(ctx, &pb.ViewAllLikersRequest{UserId: 3})
	require.NoError(t, err)
	assert.Equal(t, "no_likers", resp.Status)
	assert.Equal(t, int64(15), resp.Balance)

	resp, err = e.client.ViewAllLikers(ctx, &pb.ViewAllLikersRequest{UserId: 1})
	require.NoError(t, err)
	assert.Equal(t, "viewed", resp.Status)
	assert.Len(t, resp.Likers, 1)
	assert.Equal(t, int64(5), resp.Balance)
}

// TestSendMessageCharging checks the paid message path end to end.
func TestSendMessageCharging(t *testing.T) {
	ctx := context.Background()
	e := setupService(t)

	resp, err := e.client.SendMessage(ctx, &pb.SendMessageRequest{UserId: 1, RecipientId: 2, Text: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "insufficient_funds", resp.Status)
	assert.Zero(t, resp.MessageId)

	_, err = e.client.CreditCoins(ctx, &pb.CreditCoinsRequest{UserId: 1, Amount: 3})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	credited, err := e.client.CreditCoins(asAdmin(ctx), &pb.CreditCoinsRequest{UserId: 1, Amount: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(3), credited.Balance)

	resp, err = e.client.SendMessage(ctx, &pb.SendMessageRequest{UserId: 1, RecipientId: 2, Text: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "sent", resp.Status)
	assert.Equal(t, int64(2), resp.Charged)
	assert.Equal(t, int64(1), resp.Balance)

	assert.Equal(t, []string{coordinator.KindPayment, coordinator.KindMessage}, e.sink.kinds(2, 1))

	conv, err := e.client.GetConversation(ctx, &pb.GetConversationRequest{UserId: 2, OtherId: 1})
	require.NoError(t, err)
	require.Len(t, conv.Messages, 1)
	assert.Equal(t, "hi", conv.Messages[0].Text)
	assert.Equal(t, int64(1), conv.Messages[0].SenderId)

	_, err = e.client.SendMessage(ctx, &pb.SendMessageRequest{UserId: 1, RecipientId: 1, Text: "me"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestPaymentReview(t *testing.T) {
	ctx := context.Background()
	e := setupService(t)

	pkgs, err := e.client.ListPackages(ctx, &pb.ListPackagesRequest{})
	require.NoError(t, err)
	require.NotEmpty(t, pkgs.Packages)

	sub, err := e.client.SubmitPayment(ctx, &pb.SubmitPaymentRequest{UserId: 1, PackageId: "coins_100", EvidenceRef: "receipt"})
	require.NoError(t, err)
	assert.Equal(t, db.PaymentPending, sub.Payment.Status)

	_, err = e.client.SubmitPayment(ctx, &pb.SubmitPaymentRequest{UserId: 1, PackageId: "coins_7"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = e.client.ListPendingPayments(ctx, &pb.ListPendingPaymentsRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	pending, err := e.client.ListPendingPayments(asAdmin(ctx), &pb.ListPendingPaymentsRequest{})
	require.NoError(t, err)
	require.Len(t, pending.Payments, 1)

	approved, err := e.client.ApprovePayment(asAdmin(ctx), &pb.ReviewPaymentRequest{PaymentId: sub.Payment.Id, ReviewerId: 900})
	require.NoError(t, err)
	assert.Equal(t, db.PaymentApproved, approved.Payment.Status)
	assert.Equal(t, int64(100), approved.Balance)

	_, err = e.client.ApprovePayment(asAdmin(ctx), &pb.ReviewPaymentRequest{PaymentId: sub.Payment.Id, ReviewerId: 900})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	balance, err := e.client.GetBalance(ctx, &pb.GetBalanceRequest{UserId: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance.Balance)
}

// TestRegistrationFlow registers a new user, completes the photo batch and
// checks the bonus landed exactly once.
func TestRegistrationFlow(t *testing.T) {
	ctx := context.Background()
	e := setupService(t)

	reg, err := e.client.Register(ctx, &pb.RegisterRequest{UserId: 10, FirstName: "Ali"})
	require.NoError(t, err)
	assert.True(t, reg.Created)

	reg, err = e.client.Register(ctx, &pb.RegisterRequest{UserId: 10, FirstName: "Ali"})
	require.NoError(t, err)
	assert.False(t, reg.Created)

	age := int32(12)
	_, err = e.client.UpdateProfile(ctx, &pb.UpdateProfileRequest{UserId: 10, Age: &age})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	age = 27
	gender, bio := db.GenderMale, "likes hiking"
	upd, err := e.client.UpdateProfile(ctx, &pb.UpdateProfileRequest{UserId: 10, Age: &age, Gender: &gender, Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, int32(27), upd.Profile.Age)

	_, err = e.client.Browse(ctx, &pb.BrowseRequest{UserId: 10})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	first, err := e.client.AddPhoto(ctx, &pb.AddPhotoRequest{UserId: 10, Ref: "p1"})
	require.NoError(t, err)
	assert.False(t, first.Finalized)

	second, err := e.client.AddPhoto(ctx, &pb.AddPhotoRequest{UserId: 10, Ref: "p2"})
	require.NoError(t, err)
	assert.True(t, second.Finalized)

	profile, err := e.client.GetProfile(ctx, &pb.GetProfileRequest{UserId: 10})
	require.NoError(t, err)
	assert.True(t, profile.Profile.Registered)
	assert.Equal(t, []string{"p1", "p2"}, profile.Profile.Photos)

	balance, err := e.client.GetBalance(ctx, &pb.GetBalanceRequest{UserId: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(10), balance.Balance)

	browse, err := e.client.Browse(ctx, &pb.BrowseRequest{UserId: 10})
	require.NoError(t, err)
	assert.Contains(t, []int64{2, 3}, browse.Candidate.UserId)
}

func TestDeleteAccountAndComplaint(t *testing.T) {
	ctx := context.Background()
	e := setupService(t)

	reported := int64(2)
	c, err := e.client.FileComplaint(ctx, &pb.FileComplaintRequest{
		UserId:         1,
		ReportedUserId: &reported,
		Type:           "spam",
		Text:           "sends the same link to everyone",
	})
	require.NoError(t, err)
	assert.NotZero(t, c.ComplaintId)

	_, err = e.client.FileComplaint(ctx, &pb.FileComplaintRequest{UserId: 1, Type: "spam", Text: "short"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	del, err := e.client.DeleteAccount(ctx, &pb.DeleteAccountRequest{UserId: 2})
	require.NoError(t, err)
	assert.True(t, del.Deleted)

	_, err = e.client.GetProfile(ctx, &pb.GetProfileRequest{UserId: 2})
	assert.Equal(t, codes.NotFound, status.Code(err))

	likers, err := e.client.ListLikers(ctx, &pb.ListLikersRequest{UserId: 1})
	require.NoError(t, err)
	assert.Empty(t, likers.Likers)
}
