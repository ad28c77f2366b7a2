package matchmaker

import (
	"context"

	"github.com/oggyb/matchbot/internal/app"
	"github.com/oggyb/matchbot/internal/coordinator"
	svcErr "github.com/oggyb/matchbot/internal/errors"
	pb "github.com/oggyb/matchbot/internal/proto/matchmaker"
)

// Service implements the Matchmaker gRPC API.
// It is a thin adapter: validation of ids happens here, every rule lives in
// the coordinator and registration services held by AppContext.
type Service struct {
	appCtx *app.AppContext

	pb.UnimplementedMatchmakerServer
}

// NewMatchmakerService creates a new Matchmaker service with dependencies from AppContext.
func NewMatchmakerService(appCtx *app.AppContext) *Service {
	return &Service{appCtx: appCtx}
}

func userID(id int64) (int64, error) {
	if id <= 0 {
		return 0, svcErr.InvalidArgument("user_id must be a positive integer")
	}
	return id, nil
}

func targetID(id int64) (int64, error) {
	if id <= 0 {
		return 0, svcErr.InvalidArgument("target_id must be a positive integer")
	}
	return id, nil
}

// Register creates a profile on first contact. A known user is left as is.
func (s *Service) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	s.appCtx.Logger.Debug("Register called", "user", req.GetUserId())

	id, err := userID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	created, err := s.appCtx.Registration.Register(ctx, id, req.Username, req.FirstName, req.LastName)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.RegisterResponse{Created: created}, nil
}

func (s *Service) GetProfile(ctx context.Context, req *pb.GetProfileRequest) (*pb.GetProfileResponse, error) {
	id, err := userID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	p, err := s.appCtx.Profiles.Get(ctx, id)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.GetProfileResponse{Profile: toProfile(p)}, nil
}

// UpdateProfile applies a partial update and returns the stored profile.
//
// Behavior:
//   - Only fields present on the request are written.
//   - Field values are validated by the registration rules.
func (s *Service) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.UpdateProfileResponse, error) {
	s.appCtx.Logger.Debug("UpdateProfile called", "user", req.GetUserId())

	id, err := userID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	if err := s.appCtx.Registration.UpdateProfile(ctx, id, toUpdate(req)); err != nil {
		return nil, svcErr.Map(err)
	}
	p, err := s.appCtx.Profiles.Get(ctx, id)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.UpdateProfileResponse{Profile: toProfile(p)}, nil
}

// AddPhoto feeds one photo into the registration batch. The batch is
// finalized when it fills up or its timer fires.
func (s *Service) AddPhoto(ctx context.Context, req *pb.AddPhotoRequest) (*pb.AddPhotoResponse, error) {
	id, err := userID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	if req.Ref == "" {
		return nil, svcErr.InvalidArgument("ref is required")
	}
	res, err := s.appCtx.Registration.AddPhoto(ctx, id, req.Ref)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.AddPhotoResponse{Count: int32(res.Count), Finalized: res.Finalized}, nil
}

// Browse starts a fresh discovery session and returns its first candidate.
//
// Example:
//
//	svc.Browse(ctx, &pb.BrowseRequest{UserId: 42})
func (s *Service) Browse(ctx context.Context, req *pb.BrowseRequest) (*pb.BrowseResponse, error) {
	s.appCtx.Logger.Debug("Browse called", "user", req.GetUserId())

	id, err := userID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	res, err := s.appCtx.Coordinator.Browse(ctx, id)
	if err != nil {
		s.appCtx.Logger.Debug("Browse failed", "user", id, "err", err)
		return nil, svcErr.Map(err)
	}
	return &pb.BrowseResponse{
		SessionId: res.SessionID.String(),
		Candidate: toProfile(res.Candidate),
		Remaining: int32(res.Remaining),
		Position:  int32(res.Position),
		Total:     int32(res.Total),
	}, nil
}

func toStep(r coordinator.StepResult) *pb.StepResponse {
	step := &pb.StepResponse{Refetched: r.Refetched, Depleted: r.Depleted}
	if r.Next != nil {
		step.Next = toProfile(*r.Next)
		step.SessionId = r.SessionID.String()
	}
	return step
}

// Like stores a like and moves the session past the target.
//
// Behavior:
//   - A repeated like is reported as already_liked, not an error.
//   - mutual is set when the target liked the user first.
//   - blocked is set when a block exists between the pair; nothing is stored.
//   - unavailable is set when the current candidate was deleted meanwhile.
func (s *Service) Like(ctx context.Context, req *pb.ActionRequest) (*pb.LikeResponse, error) {
	s.appCtx.Logger.Debug("Like called", "user", req.GetUserId(), "target", req.GetTargetId())

	id, err := userID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	target, err := targetID(req.GetTargetId())
	if err != nil {
		return nil, err
	}
	res, err := s.appCtx.Coordinator.Like(ctx, id, target)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.LikeResponse{
		Step:         toStep(res.StepResult),
		AlreadyLiked: res.AlreadyLiked,
		Mutual:       res.Mutual,
		Blocked:      res.Blocked,
		Unavailable:  res.Unavailable,
	}, nil
}

func (s *Service) Skip(ctx context.Context, req *pb.ActionRequest) (*pb.StepResponse, error) {
	id, err := userID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	target, err := targetID(req.GetTargetId())
	if err != nil {
		return nil, err
	}
	res, err := s.appCtx.Coordinator.Skip(ctx, id, target)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return toStep(res), nil
}

func (s *Service) Block(ctx context.Context, req *pb.ActionRequest) (*pb.BlockResponse, error) {
	s.appCtx.Logger.Debug("Block called", "user", req.GetUserId(), "target", req.GetTargetId())

	id, err := userID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	target, err := targetID(req.GetTargetId())
	if err != nil {
		return nil, err
	}
	res, err := s.appCtx.Coordinator.Block(ctx, id, target)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.BlockResponse{AlreadyBlocked: res.AlreadyBlocked, Unavailable: res.Unavailable}, nil
}

func (s *Service) CancelSession(_ context.Context, req *pb.CancelSessionRequest) (*pb.CancelSessionResponse, error) {
	id, err := userID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	s.appCtx.Coordinator.CancelSession(id)
	return &pb.CancelSessionResponse{}, nil
}

// SendMessage records and relays a paid message.
// Business outcomes (insufficient funds, failed delivery) come back in
// status, not as gRPC errors.
func (s *Service) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	s.appCtx.Logger.Debug("SendMessage called", "user", req.GetUserId(), "recipient", req.RecipientId, "kind", req.Kind)

	id, err := userID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	if req.RecipientId <= 0 {
		return nil, svcErr.InvalidArgument("recipient_id must be a positive integer")
	}
	res, err := s.appCtx.Coordinator.SendMessage(ctx, coordinator.MessageRequest{
		From:     id,
		To:       req.RecipientId,
		Kind:     req.Kind,
		Text:     req.Text,
		MediaRef: req.MediaRef,
	})
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.SendMessageResponse{
		Status:    res.Status.String(),
		MessageId: res.MessageID,
		Charged:   res.Charged,
		Balance:   res.Balance,
		Cost:      res.Cost,
	}, nil
}

// GetConversation returns the latest delivered messages between two users.
func (s *Service) GetConversation(ctx context.Context, req *pb.GetConversationRequest) (*pb.GetConversationResponse, error) {
	id, err := userID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	other := req.GetOtherId()
	if other <= 0 {
		return nil, svcErr.InvalidArgument("other_id must be a positive integer")
	}
	msgs, err := s.appCtx.Coordinator.Conversation(ctx, id, other)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.GetConversationResponse{Messages: toChatMessages(msgs)}, nil
}

// ListLikers returns one free preview page of the people who liked the user.
//
// Behavior:
//   - Newest first, cursor paginated via pagination_token.
//   - Blocked pairs and inactive likers are hidden.
func (s *Service) ListLikers(ctx context.Context, req *pb.ListLikersRequest) (*pb.ListLikersResponse, error) {
	s.appCtx.Logger.Debug("ListLikers called", "user", req.GetUserId(), "token", req.PaginationToken != nil)

	id, err := userID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	likers, next, err := s.appCtx.Coordinator.LikersPage(ctx, id, req.PaginationToken)
	if err != nil {
		s.appCtx.Logger.Error("LikersPage failed", "user", id, "err", err)
		return nil, svcErr.Map(err)
	}
	resp := &pb.ListLikersResponse{Likers: toLikers(likers), NextPaginationToken: next}

	s.appCtx.Logger.Debug("ListLikers result", "liker_count", len(resp.Likers), "next_token", resp.GetNextPaginationToken())
	return resp, nil
}

// ViewAllLikers charges for and returns the full likers list.
func (s *Service) ViewAllLikers(ctx context.Context, req *pb.ViewAllLikersRequest) (*pb.ViewAllLikersResponse, error) {
	s.appCtx.Logger.Debug("ViewAllLikers called", "user", req.GetUserId())

	id, err := userID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	res, err := s.appCtx.Coordinator.ViewAllLikers(ctx, id)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	resp := &pb.ViewAllLikersResponse{
		Status:  res.Status.String(),
		Balance: res.Balance,
		Cost:    res.Cost,
	}
	if res.Status == coordinator.Viewed {
		resp.Likers = toLikers(res.Likers)
	}
	return resp, nil
}

func (s *Service) ListMatches(ctx context.Context, req *pb.ListMatchesRequest) (*pb.ListMatchesResponse, error) {
	id, err := userID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	matches, err := s.appCtx.Coordinator.Matches(ctx, id)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.ListMatchesResponse{Matches: toProfiles(matches)}, nil
}

// CountLikes returns likes received and mutual matches.
// Counts are served from Redis when cached and fall back to the DB.
func (s *Service) CountLikes(ctx context.Context, req *pb.CountLikesRequest) (*pb.CountLikesResponse, error) {
	s.appCtx.Logger.Debug("CountLikes called", "user", req.GetUserId())

	id, err := userID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	counts, err := s.appCtx.Coordinator.Counts(ctx, id)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.CountLikesResponse{
		LikesReceived: uint64(counts.LikesReceived),
		Matches:       uint64(counts.Matches),
	}, nil
}

func (s *Service) GetBalance(ctx context.Context, req *pb.GetBalanceRequest) (*pb.GetBalanceResponse, error) {
	id, err := userID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	balance, err := s.appCtx.Coordinator.Balance(ctx, id)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.GetBalanceResponse{Balance: balance}, nil
}

func (s *Service) ListPackages(context.Context, *pb.ListPackagesRequest) (*pb.ListPackagesResponse, error) {
	pkgs := coordinator.Packages()
	resp := &pb.ListPackagesResponse{Packages: make([]*pb.CoinPackage, 0, len(pkgs))}
	for _, p := range pkgs {
		resp.Packages = append(resp.Packages, &pb.CoinPackage{Id: p.ID, Coins: p.Coins, PriceCents: p.PriceCents})
	}
	return resp, nil
}

// SubmitPayment files a pending purchase request for manual review.
func (s *Service) SubmitPayment(ctx context.Context, req *pb.SubmitPaymentRequest) (*pb.SubmitPaymentResponse, error) {
	s.appCtx.Logger.Debug("SubmitPayment called", "user", req.GetUserId(), "package", req.PackageId)

	id, err := userID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	p, err := s.appCtx.Coordinator.SubmitPayment(ctx, id, req.PackageId, req.EvidenceRef)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.SubmitPaymentResponse{Payment: toPayment(p)}, nil
}

func (s *Service) ListPendingPayments(ctx context.Context, req *pb.ListPendingPaymentsRequest) (*pb.ListPendingPaymentsResponse, error) {
	payments, err := s.appCtx.Coordinator.ListPendingPayments(ctx, int(req.Limit))
	if err != nil {
		return nil, svcErr.Map(err)
	}
	resp := &pb.ListPendingPaymentsResponse{Payments: make([]*pb.Payment, 0, len(payments))}
	for _, p := range payments {
		resp.Payments = append(resp.Payments, toPayment(p))
	}
	return resp, nil
}

// ApprovePayment credits the requester exactly once.
// A second approval fails with FailedPrecondition and credits nothing.
func (s *Service) ApprovePayment(ctx context.Context, req *pb.ReviewPaymentRequest) (*pb.ReviewPaymentResponse, error) {
	s.appCtx.Logger.Debug("ApprovePayment called", "payment", req.PaymentId, "reviewer", req.ReviewerId)

	if req.PaymentId == 0 {
		return nil, svcErr.InvalidArgument("payment_id is required")
	}
	p, balance, err := s.appCtx.Coordinator.ApprovePayment(ctx, req.PaymentId, req.ReviewerId)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.ReviewPaymentResponse{Payment: toPayment(p), Balance: balance}, nil
}

func (s *Service) RejectPayment(ctx context.Context, req *pb.ReviewPaymentRequest) (*pb.ReviewPaymentResponse, error) {
	s.appCtx.Logger.Debug("RejectPayment called", "payment", req.PaymentId, "reviewer", req.ReviewerId)

	if req.PaymentId == 0 {
		return nil, svcErr.InvalidArgument("payment_id is required")
	}
	p, err := s.appCtx.Coordinator.RejectPayment(ctx, req.PaymentId, req.ReviewerId, req.Notes)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.ReviewPaymentResponse{Payment: toPayment(p)}, nil
}

func (s *Service) CreditCoins(ctx context.Context, req *pb.CreditCoinsRequest) (*pb.CreditCoinsResponse, error) {
	s.appCtx.Logger.Info("CreditCoins called", "user", req.GetUserId(), "amount", req.Amount)

	id, err := userID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	balance, err := s.appCtx.Coordinator.AdminCredit(ctx, id, req.Amount, req.Reason)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.CreditCoinsResponse{Balance: balance}, nil
}

// DeleteAccount removes the profile and everything that references it.
func (s *Service) DeleteAccount(ctx context.Context, req *pb.DeleteAccountRequest) (*pb.DeleteAccountResponse, error) {
	s.appCtx.Logger.Info("DeleteAccount called", "user", req.GetUserId())

	id, err := userID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	s.appCtx.Registration.Cancel(id)
	deleted, err := s.appCtx.Coordinator.DeleteAccount(ctx, id)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.DeleteAccountResponse{Deleted: deleted}, nil
}

func (s *Service) FileComplaint(ctx context.Context, req *pb.FileComplaintRequest) (*pb.FileComplaintResponse, error) {
	id, err := userID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	c, err := s.appCtx.Coordinator.FileComplaint(ctx, coordinator.ComplaintRequest{
		UserID:         id,
		ReportedUserID: req.ReportedUserId,
		Type:           req.Type,
		Text:           req.Text,
	})
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.FileComplaintResponse{ComplaintId: c.ID}, nil
}
