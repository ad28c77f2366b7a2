package matchmaker

import (
	"google.golang.org/grpc"

	"github.com/oggyb/matchbot/internal/app"
	pb "github.com/oggyb/matchbot/internal/proto/matchmaker"
)

// AdminMethods require the admin key.
var AdminMethods = map[string]bool{
	pb.Matchmaker_ListPendingPayments_FullMethodName: true,
	pb.Matchmaker_ApprovePayment_FullMethodName:      true,
	pb.Matchmaker_RejectPayment_FullMethodName:       true,
	pb.Matchmaker_CreditCoins_FullMethodName:         true,
}

// Registrar ties the Matchmaker service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the Matchmaker service
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the Matchmaker service implementation to the gRPC server
func (r *Registrar) Register(s *grpc.Server) {
	service := NewMatchmakerService(r.appCtx)
	pb.RegisterMatchmakerServer(s, service)
}
