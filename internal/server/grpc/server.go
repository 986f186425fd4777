package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/peerreview/internal/logging"
	pb "github.com/dmitrijs2005/peerreview/internal/proto"
	"github.com/dmitrijs2005/peerreview/internal/server/models"
	"github.com/dmitrijs2005/peerreview/internal/server/repositories/manuscripts"
	"github.com/dmitrijs2005/peerreview/internal/server/services"
	"google.golang.org/grpc"
)

type userSvc interface {
	Register(ctx context.Context, wallet, education string, salt, verifier []byte) (*models.User, error)
	GetSalt(ctx context.Context, wallet string) ([]byte, error)
	Login(ctx context.Context, wallet string, verifierCandidate []byte) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Get(ctx context.Context, wallet string) (*models.User, error)
	UpdateEducation(ctx context.Context, wallet, education string) error
}

type manuscriptSvc interface {
	Submit(ctx context.Context, author, contentRef string) (*models.Manuscript, error)
	Review(ctx context.Context, manuscriptID, reviewer, decision string) (*models.Manuscript, error)
	Get(ctx context.Context, id string) (*models.Manuscript, error)
	List(ctx context.Context, f manuscripts.Filter) ([]*models.Manuscript, error)
}

type contentSvc interface {
	PresignedPutURL(ctx context.Context, author string) (string, string, error)
	PresignedGetURL(ctx context.Context, contentRef string) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedPeerReviewServiceServer
	address     string
	users       userSvc
	manuscripts manuscriptSvc
	content     contentSvc
	logger      logging.Logger
	jwtSecret   []byte
}

func NewGRPCServer(a string, l logging.Logger, us userSvc, ms manuscriptSvc, cs contentSvc, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:     a,
		logger:      l.With("module", "grpc_server"),
		users:       us,
		manuscripts: ms,
		content:     cs,
		jwtSecret:   []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	// registers service
	pb.RegisterPeerReviewServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
