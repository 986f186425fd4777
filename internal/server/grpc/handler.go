package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/peerreview/internal/common"
	pb "github.com/dmitrijs2005/peerreview/internal/proto"
	"github.com/dmitrijs2005/peerreview/internal/server/models"
	"github.com/dmitrijs2005/peerreview/internal/server/repositories/manuscripts"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusFromError translates service errors into gRPC status codes.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrDuplicateEntry):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrCapacityExceeded):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, common.ErrStateConflict),
		errors.Is(err, common.ErrQuorumNotMet),
		errors.Is(err, common.ErrInsufficientFunds):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrVersionConflict):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, "unauthorized")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func manuscriptToProto(m *models.Manuscript) *pb.Manuscript {
	reviews := make([]*pb.Review, 0, len(m.Reviews))
	for _, r := range m.Reviews {
		reviews = append(reviews, &pb.Review{Reviewer: r.Reviewer, Decision: r.Decision})
	}
	return &pb.Manuscript{
		Id:             m.ID,
		Author:         m.Author,
		ContentRef:     m.ContentRef,
		Status:         m.Status,
		Reviews:        reviews,
		SubmissionTime: m.SubmissionTime.Unix(),
	}
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) RegisterUser(ctx context.Context, req *pb.RegisterUserRequest) (*pb.RegisterUserResponse, error) {

	s.logger.Info(ctx, "Registration request")

	result, err := s.users.Register(ctx, req.Wallet, req.Education, req.Salt, req.Verifier)

	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Registered", "wallet", result.Wallet)
	return &pb.RegisterUserResponse{Wallet: result.Wallet}, nil

}

func (s *GRPCServer) GetSalt(ctx context.Context, req *pb.GetSaltRequest) (*pb.GetSaltResponse, error) {

	result, err := s.users.GetSalt(ctx, req.Wallet)

	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.GetSaltResponse{Salt: result}, nil

}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	tokens, err := s.users.Login(ctx, req.Wallet, req.VerifierCandidate)

	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.LoginResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil

}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {

	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)

	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil

}

func (s *GRPCServer) GetUser(ctx context.Context, req *pb.GetUserRequest) (*pb.GetUserResponse, error) {

	wallet := req.Wallet
	if wallet == "" {
		w, err := walletFromContext(ctx)
		if err != nil {
			return nil, err
		}
		wallet = w
	}

	user, err := s.users.Get(ctx, wallet)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.GetUserResponse{User: &pb.User{
		Wallet:          user.Wallet,
		Education:       user.Education,
		PublishedPapers: uint32(user.PublishedPapers),
	}}, nil

}

func (s *GRPCServer) UpdateEducation(ctx context.Context, req *pb.UpdateEducationRequest) (*pb.UpdateEducationResponse, error) {

	wallet, err := walletFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateEducation(ctx, wallet, req.Education); err != nil {
		return nil, statusFromError(err)
	}

	return &pb.UpdateEducationResponse{}, nil

}

func (s *GRPCServer) RequestUpload(ctx context.Context, req *pb.RequestUploadRequest) (*pb.RequestUploadResponse, error) {

	wallet, err := walletFromContext(ctx)
	if err != nil {
		return nil, err
	}

	key, url, err := s.content.PresignedPutURL(ctx, wallet)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	return &pb.RequestUploadResponse{ContentRef: key, Url: url}, nil

}

func (s *GRPCServer) ResolveContent(ctx context.Context, req *pb.ResolveContentRequest) (*pb.ResolveContentResponse, error) {

	m, err := s.manuscripts.Get(ctx, req.ManuscriptId)
	if err != nil {
		return nil, statusFromError(err)
	}

	url, err := s.content.PresignedGetURL(ctx, m.ContentRef)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	return &pb.ResolveContentResponse{Url: url}, nil

}

func (s *GRPCServer) SubmitManuscript(ctx context.Context, req *pb.SubmitManuscriptRequest) (*pb.SubmitManuscriptResponse, error) {

	wallet, err := walletFromContext(ctx)
	if err != nil {
		return nil, err
	}

	m, err := s.manuscripts.Submit(ctx, wallet, req.ContentRef)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Manuscript submitted", "id", m.ID, "author", wallet)
	return &pb.SubmitManuscriptResponse{Manuscript: manuscriptToProto(m)}, nil

}

func (s *GRPCServer) SubmitReview(ctx context.Context, req *pb.SubmitReviewRequest) (*pb.SubmitReviewResponse, error) {

	wallet, err := walletFromContext(ctx)
	if err != nil {
		return nil, err
	}

	m, err := s.manuscripts.Review(ctx, req.ManuscriptId, wallet, req.Decision)
	if err != nil {
		// reward transfers happen after the verdict is durable, so a payout
		// failure must not surface as a failed review
		if errors.Is(err, common.ErrPartialPayout) && m != nil {
			s.logger.Error(ctx, err.Error(), "manuscript", m.ID)
			return &pb.SubmitReviewResponse{Manuscript: manuscriptToProto(m), PartialPayout: true}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	return &pb.SubmitReviewResponse{Manuscript: manuscriptToProto(m)}, nil

}

func (s *GRPCServer) GetManuscript(ctx context.Context, req *pb.GetManuscriptRequest) (*pb.GetManuscriptResponse, error) {

	m, err := s.manuscripts.Get(ctx, req.Id)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.GetManuscriptResponse{Manuscript: manuscriptToProto(m)}, nil

}

func (s *GRPCServer) ListManuscripts(ctx context.Context, req *pb.ListManuscriptsRequest) (*pb.ListManuscriptsResponse, error) {

	list, err := s.manuscripts.List(ctx, manuscripts.Filter{Author: req.Author, Status: req.Status})
	if err != nil {
		return nil, statusFromError(err)
	}

	result := make([]*pb.Manuscript, 0, len(list))
	for _, m := range list {
		result = append(result, manuscriptToProto(m))
	}

	return &pb.ListManuscriptsResponse{Manuscripts: result}, nil

}
