package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/peerreview/internal/client/models"
	"github.com/dmitrijs2005/peerreview/internal/common"
	pb "github.com/dmitrijs2005/peerreview/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL  string
	conn         *grpc.ClientConn
	client       pb.PeerReviewServiceClient
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	ctx = withAccessToken(ctx, s.accessToken)

	err := invoker(ctx, method, req, reply, cc, opts...)

	if err != nil {

		st, ok := status.FromError(err)
		if !ok {
			return err
		}

		if st.Code() != codes.Unauthenticated {
			return err
		}
		if st.Message() != common.ErrTokenExpired.Error() {
			return err
		}

		if s.refreshToken == "" {
			return err
		}

		refreshTokenResponse, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: s.refreshToken})
		if err != nil {
			return err
		}

		s.accessToken = refreshTokenResponse.AccessToken
		s.refreshToken = refreshTokenResponse.RefreshToken

		// tokens refreshed, retrying with the new access token
		ctx = withAccessToken(ctx, s.accessToken)
		return invoker(ctx, method, req, reply, cc, opts...)

	}

	return err
}

func NewPeerReviewClientService(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewPeerReviewServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Register(ctx context.Context, wallet, education string, salt []byte, key []byte) error {

	req := &pb.RegisterUserRequest{Wallet: wallet, Education: education, Salt: salt, Verifier: key}

	_, err := s.client.RegisterUser(ctx, req)

	if err != nil {
		return s.mapError(err)
	}

	return nil

}

func (s *GRPCClient) GetSalt(ctx context.Context, wallet string) ([]byte, error) {

	ctx, cancel := context.WithTimeout(ctx, 12*time.Second)
	defer cancel()

	req := &pb.GetSaltRequest{Wallet: wallet}

	resp, err := s.client.GetSalt(ctx, req)

	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Salt, nil
}

func (s *GRPCClient) Login(ctx context.Context, wallet string, key []byte) error {

	req := &pb.LoginRequest{Wallet: wallet, VerifierCandidate: key}

	resp, err := s.client.Login(ctx, req)

	if err != nil {
		return s.mapError(err)
	}

	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken

	return nil

}

func (s *GRPCClient) Ping(ctx context.Context) error {

	req := &pb.PingRequest{}

	resp, err := s.client.Ping(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil

}

func (s *GRPCClient) GetUser(ctx context.Context, wallet string) (*models.User, error) {

	resp, err := s.client.GetUser(ctx, &pb.GetUserRequest{Wallet: wallet})
	if err != nil {
		return nil, s.mapError(err)
	}

	u := resp.GetUser()
	return &models.User{
		Wallet:          u.GetWallet(),
		Education:       u.GetEducation(),
		PublishedPapers: u.GetPublishedPapers(),
	}, nil

}

func (s *GRPCClient) UpdateEducation(ctx context.Context, education string) error {

	_, err := s.client.UpdateEducation(ctx, &pb.UpdateEducationRequest{Education: education})
	if err != nil {
		return s.mapError(err)
	}
	return nil

}

func (s *GRPCClient) RequestUpload(ctx context.Context) (string, string, error) {

	resp, err := s.client.RequestUpload(ctx, &pb.RequestUploadRequest{})
	if err != nil {
		return "", "", s.mapError(err)
	}

	return resp.ContentRef, resp.Url, nil

}

func (s *GRPCClient) ResolveContent(ctx context.Context, manuscriptID string) (string, error) {

	resp, err := s.client.ResolveContent(ctx, &pb.ResolveContentRequest{ManuscriptId: manuscriptID})
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.Url, nil

}

func (s *GRPCClient) SubmitManuscript(ctx context.Context, contentRef string) (*models.Manuscript, error) {

	resp, err := s.client.SubmitManuscript(ctx, &pb.SubmitManuscriptRequest{ContentRef: contentRef})
	if err != nil {
		return nil, s.mapError(err)
	}

	return manuscriptFromProto(resp.GetManuscript()), nil

}

func (s *GRPCClient) SubmitReview(ctx context.Context, manuscriptID, decision string) (*models.Manuscript, bool, error) {

	resp, err := s.client.SubmitReview(ctx, &pb.SubmitReviewRequest{ManuscriptId: manuscriptID, Decision: decision})
	if err != nil {
		return nil, false, s.mapError(err)
	}

	return manuscriptFromProto(resp.GetManuscript()), resp.GetPartialPayout(), nil

}

func (s *GRPCClient) GetManuscript(ctx context.Context, id string) (*models.Manuscript, error) {

	resp, err := s.client.GetManuscript(ctx, &pb.GetManuscriptRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}

	return manuscriptFromProto(resp.GetManuscript()), nil

}

func (s *GRPCClient) ListManuscripts(ctx context.Context, author, status string) ([]*models.Manuscript, error) {

	resp, err := s.client.ListManuscripts(ctx, &pb.ListManuscriptsRequest{Author: author, Status: status})
	if err != nil {
		return nil, s.mapError(err)
	}

	result := make([]*models.Manuscript, 0, len(resp.GetManuscripts()))
	for _, m := range resp.GetManuscripts() {
		result = append(result, manuscriptFromProto(m))
	}

	return result, nil

}

func manuscriptFromProto(m *pb.Manuscript) *models.Manuscript {
	if m == nil {
		return nil
	}

	reviews := make([]models.Review, 0, len(m.GetReviews()))
	for _, r := range m.GetReviews() {
		reviews = append(reviews, models.Review{Reviewer: r.GetReviewer(), Decision: r.GetDecision()})
	}

	return &models.Manuscript{
		ID:             m.GetId(),
		Author:         m.GetAuthor(),
		ContentRef:     m.GetContentRef(),
		Status:         m.GetStatus(),
		Reviews:        reviews,
		SubmissionTime: time.Unix(m.GetSubmissionTime(), 0),
	}
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
