package grpc

import (
	"context"

	"github.com/dmitrijs2005/peerreview/internal/common"
	pb "github.com/dmitrijs2005/peerreview/internal/proto"
	"github.com/dmitrijs2005/peerreview/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const walletKey ctxKey = "wallet"

// protectedMethods lists RPCs that require an authenticated wallet.
var protectedMethods = map[string]bool{
	pb.PeerReviewService_GetUser_FullMethodName:          true,
	pb.PeerReviewService_UpdateEducation_FullMethodName:  true,
	pb.PeerReviewService_RequestUpload_FullMethodName:    true,
	pb.PeerReviewService_SubmitManuscript_FullMethodName: true,
	pb.PeerReviewService_SubmitReview_FullMethodName:     true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if protectedMethods[info.FullMethod] {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		wallet, err := auth.GetWalletFromToken(accessToken, s.jwtSecret)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		ctx = context.WithValue(ctx, walletKey, wallet)

	}

	return handler(ctx, req)
}

func walletFromContext(ctx context.Context) (string, error) {
	wallet, ok := ctx.Value(walletKey).(string)
	if !ok || wallet == "" {
		return "", status.Error(codes.Unauthenticated, "no wallet in context")
	}
	return wallet, nil
}
