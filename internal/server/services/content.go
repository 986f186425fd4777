package services

import (
	"context"
	"fmt"
	"time"

	sc "github.com/dmitrijs2005/peerreview/internal/server/config"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ContentService hands out presigned URLs for manuscript bodies. The body
// lives in object storage; the core lifecycle only ever sees the storage key,
// which authors pass to Submit as the opaque content reference.
type ContentService struct {
	config *sc.Config
}

// NewContentService constructs a ContentService from server config.
func NewContentService(config *sc.Config) *ContentService {
	return &ContentService{config: config}
}

// MakeStorageKey produces a fresh object key for one manuscript body.
func MakeStorageKey(author string) string {
	d := time.Now()
	return fmt.Sprintf("manuscripts/%d/%02d/%s/%v", d.Year(), d.Month(), author, uuid.New())
}

func (s *ContentService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return s3.NewPresignClient(client), nil
}

// PresignedPutURL returns a fresh storage key and a URL the author can PUT
// the manuscript body to. The key is what they submit as content_ref.
func (s *ContentService) PresignedPutURL(ctx context.Context, author string) (string, string, error) {
	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := MakeStorageKey(author)

	req, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}

// PresignedGetURL returns a URL for downloading the body behind a content
// reference.
func (s *ContentService) PresignedGetURL(ctx context.Context, contentRef string) (string, error) {
	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket

	req, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &contentRef,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
