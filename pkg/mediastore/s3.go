package mediastore

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Store implements Store on an AWS S3 bucket, with presigned GET URLs for
// playback.
type S3Store struct {
	client     *s3.Client
	presign    *s3.PresignClient
	bucketName string
}

// NewS3Store creates a store for the given bucket using AWS configuration
// from the environment.
func NewS3Store(ctx context.Context, bucketName string) (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(cfg)
	return &S3Store{
		client:     client,
		presign:    s3.NewPresignClient(client),
		bucketName: bucketName,
	}, nil
}

// Search lists bucket objects with a video extension, up to limit.
func (s *S3Store) Search(ctx context.Context, resourceType string, limit int) ([]Resource, error) {
	if resourceType != ResourceTypeVideo {
		return nil, fmt.Errorf("unsupported resource type: %s", resourceType)
	}

	out, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucketName),
	})
	if err != nil {
		return nil, fmt.Errorf("list objects: %w", err)
	}

	var resources []Resource
	for _, obj := range out.Contents {
		if len(resources) >= limit {
			break
		}
		key := aws.ToString(obj.Key)
		ext := videoExtension(key)
		if ext == "" {
			continue
		}

		req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(s.bucketName),
			Key:    aws.String(key),
		}, s3.WithPresignExpires(24*time.Hour))
		if err != nil {
			return nil, fmt.Errorf("presign %s: %w", key, err)
		}

		resources = append(resources, Resource{
			PublicID:  strings.TrimSuffix(key, ext),
			Format:    strings.TrimPrefix(ext, "."),
			SecureURL: req.URL,
		})
	}
	return resources, nil
}

// Upload writes the payload as a new object under folder and returns a
// presigned playback URL for it.
func (s *S3Store) Upload(ctx context.Context, data []byte, mimeType, folder string) (Resource, error) {
	format := formatFromMIME(mimeType)
	publicID := fmt.Sprintf("%s/%s", folder, uuid.NewString())
	key := fmt.Sprintf("%s.%s", publicID, format)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return Resource{}, fmt.Errorf("put object %s: %w", key, err)
	}

	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(24*time.Hour))
	if err != nil {
		return Resource{}, fmt.Errorf("presign %s: %w", key, err)
	}

	return Resource{
		PublicID:  publicID,
		Format:    format,
		SecureURL: req.URL,
	}, nil
}
