package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/localbiz/marketplace-api/internal/logger"
)

// S3API is the subset of the S3 client used by the object store.
// An interface here lets services and tests mock storage without AWS.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Verify that the real S3 client implements our interface
var _ S3API = (*s3.Client)(nil)

// PresignAPI is the subset of the S3 presign client used to issue signed
// upload URLs.
type PresignAPI interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

var _ PresignAPI = (*s3.PresignClient)(nil)

// ObjectStore wraps the S3 client with the bucket and key-layout concerns
// of the media pipeline.
type ObjectStore struct {
	client  S3API
	presign PresignAPI
	bucket  string
	region  string
	expiry  time.Duration
}

// NewObjectStore creates an ObjectStore over an S3 client and its presigner.
func NewObjectStore(client S3API, presign PresignAPI, bucket, region string, uploadExpiry time.Duration) *ObjectStore {
	if uploadExpiry <= 0 {
		uploadExpiry = 15 * time.Minute
	}
	return &ObjectStore{
		client:  client,
		presign: presign,
		bucket:  bucket,
		region:  region,
		expiry:  uploadExpiry,
	}
}

// SignedUploadURL issues a time-limited URL letting a client PUT an object
// directly to storage without routing the bytes through the API.
func (s *ObjectStore) SignedUploadURL(ctx context.Context, key, contentType string) (string, time.Time, error) {
	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = s.expiry
	})
	if err != nil {
		logger.Log.Errorw("failed to presign upload", "key", key, "error", err)
		return "", time.Time{}, err
	}

	return req.URL, time.Now().Add(s.expiry), nil
}

// Put writes an object.
func (s *ObjectStore) Put(ctx context.Context, key, contentType string, body io.Reader) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
		Body:        body,
	})

	logger.Log.Infow("s3 put",
		"bucket", s.bucket,
		"key", key,
		"error", err,
	)

	return err
}

// Get reads an object. The caller owns the returned body.
func (s *ObjectStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logger.Log.Errorw("s3 get failed", "bucket", s.bucket, "key", key, "error", err)
		return nil, err
	}
	return out.Body, nil
}

// Delete removes an object. Deleting a missing key is not an error in S3.
func (s *ObjectStore) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})

	logger.Log.Infow("s3 delete",
		"bucket", s.bucket,
		"key", key,
		"error", err,
	)

	return err
}

// ObjectURL returns the public URL for a stored key.
func (s *ObjectStore) ObjectURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
