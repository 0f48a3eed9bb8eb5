package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/teachloop/internal/common"
	sc "github.com/dmitrijs2005/teachloop/internal/server/config"
	"github.com/dmitrijs2005/teachloop/internal/server/models"
	"github.com/dmitrijs2005/teachloop/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/teachloop/internal/server/validation"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
	deleteObject = func(c *s3.Client, ctx context.Context, in *s3.DeleteObjectInput) error {
		_, err := c.DeleteObject(ctx, in)
		return err
	}
)

type uploadRequest struct {
	Bucket      string `json:"bucket" validate:"required"`
	ContentType string `json:"contentType" validate:"omitempty,max=255"`
}

// PresignedURL is a time-limited URL for one object.
type PresignedURL struct {
	Key       string
	URL       string
	ExpiresAt time.Time
}

// StorageService hands out presigned URLs for the "course-materials" and
// "profile-pictures" buckets. Keys are generated under the caller's id and
// recorded so that only the owner can delete them.
type StorageService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
	now         func() time.Time
}

func NewStorageService(db *sql.DB, m repomanager.RepositoryManager, cfg *sc.Config) *StorageService {
	return &StorageService{db: db, repomanager: m, config: cfg, now: time.Now}
}

// physicalBucket maps a logical bucket to the configured S3 bucket.
func (s *StorageService) physicalBucket(bucket string) (string, error) {
	if !slices.Contains(common.Buckets, bucket) {
		return "", fmt.Errorf("%w: unknown bucket %q", common.ErrorValidation, bucket)
	}
	switch bucket {
	case common.BucketCourseMaterials:
		return s.config.S3MaterialsBucket, nil
	default:
		return s.config.S3PicturesBucket, nil
	}
}

// StorageKey builds an object key scoped to ownerID.
func StorageKey(ownerID string, t time.Time) string {
	return fmt.Sprintf("%s/%d/%02d/%02d/%v", ownerID, t.Year(), t.Month(), t.Day(), uuid.New())
}

func (s *StorageService) getS3Client() (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

func (s *StorageService) getPresignClient() (*s3.PresignClient, error) {
	client, err := s.getS3Client()
	if err != nil {
		return nil, err
	}
	return newS3PresignClient(client), nil
}

// CreateUploadURL reserves a new key for ownerID and presigns a PUT for it.
func (s *StorageService) CreateUploadURL(ctx context.Context, ownerID, bucket, contentType string) (*PresignedURL, error) {
	in := uploadRequest{Bucket: bucket, ContentType: contentType}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	physical, err := s.physicalBucket(bucket)
	if err != nil {
		return nil, err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		return nil, err
	}

	now := s.now()
	key := StorageKey(ownerID, now)

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket:      &physical,
		Key:         &key,
		ContentType: &contentType,
	}, s3.WithPresignExpires(s.config.PresignValidityDuration))
	if err != nil {
		return nil, err
	}

	err = s.repomanager.Files(s.db).Create(ctx, &models.StoredFile{
		Bucket:      bucket,
		Key:         key,
		OwnerID:     ownerID,
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("error recording file: %w", err)
	}

	return &PresignedURL{Key: key, URL: req.URL, ExpiresAt: now.Add(s.config.PresignValidityDuration)}, nil
}

// CreateDownloadURL presigns a GET for a recorded object. Any authenticated
// caller may preview an object.
func (s *StorageService) CreateDownloadURL(ctx context.Context, bucket, key string) (*PresignedURL, error) {
	physical, err := s.physicalBucket(bucket)
	if err != nil {
		return nil, err
	}
	if _, err := s.lookup(ctx, bucket, key); err != nil {
		return nil, err
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		return nil, err
	}

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &physical,
		Key:    &key,
	}, s3.WithPresignExpires(s.config.PresignValidityDuration))
	if err != nil {
		return nil, err
	}

	return &PresignedURL{Key: key, URL: req.URL, ExpiresAt: s.now().Add(s.config.PresignValidityDuration)}, nil
}

// DeleteFile removes an object and its record. Only the owner may delete.
func (s *StorageService) DeleteFile(ctx context.Context, callerID, bucket, key string) error {
	physical, err := s.physicalBucket(bucket)
	if err != nil {
		return err
	}
	f, err := s.lookup(ctx, bucket, key)
	if err != nil {
		return err
	}
	if f.OwnerID != callerID || !strings.HasPrefix(key, callerID+"/") {
		return common.ErrorForbidden
	}

	client, err := s.getS3Client()
	if err != nil {
		return err
	}
	if err := deleteObject(client, ctx, &s3.DeleteObjectInput{Bucket: &physical, Key: &key}); err != nil {
		return fmt.Errorf("error deleting object: %w", err)
	}

	if err := s.repomanager.Files(s.db).Delete(ctx, bucket, key); err != nil && !errors.Is(err, common.ErrorNotFound) {
		return fmt.Errorf("error deleting file record: %w", err)
	}
	return nil
}

func (s *StorageService) lookup(ctx context.Context, bucket, key string) (*models.StoredFile, error) {
	f, err := s.repomanager.Files(s.db).Get(ctx, bucket, key)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error loading file: %w", err)
	}
	return f, nil
}
