package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"

	"personalfit/trainer-app/internal/config"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// MediaStorage hands out presigned URLs for the media the app links to:
// exercise demo videos, assessment photos and message attachments.
// Uploads and downloads go straight to the object store; the API only
// brokers the URLs.
type MediaStorage interface {
	PresignUpload(ctx context.Context, objectKey, contentType string, expires time.Duration) (string, error)
	PresignView(ctx context.Context, objectKey string, expires time.Duration) (string, error)
	DeleteObject(ctx context.Context, objectKey string) error
}

// Object key builders keep the bucket layout in one place.

func ExerciseVideoKey(exerciseID string) string {
	return fmt.Sprintf("exercises/%s/video", exerciseID)
}

func AssessmentPhotoKey(studentID, assessmentID string, index int) string {
	return fmt.Sprintf("assessments/%s/%s/photo-%d", studentID, assessmentID, index)
}

func MessageAttachmentKey(messageID string) string {
	return fmt.Sprintf("messages/%s/attachment", messageID)
}

// s3Media implements MediaStorage against an S3-compatible backend.
type s3Media struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucketName    string
	log           *logrus.Logger
}

// NewS3Media creates the media storage service. A custom endpoint in the
// config routes requests to S3-compatible providers such as MinIO.
func NewS3Media(cfg config.S3Config, log *logrus.Logger) (MediaStorage, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		if cfg.Endpoint != "" {
			return aws.Endpoint{
				PartitionID:   "aws",
				URL:           cfg.Endpoint,
				SigningRegion: cfg.Region,
			}, nil
		}
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	})

	sdkCfg, err := awsCfg.LoadDefaultConfig(context.TODO(),
		awsCfg.WithRegion(cfg.Region),
		awsCfg.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
		awsCfg.WithEndpointResolverWithOptions(resolver),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws sdk config: %w", err)
	}

	client := s3.NewFromConfig(sdkCfg, func(o *s3.Options) {
		// Path-style addressing is required by most S3-compatible services.
		o.UsePathStyle = true
	})

	log.WithFields(logrus.Fields{
		"endpoint": cfg.Endpoint,
		"bucket":   cfg.BucketName,
	}).Info("media storage initialized")

	return &s3Media{
		client:        client,
		presignClient: s3.NewPresignClient(client),
		bucketName:    cfg.BucketName,
		log:           log,
	}, nil
}

func (m *s3Media) PresignUpload(ctx context.Context, objectKey, contentType string, expires time.Duration) (string, error) {
	if expires <= 0 {
		expires = DefaultPresignedURLExpiry
	}

	req, err := m.presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(m.bucketName),
		Key:         aws.String(objectKey),
		ContentType: aws.String(contentType), // client must send the same header on upload
	}, s3.WithPresignExpires(expires))
	if err != nil {
		m.log.WithError(err).WithField("key", objectKey).Error("presign upload failed")
		return "", err
	}
	return req.URL, nil
}

func (m *s3Media) PresignView(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	if expires <= 0 {
		expires = DefaultPresignedURLExpiry
	}

	req, err := m.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(m.bucketName),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		m.log.WithError(err).WithField("key", objectKey).Error("presign view failed")
		return "", err
	}
	return req.URL, nil
}

func (m *s3Media) DeleteObject(ctx context.Context, objectKey string) error {
	_, err := m.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(m.bucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		m.log.WithError(err).WithField("key", objectKey).Error("delete object failed")
		return err
	}
	return nil
}
