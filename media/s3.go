package media

import (
	"bytes"
	"context"
	"strings"

	"inventory-server/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"
)

type S3Store struct {
	s3Client *s3.S3
	bucket   string
	folder   string
	baseURL  string
}

func NewS3Store() *S3Store {
	awsConfig := aws.Config{
		Region:      aws.String(config.MEDIA_S3_REGION),
		Credentials: credentials.NewStaticCredentials(config.MEDIA_S3_KEY, config.MEDIA_S3_SECRET, ""),
	}
	if config.MEDIA_S3_ENDPOINT != "" {
		awsConfig.Endpoint = aws.String(config.MEDIA_S3_ENDPOINT)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}
	return &S3Store{
		s3Client: s3.New(session.Must(session.NewSession(&awsConfig))),
		bucket:   config.MEDIA_S3_BUCKET,
		folder:   config.MEDIA_FOLDER,
		baseURL:  strings.TrimSuffix(config.MEDIA_BASE_URL, "/"),
	}
}

// Upload stores the transformed image under a fresh key. The key doubles
// as the public id the caller hands back for deletion later.
func (s *S3Store) Upload(ctx context.Context, data []byte, mimeType string) (*UploadResult, error) {
	bounded, err := BoundImage(data)
	if err != nil {
		return nil, err
	}
	key := s.folder + "/" + uuid.NewString() + ".jpg"
	uploader := s3manager.NewUploaderWithClient(s.s3Client)
	_, err = uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String("image/jpeg"),
		Body:        bytes.NewReader(bounded),
	})
	if err != nil {
		return nil, err
	}
	return &UploadResult{
		URL:      s.baseURL + "/" + key,
		PublicID: key,
	}, nil
}

func (s *S3Store) Delete(ctx context.Context, publicID string) error {
	_, err := s.s3Client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(publicID),
	})
	return err
}
