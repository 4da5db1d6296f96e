package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/bytetrack/backend/config"
)

// ImageService stores profile pictures in S3.
type ImageService struct {
	s3Config *config.S3Config
}

func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// UploadProfilePicture uploads the image under a per-user key and
// returns the public object URL.
func (s *ImageService) UploadProfilePicture(ctx context.Context, userID uuid.UUID, contentType string, body io.Reader) (string, error) {
	ext, ok := allowedImageTypes[strings.ToLower(contentType)]
	if !ok {
		return "", fmt.Errorf("unsupported image type %q", contentType)
	}

	key := path.Join("profile-pictures", userID.String(), uuid.New().String()+ext)

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload profile picture: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key), nil
}
