package services

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-cms-backend/config"
	"github.com/rpupo63/portfolio-cms-backend/errs"
)

// MediaKind selects the remote folder and the constraint set for an upload.
type MediaKind string

const (
	KindImage MediaKind = "image"
	KindVideo MediaKind = "video"
)

// The asset host previously applied resize presets per kind (1200x800 for
// images, 1280x720 for videos). Object storage keeps bytes verbatim, so the
// enforceable constraint surface here is format and size.
const (
	maxImageSize = 10 << 20  // 10MB
	maxVideoSize = 100 << 20 // 100MB

	remoteFolder = "portfolio"
)

var (
	imageFormats = []string{"jpg", "jpeg", "png", "gif", "webp"}
	videoFormats = []string{"mp4", "webm", "mov"}
)

// s3API is the slice of the S3 client the gateway uses; tests fake it.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Upload is the locator pair returned for a stored asset.
type Upload struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// MediaService stores binary attachments on the configured object store and
// builds public locators for them.
type MediaService struct {
	client  s3API
	bucket  string
	baseURL string
	logger  zerolog.Logger
}

// NewMediaService builds an S3 client from environment configuration.
// S3_ENDPOINT overrides the base endpoint for S3-compatible hosts.
func NewMediaService(c map[string]string) (*MediaService, error) {
	region := config.GetString(c, "S3_REGION", "us-east-1")
	bucket := config.GetString(c, "S3_BUCKET", "")
	if bucket == "" {
		return nil, errs.NewInternalError("S3_BUCKET is not set")
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			config.GetString(c, "S3_ACCESS_KEY", ""),
			config.GetString(c, "S3_SECRET_KEY", ""),
			"",
		)))
	if err != nil {
		return nil, err
	}

	endpoint := config.GetString(c, "S3_ENDPOINT", "")
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	baseURL := config.GetString(c, "S3_PUBLIC_BASE_URL", "")
	if baseURL == "" {
		if endpoint != "" {
			baseURL = fmt.Sprintf("%s/%s", strings.TrimSuffix(endpoint, "/"), bucket)
		} else {
			baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
		}
	}

	return &MediaService{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  log.With().Str("serviceName", "mediaService").Logger(),
	}, nil
}

// Upload stores one file under portfolio/images or portfolio/videos and
// returns its public locator plus the opaque object key.
func (s *MediaService) Upload(ctx context.Context, file io.Reader, filename string, size int64, kind MediaKind) (*Upload, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))

	folder, formats, maxSize := "images", imageFormats, int64(maxImageSize)
	if kind == KindVideo {
		folder, formats, maxSize = "videos", videoFormats, int64(maxVideoSize)
	}

	if !allowedFormat(ext, formats) {
		return nil, errs.NewUnsupportedMediaTypeError(ext, formats)
	}
	if size > maxSize {
		return nil, errs.NewFileTooLargeError(maxSize)
	}

	key := fmt.Sprintf("%s/%s/%s.%s", remoteFolder, folder, uuid.New(), ext)

	contentType := mime.TypeByExtension("." + ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          file,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return nil, errs.NewAssetUploadError(key, err)
	}

	s.logger.Info().Str("key", key).Int64("size", size).Msg("Uploaded asset")

	return &Upload{
		URL: s.baseURL + "/" + key,
		Key: key,
	}, nil
}

// Delete removes the remote asset behind a locator. Callers on record
// deletion paths treat failures as best-effort: log and move on.
func (s *MediaService) Delete(ctx context.Context, locator string) error {
	key := strings.TrimPrefix(locator, s.baseURL+"/")
	if key == locator || key == "" {
		return errs.NewBadLocatorError(locator)
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return errs.NewAssetDeleteError(key, err)
	}

	s.logger.Info().Str("key", key).Msg("Deleted asset")
	return nil
}

func allowedFormat(ext string, formats []string) bool {
	for _, f := range formats {
		if ext == f {
			return true
		}
	}
	return false
}
