package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	appconfig "wrapsite_backend/pkg/config"
	imageutil "wrapsite_backend/pkg/utils/image"
	"wrapsite_backend/pkg/utils/validation"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	s3Client *s3.Client
	bucket   string
	region   string
)

func InitStorage(cfg appconfig.StorageConfig) error {
	bucket = cfg.Bucket
	region = cfg.Region

	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(region),
	)
	if err != nil {
		return fmt.Errorf("unable to load SDK config: %v", err)
	}

	s3Client = s3.NewFromConfig(awsCfg)
	return nil
}

// UploadImage valideert de upload, codeert hem opnieuw en zet hem in S3.
// kind groepeert de objecten per formulier (configurator, contact, customer).
func UploadImage(ctx context.Context, file *multipart.FileHeader, kind string, ownerID string) (string, error) {
	if err := validation.ValidateImage(file); err != nil {
		return "", err
	}

	buf, contentType, err := imageutil.ProcessImage(file)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%s/%d_%s",
		kind,
		ownerID,
		time.Now().Unix(),
		filepath.Base(file.Filename),
	)

	_, err = s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(buf.Bytes()),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000"),
	})

	if err != nil {
		return "", fmt.Errorf("could not upload to S3: %v", err)
	}

	return PublicURL(key), nil
}

// PublicURL geeft de publieke URL voor een objectsleutel.
func PublicURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, key)
}

// DeleteImage verwijdert een object aan de hand van zijn publieke URL.
func DeleteImage(ctx context.Context, imageURL string) error {
	parts := strings.Split(imageURL, "/")
	if len(parts) < 4 {
		return fmt.Errorf("invalid image URL: %s", imageURL)
	}
	key := strings.Join(parts[3:], "/")

	_, err := s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})

	return err
}
