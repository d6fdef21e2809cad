package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/maximebaudoin/expired-products/internal/utils"
)

// thumbnails larger than this are not mirrored
const maxThumbnailBytes = 5 << 20

type (
	AwsS3 interface {
		UploadBytes(ctx context.Context, fileName string, data []byte, contentType string, dir string) (string, error)
		MirrorImage(ctx context.Context, fileName string, srcURL string) (string, error)
		DeleteFile(ctx context.Context, objectKey string) error
		GetPublicLinkKey(objectKey string) string
		GetObjectKeyFromLink(link string) string
	}

	awsS3 struct {
		client     *s3.Client
		bucket     string
		region     string
		httpClient *http.Client
	}
)

func NewAwsS3() AwsS3 {
	region := utils.GetConfig("AWS_S3_REGION")
	cfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		log.Printf("loading AWS configuration: %v", err)
	}

	return &awsS3{
		client:     s3.NewFromConfig(cfg),
		bucket:     utils.GetConfig("AWS_S3_BUCKET"),
		region:     region,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (a *awsS3) UploadBytes(ctx context.Context, fileName string, data []byte, contentType string, dir string) (string, error) {
	objectKey := path.Join(dir, fileName)

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return objectKey, nil
}

// MirrorImage copies an upstream product image into the bucket so the push
// notification thumbnail does not depend on the upstream URL staying alive.
func (a *awsS3) MirrorImage(ctx context.Context, fileName string, srcURL string) (string, error) {
	if srcURL == "" {
		return "", fmt.Errorf("no source image url")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srcURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching image: %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxThumbnailBytes))
	if err != nil {
		return "", err
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	objectKey, err := a.UploadBytes(ctx, fileName, data, contentType, "thumbnails")
	if err != nil {
		return "", err
	}
	return a.GetPublicLinkKey(objectKey), nil
}

func (a *awsS3) DeleteFile(ctx context.Context, objectKey string) error {
	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, objectKey)
}

func (a *awsS3) GetObjectKeyFromLink(link string) string {
	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", a.bucket, a.region)
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}
