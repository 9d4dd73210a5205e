package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var AllowImage = []string{"image/jpeg", "image/png", "image/webp", "image/avif"}

type (
	AwsS3 interface {
		UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error)
		UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error)
		DeleteFile(objectKey string) error
		GetPublicLinkKey(objectKey string) string
		GetObjectKeyFromLink(link string) string
	}

	awsS3 struct {
		client *s3.Client
		bucket string
		region string
	}
)

func NewAwsS3() AwsS3 {
	region := os.Getenv("AWS_S3_REGION")
	cfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			os.Getenv("AWS_ACCESS_KEY"),
			os.Getenv("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		fmt.Printf("failed to load AWS config: %v\n", err)
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: os.Getenv("AWS_S3_BUCKET"),
		region: region,
	}
}

func (a *awsS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error) {
	contentType := file.Header.Get("Content-Type")
	if len(allowedTypes) > 0 && !contains(allowedTypes, contentType) {
		return "", fmt.Errorf("file type %s is not allowed", contentType)
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	objectKey := fmt.Sprintf("%s/%s", folder, fileName)
	_, err = a.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        src,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return objectKey, nil
}

func (a *awsS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	contentType := file.Header.Get("Content-Type")
	if len(allowedTypes) > 0 && !contains(allowedTypes, contentType) {
		return "", fmt.Errorf("file type %s is not allowed", contentType)
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	_, err = a.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        src,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return objectKey, nil
}

func (a *awsS3) DeleteFile(objectKey string) error {
	_, err := a.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
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

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
