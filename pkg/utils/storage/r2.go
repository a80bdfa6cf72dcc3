package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const stagingPrefix = "staging/"

// R2Storage keeps uploads in a Cloudflare R2 bucket through the S3 API. Published
// objects use the same relative key as the local layout so the stored path works
// behind the CDN.
type R2Storage struct {
	client    *s3.Client
	bucket    string
	uploadDir string
}

func NewR2Storage(ctx context.Context, accountID, accessKey, secretKey, bucket, uploadDir string) (*R2Storage, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %v", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID))
		o.UsePathStyle = true
		o.Region = "auto"
	})

	return &R2Storage{client: client, bucket: bucket, uploadDir: uploadDir}, nil
}

func (s *R2Storage) Stage(ctx context.Context, name string, r io.Reader, contentType string) (*Staged, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	// Uploads are small and capped; buffering gives the SDK a seekable body.
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read file: %v", err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(stagingPrefix + name),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("could not upload file to R2: %v", err)
	}

	return &Staged{Name: name, Path: publicPath(s.uploadDir, name)}, nil
}

func (s *R2Storage) Publish(ctx context.Context, staged *Staged) error {
	_, err := s.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(s.bucket),
		CopySource: aws.String(path.Join(s.bucket, stagingPrefix+staged.Name)),
		Key:        aws.String(staged.Path),
	})
	if err != nil {
		return fmt.Errorf("could not publish file in R2: %v", err)
	}
	return s.Discard(ctx, staged)
}

func (s *R2Storage) Discard(ctx context.Context, staged *Staged) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(stagingPrefix + staged.Name),
	})
	if err != nil {
		return fmt.Errorf("could not delete file from R2: %v", err)
	}
	return nil
}

func (s *R2Storage) SweepStaging(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)
	removed := 0

	pages := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(stagingPrefix),
	})
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return removed, fmt.Errorf("could not list staged files: %v", err)
		}
		for _, obj := range page.Contents {
			if obj.LastModified == nil || !obj.LastModified.Before(cutoff) {
				continue
			}
			_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
				Bucket: aws.String(s.bucket),
				Key:    obj.Key,
			})
			if err == nil {
				removed++
			}
		}
	}
	return removed, nil
}
