package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ArchiveService stores full-account JSON snapshots in an S3-compatible
// bucket. Snapshots are a disaster recovery layer behind the relational
// store, not part of the sync path.
type ArchiveService struct {
	client *s3.Client
	bucket string
	region string
	prefix string
}

func NewArchiveService(key, secret, region, bucket, prefix string) (*ArchiveService, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(key, secret, "")),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("load archive config: %w", err)
	}

	return &ArchiveService{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
		prefix: strings.Trim(prefix, "/"),
	}, nil
}

func (s *ArchiveService) key(userID, name string) string {
	return fmt.Sprintf("%s/%s/%s", s.prefix, userID, name)
}

// Upload stores one snapshot and returns its object key. Keys embed a UTC
// timestamp so lexicographic order is chronological order.
func (s *ArchiveService) Upload(ctx context.Context, userID string, payload []byte) (string, error) {
	key := s.key(userID, time.Now().UTC().Format("20060102T150405Z")+".json")
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("upload snapshot %s: %w", key, err)
	}
	return key, nil
}

// List returns the user's snapshot keys, oldest first.
func (s *ArchiveService) List(ctx context.Context, userID string) ([]string, error) {
	prefix := s.key(userID, "")
	var keys []string
	var token *string
	for {
		out, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(s.bucket),
			Prefix:            aws.String(prefix),
			ContinuationToken: token,
		})
		if err != nil {
			return nil, fmt.Errorf("list snapshots for %s: %w", userID, err)
		}
		for _, obj := range out.Contents {
			if obj.Key != nil {
				keys = append(keys, *obj.Key)
			}
		}
		if out.IsTruncated == nil || !*out.IsTruncated {
			break
		}
		token = out.NextContinuationToken
	}
	sort.Strings(keys)
	return keys, nil
}

// Latest downloads the most recent snapshot. Returns nil without error when
// the user has none.
func (s *ArchiveService) Latest(ctx context.Context, userID string) ([]byte, error) {
	keys, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, nil
	}
	return s.Restore(ctx, keys[len(keys)-1])
}

// Restore downloads one snapshot by object key.
func (s *ArchiveService) Restore(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("download snapshot %s: %w", key, err)
	}
	defer out.Body.Close()
	return io.ReadAll(out.Body)
}

// Prune deletes all but the newest keep snapshots.
func (s *ArchiveService) Prune(ctx context.Context, userID string, keep int) error {
	if keep < 1 {
		keep = 1
	}
	keys, err := s.List(ctx, userID)
	if err != nil {
		return err
	}
	if len(keys) <= keep {
		return nil
	}
	for _, key := range keys[:len(keys)-keep] {
		_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return fmt.Errorf("prune snapshot %s: %w", key, err)
		}
	}
	return nil
}

func (s *ArchiveService) GetBucket() string {
	return s.bucket
}

func (s *ArchiveService) GetRegion() string {
	return s.region
}
