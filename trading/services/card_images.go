package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// CardImageService resolves card artwork hosted on an S3-compatible Spaces
// bucket. The catalog stores only pack/card identifiers; public CDN URLs are
// derived from them.
type CardImageService struct {
	client   *s3.Client
	bucket   string
	region   string
	cardRoot string
}

func NewCardImageService(key, secret, region, bucket, cardRoot string) (*CardImageService, error) {
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
		return nil, fmt.Errorf("failed to load object storage config: %w", err)
	}

	return &CardImageService{
		client:   s3.NewFromConfig(cfg),
		bucket:   bucket,
		region:   region,
		cardRoot: strings.TrimPrefix(cardRoot, "/"),
	}, nil
}

// CardImageURL builds the public CDN URL for a card's artwork.
func (s *CardImageService) CardImageURL(packID string, cardID int64) string {
	return fmt.Sprintf("https://%s.%s.cdn.digitaloceanspaces.com/%s/%s/%d.webp",
		s.bucket, s.region, s.cardRoot, packID, cardID)
}

// HasCardImage checks that the artwork object exists. Lookup failures report
// false rather than erroring; a missing image never blocks a trade flow.
func (s *CardImageService) HasCardImage(ctx context.Context, packID string, cardID int64) bool {
	key := fmt.Sprintf("%s/%s/%d.webp", s.cardRoot, packID, cardID)
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	return err == nil
}

func (s *CardImageService) GetBucket() string {
	return s.bucket
}

func (s *CardImageService) GetRegion() string {
	return s.region
}
