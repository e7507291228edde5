package snapshot

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	"github.com/benefique/cfo-times/pkg/models/domain"
)

const (
	SchemeS3 = "s3"

	DefaultAWSRegion = "us-east-1"
)

// ObjectGetter is the part of the S3 client the source needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type s3Source struct {
	client ObjectGetter
	bucket string
	key    string
}

// NewS3Source reads a snapshot object with the given client.
func NewS3Source(client ObjectGetter, bucket, key string) Source {
	return &s3Source{client: client, bucket: bucket, key: key}
}

// LoadAWSConfig resolves credentials from the shared AWS config, using profile
// when it is set.
func LoadAWSConfig(ctx context.Context, profile, region string) (*aws.Config, error) {
	if region == "" {
		region = DefaultAWSRegion
	}
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithDefaultRegion(region)}
	if profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(profile))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return &cfg, nil
}

func (s *s3Source) URI() string {
	return SchemeS3 + "://" + s.bucket + "/" + s.key
}

func (s *s3Source) Load(ctx context.Context) (*domain.Snapshot, error) {
	zerolog.Ctx(ctx).Debug().Str("bucket", s.bucket).Str("key", s.key).Msg("fetching snapshot object")

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3 object %s: %w", s.URI(), err)
	}
	defer out.Body.Close()

	return decodeRemote(s.URI(), out.Body)
}

func decodeRemote(uri string, body io.Reader) (*domain.Snapshot, error) {
	snapshot, err := Decode(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", uri, err)
	}
	return snapshot, nil
}
