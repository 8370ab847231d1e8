package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/loomui/loom/internal/errors"
	"github.com/loomui/loom/internal/registry"
)

// ObjectPutter is the slice of the S3 API the publisher needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publisher uploads a registry snapshot to an S3 bucket in the same
// layout the serve package exposes: registry.json at the prefix root
// and component sources under components/{name}/{file}.
type Publisher struct {
	client ObjectPutter
	reg    *registry.Registry
	bucket string
	prefix string
}

// New builds a Publisher using the ambient AWS configuration
// (environment, shared config, instance role).
func New(ctx context.Context, reg *registry.Registry, bucket, prefix string) (*Publisher, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.New("E402").
			WithDetail("AWS configuration could not be loaded.").Wrap(err)
	}
	return NewWithClient(s3.NewFromConfig(cfg), reg, bucket, prefix), nil
}

// NewWithClient is New with an explicit S3 client, used by the tests.
func NewWithClient(client ObjectPutter, reg *registry.Registry, bucket, prefix string) *Publisher {
	return &Publisher{client: client, reg: reg, bucket: bucket, prefix: prefix}
}

// Result reports what one Publish call uploaded.
type Result struct {
	// Keys holds every uploaded object key, manifest first.
	Keys []string
}

// Publish uploads the manifest and every component source file. It
// stops at the first failed upload; objects already written stay.
func (p *Publisher) Publish(ctx context.Context) (*Result, error) {
	result := &Result{}

	manifest, err := json.MarshalIndent(p.reg.Manifest(), "", "  ")
	if err != nil {
		return nil, errors.New("E402").Wrap(err)
	}
	key := p.key("registry.json")
	if err := p.put(ctx, key, manifest, "application/json"); err != nil {
		return result, err
	}
	result.Keys = append(result.Keys, key)

	for _, c := range p.reg.Components() {
		for _, file := range c.Files {
			content, err := registry.Source(file)
			if err != nil {
				return result, errors.New("E203").
					WithDetail("No source for " + file + ".").Wrap(err)
			}
			key := p.key("components", c.Name, file)
			if err := p.put(ctx, key, content, "text/x-go"); err != nil {
				return result, err
			}
			result.Keys = append(result.Keys, key)
		}
	}

	return result, nil
}

func (p *Publisher) put(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return errors.New("E402").
			WithDetail("Upload of " + key + " failed.").Wrap(err)
	}
	return nil
}

func (p *Publisher) key(parts ...string) string {
	if p.prefix == "" {
		return path.Join(parts...)
	}
	return path.Join(append([]string{p.prefix}, parts...)...)
}
