package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/loomui/loom/internal/publish"
	"github.com/loomui/loom/internal/registry"
)

var (
	publishBucket string
	publishPrefix string
)

func publishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the registry to an S3 bucket",
		Long: `Upload the registry manifest and component sources to S3.

The bucket layout matches the serve endpoints, so a static bucket
behind a CDN works as a registry host. Credentials come from the
standard AWS environment.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish()
		},
	}

	cmd.Flags().StringVar(&publishBucket, "bucket", "", "Target S3 bucket (required)")
	cmd.Flags().StringVar(&publishPrefix, "prefix", "", "Key prefix inside the bucket")
	cmd.MarkFlagRequired("bucket")

	return cmd
}

func runPublish() error {
	ctx := context.Background()

	p, err := publish.New(ctx, registry.Default(), publishBucket, publishPrefix)
	if err != nil {
		return err
	}

	result, err := p.Publish(ctx)
	if err != nil {
		return err
	}

	success("uploaded %d objects to s3://%s/%s", len(result.Keys), publishBucket, publishPrefix)
	return nil
}
