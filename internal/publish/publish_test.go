package publish

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	loomerrors "github.com/loomui/loom/internal/errors"
	"github.com/loomui/loom/internal/registry"
)

type fakeS3 struct {
	objects map[string][]byte
	failOn  string
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: make(map[string][]byte)}
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	key := *params.Key
	if f.failOn != "" && key == f.failOn {
		return nil, errors.New("access denied")
	}
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.objects[key] = body
	return &s3.PutObjectOutput{}, nil
}

func TestPublish(t *testing.T) {
	fake := newFakeS3()
	p := NewWithClient(fake, registry.Default(), "loom-registry", "")

	result, err := p.Publish(context.Background())
	require.NoError(t, err)

	// Manifest plus one object per component file.
	wantCount := 1
	for _, c := range registry.Default().Components() {
		wantCount += len(c.Files)
	}
	assert.Len(t, result.Keys, wantCount)
	assert.Equal(t, "registry.json", result.Keys[0])

	var manifest registry.Manifest
	require.NoError(t, json.Unmarshal(fake.objects["registry.json"], &manifest))
	assert.Equal(t, registry.CatalogVersion, manifest.Version)

	assert.Contains(t, string(fake.objects["components/button/button.go"]), "func Button(")
}

func TestPublish_Prefix(t *testing.T) {
	fake := newFakeS3()
	p := NewWithClient(fake, registry.Default(), "loom-registry", "v1")

	result, err := p.Publish(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "v1/registry.json", result.Keys[0])
	assert.Contains(t, fake.objects, "v1/components/badge/badge.go")
}

func TestPublish_UploadFailure(t *testing.T) {
	fake := newFakeS3()
	fake.failOn = "components/badge/badge.go"
	p := NewWithClient(fake, registry.Default(), "loom-registry", "")

	result, err := p.Publish(context.Background())

	var le *loomerrors.LoomError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "E402", le.Code)
	assert.Contains(t, le.Detail, "badge.go")

	// The manifest upload preceded the failure and is reported.
	assert.NotEmpty(t, result.Keys)
	assert.Equal(t, "registry.json", result.Keys[0])
}
