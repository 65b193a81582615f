package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"resume-importer/internal/shared/storage/object"
)

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "user/file.pdf", want: "user/file.pdf"},
		{name: "simple prefix", prefix: "root", key: "user/file.pdf", want: "root/user/file.pdf"},
		{name: "prefix trailing slash", prefix: "root/", key: "user/file.pdf", want: "root/user/file.pdf"},
		{name: "prefix and key slashes", prefix: "/root/", key: "/user/file.pdf", want: "root/user/file.pdf"},
		{name: "nested prefix", prefix: "root/sub", key: "user/file.pdf", want: "root/sub/user/file.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}

type fakeS3 struct {
	put  *s3.PutObjectInput
	body []byte
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.put = in
	f.body = data
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.put == nil || aws.ToString(in.Key) != aws.ToString(f.put.Key) {
		return nil, &s3types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(f.body))}, nil
}

func TestSaveUsesKMSWhenConfigured(t *testing.T) {
	fake := &fakeS3{}
	store := newStore(fake, "uploads", "/imports/", "kms-key")
	data := []byte(`{"basics":{"name":"Ada Lovelace"}}`)

	obj, err := store.Save(context.Background(), "guest:1", "resume.json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := aws.ToString(fake.put.Key); !strings.HasPrefix(got, "imports/") || !strings.HasSuffix(got, obj.Key) {
		t.Fatalf("unexpected object key %q for %q", got, obj.Key)
	}
	if fake.put.ServerSideEncryption != s3types.ServerSideEncryptionAwsKms || aws.ToString(fake.put.SSEKMSKeyId) != "kms-key" {
		t.Fatalf("expected kms encryption, got %v", fake.put.ServerSideEncryption)
	}
	if aws.ToString(fake.put.ContentType) != "application/json" || obj.MediaType != "application/json" {
		t.Fatalf("unexpected content type %q", aws.ToString(fake.put.ContentType))
	}
	if obj.Size != int64(len(data)) || !bytes.Equal(fake.body, data) {
		t.Fatalf("body mismatch: size=%d", obj.Size)
	}
	if aws.ToInt64(fake.put.ContentLength) != int64(len(data)) {
		t.Fatalf("unexpected content length %d", aws.ToInt64(fake.put.ContentLength))
	}
	if fake.put.Metadata["original-name"] != "resume.json" {
		t.Fatalf("unexpected metadata %v", fake.put.Metadata)
	}
}

func TestOpenRoundTripAndMissing(t *testing.T) {
	fake := &fakeS3{}
	store := newStore(fake, "uploads", "imports", "")
	obj, err := store.Save(context.Background(), "guest:1", "cv.pdf", strings.NewReader("%PDF-1.4 body"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	rc, err := store.Open(context.Background(), obj.Key)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()
	got, _ := io.ReadAll(rc)
	if string(got) != "%PDF-1.4 body" {
		t.Fatalf("unexpected body %q", got)
	}

	if _, err := store.Open(context.Background(), "missing/key"); !errors.Is(err, object.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveDefaultsToAES256(t *testing.T) {
	fake := &fakeS3{}
	store := newStore(fake, "uploads", "", "")
	if _, err := store.Save(context.Background(), "guest:1", "cv.pdf", strings.NewReader("%PDF-1.4")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if fake.put.ServerSideEncryption != s3types.ServerSideEncryptionAes256 {
		t.Fatalf("expected AES256, got %v", fake.put.ServerSideEncryption)
	}
}
