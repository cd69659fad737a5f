package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-cms-backend/errs"
)

type fakeS3 struct {
	putKeys    []string
	deleteKeys []string
	putErr     error
	deleteErr  error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.putKeys = append(f.putKeys, *in.Key)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	f.deleteKeys = append(f.deleteKeys, *in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func newTestMediaService(client s3API) *MediaService {
	return &MediaService{
		client:  client,
		bucket:  "test-bucket",
		baseURL: "https://cdn.example.com/test-bucket",
		logger:  zerolog.Nop(),
	}
}

func TestUploadImage(t *testing.T) {
	fake := &fakeS3{}
	svc := newTestMediaService(fake)

	up, err := svc.Upload(context.Background(), strings.NewReader("fake-bytes"), "photo.PNG", 10, KindImage)
	require.NoError(t, err)

	require.Len(t, fake.putKeys, 1)
	assert.True(t, strings.HasPrefix(fake.putKeys[0], "portfolio/images/"), "images go under the images folder")
	assert.True(t, strings.HasSuffix(fake.putKeys[0], ".png"))
	assert.Equal(t, "https://cdn.example.com/test-bucket/"+fake.putKeys[0], up.URL)
	assert.Equal(t, fake.putKeys[0], up.Key)
}

func TestUploadVideoFolder(t *testing.T) {
	fake := &fakeS3{}
	svc := newTestMediaService(fake)

	up, err := svc.Upload(context.Background(), strings.NewReader("fake-bytes"), "demo.mp4", 10, KindVideo)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(up.Key, "portfolio/videos/"))
}

func TestUploadRejectsFormat(t *testing.T) {
	fake := &fakeS3{}
	svc := newTestMediaService(fake)

	_, err := svc.Upload(context.Background(), strings.NewReader("x"), "malware.exe", 1, KindImage)
	require.Error(t, err)
	assert.True(t, errs.IsUnsupportedMediaTypeError(err))
	assert.Empty(t, fake.putKeys, "nothing should reach the store")
}

func TestUploadRejectsOversize(t *testing.T) {
	fake := &fakeS3{}
	svc := newTestMediaService(fake)

	_, err := svc.Upload(context.Background(), strings.NewReader("x"), "big.png", maxImageSize+1, KindImage)
	require.Error(t, err)
	assert.Empty(t, fake.putKeys)
}

func TestUploadWrapsStoreFailure(t *testing.T) {
	fake := &fakeS3{putErr: errors.New("boom")}
	svc := newTestMediaService(fake)

	_, err := svc.Upload(context.Background(), strings.NewReader("x"), "photo.png", 1, KindImage)
	require.Error(t, err)
	assert.True(t, errs.IsAssetUploadError(err))
}

func TestDeleteByLocator(t *testing.T) {
	fake := &fakeS3{}
	svc := newTestMediaService(fake)

	err := svc.Delete(context.Background(), "https://cdn.example.com/test-bucket/portfolio/images/abc.png")
	require.NoError(t, err)
	require.Len(t, fake.deleteKeys, 1)
	assert.Equal(t, "portfolio/images/abc.png", fake.deleteKeys[0])
}

func TestDeleteForeignLocator(t *testing.T) {
	fake := &fakeS3{}
	svc := newTestMediaService(fake)

	err := svc.Delete(context.Background(), "https://elsewhere.example.com/abc.png")
	require.Error(t, err)
	assert.Empty(t, fake.deleteKeys)
}

func TestDeleteWrapsStoreFailure(t *testing.T) {
	fake := &fakeS3{deleteErr: errors.New("boom")}
	svc := newTestMediaService(fake)

	err := svc.Delete(context.Background(), "https://cdn.example.com/test-bucket/portfolio/images/abc.png")
	require.Error(t, err)
	assert.True(t, errs.IsAssetDeleteError(err))
}
