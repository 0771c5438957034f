package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"finodex/internal/port"
	"finodex/mocks"
)

func TestArchiveUploadsUnderFreshPrefix(t *testing.T) {
	var got port.UploadInput
	storage := new(mocks.MockObjectStorage)
	storage.On("Upload", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { got = args.Get(1).(port.UploadInput) }).
		Return(&port.UploadOutput{Location: "loc"}, nil).Once()

	svc := NewArchiveService(storage, "finodex-docs")
	key := svc.Archive(context.Background(), "offer.pdf", "application/pdf", []byte("data"))

	require.NotEmpty(t, key)
	assert.True(t, strings.HasPrefix(key, "documents/"))
	assert.True(t, strings.HasSuffix(key, "/offer.pdf"))

	assert.Equal(t, "finodex-docs", got.Bucket)
	assert.Equal(t, key, got.Key)
	assert.Equal(t, "application/pdf", got.ContentType)
	assert.Equal(t, int64(4), got.Size)
	body, err := io.ReadAll(got.Body)
	require.NoError(t, err)
	assert.Equal(t, "data", string(body))
	storage.AssertExpectations(t)
}

func TestArchiveSwallowsUploadFailure(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	storage.On("Upload", mock.Anything, mock.Anything).
		Return(nil, errors.New("denied")).Once()

	svc := NewArchiveService(storage, "finodex-docs")
	key := svc.Archive(context.Background(), "offer.pdf", "application/pdf", []byte("data"))
	assert.Empty(t, key)
}

func TestArchiveDisabled(t *testing.T) {
	svc := NewArchiveService(nil, "")
	assert.False(t, svc.Enabled())
	assert.Empty(t, svc.Archive(context.Background(), "offer.pdf", "application/pdf", []byte("data")))

	var nilSvc *ArchiveService
	assert.False(t, nilSvc.Enabled())
}
