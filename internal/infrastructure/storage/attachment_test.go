package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndDelete(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, err := NewAttachmentStore(fs, "uploads")
	require.NoError(t, err)

	err = store.Save(context.Background(), "avatar.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	content, err := afero.ReadFile(fs, "uploads/avatar.png")
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))

	require.NoError(t, store.Delete(context.Background(), "avatar.png"))

	exists, err := afero.Exists(fs, "uploads/avatar.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDeleteMissingIsNotAnError(t *testing.T) {
	store, err := NewAttachmentStore(afero.NewMemMapFs(), "uploads")
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "never-saved.png"))
}

func TestFilenamesCannotEscapeDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, err := NewAttachmentStore(fs, "uploads")
	require.NoError(t, err)

	err = store.Save(context.Background(), "../../etc/passwd", strings.NewReader("nope"))
	require.NoError(t, err)

	exists, err := afero.Exists(fs, "uploads/passwd")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = afero.Exists(fs, "/etc/passwd")
	require.NoError(t, err)
	assert.False(t, exists)
}
