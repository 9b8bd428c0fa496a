package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	return NewLocalStore(t.TempDir(), "http://localhost:8000/", []byte("test-secret"))
}

func TestUploadWritesFile(t *testing.T) {
	store := newTestStore(t)

	err := store.Upload(context.Background(), "proofs/abc/1_bukti.jpg", bytes.NewBufferString("jpeg-bytes"))
	assert.NoError(t, err)

	full, err := store.FilePath("proofs/abc/1_bukti.jpg")
	assert.NoError(t, err)
	data, err := os.ReadFile(full)
	assert.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestUploadRejectsExistingPath(t *testing.T) {
	store := newTestStore(t)

	assert.NoError(t, store.Upload(context.Background(), "proofs/abc/1_bukti.jpg", bytes.NewBufferString("first")))
	err := store.Upload(context.Background(), "proofs/abc/1_bukti.jpg", bytes.NewBufferString("second"))
	assert.ErrorIs(t, err, ErrBlobExists)

	full, _ := store.FilePath("proofs/abc/1_bukti.jpg")
	data, _ := os.ReadFile(full)
	assert.Equal(t, []byte("first"), data, "existing blob stays untouched")
}

func TestUploadRejectsTraversal(t *testing.T) {
	store := newTestStore(t)

	for _, p := range []string{"", "   ", "..", "../x", "proofs/../../etc/passwd", "a//b", "a/./b"} {
		err := store.Upload(context.Background(), p, bytes.NewBufferString("x"))
		assert.ErrorIs(t, err, ErrInvalidPath, "path %q", p)
	}

	entries, err := os.ReadDir(store.root)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSignedURLRoundTrip(t *testing.T) {
	store := newTestStore(t)
	at := time.Date(2024, 5, 20, 11, 30, 0, 0, time.UTC)
	store.now = func() time.Time { return at }

	signed, err := store.SignedURL("proofs/abc/1_bukti.jpg", 10*time.Minute)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(signed, "http://localhost:8000/files/proofs/abc/1_bukti.jpg?"), signed)

	u, err := url.Parse(signed)
	assert.NoError(t, err)
	exp := u.Query().Get("exp")
	sig := u.Query().Get("sig")
	assert.Equal(t, fmt.Sprint(at.Add(10*time.Minute).Unix()), exp)

	assert.True(t, store.Verify("proofs/abc/1_bukti.jpg", exp, sig))
	assert.False(t, store.Verify("proofs/abc/2_other.jpg", exp, sig), "signature is bound to the path")
	assert.False(t, store.Verify("proofs/abc/1_bukti.jpg", exp, "deadbeef"))
}

func TestVerifyExpired(t *testing.T) {
	store := newTestStore(t)
	at := time.Date(2024, 5, 20, 11, 30, 0, 0, time.UTC)
	store.now = func() time.Time { return at }

	signed, err := store.SignedURL("proofs/abc/1_bukti.jpg", time.Minute)
	assert.NoError(t, err)
	u, _ := url.Parse(signed)
	exp := u.Query().Get("exp")
	sig := u.Query().Get("sig")

	store.now = func() time.Time { return at.Add(2 * time.Minute) }
	assert.False(t, store.Verify("proofs/abc/1_bukti.jpg", exp, sig))
}

func TestVerifyRejectsGarbage(t *testing.T) {
	store := newTestStore(t)

	assert.False(t, store.Verify("proofs/a.jpg", "not-a-number", "sig"))
	assert.False(t, store.Verify("../a.jpg", "9999999999", "sig"))
}

func TestFilePathStaysUnderRoot(t *testing.T) {
	store := newTestStore(t)

	full, err := store.FilePath("proofs/abc/1_bukti.jpg")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(store.root, "proofs", "abc", "1_bukti.jpg"), full)

	_, err = store.FilePath("../outside")
	assert.ErrorIs(t, err, ErrInvalidPath)
}
