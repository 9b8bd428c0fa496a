package storage

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

var (
	ErrBlobExists  = errors.New("blob already exists at that path")
	ErrInvalidPath = errors.New("invalid blob path")
)

// LocalStore keeps uploaded blobs on disk and hands out time-limited HMAC
// signed URLs for retrieval. Upload rejects an existing path, mirroring an
// upsert:false object store.
type LocalStore struct {
	root    string
	baseURL string
	secret  []byte
	now     func() time.Time
}

func NewLocalStore(root, baseURL string, secret []byte) *LocalStore {
	return &LocalStore{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
		secret:  secret,
		now:     time.Now,
	}
}

func cleanPath(blobPath string) (string, error) {
	p := strings.TrimLeft(strings.TrimSpace(blobPath), "/")
	if p == "" {
		return "", ErrInvalidPath
	}
	for _, part := range strings.Split(p, "/") {
		if part == "" || part == "." || part == ".." {
			return "", ErrInvalidPath
		}
	}
	return p, nil
}

func (s *LocalStore) Upload(ctx context.Context, blobPath string, r io.Reader) error {
	p, err := cleanPath(blobPath)
	if err != nil {
		return err
	}
	full := filepath.Join(s.root, filepath.FromSlash(p))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return ErrBlobExists
		}
		return err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		os.Remove(full)
		return err
	}
	return nil
}

func (s *LocalStore) sign(blobPath string, exp int64) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%s|%d", blobPath, exp)
	return hex.EncodeToString(mac.Sum(nil))
}

// SignedURL issues a retrieval URL that stops verifying after ttl.
func (s *LocalStore) SignedURL(blobPath string, ttl time.Duration) (string, error) {
	p, err := cleanPath(blobPath)
	if err != nil {
		return "", err
	}
	exp := s.now().Add(ttl).Unix()
	return fmt.Sprintf("%s/files/%s?exp=%d&sig=%s", s.baseURL, p, exp, s.sign(p, exp)), nil
}

// Verify checks the signature and expiry produced by SignedURL.
func (s *LocalStore) Verify(blobPath, expStr, sig string) bool {
	p, err := cleanPath(blobPath)
	if err != nil {
		return false
	}
	exp, err := strconv.ParseInt(expStr, 10, 64)
	if err != nil || s.now().Unix() > exp {
		return false
	}
	return hmac.Equal([]byte(s.sign(p, exp)), []byte(sig))
}

// FilePath maps a verified blob path back to its on-disk location.
func (s *LocalStore) FilePath(blobPath string) (string, error) {
	p, err := cleanPath(blobPath)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.root, filepath.FromSlash(p)), nil
}
