package media

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/quanda-dev/quanda/internal/domain"
	"github.com/quanda-dev/quanda/internal/errors"
)

// Storage keeps uploaded attachments on local disk and hands out URLs in the
// presigned style: an expiring HMAC-signed upload URL the client PUTs the
// file to, and a stable retrieval URL. Issuing either URL does not check
// that an object exists behind the id.
type Storage struct {
	rootPath   string
	baseUrl    string
	signingKey []byte
	uploadTTL  time.Duration

	now func() time.Time
}

func New(rootPath, baseUrl, signingKey string, uploadTTL time.Duration) (*Storage, error) {
	p := filepath.Clean(rootPath)

	if err := os.MkdirAll(p, 0755); err != nil {
		return nil, fmt.Errorf("failed to create media root directory %s: %w", p, err)
	}

	return &Storage{
		rootPath:   p,
		baseUrl:    baseUrl,
		signingKey: []byte(signingKey),
		uploadTTL:  uploadTTL,
		now:        time.Now,
	}, nil
}

func (s *Storage) UploadUrl(attachmentId domain.AttachmentId) (string, error) {
	expires := s.now().Add(s.uploadTTL).Unix()
	signature := s.sign(attachmentId, expires)
	return fmt.Sprintf("%s/media/%s?expires=%d&signature=%s",
		s.baseUrl, url.PathEscape(attachmentId), expires, signature), nil
}

func (s *Storage) AttachmentUrl(attachmentId domain.AttachmentId) string {
	return fmt.Sprintf("%s/media/%s", s.baseUrl, url.PathEscape(attachmentId))
}

// VerifyUpload checks the signature and expiry of an upload request.
func (s *Storage) VerifyUpload(attachmentId domain.AttachmentId, expires int64, signature string) error {
	expected := s.sign(attachmentId, expires)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return errors.Forbidden("Invalid upload signature")
	}
	if s.now().Unix() > expires {
		return errors.Forbidden("Upload URL expired")
	}
	return nil
}

func (s *Storage) sign(attachmentId domain.AttachmentId, expires int64) string {
	mac := hmac.New(sha256.New, s.signingKey)
	fmt.Fprintf(mac, "%s:%d", attachmentId, expires)
	return hex.EncodeToString(mac.Sum(nil))
}

// Save writes an uploaded object under its attachment id.
func (s *Storage) Save(attachmentId domain.AttachmentId, data io.Reader) error {
	fullPath, err := s.objectPath(attachmentId)
	if err != nil {
		return err
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create object file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, data); err != nil {
		os.Remove(fullPath) // best effort
		return fmt.Errorf("failed to write object data: %w", err)
	}
	return nil
}

func (s *Storage) Read(attachmentId domain.AttachmentId) (io.ReadCloser, error) {
	fullPath, err := s.objectPath(attachmentId)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("Attachment not found")
		}
		return nil, fmt.Errorf("failed to open object file: %w", err)
	}
	return file, nil
}

// objectPath maps an attachment id onto the media root. Rooting the cleaned
// id at "/" first strips any ".." segments, so the result cannot escape the
// root.
func (s *Storage) objectPath(attachmentId domain.AttachmentId) (string, error) {
	if attachmentId == "" {
		return "", errors.BadRequest("Empty attachment id")
	}
	return filepath.Join(s.rootPath, filepath.Clean("/"+attachmentId)), nil
}
