package media

import (
	"fmt"
	"strings"
	"time"

	"sokohub/config"

	"cloud.google.com/go/storage"
)

// signedURLExpiry is the fixed read-access expiry for issued URLs. There is
// no revocation or renewal path, so URLs are effectively permanent.
var signedURLExpiry = time.Date(3000, time.January, 1, 0, 0, 0, 0, time.UTC)

// URLSigner implements URLIssuer with service-account credentials.
type URLSigner struct {
	bucket         string
	googleAccessID string
	privateKey     []byte
}

// NewURLSigner creates a signer for the given bucket.
func NewURLSigner(bucket string, sa *config.ServiceAccount) *URLSigner {
	return &URLSigner{
		bucket:         bucket,
		googleAccessID: sa.ClientEmail,
		privateKey:     []byte(strings.ReplaceAll(sa.PrivateKey, `\n`, "\n")),
	}
}

// Issue returns a signed GET URL for objectPath.
func (s *URLSigner) Issue(objectPath string) (string, error) {
	url, err := storage.SignedURL(s.bucket, objectPath, &storage.SignedURLOptions{
		GoogleAccessID: s.googleAccessID,
		PrivateKey:     s.privateKey,
		Method:         "GET",
		Expires:        signedURLExpiry,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate signed URL: %w", err)
	}
	return url, nil
}
