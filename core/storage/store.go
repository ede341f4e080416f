package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

const (
	// FolderUploads holds files received for comparison or rewriting.
	FolderUploads = "uploads"
	// FolderDownloads holds generated files handed back to clients.
	FolderDownloads = "downloads"
)

// RequiredFolders lists the folders the store must provide.
var RequiredFolders = []string{FolderUploads, FolderDownloads}

// Store is the upload/download area shared by all requests.
// Keys are slash separated paths relative to the store root.
type Store interface {
	// Save writes r under folder and returns the key of the new file.
	// Every call creates a distinct key, even for the same name.
	Save(ctx context.Context, folder, name string, r io.Reader, size int64) (string, error)
	// Open reads a previously saved file.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Remove deletes a saved file.
	Remove(ctx context.Context, key string) error
	// HasFolder reports whether folder exists.
	HasFolder(ctx context.Context, folder string) (bool, error)
	// MakeFolder creates folder.
	MakeFolder(ctx context.Context, folder string) error
	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
	// Location describes where files are kept, for logs.
	Location() string
}

// NewStore builds the store selected by cfg.Driver.
func NewStore(cfg Config) (Store, error) {
	switch cfg.Driver {
	case "", DriverLocal:
		return NewLocalStore(cfg.Dir), nil
	case DriverS3:
		client, err := NewClient(cfg)
		if err != nil {
			return nil, err
		}
		return NewObjectStore(client, cfg.Bucket, cfg.Prefix), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.Driver)
	}
}

// newKey builds a unique key for name inside folder.
func newKey(folder, name string) string {
	return path.Join(folder, uuid.NewString()+"_"+SafeName(name))
}

// validKey rejects keys escaping the store root.
func validKey(key string) error {
	clean := path.Clean(key)
	if key == "" || clean != key || path.IsAbs(key) || clean == ".." ||
		strings.HasPrefix(clean, "../") || strings.Contains(key, `\`) {
		return fmt.Errorf("invalid storage key: %q", key)
	}
	return nil
}

// SafeName reduces a client supplied filename to a flat ASCII name.
// Directory parts are dropped, accents are stripped, whitespace runs become one
// underscore, other characters are removed, and dots or underscores are trimmed from
// both ends. An empty result becomes "file".
func SafeName(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	var b strings.Builder
	space := false
	for _, r := range norm.NFKD.String(name) {
		switch {
		case unicode.IsSpace(r):
			space = true
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '-' || r == '_'):
			if space && b.Len() > 0 {
				b.WriteByte('_')
			}
			space = false
			b.WriteRune(r)
		}
	}

	out := strings.Trim(b.String(), "._")
	if out == "" {
		return "file"
	}
	return out
}
