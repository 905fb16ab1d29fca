package archive

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// Archiver stores captured receipt images so a scan can be audited or
// re-run later. Archiving is best-effort: the pipeline logs a failure and
// carries on.
type Archiver interface {
	ArchiveCapture(ctx context.Context, image []byte) (string, error)
}

// GCSArchiver uploads captures to a Google Cloud Storage bucket under
// captures/YYYY/MM/DD/<uuid>.png. It assumes Application Default
// Credentials are configured.
type GCSArchiver struct {
	Bucket string
}

// NewGCSArchiver creates an archiver writing to the given bucket.
func NewGCSArchiver(bucket string) *GCSArchiver {
	return &GCSArchiver{Bucket: bucket}
}

// ArchiveCapture uploads the image bytes and returns the gs:// URI.
func (a *GCSArchiver) ArchiveCapture(ctx context.Context, image []byte) (string, error) {
	if a.Bucket == "" {
		return "", fmt.Errorf("ArchiveCapture: no bucket configured")
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return "", fmt.Errorf("ArchiveCapture: create storage client: %w", err)
	}
	defer client.Close()

	objectName := fmt.Sprintf("captures/%s/%s.png", time.Now().Format("2006/01/02"), uuid.NewString())

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := client.Bucket(a.Bucket).Object(objectName).NewWriter(ctx)
	w.ContentType = "image/png"

	if _, err := io.Copy(w, bytes.NewReader(image)); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("ArchiveCapture: copy image to GCS writer: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("ArchiveCapture: finalize upload: %w", err)
	}

	return fmt.Sprintf("gs://%s/%s", a.Bucket, objectName), nil
}

// Ensure GCSArchiver implements Archiver.
var _ Archiver = (*GCSArchiver)(nil)
