// internal/modelfetch/fetch.go
//
// The macOS postinstall step downloads the transcription model on first
// install. The fetch is idempotent: a model already at the destination
// means zero network traffic. Downloads land in a uniquely named .partial
// file next to the destination and are renamed into place only on success,
// so the destination path never holds a truncated model.

package modelfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Fetcher struct {
	URL  string
	Dest string

	// MinSize guards against treating a truncated earlier download as a
	// usable model. Zero disables the check.
	MinSize int64

	// HTTPClient is injectable for tests; nil means http.DefaultClient.
	HTTPClient *http.Client
}

// Fetch ensures the model exists at Dest. Present and plausible ⇒ no
// network request. Failure leaves the destination untouched and removes
// the partial file. No retries; the installer reruns the whole step.
func (f Fetcher) Fetch(ctx context.Context) error {
	if st, err := os.Stat(f.Dest); err == nil {
		if f.MinSize == 0 || st.Size() >= f.MinSize {
			log.Infof("[model] %s already present (%d bytes), skipping download", f.Dest, st.Size())
			return nil
		}
		log.Warnf("[model] %s present but only %d bytes (< %d), re-downloading", f.Dest, st.Size(), f.MinSize)
	}

	if err := os.MkdirAll(filepath.Dir(f.Dest), 0o755); err != nil {
		return fmt.Errorf("create model directory: %w", err)
	}

	tmp := fmt.Sprintf("%s.%s.partial", f.Dest, uuid.NewString())
	if err := f.download(ctx, tmp); err != nil {
		// the partial never reaches the destination path
		if rmErr := os.Remove(tmp); rmErr != nil && !os.IsNotExist(rmErr) {
			log.Warnf("[model] could not remove partial %s: %v", tmp, rmErr)
		}
		return err
	}

	if err := os.Rename(tmp, f.Dest); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("move model into place: %w", err)
	}

	log.Infof("[model] downloaded %s", f.Dest)
	return nil
}

func (f Fetcher) download(ctx context.Context, tmp string) error {
	client := f.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return fmt.Errorf("build model request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("download model from %s: %w", f.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download model from %s: unexpected status %s", f.URL, resp.Status)
	}

	out, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create partial file: %w", err)
	}

	n, err := io.Copy(out, resp.Body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write model (%d bytes in): %w", n, err)
	}

	if f.MinSize > 0 && n < f.MinSize {
		return fmt.Errorf("downloaded model is %d bytes, below minimum %d", n, f.MinSize)
	}

	return nil
}
