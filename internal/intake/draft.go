package intake

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"time"

	"farmlink/internal/domain"
)

const (
	MaxImages     = 5
	MaxImageBytes = 5 << 20
)

var ErrBusy = errors.New("submission in progress")

// Upload is one file offered to a draft.
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

func FromMultipart(files []*multipart.FileHeader) []Upload {
	out := make([]Upload, 0, len(files))
	for _, fh := range files {
		fh := fh
		out = append(out, Upload{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Open:        func() (io.ReadCloser, error) { return fh.Open() },
		})
	}
	return out
}

// Draft holds the images of one in-progress submission form.
type Draft struct {
	mu         sync.Mutex
	reg        *Registry
	images     []domain.Image
	submitting bool
	touched    time.Time
	now        func() time.Time
}

func NewDraft(reg *Registry) *Draft {
	return &Draft{reg: reg, touched: time.Now(), now: time.Now}
}

func (d *Draft) Images() []domain.Image {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]domain.Image(nil), d.images...)
}

// Add accepts image/* files up to MaxImageBytes each until the draft holds
// MaxImages. Anything else is dropped without error; dropped is the count.
func (d *Draft) Add(files []Upload) (accepted, dropped int, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.submitting {
		return 0, 0, ErrBusy
	}
	d.touched = d.now()
	for _, f := range files {
		if len(d.images) >= MaxImages || f.Size > MaxImageBytes {
			dropped++
			continue
		}
		data, ct, ok := read(f)
		if !ok {
			dropped++
			continue
		}
		ref := d.reg.Acquire(Blob{ContentType: ct, Data: data})
		d.images = append(d.images, domain.Image{Ref: ref, Name: f.Name, ContentType: ct, Size: int64(len(data))})
		accepted++
	}
	return accepted, dropped, nil
}

func read(f Upload) ([]byte, string, bool) {
	ct := strings.ToLower(strings.TrimSpace(f.ContentType))
	if ct != "" && ct != "application/octet-stream" && !strings.HasPrefix(ct, "image/") {
		return nil, "", false
	}
	rc, err := f.Open()
	if err != nil {
		return nil, "", false
	}
	defer rc.Close()
	data, err := io.ReadAll(io.LimitReader(rc, MaxImageBytes+1))
	if err != nil || len(data) == 0 || len(data) > MaxImageBytes {
		return nil, "", false
	}
	if ct == "" || ct == "application/octet-stream" {
		ct = http.DetectContentType(data)
		if !strings.HasPrefix(ct, "image/") {
			return nil, "", false
		}
	}
	return data, ct, true
}

// Remove drops the preview at idx and releases its reference.
func (d *Draft) Remove(idx int) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.submitting {
		return false, ErrBusy
	}
	if idx < 0 || idx >= len(d.images) {
		return false, nil
	}
	d.reg.Release(d.images[idx].Ref)
	d.images = append(d.images[:idx], d.images[idx+1:]...)
	d.touched = d.now()
	return true, nil
}

// BeginSubmit locks the draft for one submission. False means one is already running.
func (d *Draft) BeginSubmit() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.submitting {
		return false
	}
	d.submitting = true
	d.touched = d.now()
	return true
}

func (d *Draft) EndSubmit() {
	d.mu.Lock()
	d.submitting = false
	d.mu.Unlock()
}

func (d *Draft) Submitting() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.submitting
}

// Handoff empties the draft without releasing anything: the references now
// belong to the submitted product.
func (d *Draft) Handoff() []domain.Image {
	d.mu.Lock()
	defer d.mu.Unlock()
	imgs := d.images
	d.images = nil
	return imgs
}

// Discard releases every reference the draft still holds. A submitting draft
// is left alone; its images may be about to belong to a product.
func (d *Draft) Discard() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.submitting {
		return ErrBusy
	}
	for _, img := range d.images {
		d.reg.Release(img.Ref)
	}
	d.images = nil
	return nil
}

func (d *Draft) idleSince(now time.Time) time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.submitting {
		return 0
	}
	return now.Sub(d.touched)
}
