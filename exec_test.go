package srpair

import (
	"bytes"
	"image"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOps(t *testing.T) (*Ops, string) {
	dir := t.TempDir()
	src := filepath.Join(dir, "source.png")
	writeImage(t, src, gradientImage(40, 32))

	return &Ops{
		Src:      src,
		HR:       filepath.Join(dir, "hr.png"),
		LR:       filepath.Join(dir, "lr.bmp"),
		PipeName: "-",
		Mode:     ModeRGB,
		Seed:     3,
		Loader:   &Loader{Raster: &fakeReader{}, Policies: DefaultPolicies},
		Stdout:   &bytes.Buffer{},
	}, dir
}

func TestExec_WritesPair(t *testing.T) {
	op, _ := newOps(t)
	s := &Sampler{Scale: 2, CropSize: 6, Train: true, Augment: true}
	require.NoError(t, s.Execute(op))

	hr, err := imaging.Open(op.HR)
	require.NoError(t, err)
	lr, err := imaging.Open(op.LR)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 12, 12), hr.Bounds())
	assert.Equal(t, image.Rect(0, 0, 6, 6), lr.Bounds())
}

func TestExec_Pipe(t *testing.T) {
	op, _ := newOps(t)
	op.HR = op.PipeName
	s := &Sampler{Scale: 4}
	require.NoError(t, s.Execute(op))

	hr, err := imaging.Decode(op.Stdout.(*bytes.Buffer))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 40, 32), hr.Bounds())

	lr, err := imaging.Open(op.LR)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 10, 8), lr.Bounds())
}

func TestExec_Errors(t *testing.T) {
	op, _ := newOps(t)
	op.HR, op.LR = op.PipeName, op.PipeName
	assert.Error(t, (&Sampler{Scale: 2}).Execute(op))

	op, _ = newOps(t)
	op.LR = filepath.Join(filepath.Dir(op.LR), "lr.gif")
	err := (&Sampler{Scale: 2}).Execute(op)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	op, _ = newOps(t)
	err = (&Sampler{Scale: 2, CropSize: 64}).Execute(op)
	assert.True(t, errors.Is(err, ErrCropTooLarge))
	_, statErr := os.Stat(op.HR)
	assert.True(t, os.IsNotExist(statErr))
}

func TestExec_Download(t *testing.T) {
	var png bytes.Buffer
	require.NoError(t, Encode(&png, "source.png", gradientImage(40, 32)))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/notes.png" {
			w.Write([]byte("plain text, not an image"))
			return
		}
		w.Write(png.Bytes())
	}))
	defer srv.Close()

	op, _ := newOps(t)
	op.Src = srv.URL + "/source.png"
	require.NoError(t, (&Sampler{Scale: 2}).Execute(op))

	lr, err := imaging.Open(op.LR)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 20, 16), lr.Bounds())

	op, _ = newOps(t)
	op.Src = srv.URL + "/notes.png"
	err = (&Sampler{Scale: 2}).Execute(op)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestExec_CheckDownload(t *testing.T) {
	dir := t.TempDir()
	blob := []byte{0x00, 0x01, 0x02, 0x03}

	for name, ok := range map[string]bool{
		"T11SPA.tif": true,
		"scan.tiff":  true,
		"blob.png":   false,
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, blob, 0644))
		err := checkDownload(path)
		if ok {
			assert.NoError(t, err, name)
		} else {
			assert.True(t, errors.Is(err, ErrUnsupportedFormat), name)
		}
	}
}
