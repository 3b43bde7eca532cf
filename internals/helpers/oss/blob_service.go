// internals/helpers/oss/blob_service.go
package helper

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

/* =======================================================
   BLOB SERVICE (facade untuk controller)
   Gambar dikonversi ke WebP sebelum diupload; file lain
   diteruskan apa adanya.
======================================================= */

const (
	maxUploadSize = int64(10 * 1024 * 1024) // 10 MB
	webpMaxWidth  = 1600
	webpMaxHeight = 1600
	webpQuality   = float32(80)
)

type UploadedBlob struct {
	FileName    string
	ObjectKey   string
	PublicURL   string
	Size        int64
	ContentType string
}

type BlobService struct {
	OSS *OSSService
}

func NewBlobServiceFromEnv() (*BlobService, error) {
	svc, err := NewOSSServiceFromEnv()
	if err != nil {
		return nil, err
	}
	return &BlobService{OSS: svc}, nil
}

func isImageExt(ext string) bool {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp":
		return true
	}
	return false
}

// UploadMultipart membaca file dari form, konversi gambar ke WebP,
// lalu upload ke folder yang diminta.
func (b *BlobService) UploadMultipart(fh *multipart.FileHeader, folder string) (*UploadedBlob, error) {
	if fh.Size > maxUploadSize {
		return nil, fmt.Errorf("ukuran file melebihi batas %d MB", maxUploadSize/(1024*1024))
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("buka file upload: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("baca file upload: %w", err)
	}

	ext := filepath.Ext(fh.Filename)
	contentType := fh.Header.Get("Content-Type")

	if isImageExt(ext) {
		if converted, err := encodeWebP(data); err == nil {
			data = converted
			ext = ".webp"
			contentType = "image/webp"
		}
		// gagal decode: biarkan file asli, jangan gagalkan upload
	}

	key := BuildObjectKey(folder, ext)
	publicURL, err := b.OSS.UploadBytes(key, data, contentType)
	if err != nil {
		return nil, err
	}

	return &UploadedBlob{
		FileName:    fh.Filename,
		ObjectKey:   key,
		PublicURL:   publicURL,
		Size:        int64(len(data)),
		ContentType: contentType,
	}, nil
}

func (b *BlobService) DeleteByPublicURL(raw string) error {
	return b.OSS.DeleteByPublicURL(raw)
}

func encodeWebP(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	if bounds.Dx() > webpMaxWidth || bounds.Dy() > webpMaxHeight {
		img = imaging.Fit(img, webpMaxWidth, webpMaxHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
