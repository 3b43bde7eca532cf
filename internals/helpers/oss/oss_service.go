// internals/helpers/oss/oss_service.go
package helper

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
)

/* =======================================================
   OSS SERVICE (low-level)
   ENV: OSS_ENDPOINT, OSS_ACCESS_KEY_ID, OSS_ACCESS_KEY_SECRET,
        OSS_BUCKET, OSS_PUBLIC_BASE_URL (opsional)
======================================================= */

type OSSService struct {
	Bucket     *oss.Bucket
	BucketName string
	PublicBase string // contoh: https://bucket.oss-ap-southeast-5.aliyuncs.com
}

func NewOSSServiceFromEnv() (*OSSService, error) {
	endpoint := strings.TrimSpace(os.Getenv("OSS_ENDPOINT"))
	keyID := strings.TrimSpace(os.Getenv("OSS_ACCESS_KEY_ID"))
	keySecret := strings.TrimSpace(os.Getenv("OSS_ACCESS_KEY_SECRET"))
	bucketName := strings.TrimSpace(os.Getenv("OSS_BUCKET"))

	if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
		return nil, errors.New("konfigurasi OSS belum lengkap (OSS_ENDPOINT/OSS_ACCESS_KEY_ID/OSS_ACCESS_KEY_SECRET/OSS_BUCKET)")
	}

	client, err := oss.New(endpoint, keyID, keySecret)
	if err != nil {
		return nil, fmt.Errorf("init OSS client: %w", err)
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("buka bucket %s: %w", bucketName, err)
	}

	publicBase := strings.TrimRight(strings.TrimSpace(os.Getenv("OSS_PUBLIC_BASE_URL")), "/")
	if publicBase == "" {
		publicBase = fmt.Sprintf("https://%s.%s", bucketName, strings.TrimPrefix(endpoint, "https://"))
	}

	return &OSSService{
		Bucket:     bucket,
		BucketName: bucketName,
		PublicBase: publicBase,
	}, nil
}

// BuildObjectKey menyusun key unik: <folder>/<timestamp>_<uuid><ext>
func BuildObjectKey(folder, ext string) string {
	folder = strings.Trim(strings.TrimSpace(folder), "/")
	if folder == "" {
		folder = "misc"
	}
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return fmt.Sprintf("%s/%d_%s%s", folder, time.Now().Unix(), uuid.NewString(), strings.ToLower(ext))
}

func (s *OSSService) PublicURL(key string) string {
	return s.PublicBase + "/" + strings.TrimLeft(key, "/")
}

// KeyFromPublicURL memetakan URL publik kembali ke object key.
func (s *OSSService) KeyFromPublicURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Path == "" {
		return "", errors.New("URL file tidak valid")
	}
	key := strings.TrimLeft(u.Path, "/")
	if key == "" {
		return "", errors.New("URL file tidak mengandung object key")
	}
	return key, nil
}

func (s *OSSService) UploadBytes(key string, data []byte, contentType string) (string, error) {
	opts := []oss.Option{}
	if contentType != "" {
		opts = append(opts, oss.ContentType(contentType))
	}
	if err := s.Bucket.PutObject(key, bytes.NewReader(data), opts...); err != nil {
		return "", fmt.Errorf("upload objek %s: %w", key, err)
	}
	return s.PublicURL(key), nil
}

func (s *OSSService) DeleteByKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("object key kosong")
	}
	if err := s.Bucket.DeleteObject(key); err != nil {
		return fmt.Errorf("hapus objek %s: %w", key, err)
	}
	return nil
}

func (s *OSSService) DeleteByPublicURL(raw string) error {
	key, err := s.KeyFromPublicURL(raw)
	if err != nil {
		return err
	}
	return s.DeleteByKey(key)
}
