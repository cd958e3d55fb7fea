package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestS3UploaderUpload(t *testing.T) {
	var gotPath, gotAuth, gotSHA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotSHA = r.Header.Get("x-amz-content-sha256")
		w.Header().Set("ETag", `"abc123"`)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	uploader, err := NewS3Uploader(S3Config{
		Endpoint:     srv.URL,
		Region:       "auto",
		Bucket:       "fotos",
		AccessKey:    "ak",
		SecretKey:    "sk",
		PublicDomain: "https://cdn.guiabeleza.com.br",
		HTTPClient:   srv.Client(),
	})
	if err != nil {
		t.Fatalf("NewS3Uploader: %v", err)
	}

	res, err := uploader.Upload(context.Background(), UploadInput{
		Key:         "salons/x/capa.jpg",
		Body:        []byte("fake-image"),
		ContentType: "image/jpeg",
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if gotPath != "/fotos/salons/x/capa.jpg" {
		t.Errorf("path = %q", gotPath)
	}
	if !strings.HasPrefix(gotAuth, "AWS4-HMAC-SHA256 Credential=ak/") {
		t.Errorf("authorization = %q", gotAuth)
	}
	if gotSHA == "" {
		t.Error("x-amz-content-sha256 ausente")
	}
	if res.URL != "https://cdn.guiabeleza.com.br/salons/x/capa.jpg" {
		t.Errorf("URL pública = %q", res.URL)
	}
	if res.ETag != "abc123" {
		t.Errorf("etag = %q", res.ETag)
	}
}

func TestNewS3UploaderValidatesConfig(t *testing.T) {
	if _, err := NewS3Uploader(S3Config{}); err == nil {
		t.Error("esperava erro para config vazia")
	}
	if _, err := NewS3Uploader(S3Config{Endpoint: "bucket.sem.protocolo", Region: "auto", Bucket: "b", AccessKey: "a", SecretKey: "s"}); err == nil {
		t.Error("esperava erro para endpoint sem protocolo")
	}
}

func TestPhotoKey(t *testing.T) {
	id := uuid.New()

	key := PhotoKey(id, "minha foto.PNG")
	if !strings.HasPrefix(key, "salons/"+id.String()+"/") || !strings.HasSuffix(key, ".png") {
		t.Errorf("chave inesperada: %q", key)
	}

	// extensão desconhecida cai para .jpg
	if key := BannerKey(id, "arquivo.exe"); !strings.HasSuffix(key, ".jpg") {
		t.Errorf("chave inesperada: %q", key)
	}

	if PhotoKey(id, "a.jpg") == PhotoKey(id, "a.jpg") {
		t.Error("chaves deveriam ser únicas por upload")
	}
}
