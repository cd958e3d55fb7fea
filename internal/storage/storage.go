// Package storage guarda as imagens da plataforma (fotos de capa e banners
// dos salões) em um bucket compatível com S3/R2.
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

// UploadInput representa uma operação de upload simples.
type UploadInput struct {
	Key          string
	Body         []byte
	ContentType  string
	CacheControl string
}

// UploadResult descreve o artefato persistido.
type UploadResult struct {
	URL  string
	ETag string
}

// Uploader define comportamento básico para armazenar blobs.
type Uploader interface {
	Upload(ctx context.Context, input UploadInput) (*UploadResult, error)
}

// PhotoKey monta a chave da foto de capa de um salão, preservando a extensão
// do arquivo original.
func PhotoKey(salonID uuid.UUID, filename string) string {
	return objectKey("salons", salonID, filename)
}

// BannerKey monta a chave de um banner do salão.
func BannerKey(salonID uuid.UUID, filename string) string {
	return objectKey("banners", salonID, filename)
}

func objectKey(prefix string, salonID uuid.UUID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		ext = ".jpg"
	}
	return fmt.Sprintf("%s/%s/%s%s", prefix, salonID, uuid.NewString(), ext)
}
