package helper

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	uploadRoot    = "uploads"
	maxImageBytes = 5 * 1024 * 1024
	maxImageEdge  = 800
	webpQuality   = 80
)

// SaveBase64Image menerima data-URI / raw base64 gambar (selfie, logo),
// konversi ke WebP terkompres, simpan ke disk lokal, dan kembalikan path
// referensi yang dipersist di DB (mis. "/uploads/selfies/<uuid>.webp").
func SaveBase64Image(folder, encoded string) (string, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return "", fmt.Errorf("gambar kosong")
	}

	// Buang prefix data URI bila ada ("data:image/jpeg;base64,....")
	if idx := strings.Index(encoded, "base64,"); idx >= 0 {
		encoded = encoded[idx+len("base64,"):]
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("base64 tidak valid: %w", err)
	}
	if len(raw) > maxImageBytes {
		return "", fmt.Errorf("ukuran gambar melebihi %dMB", maxImageBytes/(1024*1024))
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("format gambar tidak dikenali: %w", err)
	}

	// Resize proporsional supaya file selfie tidak membengkak
	img = imaging.Fit(img, maxImageEdge, maxImageEdge, imaging.Lanczos)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("gagal encode webp: %w", err)
	}

	dir := filepath.Join(uploadRoot, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat folder upload: %w", err)
	}

	name := uuid.NewString() + ".webp"
	dst := filepath.Join(dir, name)
	if err := os.WriteFile(dst, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("gagal menyimpan gambar: %w", err)
	}

	return "/" + filepath.ToSlash(dst), nil
}
