package iocli

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// MaxImageBytes ограничение на размер файла: после base64 запрос
// должен уложиться в лимит тела на сервере (8 MiB)
const MaxImageBytes = 6 << 20

// LoadImage читает файл изображения и возвращает его как data URI
func LoadImage(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if info.Size() > MaxImageBytes {
		return "", fmt.Errorf("image is too large: %d bytes, max %d", info.Size(), MaxImageBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	return EncodeImage(data)
}

// EncodeImage кодирует байты изображения в data URI. Тип определяется по
// содержимому, не по расширению
func EncodeImage(data []byte) (string, error) {
	mediaType := http.DetectContentType(data)
	if !strings.HasPrefix(mediaType, "image/") {
		return "", fmt.Errorf("not an image: %s", mediaType)
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
