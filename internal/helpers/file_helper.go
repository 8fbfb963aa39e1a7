package helpers

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"mime"
	"path/filepath"
	"strings"
)

// GetFileExtension returns the lowercased extension including the dot, or
// ".bin" when the name has none.
func GetFileExtension(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		return ".bin"
	}
	return ext
}

// GetContentType prefers the type declared by the client and falls back to
// the extension.
func GetContentType(fileName, declared string) string {
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	if byExt := mime.TypeByExtension(GetFileExtension(fileName)); byExt != "" {
		return byExt
	}
	return "application/octet-stream"
}

// ComputeChecksum hashes src and rewinds it so it can be stored afterwards.
func ComputeChecksum(src io.ReadSeeker) (sha256sum string, size int64, err error) {
	hasher := sha256.New()
	size, err = io.Copy(hasher, src)
	if err != nil {
		return "", 0, err
	}
	if _, err = src.Seek(0, io.SeekStart); err != nil {
		return "", 0, err
	}
	return hex.EncodeToString(hasher.Sum(nil)), size, nil
}
