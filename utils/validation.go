package utils

import (
	"fmt"
	"path/filepath"
	"strings"
)

var allowedUploadExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".mp4":  true,
}

// AllowedUploadFile reports whether a filename has an accepted upload extension.
func AllowedUploadFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return allowedUploadExts[ext]
}

// ValidateRequired checks if a string field is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(fmt.Sprintf("%s is required", fieldName))
	}
	return nil
}
