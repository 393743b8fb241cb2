package config

import (
	"encoding/json"
	"fmt"
	"strings"
)

// UploadMethod selects the storage backend used to upload campaign assets.
type UploadMethod string

const (
	UploadMetaplex UploadMethod = "metaplex"
	UploadBundlr   UploadMethod = "bundlr"
	UploadArloader UploadMethod = "arloader"
)

// ParseUploadMethod matches the token case-insensitively against the closed
// set of upload methods.
func ParseUploadMethod(s string) (UploadMethod, error) {
	switch strings.ToLower(s) {
	case "metaplex":
		return UploadMetaplex, nil
	case "bundlr":
		return UploadBundlr, nil
	case "arloader":
		return UploadArloader, nil
	default:
		return "", fmt.Errorf("%w: upload method %q", ErrUnknownEnumValue, s)
	}
}

func (m *UploadMethod) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: uploadMethod must be a string", ErrTypeMismatch)
	}
	parsed, err := ParseUploadMethod(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
