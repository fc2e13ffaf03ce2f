package handler

import (
	"encoding/base64"
	"fmt"
	"strconv"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
)

// encodeCursor turns the last transaction ID of a page into an opaque token
func encodeCursor(id uint64) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.FormatUint(id, 10)))
}

// decodeCursor reverses encodeCursor; an empty token starts from the beginning
func decodeCursor(token string) (uint64, error) {
	if token == "" {
		return 0, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("%w: malformed cursor", errs.ErrInvalidRequest)
	}
	id, err := strconv.ParseUint(string(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: malformed cursor", errs.ErrInvalidRequest)
	}
	return id, nil
}
