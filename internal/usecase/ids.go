package usecase

import (
	"strings"

	"github.com/google/uuid"
)

// parseID trims raw and checks it is a UUID.
func parseID(raw, field string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", validationf("%s is required", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", validationf("invalid %s", field)
	}
	return id.String(), nil
}

// parseOptionalID is parseID for fields that may be left empty.
func parseOptionalID(raw, field string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	return parseID(raw, field)
}

func normalizeRegistration(reg string) string {
	return strings.ToUpper(strings.Join(strings.Fields(reg), ""))
}
