package models

import (
	"strings"

	"github.com/google/uuid"

	dErrors "github.com/acta-build/acta-go/pkg/domain-errors"
)

const vcIDPrefix = "vc_"

// VcID identifies a verifiable credential. It is opaque to the client and is
// the correlation key threaded through create, prepare, store and verify.
type VcID string

// NewVcID generates a fresh credential identifier for callers that do not
// receive one from their backend.
func NewVcID() VcID {
	return VcID(vcIDPrefix + uuid.NewString())
}

// ParseVcID accepts any non-blank identifier; the format is owned by the backend.
func ParseVcID(value string) (VcID, error) {
	if strings.TrimSpace(value) == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "vc id cannot be empty")
	}
	return VcID(value), nil
}

func (id VcID) String() string { return string(id) }

// IsNil reports whether the identifier is empty.
func (id VcID) IsNil() bool { return id == "" }
