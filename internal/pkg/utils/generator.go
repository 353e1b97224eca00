package utils

import (
	"crypto/rand"
	"emr-service/internal/pkg/constvars"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateReceiptNumber produces a human-readable receipt reference in the
// form REC-<unix millis>-<0..999>. Uniqueness is best-effort only; documents
// stay keyed by their object id.
func GenerateReceiptNumber(now time.Time) string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000))
	suffix := int64(0)
	if err == nil {
		suffix = n.Int64()
	}
	return fmt.Sprintf("%s-%d-%d", constvars.RECEIPT_PREFIX, now.UnixMilli(), suffix)
}
