// Package service holds domain services that need more than one entity or a
// stdlib-external primitive.
package service

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/bnema/hdmiprobe/internal/domain/entity"
)

// ReportFingerprint content-addresses a finalized aggregate: blake2b-256 over
// its canonical JSON encoding, hex-encoded. Saving the same aggregate twice
// yields the same fingerprint, which history storage uses to deduplicate.
func ReportFingerprint(report entity.ResultAggregate) (string, error) {
	data, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
