// Package security hashes and verifies user passwords with Argon2id.
package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/floordesk/floordesk-backend/pkg/config"
)

// ErrMalformedHash signals an encoded hash that does not follow the
// $argon2id$v=19$m=..,t=..,p=..$salt$key layout.
var ErrMalformedHash = errors.New("malformed argon2id hash")

const tempPasswordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// hashParams are the Argon2id cost settings baked into every encoded hash,
// so verification never depends on the current configuration.
type hashParams struct {
	memoryKB uint32
	passes   uint32
	threads  uint8
	saltLen  uint32
	keyLen   uint32
}

func costsFrom(cfg config.PasswordConfig) hashParams {
	return hashParams{
		memoryKB: uint32(clamp(cfg.ArgonMemoryKB, 8, 512*1024)),
		passes:   uint32(clamp(cfg.ArgonTime, 1, 10)),
		threads:  uint8(clamp(cfg.ArgonParallelism, 1, 255)),
		saltLen:  uint32(clamp(cfg.ArgonSaltLen, 8, 64)),
		keyLen:   uint32(clamp(cfg.ArgonKeyLen, 16, 64)),
	}
}

// HashPassword derives an Argon2id key from password under the configured
// costs and returns it in the standard encoded form.
func HashPassword(password string, cfg config.PasswordConfig) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}

	p := costsFrom(cfg)
	salt := make([]byte, p.saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("read salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, p.passes, p.memoryKB, p.threads, p.keyLen)

	return fmt.Sprintf("$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		p.memoryKB, p.passes, p.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

// VerifyPassword re-derives the key with the costs recorded in encoded and
// compares in constant time. A mismatch is (false, nil); only a hash that
// cannot be parsed yields an error.
func VerifyPassword(password, encoded string) (bool, error) {
	p, salt, key, err := parseHash(encoded)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(password), salt, p.passes, p.memoryKB, p.threads, p.keyLen)
	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

func parseHash(encoded string) (hashParams, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return hashParams{}, nil, nil, ErrMalformedHash
	}

	var p hashParams
	if n, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memoryKB, &p.passes, &p.threads); err != nil || n != 3 {
		return hashParams{}, nil, nil, ErrMalformedHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return hashParams{}, nil, nil, ErrMalformedHash
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return hashParams{}, nil, nil, ErrMalformedHash
	}

	p.saltLen = uint32(len(salt))
	p.keyLen = uint32(len(key))
	return p, salt, key, nil
}

// GenerateTempPassword draws length characters uniformly from an
// alphanumeric alphabet, for one-time credentials handed out on reset.
func GenerateTempPassword(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("length must be positive")
	}

	alphabetSize := big.NewInt(int64(len(tempPasswordAlphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("draw random index: %w", err)
		}
		out[i] = tempPasswordAlphabet[n.Int64()]
	}
	return string(out), nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
