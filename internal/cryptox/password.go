// Package cryptox hashes and verifies account passwords with argon2id.
//
// Hashes are stored in the PHC-like form
//
//	argon2id$v=19$m=65536,t=1,p=4$<salt b64>$<key b64>
//
// so the parameters travel with the hash and can be raised later without
// invalidating existing accounts.
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/teachloop/internal/common"
	"golang.org/x/crypto/argon2"
)

// Params are the argon2id cost parameters.
type Params struct {
	Memory  uint32
	Time    uint32
	Threads uint8
	SaltLen int
	KeyLen  uint32
}

// DefaultParams match the values the project has always derived keys with.
var DefaultParams = Params{Memory: 64 * 1024, Time: 1, Threads: 4, SaltLen: 16, KeyLen: 32}

var ErrMalformedHash = errors.New("malformed password hash")

var b64 = base64.RawStdEncoding

// HashPassword derives an argon2id key for password under a fresh salt.
func HashPassword(password []byte, p Params) string {
	salt := common.GenerateRandByteArray(p.SaltLen)
	key := argon2.IDKey(password, salt, p.Time, p.Memory, p.Threads, p.KeyLen)

	return fmt.Sprintf("argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.Memory, p.Time, p.Threads, b64.EncodeToString(salt), b64.EncodeToString(key))
}

// VerifyPassword reports whether password matches encoded. Comparison is
// constant-time.
func VerifyPassword(encoded string, password []byte) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 5 || parts[0] != "argon2id" {
		return false, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[1], "v=%d", &version); err != nil || version != argon2.Version {
		return false, ErrMalformedHash
	}

	var p Params
	if _, err := fmt.Sscanf(parts[2], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Threads); err != nil {
		return false, ErrMalformedHash
	}

	salt, err := b64.DecodeString(parts[3])
	if err != nil {
		return false, ErrMalformedHash
	}
	want, err := b64.DecodeString(parts[4])
	if err != nil {
		return false, ErrMalformedHash
	}

	got := argon2.IDKey(password, salt, p.Time, p.Memory, p.Threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
