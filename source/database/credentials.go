package database

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

func HashPassword(password string) (string, error) {
	bytes, e := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if e != nil {
		return "", errors.Wrap(e, "bcrypt")
	}
	return string(bytes), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// DeriveKey stretches a password into a 32-byte key, returned in hex.
func DeriveKey(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), 65536, 32, sha256.New)
	return hex.EncodeToString(key)
}
