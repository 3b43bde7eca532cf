package service

import (
	"crypto/rand"
	"math/big"
)

const (
	passwordLength  = 12
	passwordCharset = "abcdefghjkmnpqrstuvwxyzABCDEFGHJKMNPQRSTUVWXYZ23456789"
)

// GeneratePassword membuat password acak untuk akun member baru.
// Karakter ambigu (0/O, 1/l/I) sengaja tidak dipakai.
func GeneratePassword() (string, error) {
	buf := make([]byte, passwordLength)
	max := big.NewInt(int64(len(passwordCharset)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = passwordCharset[n.Int64()]
	}
	return string(buf), nil
}
