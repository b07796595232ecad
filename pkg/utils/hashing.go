package utils

import (
	"math/rand"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	return string(bytes), err
}

func ComparePasswords(hashedPassword string, plainPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
}

const orderCodeAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateOrderCode builds a globally unique external order code:
// millisecond timestamp prefix plus a 9-character base36 suffix.
// Collision probability is treated as negligible; there is no
// retry-on-collision.
func GenerateOrderCode() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = orderCodeAlphabet[rand.Intn(len(orderCodeAlphabet))]
	}
	return "ORD_" + strconv.FormatInt(time.Now().UnixMilli(), 10) + "_" + string(suffix)
}
