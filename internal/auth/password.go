package auth

import "golang.org/x/crypto/bcrypt"

const PasswordCost = 10

// dummyHash is compared against when no user matches, so unknown emails and
// wrong passwords take the same time.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("miranda-timing-guard"), PasswordCost)

func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plain matches hash. A malformed hash is a mismatch.
func VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

func IsHashed(s string) bool {
	_, err := bcrypt.Cost([]byte(s))
	return err == nil
}
