package password

import "golang.org/x/crypto/bcrypt"

const hashCost = 12

// Hash returns the bcrypt hash of a plaintext password.
func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare reports whether plain matches the stored bcrypt hash.
func Compare(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
