package password

import "golang.org/x/crypto/bcrypt"

// Cost is the bcrypt work factor applied to every stored credential.
const Cost = 10

// Hash replaces a plaintext password with a salted one-way bcrypt hash.
func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare reports whether attempt matches the stored hash. bcrypt performs
// the comparison in constant time.
func Compare(hashed, attempt string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(attempt)) == nil
}
