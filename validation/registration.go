// Package validation holds the stateless rule checks applied to registration
// requests before they touch the database.
package validation

const (
	usernameRule = "username must be 3-20 characters and contain only letters, digits, and underscores"
	passwordRule = "password must be at least 8 characters and contain an uppercase letter, a lowercase letter, and a digit"
)

// ValidateRegistration checks the candidate username and password against the
// registration rules. Every rule is checked; violations are returned in order
// and an empty slice means the input is valid.
func ValidateRegistration(username, password string) []string {
	var violations []string

	if !validUsername(username) {
		violations = append(violations, usernameRule)
	}
	if !validPassword(password) {
		violations = append(violations, passwordRule)
	}
	return violations
}

func validUsername(username string) bool {
	if len(username) < 3 || len(username) > 20 {
		return false
	}
	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return true
}

func validPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	return upper && lower && digit
}
