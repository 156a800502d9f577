package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// accountNumberPrefix is the fixed country-code prefix on generated account numbers.
const accountNumberPrefix = "DE"

// GenerateAccountNumber builds an account number of the form
// DE-YYYY-xxxx-xxxx, where the two trailing groups come from the first eight
// hex characters of a random UUID. Uniqueness is probabilistic; the unique
// column constraint on accounts.account_number is the backstop.
func GenerateAccountNumber() string {
	idPart := strings.ReplaceAll(uuid.NewString(), "-", "")
	year := time.Now().Format("2006")
	return fmt.Sprintf("%s-%s-%s-%s", accountNumberPrefix, year, idPart[:4], idPart[4:8])
}
