package types

import (
	"fmt"
	"strings"

	"github.com/badoux/checkmail"
)

// Document lengths, digits only
const (
	CPFLength  = 11
	CNPJLength = 14
)

var cnpjWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

// OnlyDigits strips every non-digit rune, so "123.456.789-09" becomes "12345678909"
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateEmail checks the address format
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if err := checkmail.ValidateFormat(email); err != nil {
		return fmt.Errorf("invalid email format: %s", email)
	}
	return nil
}

// CPFCheckDigits returns the two verification digits for the first nine digits of a CPF
func CPFCheckDigits(base string) (string, error) {
	if len(base) != CPFLength-2 || OnlyDigits(base) != base {
		return "", fmt.Errorf("cpf base must be %d digits", CPFLength-2)
	}
	d1 := mod11Digit(base, 10)
	d2 := mod11Digit(base+string(rune('0'+d1)), 11)
	return fmt.Sprintf("%d%d", d1, d2), nil
}

// ValidateCPF accepts a formatted or bare CPF and verifies its check digits
func ValidateCPF(cpf string) error {
	digits := OnlyDigits(cpf)
	if len(digits) != CPFLength {
		return fmt.Errorf("cpf must have %d digits", CPFLength)
	}
	if repeated(digits) {
		return fmt.Errorf("invalid cpf: %s", cpf)
	}
	check, _ := CPFCheckDigits(digits[:CPFLength-2])
	if digits[CPFLength-2:] != check {
		return fmt.Errorf("invalid cpf: %s", cpf)
	}
	return nil
}

// CNPJCheckDigits returns the two verification digits for the first twelve digits of a CNPJ
func CNPJCheckDigits(base string) (string, error) {
	if len(base) != CNPJLength-2 || OnlyDigits(base) != base {
		return "", fmt.Errorf("cnpj base must be %d digits", CNPJLength-2)
	}
	d1 := weightedDigit(base, cnpjWeights[1:])
	d2 := weightedDigit(base+string(rune('0'+d1)), cnpjWeights)
	return fmt.Sprintf("%d%d", d1, d2), nil
}

// ValidateCNPJ accepts a formatted or bare CNPJ and verifies its check digits
func ValidateCNPJ(cnpj string) error {
	digits := OnlyDigits(cnpj)
	if len(digits) != CNPJLength {
		return fmt.Errorf("cnpj must have %d digits", CNPJLength)
	}
	if repeated(digits) {
		return fmt.Errorf("invalid cnpj: %s", cnpj)
	}
	check, _ := CNPJCheckDigits(digits[:CNPJLength-2])
	if digits[CNPJLength-2:] != check {
		return fmt.Errorf("invalid cnpj: %s", cnpj)
	}
	return nil
}

// mod11Digit weighs digits from firstWeight down to 2
func mod11Digit(digits string, firstWeight int) int {
	sum := 0
	for i, r := range digits {
		sum += int(r-'0') * (firstWeight - i)
	}
	return checkDigit(sum)
}

func weightedDigit(digits string, weights []int) int {
	sum := 0
	for i, r := range digits {
		sum += int(r-'0') * weights[i]
	}
	return checkDigit(sum)
}

func checkDigit(sum int) int {
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

func repeated(digits string) bool {
	return strings.Count(digits, digits[:1]) == len(digits)
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}
