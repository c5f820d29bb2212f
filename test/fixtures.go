package test

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync/atomic"
	"time"

	"github.com/AmirSoleimani/VoucherCodeGenerator/vcgen"
	"github.com/google/uuid"

	"github.com/restopos/pos-e2e/config"
	"github.com/restopos/pos-e2e/internal/logger"
	"github.com/restopos/pos-e2e/pkg/types"
)

// TestPassword is the password every generated test user registers with
const TestPassword = config.DefaultTestPassword

// NonExistentID is a well-formed ID that no resource ever has
const NonExistentID = "00000000-0000-0000-0000-000000000000"

// Every generator draws from a random base chosen per process plus a shared counter, so values
// never repeat within one run and rarely collide with an earlier run against the same API.
var (
	sequence    atomic.Uint64
	processSeed = rand.Uint64()
)

func next(modulus uint64) uint64 {
	return (processSeed + sequence.Add(1)) % modulus
}

// UniqueEmail returns test_<unix-nano>_<rand>@test.com
func UniqueEmail() string {
	return fmt.Sprintf("test_%d_%d@test.com", time.Now().UnixNano(), next(1_000_000))
}

// UniquePhone returns an 11-digit Sao Paulo mobile number, 119 followed by eight digits
func UniquePhone() string {
	return fmt.Sprintf("119%08d", next(100_000_000))
}

// UniqueCPF returns an 11-digit CPF with valid check digits
func UniqueCPF() string {
	for {
		base := fmt.Sprintf("%09d", next(1_000_000_000))
		digits, _ := types.CPFCheckDigits(base)
		// all-equal numbers such as 11111111111 pass the checksum but are invalid
		if cpf := base + digits; types.ValidateCPF(cpf) == nil {
			return cpf
		}
	}
}

// UniqueCNPJ returns a 14-digit CNPJ of a head office (branch 0001) with valid check digits
func UniqueCNPJ() string {
	for {
		base := fmt.Sprintf("%08d0001", next(100_000_000))
		digits, _ := types.CNPJCheckDigits(base)
		if cnpj := base + digits; types.ValidateCNPJ(cnpj) == nil {
			return cnpj
		}
	}
}

// UniqueSKU returns SKU-<unix-nano>-<code>
func UniqueSKU() string {
	return fmt.Sprintf("SKU-%d-%s", time.Now().UnixNano(), voucher(4))
}

// UniqueCouponCode returns an upper-case code such as E2E7K2M9QXA
func UniqueCouponCode() string {
	return "E2E" + voucher(8)
}

// UniqueTableNumber returns a positive table number
func UniqueTableNumber() int {
	return int(next(999_999)) + 1
}

// UniqueName returns "<prefix> <unix-nano>"
func UniqueName(prefix string) string {
	return fmt.Sprintf("%s %d", prefix, time.Now().UnixNano())
}

// voucher returns n upper-case alphanumerics. vcgen is the source; a UUID prefix stands in
// when it fails.
func voucher(n int) string {
	g := vcgen.New(&vcgen.Generator{
		Count:   1,
		Pattern: strings.Repeat("#", n),
	})
	codes, err := g.Run()
	if err != nil || codes == nil || len(*codes) == 0 {
		if err != nil {
			logger.Debugf("voucher generator failed, using uuid: %v", err)
		}
		return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:n])
	}
	return strings.ToUpper((*codes)[0])
}
