package auth

import (
	"crypto/rand"
	"math/big"
	"strconv"

	"authcore/internal/domain/service"
	"authcore/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

const (
	otpMin      = 100000
	otpMax      = 999999
	otpHashCost = 10
)

// otpCodeService draws six-digit codes uniformly from [100000, 999999] and stores them as bcrypt hashes.
type otpCodeService struct {
	cost int
}

// NewOtpCodeService creates the one-time code generator.
func NewOtpCodeService() service.OtpCodeService {
	return &otpCodeService{cost: otpHashCost}
}

// Generate returns a six-digit code from crypto/rand.
func (s *otpCodeService) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpMax-otpMin+1))
	if err != nil {
		return "", errors.Wrap(err, "failed to generate otp")
	}

	return strconv.FormatInt(n.Int64()+otpMin, 10), nil
}

// Hash returns a salted bcrypt hash of the code.
func (s *otpCodeService) Hash(code string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(code), s.cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash otp")
	}

	return string(hash), nil
}

// Compare reports whether code matches hash.
func (s *otpCodeService) Compare(code, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}
