package otp_test

import (
	"testing"
	"time"

	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/core/domain/model/otp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func testPhone(t *testing.T) kernel.Phone {
	t.Helper()
	p, err := kernel.NewPhone("5551234567")
	require.NoError(t, err)
	return p
}

func TestNewOTP(t *testing.T) {
	t.Run("issues a six digit code valid for five minutes", func(t *testing.T) {
		o, err := otp.NewOTP(testPhone(t), testNow)

		require.NoError(t, err)
		assert.Len(t, o.Code(), 6)
		assert.Equal(t, testNow.Add(5*time.Minute), o.ExpiresAt())
	})
}

func TestOTP_Verify(t *testing.T) {
	o, err := otp.NewOTP(testPhone(t), testNow)
	require.NoError(t, err)

	t.Run("accepts the issued code before expiry", func(t *testing.T) {
		require.NoError(t, o.Verify(o.Code(), testNow.Add(time.Minute)))
	})

	t.Run("rejects a wrong code", func(t *testing.T) {
		require.ErrorIs(t, o.Verify("000000x", testNow), otp.ErrCodeMismatch)
	})

	t.Run("rejects an expired code", func(t *testing.T) {
		require.ErrorIs(t, o.Verify(o.Code(), testNow.Add(6*time.Minute)), otp.ErrCodeExpired)
	})
}

func TestVerificationToken(t *testing.T) {
	phone := testPhone(t)

	t.Run("deterministic for the same phone and secret", func(t *testing.T) {
		assert.Equal(t,
			otp.VerificationToken(phone, "secret"),
			otp.VerificationToken(phone, "secret"))
	})

	t.Run("differs by secret and by phone", func(t *testing.T) {
		other, err := kernel.NewPhone("5557654321")
		require.NoError(t, err)

		assert.NotEqual(t,
			otp.VerificationToken(phone, "secret"),
			otp.VerificationToken(phone, "other"))
		assert.NotEqual(t,
			otp.VerificationToken(phone, "secret"),
			otp.VerificationToken(other, "secret"))
	})

	t.Run("hex encoded sha256", func(t *testing.T) {
		assert.Len(t, otp.VerificationToken(phone, "secret"), 64)
	})
}
