package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
)

// Password encoding variants. Which one a deployment accepts depends on how
// its frontend was built, so the variant is configuration rather than a
// compile-time choice.
const (
	VariantPlain     = "plain"
	VariantEncrypted = "encrypted"
)

// DefaultPublicKeyPEM is the password-encryption key shipped with stock
// deployments. Deployments with a rotated key override it in configuration.
const DefaultPublicKeyPEM = `-----BEGIN PUBLIC KEY-----
MIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8AMIIBCgKCAQEArq9XTUSeYr2+N1h3Afl/z8Dse/2yD0ZGrKwx+EEEcdsBLca9Ynmx3nIB5obmLlSfmskLpBo0UACBmB5rEjBp2Q2f3AG3Hjd4B+gNCG6BDaawuDlgANIhGnaTLrIqWrrcm4EMzJOnAOI1fgzJRsOOUEfaS318Eq9OVO3apEyCCt0lOQK6PuksduOjVxtltDav+guVAA068NrPYmRNabVKRNLJpL8w4D44sfth5RvZ3q9t+6RTArpEtc5sh5ChzvqPOzKGMXW83C95TxmXqpbK6olN4RevSfVjEAgCydH6HN6OhtOQEcnrU97r9H0iZOWwbw3pVrZiUkuRD1R56Wzs2wIDAQAB
-----END PUBLIC KEY-----`

// PasswordEncoder turns the password the operator typed into the form the
// service expects on the wire.
type PasswordEncoder interface {
	Encode(password string) (string, error)
}

// NewEncoder builds the encoder for the configured variant. publicKeyPEM is
// only consulted for the encrypted variant; when blank, the stock key is used.
func NewEncoder(variant, publicKeyPEM string) (PasswordEncoder, error) {
	switch variant {
	case VariantPlain:
		return PlainEncoder{}, nil
	case VariantEncrypted:
		if publicKeyPEM == "" {
			publicKeyPEM = DefaultPublicKeyPEM
		}
		return NewRSAEncoder(publicKeyPEM)
	default:
		return nil, fmt.Errorf("unknown auth variant %q (valid: %s, %s)", variant, VariantPlain, VariantEncrypted)
	}
}

// PlainEncoder passes the password through unchanged.
type PlainEncoder struct{}

// Encode returns the password as typed.
func (PlainEncoder) Encode(password string) (string, error) {
	return password, nil
}

// RSAEncoder encrypts passwords the way the service frontend does: the
// password is base64-encoded, encrypted with RSA PKCS #1 v1.5 under the
// service public key, and the ciphertext base64-encoded again.
type RSAEncoder struct {
	key *rsa.PublicKey
}

// NewRSAEncoder parses a PEM-encoded RSA public key.
func NewRSAEncoder(publicKeyPEM string) (*RSAEncoder, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("auth public key is not valid PEM")
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse auth public key: %w", err)
	}

	key, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("auth public key is %T, want RSA", parsed)
	}
	return &RSAEncoder{key: key}, nil
}

// Encode produces the doubly base64-wrapped ciphertext.
func (e *RSAEncoder) Encode(password string) (string, error) {
	inner := base64.StdEncoding.EncodeToString([]byte(password))

	ciphertext, err := rsa.EncryptPKCS1v15(rand.Reader, e.key, []byte(inner))
	if err != nil {
		return "", fmt.Errorf("encrypt password: %w", err)
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}
