package proof

import (
	"crypto/ecdsa"
	"crypto/rand"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/crypto/ecies"
)

// Encrypt seals a payload for the validator's key using ECIES over secp256k1.
func Encrypt(validatorPub *ecdsa.PublicKey, payload []byte) ([]byte, error) {
	ct, err := ecies.Encrypt(rand.Reader, ecies.ImportECDSAPublic(validatorPub), payload, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("encrypt proof payload: %w", err)
	}
	return ct, nil
}

// Decrypt opens an ECIES-sealed payload. Any tampering with the ciphertext
// fails authentication here.
func Decrypt(validatorKey *ecdsa.PrivateKey, ciphertext []byte) ([]byte, error) {
	pt, err := ecies.ImportECDSA(validatorKey).Decrypt(ciphertext, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("decrypt proof payload: %w", err)
	}
	return pt, nil
}

// Sign produces the researcher's signature over the keccak256 digest of the
// plaintext payload.
func Sign(researcherKey *ecdsa.PrivateKey, payload []byte) ([]byte, error) {
	sig, err := crypto.Sign(Hash(payload), researcherKey)
	if err != nil {
		return nil, fmt.Errorf("sign proof payload: %w", err)
	}
	return sig, nil
}

// Verify checks that the signature over the payload recovers the researcher's
// address.
func Verify(researcher *ecdsa.PublicKey, payload, sig []byte) error {
	if len(sig) != 65 {
		return fmt.Errorf("proof signature has unexpected length %d", len(sig))
	}
	recovered, err := crypto.SigToPub(Hash(payload), sig)
	if err != nil {
		return fmt.Errorf("recover proof signer: %w", err)
	}
	if crypto.PubkeyToAddress(*recovered) != crypto.PubkeyToAddress(*researcher) {
		return fmt.Errorf("proof signature does not match researcher key")
	}
	return nil
}

// Hash returns the keccak256 digest of a payload. Stored alongside the
// validation record so the exact evidence that was replayed is auditable.
func Hash(payload []byte) []byte {
	return crypto.Keccak256(payload)
}
