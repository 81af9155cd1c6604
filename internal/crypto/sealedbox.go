package crypto

import (
	"crypto/rand"

	"golang.org/x/crypto/nacl/box"
)

// SealToPublic encrypts an arbitrary message to the holder of the given
// X25519 public key using an anonymous sealed box. Used for small
// control payloads (share notifications) that must be readable by
// exactly one identity; document content itself always goes through
// the symmetric [KeyManager] path.
func SealToPublic(msg, recipientEncPub []byte) ([]byte, error) {
	if len(recipientEncPub) != 32 {
		return nil, ErrWrapFailed
	}

	var pub [32]byte
	copy(pub[:], recipientEncPub)

	sealed, err := box.SealAnonymous(nil, msg, &pub, rand.Reader)
	if err != nil {
		return nil, ErrWrapFailed
	}
	return sealed, nil
}

// OpenFromPublic opens a sealed box produced by SealToPublic. Failures
// collapse into ErrUnwrapFailed, same as key unwrapping.
func OpenFromPublic(sealed, selfEncPub, selfEncPriv []byte) ([]byte, error) {
	if len(selfEncPub) != 32 || len(selfEncPriv) != 32 {
		return nil, ErrNoKeyMaterial
	}

	var pub, priv [32]byte
	copy(pub[:], selfEncPub)
	copy(priv[:], selfEncPriv)

	msg, ok := box.OpenAnonymous(nil, sealed, &pub, &priv)
	if !ok {
		return nil, ErrUnwrapFailed
	}
	return msg, nil
}
