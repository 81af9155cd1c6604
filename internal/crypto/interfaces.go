package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/key_manager_mock.go -package=mock

// KeyManager отвечает за всю клиентскую криптографию документов.
// Он не знает ничего о сети, хранилище узлов или пользователях.
// Его единственная задача — генерировать и защищать ключи и контент.
//
// Схема работы:
//
//	DocKey            = GenerateDocumentKey()                  (Шаг 1)
//	Wrapped           = Wrap(DocKey, granteeEncPub)            (Шаг 2)
//	CipherText, Nonce = EncryptContent(plaintext, DocKey)      (Шаг 3)
//	DocKey            = Unwrap(Wrapped, selfEncPub, selfPriv)  (чтение)
type KeyManager interface {
	// GenerateDocumentKey generates a random 256-bit symmetric document
	// key. The key exists only in client memory; only wraps of it are
	// ever persisted.
	GenerateDocumentKey() (DocumentKey, error)

	// Wrap encrypts key under the recipient's X25519 public key using an
	// anonymous sealed box. The output is safe to store on an untrusted
	// node store — without the recipient's private key it is random
	// noise. Returns ErrWrapFailed if the recipient key is malformed.
	Wrap(key DocumentKey, recipientEncPub []byte) ([]byte, error)

	// Unwrap opens a sealed box produced by Wrap using the recipient's
	// X25519 keypair. Every failure mode (wrong keypair, corrupted
	// ciphertext, truncated blob) returns the same ErrUnwrapFailed so
	// an attacker probing with stored bytes learns nothing.
	Unwrap(wrapped, selfEncPub, selfEncPriv []byte) (DocumentKey, error)

	// EncryptContent encrypts plaintext with key using AES-256-GCM under
	// a fresh random nonce. Ciphertext and nonce are returned separately
	// because document records persist the nonce as its own field.
	EncryptContent(plaintext []byte, key DocumentKey) (ciphertext, nonce []byte, err error)

	// DecryptContent decrypts and authenticates ciphertext. On any
	// tampering or key mismatch it returns ErrAuthenticationFailed and
	// no data — partially decrypted content is never exposed.
	DecryptContent(ciphertext, nonce []byte, key DocumentKey) ([]byte, error)
}
