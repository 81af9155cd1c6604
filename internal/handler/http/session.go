package http

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/internal/utils"
)

// maxChallengeSkew bounds how far a signed session challenge may drift
// from relay time before it is rejected as a replay.
const maxChallengeSkew = 5 * time.Minute

type sessionRequest struct {
	UserID     string `json:"userId"`
	SigningPub string `json:"signingPub"`
	IssuedAt   int64  `json:"issuedAt"`
	Signature  string `json:"signature"`
}

type sessionResponse struct {
	Token string `json:"token"`
}

// createSession verifies a signed challenge and issues a bearer token.
//
// The caller proves control of an Ed25519 key whose fingerprint is the
// claimed user ID. The relay trusts nothing else about the caller; the
// token only attributes writes, it grants no read authority over
// plaintext (there is none to grant).
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if req.UserID == "" || req.SigningPub == "" || req.Signature == "" {
		log.Warn().Msg("incomplete session request")
		http.Error(w, "incomplete session request", http.StatusBadRequest)
		return
	}

	signingPub, err := base64.RawURLEncoding.DecodeString(req.SigningPub)
	if err != nil {
		log.Err(err).Msg("malformed signing key")
		http.Error(w, "malformed signing key", http.StatusBadRequest)
		return
	}

	signature, err := base64.RawURLEncoding.DecodeString(req.Signature)
	if err != nil {
		log.Err(err).Msg("malformed signature")
		http.Error(w, "malformed signature", http.StatusBadRequest)
		return
	}

	// the user ID must be the fingerprint of the presented key, so a
	// session cannot be opened for someone else's identifier
	if crypto.Fingerprint(signingPub) != req.UserID {
		log.Warn().Str("user_id", req.UserID).Msg("signing key does not match claimed user id")
		http.Error(w, "signing key does not match user id", http.StatusUnauthorized)
		return
	}

	issued := time.Unix(req.IssuedAt, 0)
	if skew := time.Since(issued); skew > maxChallengeSkew || skew < -maxChallengeSkew {
		log.Warn().Str("user_id", req.UserID).Time("issued_at", issued).Msg("stale session challenge")
		http.Error(w, "stale session challenge", http.StatusUnauthorized)
		return
	}

	msg := store.SessionChallenge(req.UserID, req.IssuedAt)
	if !crypto.VerifySignature(signingPub, msg, signature) {
		log.Warn().Str("user_id", req.UserID).Msg("invalid session challenge signature")
		http.Error(w, "invalid signature", http.StatusUnauthorized)
		return
	}

	token, err := utils.GenerateJWTToken(h.app.TokenIssuer, req.UserID, h.app.TokenDuration, h.app.TokenSignKey)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Str("user_id", req.UserID).Msg("session opened")
	utils.WriteJSON(w, sessionResponse{Token: token.SignedString}, http.StatusOK)
}
