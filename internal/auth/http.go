package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"ShadeShop/internal/user"
	"ShadeShop/pkg/kit"
)

const maxBodyBytes = 1 << 20

type Server struct {
	Log      *zap.Logger
	Users    user.Registry
	Throttle *Throttle
	Tokens   *TokenRegistry
}

type loginReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	AccessToken string `json:"accessToken"`
}

func (s *Server) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req loginReq
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		kit.WriteError(w, http.StatusBadRequest, "Incorrectly formatted request", "POST body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	identity, err := NewLoginIdentity(req.Username, req.Email)
	if err != nil || req.Password == "" {
		kit.WriteError(w, http.StatusBadRequest, "Incorrectly formatted request", "POST body")
		return
	}

	u, found, err := identity.Resolve(r.Context(), s.Users)
	if err != nil {
		s.Log.Error("identity lookup failed", zap.Error(err))
		kit.WriteError(w, http.StatusInternalServerError, "Server error", "")
		return
	}
	// A supplied identity that matches no user never touches the throttle;
	// there is no counter to key.
	if !found {
		s.unauthorized(w, identity)
		return
	}

	key := u.Username

	// Blocked wins over valid credentials.
	if s.Throttle.Blocked(key) {
		s.unauthorized(w, identity)
		return
	}

	if u.Password != req.Password {
		s.Throttle.RecordFailure(key)
		s.unauthorized(w, identity)
		return
	}

	s.Throttle.RecordSuccess(key)

	tok, err := s.Tokens.IssueOrRefresh(key)
	if err != nil {
		s.Log.Error("token issue failed", zap.Error(err))
		kit.WriteError(w, http.StatusInternalServerError, "Server error", "")
		return
	}

	kit.WriteJSON(w, http.StatusOK, loginResp{AccessToken: tok.Token})
}

func (s *Server) unauthorized(w http.ResponseWriter, identity LoginIdentity) {
	kit.WriteError(w, http.StatusUnauthorized,
		"Invalid "+identity.Label()+" or password", "POST body")
}
