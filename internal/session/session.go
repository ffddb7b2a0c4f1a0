// Package session keeps per-browser UI state (theme, recent passwords) in an
// encrypted cookie so the server holds nothing between requests.
package session

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/vaultpass/passgen/internal/history"
)

// CookieName is the name of the cookie used to store the session.
const CookieName = "passgen"

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

var ErrInvalidKey = errors.New("invalid cookie key")

// State is the data stored in the cookie.
type State struct {
	Theme   string
	History history.History
}

type payload struct {
	Theme   string          `json:"theme"`
	Entries []history.Entry `json:"entries"`
}

// ToggleTheme returns the opposite theme. Anything unknown counts as dark.
func ToggleTheme(theme string) string {
	if theme == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Store encodes and decodes State with securecookie.
type Store struct {
	sc          *securecookie.SecureCookie
	historySize int
	secure      bool
	maxAge      time.Duration
}

// NewStore creates a Store from hex-encoded keys. Empty keys are replaced
// by random ones, which invalidates existing cookies on restart.
func NewStore(hashKeyHex, blockKeyHex string, historySize int, secure bool) (*Store, error) {
	hashKey, err := decodeKey(hashKeyHex, 32, 64)
	if err != nil {
		return nil, fmt.Errorf("hash key: %w", err)
	}
	blockKey, err := decodeKey(blockKeyHex, 16, 24, 32)
	if err != nil {
		return nil, fmt.Errorf("block key: %w", err)
	}
	if hashKeyHex == "" || blockKeyHex == "" {
		slog.Warn("cookie keys not configured, history will not survive a restart")
	}

	sc := securecookie.New(hashKey, blockKey)
	sc.SetSerializer(securecookie.JSONEncoder{})

	return &Store{
		sc:          sc,
		historySize: historySize,
		secure:      secure,
		maxAge:      24 * time.Hour,
	}, nil
}

// decodeKey accepts the sizes listed; the first one is used for random keys.
func decodeKey(s string, sizes ...int) ([]byte, error) {
	if s == "" {
		return securecookie.GenerateRandomKey(sizes[0]), nil
	}
	key, err := hex.DecodeString(s)
	if err != nil {
		return nil, ErrInvalidKey
	}
	if !slices.Contains(sizes, len(key)) {
		return nil, ErrInvalidKey
	}
	return key, nil
}

// Load reads State from the request. A missing or unreadable cookie yields
// a fresh state rather than an error.
func (s *Store) Load(r *http.Request) State {
	st := State{Theme: ThemeDark, History: history.New(s.historySize)}

	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return st
	}

	var p payload
	if err := s.sc.Decode(CookieName, cookie.Value, &p); err != nil {
		slog.Debug("discarding unreadable session cookie", "error", err)
		return st
	}

	if p.Theme == ThemeLight {
		st.Theme = ThemeLight
	}
	st.History = history.FromEntries(s.historySize, p.Entries)
	return st
}

// Save writes State to the response. Oldest history entries are dropped
// until the encoded cookie fits the browser size limit.
func (s *Store) Save(w http.ResponseWriter, st State) error {
	entries := st.History.Entries()
	var value string
	for {
		var err error
		value, err = s.sc.Encode(CookieName, payload{Theme: st.Theme, Entries: entries})
		if err == nil {
			break
		}
		if len(entries) == 0 {
			return err
		}
		entries = entries[:len(entries)-1]
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(s.maxAge.Seconds()),
		Secure:   s.secure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	return nil
}
