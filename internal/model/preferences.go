package model

import "github.com/vaultpass/passgen/internal/history"

// HistoryResponse lists the passwords generated in this browser session.
type HistoryResponse struct {
	Entries []history.Entry `json:"entries"`
}

// PreferencesResponse carries the UI preferences held in the session cookie.
type PreferencesResponse struct {
	Theme string `json:"theme"`
}
