package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// The session is persisted as two entries, mirroring the admin browser
// client's localStorage keys.
const (
	tokenFile = "adminToken"
	userFile  = "adminUser"
)

// SessionUser is the snapshot of the logged-in admin kept alongside the
// token.
type SessionUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Session struct {
	Token string
	User  *SessionUser
}

// Authenticated reports whether both halves of the session are present.
// Token and user are kept consistent: never one without the other.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.User != nil
}

// FileStore persists the session under a directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Restore loads the persisted session. Absent files, unparsable content,
// or the literal string "undefined" in either entry reset the session to
// anonymous; bootstrap never fails.
func (fs *FileStore) Restore() Session {
	tokenRaw, tokenErr := os.ReadFile(filepath.Join(fs.dir, tokenFile))
	userRaw, userErr := os.ReadFile(filepath.Join(fs.dir, userFile))
	if tokenErr != nil || userErr != nil {
		fs.Clear()
		return Session{}
	}

	token := strings.TrimSpace(string(tokenRaw))
	if token == "" || token == "undefined" {
		fs.Clear()
		return Session{}
	}

	if strings.TrimSpace(string(userRaw)) == "undefined" {
		fs.Clear()
		return Session{}
	}
	var user SessionUser
	if err := json.Unmarshal(userRaw, &user); err != nil || user.ID == "" {
		fs.Clear()
		return Session{}
	}

	return Session{Token: token, User: &user}
}

// Save persists the session, token first. A partial write shows up as
// corruption on the next Restore and resets to anonymous.
func (fs *FileStore) Save(s Session) error {
	if err := os.MkdirAll(fs.dir, 0o700); err != nil {
		return fmt.Errorf("client: session dir: %w", err)
	}

	if err := os.WriteFile(filepath.Join(fs.dir, tokenFile), []byte(s.Token), 0o600); err != nil {
		return fmt.Errorf("client: write token: %w", err)
	}

	data, err := json.Marshal(s.User)
	if err != nil {
		return fmt.Errorf("client: marshal user: %w", err)
	}
	if err := os.WriteFile(filepath.Join(fs.dir, userFile), data, 0o600); err != nil {
		return fmt.Errorf("client: write user: %w", err)
	}
	return nil
}

// Clear removes both entries. Missing files are fine.
func (fs *FileStore) Clear() {
	os.Remove(filepath.Join(fs.dir, tokenFile))
	os.Remove(filepath.Join(fs.dir, userFile))
}
