package dip

import "strconv"

// Storage keys.
const (
	KeyUsername   = "username"
	KeyPassword   = "password"
	KeyRememberMe = "remember"
)

// UserCredentials stores a username and password.
type UserCredentials struct {
	storage KeyValueStorage
}

// NewUserCredentials returns UserCredentials backed by storage, or by a
// KeychainStorage when storage is nil.
func NewUserCredentials(storage KeyValueStorage) UserCredentials {
	if storage == nil {
		storage = KeychainStorage{}
	}
	return UserCredentials{storage: storage}
}

// StoreCredentials writes both values to the storage.
func (c UserCredentials) StoreCredentials(username, password string) {
	c.storage.Set(KeyUsername, username)
	c.storage.Set(KeyPassword, password)
}

// Username returns the stored username, if any.
func (c UserCredentials) Username() (string, bool) {
	return c.storage.String(KeyUsername)
}

// Clear removes everything from the underlying storage.
func (c UserCredentials) Clear() {
	c.storage.RemoveAll()
}

// UserSettings exposes user preferences.
type UserSettings struct {
	storage KeyValueStorage
}

// NewUserSettings returns UserSettings backed by storage, or by a
// UserDefaultsStorage when storage is nil.
func NewUserSettings(storage KeyValueStorage) UserSettings {
	if storage == nil {
		storage = UserDefaultsStorage{}
	}
	return UserSettings{storage: storage}
}

// RememberMe reports the "remember me" preference, false when unset.
func (s UserSettings) RememberMe() bool {
	v, ok := s.storage.Bool(KeyRememberMe)
	return ok && v
}

// SetRememberMe stores the "remember me" preference.
func (s UserSettings) SetRememberMe(v bool) {
	s.storage.Set(KeyRememberMe, strconv.FormatBool(v))
}
