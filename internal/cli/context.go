package cli

import (
	"wellspring/internal/prefs"
	"wellspring/internal/storage"
)

// Context is passed to every command by kong.
type Context struct {
	Store storage.Provider
	Prefs *prefs.Store
	Debug bool
}
