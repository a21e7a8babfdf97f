package hook

import "errors"

var (
	// ErrNoRules means start was refused because the registry holds neither
	// mappings nor block rules.
	ErrNoRules = errors.New("no mappings or blocked keys configured")

	// ErrInstall wraps the OS error when the keyboard hook could not be
	// installed, commonly due to insufficient privilege.
	ErrInstall = errors.New("failed to install keyboard hook")

	// ErrAlreadyRunning means start was called while a hook is live.
	ErrAlreadyRunning = errors.New("keyboard hook already running")
)
