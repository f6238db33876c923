package game

import "errors"

// ErrSessionCompleted reports an advance against a session that already
// reached a terminal status. Completed sessions are rejected, not
// restarted; callers start a fresh session instead.
var ErrSessionCompleted = errors.New("session already completed")
