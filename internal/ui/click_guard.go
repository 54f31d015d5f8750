package ui

import (
	"time"

	"horde-in-town/internal/config"
)

// ClickGuard отсекает повторные клики чаще ClickCooldown.
type ClickGuard struct {
	last time.Time
}

// Allow возвращает true и запоминает момент, если с прошлого клика прошло достаточно времени.
func (g *ClickGuard) Allow(now time.Time) bool {
	if now.Sub(g.last) < config.ClickCooldown*time.Millisecond {
		return false
	}
	g.last = now
	return true
}
