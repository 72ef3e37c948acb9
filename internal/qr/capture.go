package qr

import (
	"context"
	"sync"
)

// Guard wraps a Capturer and enforces the single-capture contract on
// behalf of implementations that do not track it themselves: starting a
// new capture stops any running one before the device is acquired again.
type Guard struct {
	Capturer Capturer

	mu      sync.Mutex
	running bool
}

func NewGuard(c Capturer) *Guard {
	return &Guard{Capturer: c}
}

func (g *Guard) Start(ctx context.Context, target Target) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running {
		g.Capturer.Stop()
		g.running = false
	}
	if err := g.Capturer.Start(ctx, target); err != nil {
		return err
	}
	g.running = true
	return nil
}

func (g *Guard) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.running {
		return
	}
	g.running = false
	g.Capturer.Stop()
}

func (g *Guard) OnDecode(fn func(target Target, token string)) {
	g.Capturer.OnDecode(fn)
}
