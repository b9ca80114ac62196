package engine

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/sporelab/fungal-evolution/internal/application/common"
	"github.com/sporelab/fungal-evolution/internal/domain/content"
	"github.com/sporelab/fungal-evolution/internal/domain/shared"
)

// Autoclicker is an idle-play bot: it clicks the mushroom at a bounded rate
// and greedily buys the cheapest affordable upgrade after each click. The
// rate limiter keeps the bot from monopolizing the action stream.
type Autoclicker struct {
	engine      *Engine
	limiter     *rate.Limiter
	buyUpgrades bool
}

// NewAutoclicker creates a bot clicking at clicksPerSecond
func NewAutoclicker(e *Engine, clicksPerSecond float64, buyUpgrades bool) *Autoclicker {
	return &Autoclicker{
		engine:      e,
		limiter:     rate.NewLimiter(rate.Limit(clicksPerSecond), 1),
		buyUpgrades: buyUpgrades,
	}
}

// Run clicks until the context is cancelled
func (b *Autoclicker) Run(ctx context.Context) {
	logger := common.LoggerFromContext(ctx)

	for {
		if err := b.limiter.Wait(ctx); err != nil {
			return
		}
		b.engine.Click()

		if b.buyUpgrades {
			if err := b.buyCheapest(); err != nil {
				var insufficient *shared.InsufficientResourcesError
				if !errors.As(err, &insufficient) {
					logger.Log("WARN", fmt.Sprintf("bot purchase failed: %v", err), nil)
				}
			}
		}
	}
}

// buyCheapest purchases the upgrade with the lowest next-level price, if any
// is affordable
func (b *Autoclicker) buyCheapest() error {
	s := b.engine.CurrentState()

	var best *content.UpgradeConfig
	bestCost := 0.0
	for i := range content.Upgrades {
		cfg := &content.Upgrades[i]
		cost := content.UpgradeCost(cfg, s.UpgradeLevel(cfg.ID))
		if best == nil || cost < bestCost {
			best = cfg
			bestCost = cost
		}
	}
	if best == nil || s.Resource(shared.ResourceSpores) < bestCost {
		return nil
	}
	return b.engine.BuyUpgrade(best.ID)
}
