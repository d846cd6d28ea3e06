package trust

import (
	"context"

	"github.com/hongtianjun/cloudlight/internal/infrastructure/logging"
)

// Store is the narrow trust-store boundary the bootstrap installs through.
type Store interface {
	// AddTrustAnchor persists a root certificate for the given device and
	// returns the credential id it was stored under.
	AddTrustAnchor(ctx context.Context, deviceIndex int, cert []byte) (int64, error)
}

// Bootstrap performs the one-shot trust anchor installation for a device
// with no persisted configuration.
type Bootstrap struct {
	store  Store
	log    *logging.Logger
	anchor []byte
}

// NewBootstrap creates a Bootstrap installing the built-in cloud root CA.
func NewBootstrap(store Store, log *logging.Logger) *Bootstrap {
	return &Bootstrap{
		store:  store,
		log:    log.With("component", "trust"),
		anchor: DefaultAnchor(),
	}
}

// OnFactoryReset installs the root trust anchor for deviceIndex.
//
// It is invoked exactly once, only when no prior configuration exists for
// the device. Installation failure is logged but not fatal: cloud features
// degrade while the device stays operable, so no error is returned.
func (b *Bootstrap) OnFactoryReset(ctx context.Context, deviceIndex int) {
	credID, err := b.store.AddTrustAnchor(ctx, deviceIndex, b.anchor)
	if err != nil {
		b.log.Error("installing root trust anchor failed",
			"device_index", deviceIndex,
			"error", err,
		)
		return
	}

	b.log.Info("root trust anchor installed",
		"device_index", deviceIndex,
		"credential_id", credID,
	)
}
