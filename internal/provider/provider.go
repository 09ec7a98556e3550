// Package provider supplies the engine with named criterion datasets for
// candidate sites. Providers stand in for the external data collaborators
// (statistical yearbooks, resource atlases, grid operators); the engine
// treats them as opaque sources and propagates their failures unchanged.
package provider

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/gridpoint-labs/sitescout/internal/model"
)

// ErrUnknownSite reports that a source has no dataset for the requested
// site. Callers surface it unchanged; the engine never substitutes
// estimated data.
var ErrUnknownSite = eris.New("provider: no dataset for site")

// DataSource supplies the three criterion datasets for a site. The context
// is honored by sources that perform I/O; the static source ignores it.
type DataSource interface {
	Economic(ctx context.Context, loc model.Location) (model.EconomicData, error)
	Environmental(ctx context.Context, loc model.Location) (model.EnvironmentalData, error)
	Energy(ctx context.Context, loc model.Location) (model.EnergyData, error)
}
