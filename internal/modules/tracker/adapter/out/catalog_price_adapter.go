package out

import (
	"context"
	"errors"

	catalogin "tally/internal/modules/catalog/port/in"
	trackerout "tally/internal/modules/tracker/port/out"
	apperrors "tally/internal/platform/errors"
)

// CatalogPriceAdapter narrows the catalog usecase to the tracker's
// PriceSource port.
type CatalogPriceAdapter struct {
	catalog catalogin.Usecase
}

func NewCatalogPriceAdapter(catalog catalogin.Usecase) trackerout.PriceSource {
	return &CatalogPriceAdapter{catalog: catalog}
}

func (a *CatalogPriceAdapter) PriceOf(ctx context.Context, task string) (float64, bool, error) {
	entry, err := a.catalog.Get(ctx, task)
	if errors.Is(err, apperrors.ErrTaskNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return entry.Price, true, nil
}
