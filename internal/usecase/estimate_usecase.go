package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"joalheria_xpto/internal/domain/entities"
	"joalheria_xpto/internal/pricing"
	"joalheria_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound  = errors.New("estimate not found")
	ErrInvalidEstimateID = errors.New("invalid estimate id")
	ErrInvalidGoldWeight = errors.New("invalid net gold weight")
	ErrInvalidStoneEntry = errors.New("invalid stone entry")
)

// IEstimateUseCase exposes the calculator and the estimate history.
//
// Quote prices raw inputs without persisting; SaveEstimate finalizes a
// calculation by persisting only the raw inputs. Every read path (List, Get)
// recomputes breakdowns live against the current settings: a record's
// displayed total moves with the gold market.
type IEstimateUseCase interface {
	Quote(ctx context.Context, in entities.PricingInput) (entities.PriceBreakdown, error)
	SaveEstimate(ctx context.Context, rec entities.EstimateRecord) (entities.PricedEstimate, error)
	ListEstimates(ctx context.Context, f entities.EstimateFilter) ([]entities.PricedEstimate, error)
	GetEstimate(ctx context.Context, id string) (entities.PricedEstimate, error)
	DeleteEstimate(ctx context.Context, id string) error
}

type EstimateUseCase struct {
	repo         interfaces.IEstimateRepository
	settingsRepo interfaces.ISettingsRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, settingsRepo interfaces.ISettingsRepository) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, settingsRepo: settingsRepo}
}

func (u *EstimateUseCase) Quote(ctx context.Context, in entities.PricingInput) (entities.PriceBreakdown, error) {
	in, err := normalizeInput(in)
	if err != nil {
		return entities.PriceBreakdown{}, err
	}

	settings, _, err := u.settingsRepo.Load(ctx)
	if err != nil {
		return entities.PriceBreakdown{}, err
	}
	return pricing.ComputeBreakdown(settings, in), nil
}

func (u *EstimateUseCase) SaveEstimate(ctx context.Context, rec entities.EstimateRecord) (entities.PricedEstimate, error) {
	in, err := normalizeInput(rec.Input())
	if err != nil {
		return entities.PricedEstimate{}, err
	}
	rec.Purity = in.Purity
	rec.Stones = in.Stones
	rec.ProductName = strings.TrimSpace(rec.ProductName)
	rec.ProductImageURL = strings.TrimSpace(rec.ProductImageURL)

	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC()

	saved, err := u.repo.Save(ctx, rec)
	if err != nil {
		return entities.PricedEstimate{}, err
	}

	settings, _, err := u.settingsRepo.Load(ctx)
	if err != nil {
		return entities.PricedEstimate{}, err
	}
	return entities.PricedEstimate{
		Record:    saved,
		Breakdown: pricing.ComputeBreakdown(settings, saved.Input()),
	}, nil
}

func (u *EstimateUseCase) ListEstimates(ctx context.Context, f entities.EstimateFilter) ([]entities.PricedEstimate, error) {
	records, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	settings, _, err := u.settingsRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	priced := make([]entities.PricedEstimate, 0, len(records))
	for _, rec := range records {
		b := pricing.ComputeBreakdown(settings, rec.Input())
		// Price-range filtering can only happen here: totals are derived,
		// never stored.
		if f.MinTotal != nil && b.Total < *f.MinTotal {
			continue
		}
		if f.MaxTotal != nil && b.Total > *f.MaxTotal {
			continue
		}
		priced = append(priced, entities.PricedEstimate{Record: rec, Breakdown: b})
	}

	sortPriced(priced, f)
	return priced, nil
}

func (u *EstimateUseCase) GetEstimate(ctx context.Context, id string) (entities.PricedEstimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PricedEstimate{}, ErrInvalidEstimateID
	}

	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PricedEstimate{}, err
	}
	if rec.ID == "" {
		return entities.PricedEstimate{}, ErrEstimateNotFound
	}

	settings, _, err := u.settingsRepo.Load(ctx)
	if err != nil {
		return entities.PricedEstimate{}, err
	}
	return entities.PricedEstimate{
		Record:    rec,
		Breakdown: pricing.ComputeBreakdown(settings, rec.Input()),
	}, nil
}

func (u *EstimateUseCase) DeleteEstimate(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEstimateID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEstimateNotFound
	}
	return nil
}

// normalizeInput trims references and normalizes quantities. Negative
// weights are rejected at the API boundary even though the calculator itself
// tolerates them; dangling stone references are allowed by design.
func normalizeInput(in entities.PricingInput) (entities.PricingInput, error) {
	in.Purity = strings.TrimSpace(in.Purity)
	if in.NetGoldWeight < 0 {
		return entities.PricingInput{}, ErrInvalidGoldWeight
	}
	stones := make([]entities.StoneEntry, len(in.Stones))
	for i, st := range in.Stones {
		st.StoneTypeID = strings.TrimSpace(st.StoneTypeID)
		st.Name = strings.TrimSpace(st.Name)
		if st.Weight < 0 {
			return entities.PricingInput{}, ErrInvalidStoneEntry
		}
		if st.Quantity < 1 {
			st.Quantity = 1
		}
		stones[i] = st
	}
	in.Stones = stones
	return in, nil
}

func sortPriced(priced []entities.PricedEstimate, f entities.EstimateFilter) {
	less := func(a, b entities.PricedEstimate) bool {
		switch f.SortBy {
		case entities.SortByName:
			return strings.ToLower(a.Record.ProductName) < strings.ToLower(b.Record.ProductName)
		case entities.SortByGoldWeight:
			return a.Record.NetGoldWeight < b.Record.NetGoldWeight
		case entities.SortByTotal:
			return a.Breakdown.Total < b.Breakdown.Total
		default:
			return a.Record.CreatedAt.Before(b.Record.CreatedAt)
		}
	}
	sort.SliceStable(priced, func(i, j int) bool {
		if f.SortDesc {
			return less(priced[j], priced[i])
		}
		return less(priced[i], priced[j])
	})
}
