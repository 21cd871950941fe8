package reporting

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type investigationLoader = dataloader.Loader[int64, *domain.Investigation]

// newInvestigationLoader batches investigation lookups by case id into
// ListByCaseIDs calls of at most maxBatch keys. A case without an
// investigation resolves to nil.
func newInvestigationLoader(repo investigationRepo) *investigationLoader {
	batchFn := func(ctx context.Context, keys []int64) []*dataloader.Result[*domain.Investigation] {
		results := make([]*dataloader.Result[*domain.Investigation], len(keys))

		invs, err := repo.ListByCaseIDs(ctx, keys)
		if err != nil {
			for i := range results {
				results[i] = &dataloader.Result[*domain.Investigation]{Error: err}
			}
			return results
		}

		byCase := make(map[int64]*domain.Investigation, len(invs))
		for i := range invs {
			byCase[invs[i].CaseID] = &invs[i]
		}
		for i, k := range keys {
			results[i] = &dataloader.Result[*domain.Investigation]{Data: byCase[k]}
		}
		return results
	}

	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[int64, *domain.Investigation](wait),
		dataloader.WithBatchCapacity[int64, *domain.Investigation](maxBatch),
	)
}

// investigationsFor returns the investigations of cases keyed by case id.
func (s *Service) investigationsFor(ctx context.Context, cases []domain.Case) (map[int64]*domain.Investigation, error) {
	out := make(map[int64]*domain.Investigation, len(cases))
	if len(cases) == 0 {
		return out, nil
	}

	keys := make([]int64, len(cases))
	for i, c := range cases {
		keys[i] = c.ID
	}

	invs, errs := newInvestigationLoader(s.investigations).LoadMany(ctx, keys)()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	for i, inv := range invs {
		if inv != nil {
			out[keys[i]] = inv
		}
	}
	return out, nil
}
