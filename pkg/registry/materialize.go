package registry

import (
	"math/rand/v2"
	"sort"

	"github.com/arthur-debert/gearbox/pkg/dispatch"
	"github.com/arthur-debert/gearbox/pkg/errors"
	"github.com/arthur-debert/gearbox/pkg/logging"
)

type options struct {
	strict bool
	rng    *rand.Rand
}

// Option configures materialization
type Option func(*options)

// WithStrict makes duplicate registrations of one type an error instead of
// letting the last installer win.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithSeed fixes the installer visiting order for reproducible runs
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// Build runs every record's installer against a fresh table and seals it.
// Records are visited in an unspecified, shuffled order.
func Build(records []Record, opts ...Option) (*dispatch.Table, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	logger := logging.GetLogger("registry")
	done := logging.LogOperationStart(logger, "materialize")
	defer done()

	order := make([]Record, len(records))
	copy(order, records)
	shuffle := rand.Shuffle
	if o.rng != nil {
		shuffle = o.rng.Shuffle
	}
	shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	table := dispatch.New()
	for _, rec := range order {
		if rec.Install == nil {
			return nil, errors.Newf(errors.ErrInvalidInput, "record for %s has no installer", rec.Identity.Name)
		}
		rec.Install(table)
		logger.Trace().
			Str("type", rec.Identity.Name).
			Stringer("kind", rec.Kind).
			Msg("installed transition")
	}

	if collisions := uniqueSorted(table.Collisions()); len(collisions) > 0 {
		if o.strict {
			return nil, errors.Newf(errors.ErrDuplicateRegistration,
				"%d transition types registered more than once", len(collisions)).
				WithDetail("types", collisions)
		}
		logger.Debug().
			Strs("types", collisions).
			Msg("duplicate transition registrations, last installer wins")
	}

	table.Seal()

	logger.Info().
		Int("records", len(records)).
		Int("transitions", table.Len()).
		Msg("dispatch table materialized")

	return table, nil
}

func uniqueSorted(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
