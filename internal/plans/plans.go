package plans

import (
	"time"

	"github.com/shopspring/decimal"
)

// Definition is one immutable catalog entry. Rate and ReferralRate are
// fractions per accrual period (0.05 means 5%).
type Definition struct {
	ID           string
	Name         string
	Price        decimal.Decimal
	Rate         decimal.Decimal
	Periods      int
	ReferralRate decimal.Decimal
}

// Catalog is loaded once at process start and never mutated afterwards.
type Catalog struct {
	defs         map[string]Definition
	order        []string
	periodLength time.Duration
}

func NewCatalog(periodLength time.Duration, defs ...Definition) *Catalog {
	c := &Catalog{
		defs:         make(map[string]Definition, len(defs)),
		periodLength: periodLength,
	}
	for _, d := range defs {
		c.defs[d.ID] = d
		c.order = append(c.order, d.ID)
	}
	return c
}

// Default returns the production catalog.
func Default(periodLength time.Duration) *Catalog {
	return NewCatalog(periodLength,
		Definition{
			ID:           "PlanA",
			Name:         "Plan A",
			Price:        decimal.NewFromInt(500),
			Rate:         decimal.NewFromFloat(0.05),
			Periods:      5,
			ReferralRate: decimal.NewFromFloat(0.01),
		},
		Definition{
			ID:           "PlanB",
			Name:         "Plan B",
			Price:        decimal.NewFromInt(700),
			Rate:         decimal.NewFromFloat(0.06),
			Periods:      7,
			ReferralRate: decimal.NewFromFloat(0.01),
		},
		Definition{
			ID:           "PlanC",
			Name:         "Plan C",
			Price:        decimal.NewFromInt(900),
			Rate:         decimal.NewFromFloat(0.07),
			Periods:      9,
			ReferralRate: decimal.NewFromFloat(0.01),
		},
	)
}

func (c *Catalog) Get(id string) (Definition, bool) {
	d, ok := c.defs[id]
	return d, ok
}

// List returns definitions in catalog order.
func (c *Catalog) List() []Definition {
	out := make([]Definition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.defs[id])
	}
	return out
}

func (c *Catalog) PeriodLength() time.Duration {
	return c.periodLength
}

// Duration is the full plan term: Periods accrual periods.
func (c *Catalog) Duration(d Definition) time.Duration {
	return time.Duration(d.Periods) * c.periodLength
}
