// Package skips builds skip options for tests.
//
//	options := skips.NewBuilder().
//		WithFixture(skips.FixtureLowestoft).
//		WithOption(skips.Option(99, 6, "150")).
//		Build()
package skips

import (
	"github.com/shopspring/decimal"

	"github.com/Veraticus/skiphire/internal/model"
)

// Builder collects skip options in order.
type Builder struct {
	options []model.SkipOption
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithOption appends opts.
func (b *Builder) WithOption(opts ...model.SkipOption) *Builder {
	b.options = append(b.options, opts...)
	return b
}

// WithFixture appends a copy of a predefined set.
func (b *Builder) WithFixture(f Fixture) *Builder {
	return b.WithOption(f()...)
}

// Where applies fn to every option added so far.
func (b *Builder) Where(fn func(*model.SkipOption)) *Builder {
	for i := range b.options {
		fn(&b.options[i])
	}
	return b
}

// Build returns the options.
func (b *Builder) Build() []model.SkipOption {
	out := make([]model.SkipOption, len(b.options))
	copy(out, b.options)
	return out
}

// Option returns an eligible 14 day option with 20% VAT.
func Option(id, size int, price string) model.SkipOption {
	return model.SkipOption{
		ID:               id,
		Size:             size,
		HirePeriodDays:   14,
		PriceBeforeVAT:   decimal.RequireFromString(price),
		VAT:              decimal.NewFromInt(20),
		Postcode:         model.DefaultLocation.Postcode,
		Area:             model.DefaultLocation.Area,
		AllowedOnRoad:    true,
		AllowsHeavyWaste: true,
	}
}
