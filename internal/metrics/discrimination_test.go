package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscriminationTiers(t *testing.T) {
	t.Parallel()

	cases := []struct {
		auc  float64
		want string
	}{
		{0.5, DiscriminationNone},
		{0.51, DiscriminationPoor},
		{0.7, DiscriminationPoor},
		{0.71, DiscriminationAcceptable},
		{0.8, DiscriminationAcceptable},
		{0.81, DiscriminationExcellent},
		{0.9, DiscriminationExcellent},
		{0.91, DiscriminationOutstanding},
		{1.0, DiscriminationOutstanding},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Discrimination(tc.auc), "auc=%v", tc.auc)
	}
}

func TestDiscriminationBelowChance(t *testing.T) {
	t.Parallel()

	// Below-chance scores are not flipped through abs(); they simply
	// report no discrimination.
	assert.Equal(t, DiscriminationNone, Discrimination(0.3))
	assert.Equal(t, DiscriminationNone, Discrimination(0))
}
