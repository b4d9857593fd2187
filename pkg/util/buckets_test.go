package util_test

import (
	"testing"

	"github.com/cryptoprim/cp-digest/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestDecimalExponentialBuckets(t *testing.T) {
	// Unlike with prometheus.ExponentialBuckets, floating point
	// imprecision should not accumulate. Every power of ten should
	// be represented accurately.
	require.Equal(t, []float64{
		1e-06, 1e-05, 1e-04, 1e-03, 1e-02, 1e-01, 1e+00,
	}, util.DecimalExponentialBuckets(-6, 6, 0))

	// The range used by the hasher duration histogram.
	require.Equal(t, []float64{
		1e-06, 2.1544e-06, 4.6415e-06, 1e-05, 2.1544e-05, 4.6415e-05,
		1e-04, 2.1544e-04, 4.6415e-04, 1e-03, 2.1544e-03, 4.6415e-03,
		1e-02, 2.1544e-02, 4.6415e-02, 1e-01, 2.1544e-01, 4.6415e-01,
		1e+00,
	}, util.DecimalExponentialBuckets(-6, 6, 2))

	require.Equal(t, []float64{
		1e-03, 3.1622e-03, 1e-02, 3.1622e-02, 1e-01, 3.1622e-01,
		1e+00, 3.1622e+00, 1e+01,
	}, util.DecimalExponentialBuckets(-3, 4, 1))
}
