package mser

// ComponentStats is a snapshot of a component's running statistics: pixel
// count, spatial mean, and 2x2 spatial covariance, plus the stability
// computed against the snapshot Delta levels earlier. Age is part of the
// record layout but the Analyzer never sets it: every snapshot and every
// emitted region carries Age == 0, and the emission level is not recorded.
type ComponentStats struct {
	N         int64
	Mean      [2]float64
	Cov       [2][2]float64
	Stability float64
	Age       int64
}

// singleNodeStats returns the N=1 statistics for a freshly-seen node at
// (x, y): mean is its own coordinates, covariance is zero.
func singleNodeStats(x, y int) ComponentStats {
	return ComponentStats{
		N:    1,
		Mean: [2]float64{float64(x), float64(y)},
	}
}

// mergeStats folds src into dst in place using the standard
// pairwise-parallel formulas for combining means and covariances of two
// sets of sizes N1, N2:
//
//	p = N1/(N1+N2), q = N2/(N1+N2)
//	mean' = p*mean1 + q*mean2
//	cov'  = p*cov1 + q*cov2 + p*q*(mean2-mean1)(mean2-mean1)^T
//	N'    = N1 + N2
//
// It reports ErrStatOverflow if N1+N2 would overflow int64.
func mergeStats(src, dst *ComponentStats) error {
	n1, n2 := src.N, dst.N
	sum := n1 + n2
	if sum < n1 || sum < n2 {
		return ErrStatOverflow
	}

	p := float64(n1) / float64(sum)
	q := float64(n2) / float64(sum)

	dm := [2]float64{
		dst.Mean[0] - src.Mean[0],
		dst.Mean[1] - src.Mean[1],
	}

	var cov [2][2]float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			cov[i][j] = p*src.Cov[i][j] + q*dst.Cov[i][j] + p*q*dm[i]*dm[j]
		}
	}

	var mean [2]float64
	for i := 0; i < 2; i++ {
		mean[i] = p*src.Mean[i] + q*dst.Mean[i]
	}

	dst.N = sum
	dst.Mean = mean
	dst.Cov = cov

	return nil
}
