package feature

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// reducedDims is the target dimensionality of the reduced feature space.
const reducedDims = 30

// Reduce projects the feature matrix down to exactly k columns with a
// truncated SVD (rows become U*Sigma, zero-padded past the matrix rank).
// Matrices that already have k or fewer columns are returned unchanged.
func Reduce(m *mat.Dense, k int) (*mat.Dense, error) {
	if m == nil {
		return nil, errors.New("nil feature matrix")
	}
	rows, cols := m.Dims()
	if cols <= k {
		return m, nil
	}

	var svd mat.SVD
	if ok := svd.Factorize(m, mat.SVDThin); !ok {
		return nil, errors.New("svd factorization did not converge")
	}

	var u mat.Dense
	svd.UTo(&u)
	values := svd.Values(nil)

	out := mat.NewDense(rows, k, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < len(values) && j < k; j++ {
			out.Set(i, j, u.At(i, j)*values[j])
		}
	}
	return out, nil
}
