package decfit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	maxIter   = 200
	maxLambda = 1e12
	xtol      = 1e-10
	ftol      = 1e-14
	gtol      = 1e-8
)

// Fit is a fitted power law 1 + A·(dec/Ref)^Alpha.
type Fit struct {
	A     float64 `json:"a" yaml:"a"`
	Alpha float64 `json:"alpha" yaml:"alpha"`
	Ref   float64 `json:"ref" yaml:"ref"`

	// Cov is the parameter covariance, (A, Alpha) order. Diagnostic only.
	Cov        [2][2]float64 `json:"cov" yaml:"cov"`
	RSS        float64       `json:"rss" yaml:"rss"`
	Iterations int           `json:"iterations" yaml:"iterations"`
}

// PowerLaw evaluates 1 + a·(dec/ref)^alpha.
func PowerLaw(dec, ref, a, alpha float64) float64 {
	return 1 + a*math.Pow(dec/ref, alpha)
}

// Eval returns the fitted multiplier at dec.
func (f Fit) Eval(dec float64) float64 { return PowerLaw(dec, f.Ref, f.A, f.Alpha) }

// Weight is Eval for southern declinations and 1 elsewhere.
func (f Fit) Weight(dec float64) float64 {
	if dec <= 0 {
		return f.Eval(dec)
	}
	return 1
}

// StdErr returns the 1σ parameter uncertainties.
func (f Fit) StdErr() (a, alpha float64) {
	return math.Sqrt(f.Cov[0][0]), math.Sqrt(f.Cov[1][1])
}

// FitPowerLaw fits the power law to pts with the declination normalized by
// ref, starting from (a, alpha) = (1, 1).
//
// ref must be negative and every point must lie south of the equator, so
// that dec/ref is positive. The solver works against the southernmost
// point, where dec/pivot lies in (0, 1], and rescales A to ref afterwards.
// ref only changes the scale of A, so every valid ref reaches the same
// minimum.
func FitPowerLaw(pts []Point, ref float64) (Fit, error) {
	n := len(pts)
	if n < 3 {
		return Fit{}, fmt.Errorf("%w: need at least 3 points, have %d", ErrDegenerate, n)
	}
	if !(ref < 0) {
		return Fit{}, fmt.Errorf("%w: reference declination %v must be negative", ErrDegenerate, ref)
	}
	pivot := 0.0
	for _, p := range pts {
		if !(p.Dec/ref > 0) || math.IsInf(p.Dec, 0) || math.IsNaN(p.Mult) || math.IsInf(p.Mult, 0) {
			return Fit{}, fmt.Errorf("%w: bad point (%v, %v)", ErrDegenerate, p.Dec, p.Mult)
		}
		pivot = math.Min(pivot, p.Dec)
	}
	x := make([]float64, n)
	y := make([]float64, n)
	for i, p := range pts {
		x[i] = p.Dec / pivot
		y[i] = p.Mult
	}

	b, alpha, sse, iter, err := levmar(x, y)
	if err != nil {
		return Fit{}, err
	}

	// covariance at the pivot, then mapped through a = b·r^alpha
	J := mat.NewDense(n, 2, nil)
	for i := range x {
		t := math.Pow(x[i], alpha)
		J.Set(i, 0, t)
		J.Set(i, 1, b*t*math.Log(x[i]))
	}
	var jtj, inv mat.Dense
	jtj.Mul(J.T(), J)
	if err := inv.Inverse(&jtj); err != nil {
		return Fit{}, fmt.Errorf("%w: singular normal matrix: %v", ErrNoConvergence, err)
	}
	inv.Scale(sse/float64(n-2), &inv)

	r := ref / pivot
	a := b * math.Pow(r, alpha)
	T := mat.NewDense(2, 2, []float64{
		math.Pow(r, alpha), a * math.Log(r),
		0, 1,
	})
	var cov mat.Dense
	cov.Product(T, &inv, T.T())

	f := Fit{A: a, Alpha: alpha, Ref: ref, RSS: sse, Iterations: iter}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			f.Cov[i][j] = cov.At(i, j)
		}
	}
	return f, nil
}

// levmar minimizes sum (y - 1 - b·x^alpha)² from (1, 1). Damping is scaled
// by the largest column norms seen so far, as MINPACK does.
func levmar(x, y []float64) (b, alpha, sse float64, iter int, err error) {
	n := len(x)
	rss := func(b, alpha float64) float64 {
		var s float64
		for i := range x {
			d := y[i] - (1 + b*math.Pow(x[i], alpha))
			s += d * d
		}
		return s
	}

	J := mat.NewDense(n, 2, nil)
	res := mat.NewVecDense(n, nil)
	jacobian := func(b, alpha float64) {
		for i := range x {
			t := math.Pow(x[i], alpha)
			J.Set(i, 0, t)
			J.Set(i, 1, b*t*math.Log(x[i]))
			res.SetVec(i, y[i]-(1+b*t))
		}
	}

	b, alpha = 1.0, 1.0
	lambda := 1e-3
	sse = rss(b, alpha)
	if math.IsNaN(sse) || math.IsInf(sse, 0) {
		return 0, 0, 0, 0, fmt.Errorf("%w: non-finite residuals at initial guess", ErrNoConvergence)
	}

	var (
		jtj       mat.Dense
		g, step   mat.VecDense
		converged bool
	)
	scale := [2]float64{1e-12, 1e-12}
	for iter = 1; iter <= maxIter; iter++ {
		jacobian(b, alpha)
		jtj.Mul(J.T(), J)
		g.MulVec(J.T(), res)
		for k := range scale {
			scale[k] = math.Max(scale[k], jtj.At(k, k))
		}

		accepted := false
		var nb, nalpha, nsse float64
		for lambda <= maxLambda {
			damped := mat.DenseCopyOf(&jtj)
			for k := range scale {
				damped.Set(k, k, jtj.At(k, k)+lambda*scale[k])
			}
			if err := step.SolveVec(damped, &g); err != nil {
				lambda *= 10
				continue
			}
			nb, nalpha = b+step.AtVec(0), alpha+step.AtVec(1)
			nsse = rss(nb, nalpha)
			if !math.IsNaN(nsse) && !math.IsInf(nsse, 0) && nsse <= sse {
				accepted = true
				break
			}
			lambda *= 10
		}

		if !accepted {
			// no downhill step left; a minimum only if the gradient vanishes
			if mat.Norm(&g, math.Inf(1)) <= gtol*(1+sse) {
				converged = true
			}
			break
		}

		small := math.Abs(nb-b) <= xtol*(math.Abs(b)+xtol) &&
			math.Abs(nalpha-alpha) <= xtol*(math.Abs(alpha)+xtol)
		flat := sse-nsse <= ftol*sse
		b, alpha, sse = nb, nalpha, nsse
		lambda = math.Max(lambda/10, 1e-12)
		if small || flat {
			converged = true
			break
		}
	}
	if !converged {
		return 0, 0, 0, iter, fmt.Errorf("%w: after %d iterations (a=%g, alpha=%g)", ErrNoConvergence, iter, b, alpha)
	}
	return b, alpha, sse, iter, nil
}
