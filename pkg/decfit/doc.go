// Package decfit models the extra observing time needed at low declination.
//
// At the southern end of the survey the system temperature rises (mostly
// spillover at low elevation), so reaching uniform sensitivity needs more
// time per pointing. The penalty is tabulated at five declinations
// (Table) and modeled as
//
//	f(dec) = 1 + a·(dec/ref)^alpha
//
// where ref is the southern survey limit. FitPowerLaw determines (a, alpha)
// by Levenberg–Marquardt least squares from the initial guess (1, 1).
//
// Integrate sums the sky area in 1° declination strips, each strip of
// |cos(dec)|·360 deg², each strip weighted by Fit.Weight, which is f at
// dec ≤ 0 and 1 to the north. Integer strips
// over [decmin, decmax) and [decmin+1, decmax) are averaged, which
// approximates strips centered on half-integer declinations. decmax is
// exclusive in both passes.
//
// The ratio of effective to nominal area is the time scaling factor for
// the whole survey.
package decfit
