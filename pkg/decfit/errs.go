package decfit

import "errors"

var (
	// ErrNoConvergence indicates that the least-squares fit stopped without
	// reaching a minimum (iteration cap, non-finite residuals, or a singular
	// normal matrix at the solution).
	ErrNoConvergence = errors.New("decfit: fit did not converge")

	// ErrDegenerate indicates that the calibration table or reference
	// declination cannot constrain the power law at all.
	ErrDegenerate = errors.New("decfit: degenerate calibration")
)
