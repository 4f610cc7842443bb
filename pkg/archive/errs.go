package archive

import "errors"

var (
	// ErrNoTile indicates that no imaged tile covers the position.
	ErrNoTile = errors.New("archive: no tile covers position")

	// ErrAmbiguousTile indicates that several tiles cover the position,
	// usually the same tile observed in different epochs.
	ErrAmbiguousTile = errors.New("archive: position covered by several tiles")

	// ErrNoImage indicates that a tile listing had no image near the position.
	ErrNoImage = errors.New("archive: no image found")

	// ErrStatus is wrapped when the archive answers with a non-200 status.
	ErrStatus = errors.New("archive: unexpected http status")

	// ErrShortRow indicates a tile list row with too few fields.
	ErrShortRow = errors.New("archive: short tile row")
)
