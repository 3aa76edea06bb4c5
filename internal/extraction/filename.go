package extraction

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"github.com/guttosm/fxpulse/internal/domain/models"
)

// filenamePattern: "YYYY-MM-DD.ext" or "YYYY-MM-DD (n).ext".
var filenamePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})(?: \((\d+)\))?\.([A-Za-z0-9]+)$`)

// ResolveFilename derives the document date and optional sequence hint from a
// file name. Only the base name is considered.
//
// Fails with models.ErrInvalidFilename when:
//   - the base name does not follow the pattern,
//   - the date is not a real calendar date (month 13, Feb 30, ...),
//   - the suffix is not an integer >= 2 ("(1)" is implied by no suffix).
func ResolveFilename(name string) (models.FileIdentity, error) {
	base := filepath.Base(name)
	m := filenamePattern.FindStringSubmatch(base)
	if m == nil {
		return models.FileIdentity{}, fmt.Errorf("%w: %q does not match YYYY-MM-DD[ (n)].ext", models.ErrInvalidFilename, base)
	}

	d, err := time.Parse(models.DateLayout, m[1])
	if err != nil {
		return models.FileIdentity{}, fmt.Errorf("%w: %q has no valid calendar date: %v", models.ErrInvalidFilename, base, err)
	}

	id := models.FileIdentity{Filename: base, Date: models.Day(d)}
	if m[2] != "" {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return models.FileIdentity{}, fmt.Errorf("%w: %q sequence suffix: %v", models.ErrInvalidFilename, base, err)
		}
		if n < 2 {
			return models.FileIdentity{}, fmt.Errorf("%w: %q sequence suffix must be >= 2, got %d", models.ErrInvalidFilename, base, n)
		}
		id.SequenceHint = n
	}
	return id, nil
}
