package tags

import (
	"fmt"
	"time"

	"github.com/csmith/tunelist/model"
)

// FormatLength renders a duration as minutes:seconds, discarding any fraction
// of a second
func FormatLength(d time.Duration) string {
	if d < 0 {
		return model.UnknownLength
	}

	seconds := int64(d / time.Second)
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
