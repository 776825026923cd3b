package audio

import (
	"errors"

	"github.com/ncruces/zenity"
)

// PickTrack shows the native file dialog. A cancelled dialog returns an empty
// path and no error.
func PickTrack() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Choose Background Track"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: TrackPatterns,
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}
