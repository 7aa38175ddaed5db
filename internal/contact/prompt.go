package contact

import (
	"errors"

	"github.com/ncruces/zenity"
)

// Prompt collects a submission through native dialogs. Cancelling any of
// them returns ErrCanceled.
func Prompt() (Submission, error) {
	var s Submission
	fields := []struct {
		dst   *string
		title string
		text  string
	}{
		{&s.Name, "Contact ODAS", "Your name"},
		{&s.Email, "Contact ODAS", "Your email"},
		{&s.Message, "Contact ODAS", "How can we help?"},
	}

	for _, f := range fields {
		v, err := zenity.Entry(f.text, zenity.Title(f.title))
		if err != nil {
			if errors.Is(err, zenity.ErrCanceled) {
				return Submission{}, ErrCanceled
			}
			return Submission{}, err
		}
		*f.dst = v
	}
	return s, nil
}

// Notify shows the outcome of a submission.
func Notify(status string, failed bool) error {
	if failed {
		return zenity.Error(status, zenity.Title("Contact ODAS"), zenity.ErrorIcon)
	}
	return zenity.Info(status, zenity.Title("Contact ODAS"), zenity.InfoIcon)
}
