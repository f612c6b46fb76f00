package announce

import (
	"context"
	"fmt"
	"strings"

	"applicant_review_system/internal/tally"
)

// Announcement tells the admin channels that an applicant reached a verdict.
type Announcement struct {
	Name    string
	Email   string
	Verdict tally.Verdict
}

func (a Announcement) Text() string {
	return fmt.Sprintf("Applicant %s (%s) was %s.", a.Name, a.Email, strings.ToLower(a.Verdict.String()))
}

type Announcer interface {
	Announce(ctx context.Context, announcement Announcement) error
}
