package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/heritagewatch/internal/client/models"
)

// parseIndex turns a 1-based position typed by the user into a slice index.
func parseIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if i < 1 || i > n {
		return 0, fmt.Errorf("no item #%d", i)
	}
	return i - 1, nil
}

func formatReport(i int, r models.Report) string {
	created := "-"
	if !r.CreatedAt.IsZero() {
		created = r.CreatedAt.Local().Format(time.DateOnly)
	}
	line := fmt.Sprintf("%3d. %s", i+1, r.PlaceName)
	if r.Designation != "" {
		line += " [" + r.Designation + "]"
	}
	return line + "  " + created
}

func formatPhoto(i int, p models.Photo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%3d. %s", i+1, p.Title)
	if p.Account.Name != "" {
		fmt.Fprintf(&b, " by %s", p.Account.Name)
	}
	if p.Location != "" {
		fmt.Fprintf(&b, ", %s", p.Location)
	}
	if !p.CapturedAt.IsZero() {
		fmt.Fprintf(&b, " (%s)", p.CapturedAt.Local().Format(time.DateOnly))
	}
	fmt.Fprintf(&b, "  likes %d, comments %d, views %d", p.Likes, p.Comments, p.Views)
	return b.String()
}
