package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/heritagewatch/internal/client/services"
)

const draftUsage = "Usage: draft new | photo <path> | at <lat> <lng> | show | submit | discard"

// Draft drives the report-creation draft.
func (a *App) Draft(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, draftUsage)
		return nil
	}

	switch args[0] {
	case "new":
		a.drafts.Start()
		fmt.Fprintln(a.out, "New report started.")

	case "photo":
		if len(args) < 2 {
			fmt.Fprintln(a.out, draftUsage)
			return nil
		}
		if err := a.drafts.AddPhoto(strings.Join(args[1:], " ")); err != nil {
			return a.draftError(err)
		}

	case "at":
		if len(args) != 3 {
			fmt.Fprintln(a.out, draftUsage)
			return nil
		}
		lat, err1 := strconv.ParseFloat(args[1], 64)
		lng, err2 := strconv.ParseFloat(args[2], 64)
		if err := errors.Join(err1, err2); err != nil {
			fmt.Fprintln(a.out, "Latitude and longitude must be numbers.")
			return err
		}
		if err := a.drafts.SetPosition(lat, lng); err != nil {
			return a.draftError(err)
		}

	case "show":
		d, ok := a.drafts.Current()
		if !ok {
			return a.draftError(services.ErrNoDraft)
		}
		for i, p := range d.Photos {
			fmt.Fprintf(a.out, "%3d. %s\n", i+1, p)
		}
		if d.Position != nil {
			fmt.Fprintln(a.out, "Position:", d.Position.String())
		} else {
			fmt.Fprintln(a.out, "Position: not set")
		}

	case "submit":
		return a.submitDraft(ctx)

	case "discard":
		a.drafts.Discard()
		fmt.Fprintln(a.out, "Draft discarded.")

	default:
		fmt.Fprintln(a.out, draftUsage)
	}
	return nil
}

func (a *App) submitDraft(ctx context.Context) error {
	if _, ok := a.drafts.Current(); !ok {
		return a.draftError(services.ErrNoDraft)
	}

	place, err := getSimpleText(a.reader, "Place name", a.out)
	if err != nil {
		return err
	}
	designation, err := getSimpleText(a.reader, "Designation (optional)", a.out)
	if err != nil {
		return err
	}

	r, err := a.drafts.Submit(ctx, place, designation)
	if err != nil {
		return a.draftError(err)
	}
	fmt.Fprintf(a.out, "Report %q submitted.\n", r.PlaceName)
	return nil
}

func (a *App) draftError(err error) error {
	fmt.Fprintln(a.out, "Error:", err.Error())
	return err
}
