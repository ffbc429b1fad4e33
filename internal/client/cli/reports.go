package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/heritagewatch/internal/client/services"
)

func (a *App) List(ctx context.Context) error {
	a.renderReports()
	return nil
}

// Refresh re-fetches the list. On failure the stale list stays on screen.
func (a *App) Refresh(ctx context.Context) error {
	if _, err := a.reports.FetchReportList(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not refresh, showing the last known list.")
		a.renderReports()
		return err
	}
	return nil
}

// Delete removes report #n of the displayed list.
func (a *App) Delete(ctx context.Context, n string) error {
	rows := a.displayedReports()
	i, err := parseIndex(n, len(rows))
	if err != nil {
		fmt.Fprintln(a.out, "Usage: delete <number>")
		return err
	}

	if err := a.reports.DeleteReport(ctx, i, rows[i].ID); err != nil {
		if errors.Is(err, services.ErrDeleteFailed) {
			a.Alert(services.DeleteFailedMessage)
		}
		return err
	}
	return nil
}
