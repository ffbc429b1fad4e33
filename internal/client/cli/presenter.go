package cli

import (
	"fmt"

	"github.com/dmitrijs2005/heritagewatch/internal/client/models"
	"github.com/dmitrijs2005/heritagewatch/internal/client/session"
)

func (a *App) SessionChanged(state session.State) {
	s, ok := state.Session()

	a.mu.Lock()
	was := a.loggedIn
	a.loggedIn = ok
	a.userName = s.Email
	a.mu.Unlock()

	if was && !ok {
		fmt.Fprintln(a.out, "You are signed out. Use 'login' to continue.")
	}
}

func (a *App) ReportsChanged(reports []models.Report) {
	a.mu.Lock()
	a.reportRows = append([]models.Report(nil), reports...)
	a.mu.Unlock()

	a.renderReports()
}

func (a *App) Alert(message string) {
	fmt.Fprintln(a.out, "! "+message)
}

// InsertPhotos may be called from a background feed load.
func (a *App) InsertPhotos(photos []models.Photo) {
	a.mu.Lock()
	start := len(a.photos)
	a.photos = append(a.photos, photos...)
	a.mu.Unlock()

	for i, p := range photos {
		fmt.Fprintln(a.out, formatPhoto(start+i, p))
	}
}

func (a *App) renderReports() {
	rows := a.displayedReports()
	if len(rows) == 0 {
		fmt.Fprintln(a.out, "No reports.")
		return
	}
	for i, r := range rows {
		fmt.Fprintln(a.out, formatReport(i, r))
	}
}

func (a *App) displayedReports() []models.Report {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]models.Report(nil), a.reportRows...)
}

func (a *App) feedPhoto(n string) (models.Photo, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	i, err := parseIndex(n, len(a.photos))
	if err != nil {
		return models.Photo{}, err
	}
	return a.photos[i], nil
}
