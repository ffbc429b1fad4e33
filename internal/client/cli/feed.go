package cli

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// More asks for the next feed page. The load runs in the background so the
// prompt stays usable; a request made while one is in flight is dropped.
func (a *App) More(ctx context.Context) error {
	go func() {
		if !a.feed.OnScroll(ctx) {
			fmt.Fprintln(a.out, "Still loading...")
		}
	}()
	return nil
}

// Show prints one feed card with the caption drafts saved for it.
func (a *App) Show(ctx context.Context, n string) error {
	p, err := a.feedPhoto(n)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: photo <number> (use 'more' to load photos)")
		return err
	}

	fmt.Fprintln(a.out, p.Title)
	if p.Caption != "" {
		fmt.Fprintln(a.out, "  "+p.Caption)
	}
	fmt.Fprintf(a.out, "  by %s, %s\n", p.Account.Name, p.Location)
	fmt.Fprintf(a.out, "  likes %d, comments %d, views %d\n", p.Likes, p.Comments, p.Views)

	drafts := a.captions.Drafts(ctx, p.ID)
	for _, lang := range slices.Sorted(maps.Keys(drafts)) {
		fmt.Fprintf(a.out, "  [%s] %s\n", lang, drafts[lang])
	}
	return nil
}

func (a *App) Languages(ctx context.Context) error {
	langs := a.captions.Languages(a.config.Languages)
	if len(langs) == 0 {
		fmt.Fprintln(a.out, "None of your preferred languages is supported.")
		return nil
	}
	fmt.Fprintln(a.out, strings.Join(langs, ", "))
	return nil
}

// Caption submits a translation for feed card #n. Enter on the caption line
// commits it; an empty line cancels.
func (a *App) Caption(ctx context.Context, n string) error {
	p, err := a.feedPhoto(n)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: caption <number>")
		return err
	}

	langs := a.captions.Languages(a.config.Languages)
	if len(langs) == 0 {
		fmt.Fprintln(a.out, "None of your preferred languages is supported.")
		return nil
	}

	lang, err := GetChoice(a.reader, "Choose language", langs, a.out)
	if err != nil || lang == "" {
		return err
	}

	prompt := fmt.Sprintf("Caption in %s (Enter to send, empty to cancel)", lang)
	if draft, ok := a.captions.Draft(ctx, p.ID, lang); ok {
		prompt += "\nlast: " + draft
	}
	text, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil || text == "" {
		return err
	}

	_ = a.captions.Submit(ctx, p.ID, text, lang)
	fmt.Fprintln(a.out, "Sent.")
	return nil
}
