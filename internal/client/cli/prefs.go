package cli

import (
	"context"
	"fmt"
)

// Language shows or sets the stored language preference.
func (a *App) Language(ctx context.Context, args []string) error {
	if len(args) == 0 {
		lang, err := a.store.Language(ctx)
		if err != nil {
			return err
		}
		if lang == "" {
			lang = "en"
		}
		fmt.Fprintf(a.out, "language: %s\n", lang)
		return nil
	}

	if err := a.store.SetLanguage(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "language set to %s\n", args[0])
	return nil
}

// Theme shows or sets the stored theme preference.
func (a *App) Theme(ctx context.Context, args []string) error {
	if len(args) == 0 {
		theme, err := a.store.Theme(ctx)
		if err != nil {
			return err
		}
		if theme == "" {
			theme = "system"
		}
		fmt.Fprintf(a.out, "theme: %s\n", theme)
		return nil
	}

	if err := a.store.SetTheme(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "theme set to %s\n", args[0])
	return nil
}
