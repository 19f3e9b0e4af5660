package cmd

import (
	"fmt"
	"os"

	"othctl/pkg/render"
	"othctl/pkg/tui"
	"othctl/pkg/web"
)

// outputFormat resolves --markdown, --format and the configured default, in that order
func outputFormat() (render.Format, error) {
	if markdown {
		return render.Markdown, nil
	}
	if formatFlag != "" {
		f, err := render.ParseFormat(formatFlag)
		if err != nil {
			return f, &usageError{err: err}
		}
		return f, nil
	}
	return render.ParseFormat(appCfg.Format)
}

// writeOutput prints out or writes it to --output
func writeOutput(out string) error {
	if outputPath == "" {
		fmt.Print(out)
		return nil
	}

	if err := os.WriteFile(outputPath, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintln(os.Stderr, tui.AccentStyle().Render(fmt.Sprintf("Saved to %s", outputPath)))
	return nil
}

func newWebClient() *web.Client {
	return web.NewClient(
		web.WithTimeout(appCfg.RequestTimeout()),
		web.WithUserAgent(appCfg.UserAgent),
	)
}
