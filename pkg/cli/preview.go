package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/atharvsinh-codez/codedevs/pkg/cli/config"
	"github.com/atharvsinh-codez/codedevs/pkg/domain/model"
	"github.com/atharvsinh-codez/codedevs/pkg/service/preview"
)

// cmdPreview drives the live profile preview from stdin. Each line is
// treated as the current input value, the way a keystroke stream would
// update a search box.
func cmdPreview() *cli.Command {
	var githubCfg config.GitHub
	var debounceMs int64

	flags := []cli.Flag{
		&cli.Int64Flag{
			Name:        "debounce-ms",
			Usage:       "Debounce window for profile lookups in milliseconds",
			Value:       500,
			Sources:     cli.EnvVars("CODEDEVS_PREVIEW_DEBOUNCE_MS"),
			Destination: &debounceMs,
		},
	}
	flags = append(flags, githubCfg.Flags()...)

	return &cli.Command{
		Name:    "preview",
		Aliases: []string{"p"},
		Usage:   "Preview GitHub profiles interactively from stdin",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			githubSvc := githubCfg.Configure()

			fetcher := preview.New(githubSvc,
				preview.WithDebounce(time.Duration(debounceMs)*time.Millisecond),
			)
			defer fetcher.Close()

			done := make(chan struct{})
			go func() {
				defer close(done)
				for state := range fetcher.Updates() {
					renderState(state)
				}
			}()

			fmt.Println("Type a GitHub handle and press enter (Ctrl-D to quit):")

			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				fetcher.Input(scanner.Text())
			}
			if err := scanner.Err(); err != nil {
				return goerr.Wrap(err, "failed to read input")
			}

			fetcher.Close()
			<-done
			return nil
		},
	}
}

var (
	dimText    = color.New(color.Faint)
	titleText  = color.New(color.FgCyan, color.Bold)
	labelText  = color.New(color.FgYellow)
	statusText = color.New(color.FgGreen)
)

func renderState(state preview.State) {
	switch state.Phase {
	case preview.PhaseDebouncing:
		dimText.Printf("  waiting: %s\n", state.Input)
	case preview.PhaseFetching:
		statusText.Printf("  looking up %s ...\n", state.Input)
	case preview.PhaseEmpty:
		dimText.Println("  (no profile)")
	case preview.PhaseReady:
		renderProfile(state.Profile)
	}
}

func renderProfile(p *model.Profile) {
	if p == nil {
		return
	}

	titleText.Printf("%s", p.DisplayName())
	dimText.Printf(" @%s\n", p.Login)

	if p.Bio != "" {
		fmt.Printf("  %s\n", p.Bio)
	}
	if p.Location != "" {
		labelText.Print("  location: ")
		fmt.Println(p.Location)
	}
	if p.Company != "" {
		labelText.Print("  company:  ")
		fmt.Println(p.Company)
	}
	labelText.Print("  repos:    ")
	fmt.Printf("%d public, %d followers, %d following\n",
		p.PublicRepos, p.Followers, p.Following)
	if !p.JoinedAt.IsZero() {
		labelText.Print("  joined:   ")
		fmt.Println(p.JoinedAt.Format("Jan 2006"))
	}
}
