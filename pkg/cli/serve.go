package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/atharvsinh-codez/codedevs/pkg/cli/config"
	httpctrl "github.com/atharvsinh-codez/codedevs/pkg/controller/http"
	"github.com/atharvsinh-codez/codedevs/pkg/service/imagegen"
	"github.com/atharvsinh-codez/codedevs/pkg/usecase"
	"github.com/atharvsinh-codez/codedevs/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var repoCfg config.Repository
	var imageCfg config.ImageGen
	var githubCfg config.GitHub
	var storageCfg config.Storage
	var styleCfg config.Style

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("CODEDEVS_ADDR"),
			Destination: &addr,
		},
	}
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, imageCfg.Flags()...)
	flags = append(flags, githubCfg.Flags()...)
	flags = append(flags, storageCfg.Flags()...)
	flags = append(flags, styleCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			style, err := styleCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load style configuration")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			var imageOpts []imagegen.Option
			if style.Model != "" {
				imageOpts = append(imageOpts, imagegen.WithModel(style.Model))
			}
			imageSvc := imageCfg.Configure(imageOpts...)
			githubSvc := githubCfg.Configure()

			archiveSvc, err := storageCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize image archiving")
			}

			ucOpts := []usecase.Option{
				usecase.WithImageGen(imageSvc),
				usecase.WithGitHub(githubSvc),
				usecase.WithStyleConfig(style),
			}
			if archiveSvc != nil {
				ucOpts = append(ucOpts, usecase.WithArchive(archiveSvc))
			}

			uc := usecase.New(repo, ucOpts...)

			httpHandler := httpctrl.New(uc,
				httpctrl.WithStarsRepo(githubCfg.StarsOwner(), githubCfg.StarsRepo()),
			)
			server := &http.Server{
				Addr:              addr,
				Handler:           httpHandler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
