package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/AdityaPandey-Pravya/Pravya-demo/internal/api"
	"github.com/AdityaPandey-Pravya/Pravya-demo/internal/eval"
	"github.com/AdityaPandey-Pravya/Pravya-demo/internal/game"
	"github.com/AdityaPandey-Pravya/Pravya-demo/internal/llm"
	"github.com/AdityaPandey-Pravya/Pravya-demo/internal/question"
	"github.com/AdityaPandey-Pravya/Pravya-demo/internal/story"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides PRAVYA_ADDR)")
	serveCmd.Flags().Bool("random-questions", false, "Pick randomly among matching questions instead of walking the difficulty order")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, cfg, err := openStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	if a, _ := cmd.Flags().GetString("addr"); a != "" {
		cfg.Addr = a
	}

	llmCfg := llm.ConfigFromEnv()
	var provider llm.Provider
	if err := llmCfg.Validate(); err != nil {
		// The engine degrades to local fallbacks without a provider.
		log.Printf("serve: generation service disabled: %v", err)
	} else {
		provider, err = llm.NewProvider(ctx, llmCfg, st.Events())
		if err != nil {
			return fmt.Errorf("init provider: %w", err)
		}
	}

	repo := st.Questions()
	selector := question.NewSelector(repo)
	if random, _ := cmd.Flags().GetBool("random-questions"); random {
		rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		selector = question.NewRandomSelector(repo, rng)
	}

	engine := game.NewEngine(
		eval.New(provider, eval.DefaultConfig()),
		story.New(provider, story.DefaultConfig()),
		selector,
		repo,
		game.Policy{Adaptive: cfg.Adaptive},
	)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.New(engine, repo).Router(cfg.AllowedOrigins, cfg.RequestTimeout),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("serve: listening on %s (driver=%s provider=%s)", cfg.Addr, cfg.DBDriver, llmCfg.Provider)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}
	return nil
}
