package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/spf13/cobra"

	"github.com/adaptlearn/access-api/api"
	"github.com/adaptlearn/access-api/api/types"
	"github.com/adaptlearn/access-api/internal/services/cleanup"
	"github.com/adaptlearn/access-api/internal/services/exercises"
	"github.com/adaptlearn/access-api/internal/services/imagegen"
	"github.com/adaptlearn/access-api/internal/services/intake"
	"github.com/adaptlearn/access-api/internal/services/pipelines"
	"github.com/adaptlearn/access-api/internal/services/signlang"
	"github.com/adaptlearn/access-api/internal/services/storage"
	"github.com/adaptlearn/access-api/internal/services/synthesis"
	"github.com/adaptlearn/access-api/internal/services/texttransform"
	"github.com/adaptlearn/access-api/internal/services/transcription"
	"github.com/adaptlearn/access-api/internal/services/vision"
	"github.com/adaptlearn/access-api/pkg/config"
	"github.com/adaptlearn/access-api/pkg/ffmpeg"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Accessibility Content API server with the configured settings.

The server accepts uploads and transforms them into accessible renditions:
transcripts, captions, sign-language video, narrated audio, simplified text,
and interactive exercises.

Example:
  access-api serve
  access-api serve --port 9090
  access-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Use config values if flags not provided
	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deps, closeDeps, err := buildDependencies(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to build dependencies: %w", err)
	}
	defer closeDeps()

	// Stale uploads are swept hourly; pipelines read them within minutes
	janitor := cleanup.NewJanitor(24*time.Hour, time.Hour, cfg.Uploads.LocalDir, cfg.Uploads.TempDir)
	janitor.Start(ctx)
	defer janitor.Stop()

	address := fmt.Sprintf("%s:%d", serverHost, serverPort)
	fmt.Printf("Starting Accessibility Content API server on %s\n", address)

	srv := api.NewServer(address)
	srv.SetDependencies(deps)
	if err := srv.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	// Channel to listen for interrupt signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	fmt.Printf("Server is ready to handle requests at %s\n", address)

	select {
	case <-stop:
		fmt.Println("\nShutting down server...")
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		fmt.Println("Shutting down server...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return err
	}

	fmt.Println("Server gracefully stopped")
	return nil
}

// buildDependencies wires every service the handlers need. The returned
// closer releases the underlying cloud clients.
func buildDependencies(ctx context.Context, cfg *config.Config) (*types.Dependencies, func(), error) {
	media := ffmpeg.New(cfg.Processing.FFmpegPath, cfg.Processing.FFprobePath, cfg.Processing.FFmpegTimeout)

	transcriber, err := transcription.NewService(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create transcription service: %w", err)
	}

	speaker, err := synthesis.NewService(ctx)
	if err != nil {
		transcriber.Close()
		return nil, nil, fmt.Errorf("failed to create synthesis service: %w", err)
	}

	store, err := storage.NewGCSStore(ctx, cfg.Storage.Bucket, cfg.Storage.SignedURLTTL)
	if err != nil {
		transcriber.Close()
		speaker.Close()
		return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	llmClient := openai.NewClient(cfg.LLM.APIKey)
	transformer := texttransform.NewService(llmClient, cfg.LLM.Model)
	describer := vision.NewService(llmClient, cfg.LLM.VisionModel)
	illustrator := imagegen.NewService(llmClient)

	renderer := signlang.NewClient(signlang.Config{
		Endpoint: cfg.SignLanguage.Endpoint,
		APIKey:   cfg.SignLanguage.APIKey,
		Timeout:  cfg.SignLanguage.Timeout,
	})

	tempDir := cfg.Uploads.TempDir

	deps := &types.Dependencies{
		Config:    cfg,
		Hearing:   pipelines.NewHearing(media, transcriber, transformer, renderer, tempDir),
		Visual:    pipelines.NewVisual(media, transcriber, transformer, speaker, describer, store, tempDir),
		Cognitive: pipelines.NewCognitive(media, transcriber, transformer, describer, tempDir),
		Exercises: exercises.NewService(transformer, speaker, renderer, illustrator, store),
		Intake:    intake.NewService(store),
	}

	closeDeps := func() {
		transcriber.Close()
		speaker.Close()
		store.Close()
	}

	return deps, closeDeps, nil
}
