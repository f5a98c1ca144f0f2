package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/joho/godotenv"

	"github.com/kreators/easyslang/backend/internal/config"
	"github.com/kreators/easyslang/backend/internal/handler"
	"github.com/kreators/easyslang/backend/internal/service/audio"
	"github.com/kreators/easyslang/backend/internal/service/classify"
	flowservice "github.com/kreators/easyslang/backend/internal/service/flow"
	"github.com/kreators/easyslang/backend/internal/service/history"
	"github.com/kreators/easyslang/backend/internal/storage"
	"github.com/kreators/easyslang/backend/internal/template"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Object storage: R2 when credentials are provided, in-memory otherwise so
	// the service still runs locally without cloud access.
	var store storage.ObjectStore
	if cfg.Storage.Enabled() {
		r2, err := storage.NewR2(ctx, storage.R2Config{
			AccountID:       cfg.Storage.AccountID,
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			Bucket:          cfg.Storage.Bucket,
			PublicBaseURL:   cfg.Storage.PublicBaseURL,
		})
		if err != nil {
			log.Fatalf("failed to initialize R2 storage: %v", err)
		}
		store = r2
		log.Println("R2 storage initialized successfully")
	} else {
		store = storage.NewMemory(cfg.Flow.AssetBaseURL)
		log.Println("R2 凭证未配置，使用内存存储（仅限本地开发）")
	}

	// Template pools and the audio fragment index. The generated metadata wins
	// when present; otherwise the index is synthesized from the seeded pools.
	pools := template.Seed()
	templates := template.NewStore(pools)

	index, err := audio.LoadIndex(ctx, store, cfg.Flow.MetadataKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("warning: failed to load audio metadata: %v", err)
		}
		index = audio.BuildIndex(pools, cfg.Flow.AssetBaseURL)
		log.Println("audio metadata unavailable, using synthesized fragment index")
	} else {
		log.Println("audio fragment index loaded from storage")
	}

	// Classifier: LLM-backed when Ark credentials are configured, keyword
	// fallback otherwise.
	var chatModel model.ChatModel
	if cfg.AI.Enabled() && cfg.AI.ClassifyEnabled {
		chatModel, err = cfg.AI.NewChatModel(ctx)
		if err != nil {
			log.Printf("warning: failed to create chat model: %v", err)
			chatModel = nil
		}
	}
	classifier, err := classify.NewService(ctx, chatModel, classify.Config{
		Enabled: cfg.AI.ClassifyEnabled,
		Timeout: cfg.AI.ClassifyTimeout,
	})
	if err != nil {
		log.Fatalf("failed to initialize classifier: %v", err)
	}
	if classifier.Enabled() {
		log.Println("LLM classifier enabled")
	} else {
		log.Println("Ark 模型未配置，分类走关键词回退")
	}

	assembler := audio.NewAssembler(store,
		audio.WithGap(time.Duration(cfg.Flow.GapMillis)*time.Millisecond),
		audio.WithFragmentTimeout(cfg.Flow.FragmentTimeout),
	)

	flowSvc := flowservice.NewService(
		templates,
		history.NewManager(cfg.Flow.HistorySize),
		classifier,
		audio.NewLocator(index),
		assembler,
		cfg.Flow.MaxTurns,
	)

	router := handler.NewRouter(flowSvc)
	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("EasySlang backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
