package bootstrap

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	// DrainTimeout membatasi berapa lama request yang sedang jalan boleh
	// menyelesaikan diri saat shutdown. Transaksi ledger yang sudah masuk
	// harus sempat commit, jadi jangan set terlalu pendek.
	DrainTimeout time.Duration
}

func (c ServerConfig) drainTimeout() time.Duration {
	if c.DrainTimeout <= 0 {
		return 15 * time.Second
	}
	return c.DrainTimeout
}

// StartHTTPServer menjalankan leave API sampai menerima SIGINT/SIGTERM,
// lalu drain request yang sedang berjalan.
func StartHTTPServer(
	router *gin.Engine,
	cfg ServerConfig,
	auditLogger AuditLogger,
) {
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	auditLogger.Log(context.Background(), AuditLog{
		Action:  ActionServerStart,
		Message: "leave API accepting requests",
		Meta:    map[string]any{"port": cfg.Port},
	})

	go func() {
		zap.L().Info("leave API listening", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("ListenAndServe error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	auditLogger.Log(context.Background(), AuditLog{
		Action:  ActionServerShutdown,
		Message: "leave API stopping, draining in-flight requests",
		Meta: map[string]any{
			"signal":        sig.String(),
			"drain_timeout": cfg.drainTimeout().String(),
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.drainTimeout())
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zap.L().Error("drain window elapsed, closing forcefully", zap.Error(err))
	} else {
		zap.L().Info("leave API exited gracefully")
	}
}
