package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	httptransport "github.com/njprem/discover-zimbabwe/internal/transport/http"
)

const shutdownTimeout = 10 * time.Second

// Router builds the echo instance with every route registered.
func (a *App) Router() *echo.Echo {
	var metrics *httptransport.Metrics
	if a.Config.EnableMetrics {
		metrics = httptransport.NewMetrics()
	}

	e := httptransport.NewRouter(httptransport.RouterOptions{
		AllowOrigins: a.Config.AllowOrigins,
		Logger:       a.Logger,
		Sessions:     a.Sessions,
		Metrics:      metrics,
	})

	httptransport.RegisterPages(e)
	httptransport.RegisterDestinations(e, a.Catalog, a.Favorites, a.Reviews)
	httptransport.RegisterSession(e, a.Sessions)
	httptransport.RegisterFavorites(e, a.Favorites, a.Catalog, metrics)
	httptransport.RegisterReviews(e, a.Reviews, a.Catalog, metrics)
	httptransport.RegisterInquiries(e, a.Contact, metrics)
	if a.Config.EnableSwagger {
		httptransport.RegisterSwagger(e, httptransport.DefaultSwaggerSpec)
	}
	if metrics != nil {
		metrics.Register(e)
	}
	return e
}

// Serve blocks until ctx is cancelled or the listener fails, then drains
// in-flight requests.
func (a *App) Serve(ctx context.Context) error {
	e := a.Router()
	addr := ":" + a.Config.Port

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("http server listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	a.Logger.Info("http server shutting down")
	return e.Shutdown(shutdownCtx)
}
