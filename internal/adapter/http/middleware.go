package httpadapter

import (
	"context"
	"time"

	"citypulse/config"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// rateLimitMiddleware applies a process-wide token bucket to every request.
func rateLimitMiddleware(cfg config.ServerConfig) app.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)
	return func(c context.Context, ctx *app.RequestContext) {
		if !limiter.Allow() {
			writeErrorBody(ctx, consts.StatusTooManyRequests, "rate_limited", "too many requests")
			ctx.Abort()
			return
		}
		ctx.Next(c)
	}
}

type cachedResponse struct {
	contentType string
	body        []byte
}

// cacheMiddleware memoizes successful GET responses for the configured TTL.
// Status reads churn every simulated minute at most, so a short TTL keeps
// poll-heavy clients off the schedule repositories.
func cacheMiddleware(cfg config.ServerConfig) app.HandlerFunc {
	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	store := gocache.New(ttl, 2*ttl)
	return func(c context.Context, ctx *app.RequestContext) {
		if string(ctx.Method()) != consts.MethodGet {
			ctx.Next(c)
			return
		}
		key := string(ctx.Request.RequestURI())
		if v, ok := store.Get(key); ok {
			cached := v.(cachedResponse)
			ctx.Data(consts.StatusOK, cached.contentType, cached.body)
			ctx.Abort()
			return
		}
		ctx.Next(c)
		if ctx.Response.StatusCode() == consts.StatusOK {
			store.SetDefault(key, cachedResponse{
				contentType: string(ctx.Response.Header.ContentType()),
				body:        append([]byte(nil), ctx.Response.Body()...),
			})
		}
	}
}

// Middleware returns the standard chain for the public API.
func Middleware(cfg config.ServerConfig) []app.HandlerFunc {
	return []app.HandlerFunc{
		corsMiddleware(),
		rateLimitMiddleware(cfg),
		cacheMiddleware(cfg),
	}
}
