package inuge

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/cute-angelia/nuge/utils/http/apiV3"
	"github.com/cute-angelia/nuge/utils/ibininfo"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const name = "nuge"

type Component struct {
	opts *options
}

// New 构造组件，处理器无共享可变状态，可并发调用
func New(opts ...Option) *Component {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Component{opts: o}
}

// Addr 配置的监听地址
func (c *Component) Addr() string {
	return c.opts.addr
}

// Handler 路由
//
//	GET  /              -> static/index.html
//	GET|POST /api/random
//	GET  /api/healthz
//	GET  /*             -> static 下的文件
func (c *Component) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(c.accessLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)

	r.Route("/api", func(r chi.Router) {
		r.Get("/random", c.handleRandom)
		r.Post("/random", c.handleRandom)
		r.Get("/healthz", c.handleHealthz)
	})

	r.Get("/", c.handleIndex)
	r.Get("/*", c.handleStatic)
	return r
}

func (c *Component) handleHealthz(w http.ResponseWriter, r *http.Request) {
	apiV3.NewApi(w, r, apiV3.WithLog(false)).Success(ibininfo.ToMap())
}

// accessLog 每个请求一行 zerolog
func (c *Component) accessLog(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			c.opts.logger.Debug().
				Str("req_id", middleware.GetReqID(r.Context())).
				Str("remote", r.RemoteAddr).
				Str("method", r.Method).
				Str("uri", r.RequestURI).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("cost", time.Since(start)).
				Msg(name)
		}()
		next.ServeHTTP(ww, r)
	}
	return http.HandlerFunc(fn)
}

// Run 监听配置地址直到 ctx 结束
func (c *Component) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", c.opts.addr)
	if err != nil {
		return errors.Wrapf(err, "%s: listen %s", name, c.opts.addr)
	}
	return c.Serve(ctx, ln)
}

// Serve 在 ln 上提供服务，ctx 结束后优雅关闭
func (c *Component) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           c.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c.opts.logger.Info().Str("addr", ln.Addr().String()).Msg("listening")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrapf(err, "%s: serve", name)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), c.opts.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrapf(err, "%s: shutdown", name)
		}
		c.opts.logger.Info().Msg("server stopped")
		return nil
	})
	return g.Wait()
}
