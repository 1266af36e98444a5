package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treeshape/pkg/bintree"
	"github.com/matzehuels/treeshape/pkg/buildinfo"
	terrors "github.com/matzehuels/treeshape/pkg/errors"
	tio "github.com/matzehuels/treeshape/pkg/io"
	"github.com/matzehuels/treeshape/pkg/observability"
	"github.com/matzehuels/treeshape/pkg/pipeline"
)

const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve normalized trees over HTTP",
		Long: `Serve normalized trees over HTTP.

Endpoints:
  GET /healthz
  GET /api/v1/modes
  GET /api/v1/trees/example
  GET /api/v1/trees/example/{mode}?format=svg|png|pdf|dot|json|text

The {mode} endpoint accepts label, title and detailed query parameters.
Rendered artifacts are cached in Redis when cache.redis_addr is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Server.Addr
			}
			runner, err := c.newRunner(cmd.Context(), noCache)
			if err != nil {
				return err
			}
			defer runner.Close()
			return c.runServer(cmd.Context(), addr, newServer(runner, c.Config, c.Logger))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default "+DefaultAddr+")")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServer serves until ctx is cancelled, then shuts down gracefully.
func (c *CLI) runServer(ctx context.Context, addr string, s *server) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	printSuccess("Listening on %s", StyleLink.Render("http://"+ln.Addr().String()))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// server holds the HTTP handlers.
type server struct {
	runner *pipeline.Runner
	cfg    Config
	logger *log.Logger
}

func newServer(r *pipeline.Runner, cfg Config, logger *log.Logger) *server {
	return &server{runner: r, cfg: cfg, logger: logger}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(observe)
	r.Use(middleware.SetHeader("Server", buildinfo.UserAgent()))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/modes", s.handleModes)
		r.Get("/trees/example", s.handleExample)
		r.Get("/trees/example/{mode}", s.handleNormalize)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, terrors.New(terrors.ErrCodeInvalidPath, "no route for %s", r.URL.Path))
	})
	return r
}

// observe reports every request to the server hooks.
func observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		hooks := observability.Server()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, time.Since(start))
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

type modeInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *server) handleModes(w http.ResponseWriter, r *http.Request) {
	out := make([]modeInfo, 0, len(bintree.Modes()))
	for _, m := range bintree.Modes() {
		out = append(out, modeInfo{Name: m.String(), Description: modeDescriptions[m]})
	}
	writeJSON(w, http.StatusOK, out)
}

type exampleResponse struct {
	Nodes  int             `json:"nodes"`
	Depth  int             `json:"depth"`
	Shapes map[string]bool `json:"shapes"`
	Tree   *tio.TreeNode   `json:"tree"`
}

func (s *server) handleExample(w http.ResponseWriter, r *http.Request) {
	root := bintree.Example()
	shapes := make(map[string]bool, 3)
	for _, m := range bintree.Modes() {
		shapes[m.String()] = bintree.Is(root, m)
	}
	writeJSON(w, http.StatusOK, exampleResponse{
		Nodes:  bintree.Count(root),
		Depth:  bintree.MaxDepth(root),
		Shapes: shapes,
		Tree:   tio.ToTreeNode(root),
	})
}

func (s *server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	mode, err := bintree.ParseMode(chi.URLParam(r, "mode"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	opts := pipeline.Options{
		Mode:    mode,
		Formats: []string{format},
		Layout:  s.cfg.Layout,
		Label:   s.cfg.Label,
		Title:   q.Get("title"),
		Logger:  s.logger,
	}
	if v := q.Get("label"); v != "" {
		opts.Label = v
	}
	for name, dst := range map[string]*bool{"detailed": &opts.Detailed, "refresh": &opts.Refresh} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, terrors.New(terrors.ErrCodeInvalidInput, "%s must be a boolean, got %q", name, v))
			return
		}
		*dst = b
	}
	if opts.Title != "" {
		if err := terrors.ValidateLabel(opts.Title); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	res, err := s.runner.Execute(r.Context(), bintree.Example(), opts)
	if err != nil {
		status := http.StatusInternalServerError
		if terrors.IsInvalid(err) {
			status = http.StatusBadRequest
		} else {
			s.logger.Error("normalize request failed", "mode", mode, "format", format, "err", err)
		}
		writeError(w, status, err)
		return
	}

	w.Header().Set("Content-Type", pipeline.ContentType(format))
	w.Header().Set("X-Tree-Nodes", strconv.Itoa(res.Normalize.After))
	w.Header().Set("X-Tree-Placeholders", strconv.Itoa(res.Normalize.Placeholders))
	if res.CacheInfo.RenderHit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	var body errorBody
	body.Error.Code = string(terrors.GetCode(err))
	if body.Error.Code == "" {
		body.Error.Code = string(terrors.ErrCodeInternal)
	}
	body.Error.Message = terrors.UserMessage(err)
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
