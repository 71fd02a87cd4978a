package zchartserver

import (
	"bytes"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/mux"
	"github.com/mileusna/useragent"
	"github.com/torlangballe/zchart/zcache"
	"github.com/torlangballe/zchart/zchart"
	"github.com/torlangballe/zchart/zdict"
	"github.com/torlangballe/zchart/zerrors"
	"github.com/torlangballe/zchart/zfloat"
	"github.com/torlangballe/zchart/zjson"
	"github.com/torlangballe/zchart/zlog"
	"github.com/torlangballe/zchart/zmath/zhistogram"
	"github.com/torlangballe/zchart/zrest"
	"github.com/torlangballe/zchart/ztelemetry"
)

const (
	HistogramPath = "histogram.svg"
	MetricsPath   = "metrics"
)

// CacheSecs is how long a GET chart is kept for an identical query
var CacheSecs = 60.0

// MaxClasses is the most classes a GET histogram may have
var MaxClasses = 1000

// MaxPostBytes limits the size of a posted chart
var MaxPostBytes int64 = 8 << 20

// Server renders histogram charts over http.
// Each request builds its own chart; only the metrics and the GET cache are shared.
type Server struct {
	Router        *mux.Router
	Defaults      zchart.Config // Defaults is the config a request's settings are applied over
	Telemetry     *ztelemetry.Registry
	cache         *zcache.Cache[[]byte]
	renders       *ztelemetry.CounterVec
	clients       *ztelemetry.CounterVec
	cacheHits     ztelemetry.Counter
	renderErrors  ztelemetry.Counter
	renderSeconds ztelemetry.Histogram
}

func New(defaults zchart.Config) *Server {
	s := &Server{Defaults: defaults}
	s.Router = mux.NewRouter()
	s.cache = zcache.New[[]byte](CacheSecs)
	s.Telemetry = ztelemetry.NewRegistry("zchart", true)
	s.renders = s.Telemetry.NewCounterVec("renders_total", "Charts rendered.", "source")
	s.clients = s.Telemetry.NewCounterVec("client_requests_total", "Chart requests by client family.", "client")
	s.cacheHits = s.Telemetry.NewCounter("cache_hits_total", "GET charts served from cache.")
	s.renderErrors = s.Telemetry.NewCounter("render_errors_total", "Chart requests that failed.")
	s.renderSeconds = s.Telemetry.NewHistogram("render_seconds", "Time to build and write a chart.", []float64{0.001, 0.005, 0.02, 0.1, 0.5})
	zrest.AddHandler(s.Router, HistogramPath, s.Telemetry.WrapHandler("post_histogram", s.countClient(s.handlePost))).Methods("POST")
	zrest.AddHandler(s.Router, HistogramPath, s.Telemetry.WrapHandler("get_histogram", s.countClient(s.handleGet))).Methods("GET")
	s.Router.Handle(zrest.AppURLPrefix+MetricsPath, s.Telemetry.Handler()).Methods("GET")
	return s
}

// ClientFamily is the browser name of a User-Agent, "bot" for crawlers, or "unknown"
func ClientFamily(userAgent string) string {
	ua := useragent.Parse(userAgent)
	if ua.Bot {
		return "bot"
	}
	if ua.Name == "" {
		return "unknown"
	}
	return ua.Name
}

func (s *Server) countClient(f http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		s.clients.WithLabelValues(ClientFamily(req.UserAgent())).Inc()
		f(w, req)
	}
}

// ListenAndServe serves the router on address, like ":8080"
func (s *Server) ListenAndServe(address string) error {
	server := &http.Server{
		Addr:              address,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
	zlog.Info("Serving charts on:", address)
	return server.ListenAndServe()
}

// handlePost renders a zchart.ChartFile posted as json. Config fields not given are s.Defaults.
func (s *Server) handlePost(w http.ResponseWriter, req *http.Request) {
	cf := zchart.ChartFile{Config: s.Defaults}
	body := http.MaxBytesReader(w, req.Body, MaxPostBytes)
	err := zjson.Unmarshal(&cf, body)
	body.Close()
	if err != nil {
		s.fail(w, req, err, "decoding chart")
		return
	}
	s.render(w, req, "post", zchart.New(cf.Config, cf.Series...))
}

// handleGet bins the values query parameter into a sample histogram and renders it.
// step, min and max set the classes; they default to ten classes over the values' range.
// ranges instead gives each class's max, with classes starting at min.
func (s *Server) handleGet(w http.ResponseWriter, req *http.Request) {
	key := req.URL.RawQuery
	svg, got := s.cache.Get(key)
	if got {
		s.cacheHits.Inc()
		s.write(w, req, svg)
		return
	}
	vals := req.URL.Query()
	values, err := zrest.GetFloatsVal(vals, "values")
	if err != nil {
		s.fail(w, req, err, "parsing values")
		return
	}
	if len(values) == 0 {
		s.fail(w, req, zlog.NewError("no values given"), "parsing values")
		return
	}
	h, err := histogramFromQuery(vals, values)
	if err != nil {
		s.fail(w, req, err, "setting up classes")
		return
	}
	h.Unit = vals.Get("unit")
	h.AddValues(values...)

	opts := zhistogram.DefaultDrawOpts()
	opts.Config = s.configFromQuery(req)
	opts.OutlierBelow = true
	opts.AsPercent = zrest.GetBoolVal(vals, "percent")
	chart := zchart.New(opts.Config, h.Series(opts.Config.Title, opts))
	svg = s.render(w, req, "get", chart)
	if svg != nil {
		s.cache.Put(key, svg)
	}
}

func histogramFromQuery(vals url.Values, values []float64) (*zhistogram.Histogram, error) {
	min := zrest.GetFloatVal(vals, "min", zfloat.Slice(values).Minimum())
	if vals.Has("ranges") {
		maxes, err := zrest.GetFloatsVal(vals, "ranges")
		if err != nil {
			return nil, err
		}
		if len(maxes) == 0 || len(maxes) > MaxClasses {
			return nil, zerrors.MakeContextError(zdict.Dict{"ranges": len(maxes), "limit": MaxClasses}, "bad number of ranges")
		}
		prev := min
		for _, m := range maxes {
			if !(m > prev) || math.IsInf(m, 0) {
				return nil, zerrors.MakeContextError(zdict.Dict{"range": m, "previous": prev}, "ranges must increase from min")
			}
			prev = m
		}
		h := zhistogram.New(0, 0, 0)
		h.SetupRanges(min, maxes...)
		return h, nil
	}
	max := zrest.GetFloatVal(vals, "max", zfloat.Slice(values).Maximum())
	step := zrest.GetFloatVal(vals, "step", 0)
	if step <= 0 {
		step = (max - min) / 10
		if step <= 0 {
			step = 1
		}
	}
	if max <= min {
		max = min + step
	}
	// catches NaN and infinite bounds too
	if !((max-min)/step <= float64(MaxClasses)) {
		return nil, zerrors.MakeContextError(zdict.Dict{"min": min, "max": max, "step": step, "limit": MaxClasses}, "too many classes")
	}
	return zhistogram.New(step, min, max), nil
}

func (s *Server) configFromQuery(req *http.Request) zchart.Config {
	vals := req.URL.Query()
	c := s.Defaults
	c.Width = zrest.GetFloatVal(vals, "width", c.Width)
	c.Height = zrest.GetFloatVal(vals, "height", c.Height)
	if vals.Has("title") {
		c.Title = vals.Get("title")
	}
	c.Horizontal = c.Horizontal || zrest.GetBoolVal(vals, "horizontal")
	c.Logarithmic = c.Logarithmic || zrest.GetBoolVal(vals, "logarithmic")
	c.PrintValues = c.PrintValues || zrest.GetBoolVal(vals, "printValues")
	c.SeriesMargin = zrest.GetFloatVal(vals, "seriesMargin", c.SeriesMargin)
	return c
}

// render writes chart to w, returning the svg written, or nil on failure.
func (s *Server) render(w http.ResponseWriter, req *http.Request, source string, chart *zchart.Chart) []byte {
	start := time.Now()
	var buf bytes.Buffer
	err := chart.Render(&buf)
	if err != nil {
		s.fail(w, req, err, "rendering chart")
		return nil
	}
	s.write(w, req, buf.Bytes())
	s.renders.WithLabelValues(source).Inc()
	s.renderSeconds.Observe(time.Since(start).Seconds())
	return buf.Bytes()
}

func (s *Server) write(w http.ResponseWriter, req *http.Request, svg []byte) {
	w.Header().Set("Content-Type", "image/svg+xml")
	zrest.AddCORSHeaders(w, req)
	_, err := w.Write(svg)
	if err != nil {
		zlog.Error(err, "write chart")
	}
}

func (s *Server) fail(w http.ResponseWriter, req *http.Request, err error, what string) {
	s.renderErrors.Inc()
	zrest.ReturnAndPrintError(w, req, http.StatusBadRequest, what+":", err)
}
