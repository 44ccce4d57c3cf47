// Package server is the HTTP backend for the Ponto Jovem mobile app: user
// accounts, daily punch records, password recovery over email, and PDF
// reports published to object storage.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/gitCabezas/PontoJovem/internal"
	"github.com/gitCabezas/PontoJovem/internal/ginutil"
	"github.com/gitCabezas/PontoJovem/internal/logging"
	"github.com/gitCabezas/PontoJovem/internal/server/data"
	"github.com/gitCabezas/PontoJovem/internal/server/email"
	"github.com/gitCabezas/PontoJovem/internal/server/storage"
	"github.com/gitCabezas/PontoJovem/metrics"
)

type Options struct {
	// EnableLogSampling indicates whether or not to sample HTTP access logs.
	// When true, non-error HTTP GET logs are sampled down to 1 every 7
	// seconds grouped by the request path.
	EnableLogSampling bool `yaml:"enableLogSampling"`

	// DBConnectionString is a postgres DSN. When empty the server falls
	// back to a local sqlite file at DBFile.
	DBConnectionString string `yaml:"dbConnectionString"`
	DBFile             string `yaml:"dbFile"`

	EmailAppDomain   string `yaml:"emailAppDomain"`
	EmailFromAddress string `yaml:"emailFromAddress"`
	EmailFromName    string `yaml:"emailFromName"`
	SMTPServer       string `yaml:"smtpServer"`
	SMTPUsername     string `yaml:"smtpUsername"`
	SMTPPassword     string `yaml:"smtpPassword"`

	Storage storage.Options `yaml:"storage"`

	Addr ListenerOptions `yaml:"addr"`
	API  APIOptions      `yaml:"api"`
}

type ListenerOptions struct {
	HTTP    string `yaml:"http"`
	Metrics string `yaml:"metrics"`
}

type APIOptions struct {
	RequestTimeout time.Duration `yaml:"-"`
}

// UnmarshalYAML accepts the timeout as a duration string ("30s", "2m").
func (o *APIOptions) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw struct {
		RequestTimeout string `yaml:"requestTimeout"`
	}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	if raw.RequestTimeout != "" {
		timeout, err := time.ParseDuration(raw.RequestTimeout)
		if err != nil {
			return fmt.Errorf("invalid requestTimeout: %w", err)
		}
		o.RequestTimeout = timeout
	}
	return nil
}

type Server struct {
	options         Options
	db              *gorm.DB
	store           storage.Store
	metricsRegistry *prometheus.Registry
	Addrs           Addrs
	routines        []routine
}

type Addrs struct {
	HTTP    net.Addr
	Metrics net.Addr
}

// New creates a Server, and initializes it. The returned Server is ready to
// run.
func New(options Options) (*Server, error) {
	if options.API.RequestTimeout == 0 {
		options.API.RequestTimeout = time.Minute
	}

	server := &Server{options: options}

	driver, err := databaseDriver(options)
	if err != nil {
		return nil, fmt.Errorf("database driver: %w", err)
	}

	db, err := data.NewDB(driver)
	if err != nil {
		return nil, fmt.Errorf("db: %w", err)
	}
	server.db = db
	server.metricsRegistry = setupMetrics(db)

	if options.Storage.Endpoint != "" {
		store, err := storage.NewClient(context.Background(), options.Storage)
		if err != nil {
			return nil, fmt.Errorf("storage: %w", err)
		}
		server.store = store
	}

	configureEmail(options)

	if err := server.listen(); err != nil {
		return nil, fmt.Errorf("listening: %w", err)
	}

	return server, nil
}

func databaseDriver(options Options) (gorm.Dialector, error) {
	if options.DBConnectionString != "" {
		return data.NewPostgresDriver(options.DBConnectionString)
	}

	file := options.DBFile
	if file == "" {
		file = "ponto.db"
	}
	return data.NewSQLiteDriver(file)
}

// DB returns the database connection pool used by the server. It is
// primarily used by tests to create fixture data.
func (s *Server) DB() *gorm.DB {
	return s.db
}

func (s *Server) Run(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)

	for i := range s.routines {
		group.Go(s.routines[i].run)
	}

	logging.Infof("starting ponto server (%s) - http:%s metrics:%s",
		internal.FullVersion(), s.Addrs.HTTP, s.Addrs.Metrics)

	<-ctx.Done()
	for i := range s.routines {
		s.routines[i].stop()
	}

	err := group.Wait()

	if sqlDB, dbErr := s.db.DB(); dbErr == nil {
		if closeErr := sqlDB.Close(); closeErr != nil {
			logging.L.Warn().Err(closeErr).Msg("failed to close database connection")
		}
	}

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (s *Server) listen() error {
	ginutil.SetMode()
	router := s.GenerateRoutes(s.metricsRegistry)

	httpErrorLog := log.New(logging.NewFilteredHTTPLogger(), "", 0)
	metricsServer := &http.Server{
		ReadHeaderTimeout: 30 * time.Second,
		ReadTimeout:       60 * time.Second,
		Addr:              s.options.Addr.Metrics,
		Handler:           metrics.NewHandler(s.metricsRegistry),
		ErrorLog:          httpErrorLog,
	}

	var err error
	s.Addrs.Metrics, err = s.setupServer(metricsServer)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		ReadHeaderTimeout: 30 * time.Second,
		ReadTimeout:       60 * time.Second,
		Addr:              s.options.Addr.HTTP,
		Handler:           router,
		ErrorLog:          httpErrorLog,
	}
	s.Addrs.HTTP, err = s.setupServer(httpServer)
	return err
}

func (s *Server) setupServer(server *http.Server) (net.Addr, error) {
	if server.Addr == "" {
		server.Addr = "127.0.0.1:"
	}
	l, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return nil, err
	}
	logging.Infof("listening on %s", l.Addr().String())

	s.routines = append(s.routines, routine{
		run: func() error {
			if err := server.Serve(l); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
		stop: func() {
			_ = server.Close()
		},
	})
	return l.Addr(), nil
}

type routine struct {
	run  func() error
	stop func()
}

func configureEmail(options Options) {
	if len(options.EmailAppDomain) > 0 {
		email.AppDomain = options.EmailAppDomain
	}
	if len(options.EmailFromAddress) > 0 {
		email.FromAddress = options.EmailFromAddress
	}
	if len(options.EmailFromName) > 0 {
		email.FromName = options.EmailFromName
	}
	if len(options.SMTPServer) > 0 {
		email.SMTPServer = options.SMTPServer
	}
	if len(options.SMTPUsername) > 0 {
		email.SMTPUsername = options.SMTPUsername
	}
	if len(options.SMTPPassword) > 0 {
		email.SMTPPassword = options.SMTPPassword
	}
}
