package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"

	"github.com/gitCabezas/PontoJovem/internal"
	"github.com/gitCabezas/PontoJovem/internal/logging"
)

func setupMetrics(db *gorm.DB) *prometheus.Registry {
	registry := prometheus.NewRegistry()

	if rawDB, err := db.DB(); err == nil {
		registry.MustRegister(collectors.NewDBStatsCollector(rawDB, db.Dialector.Name()))
	}

	registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "build_info",
		Help: "A metric with a constant '1' value labeled by branch, version, commit, and date of the build",
		ConstLabels: prometheus.Labels{
			"branch":  internal.Branch,
			"version": internal.FullVersion(),
			"commit":  internal.Commit,
			"date":    internal.Date,
		},
	}, func() float64 { return 1 }))

	registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "ponto",
		Name:      "users",
		Help:      "The total number of registered users",
	}, countTable(db, "users")))

	registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "ponto",
		Name:      "punch_records",
		Help:      "The total number of punch records",
	}, countTable(db, "punch_records")))

	return registry
}

func countTable(db *gorm.DB, table string) func() float64 {
	return func() float64 {
		var count int64
		if err := db.Table(table).Count(&count).Error; err != nil {
			logging.L.Warn().Err(err).Str("table", table).Msg("count metric")
			return 0
		}
		return float64(count)
	}
}
