package calculator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var calculationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "calculations_saved_total",
		Help: "Total number of persisted calculations",
	},
	[]string{"operation"},
)
