package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ContentWrites counts accepted content mutations by resource and action.
var ContentWrites = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "interior_site",
		Name:      "content_writes_total",
		Help:      "Number of accepted content mutations.",
	},
	[]string{"resource", "action"},
)
