package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// TogglesTotal counts applied like/save toggles, labeled by interaction kind
// and direction ("on"/"off").
var TogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "reelbite_toggles_total",
		Help: "Total number of like/save toggles applied.",
	},
	[]string{"kind", "direction"},
)

// FoodsCreatedTotal counts food items created by partners.
var FoodsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "reelbite_foods_created_total",
		Help: "Total number of food items created.",
	},
)
