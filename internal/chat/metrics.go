package chat

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pollsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_polls_total",
			Help: "Board polls by result",
		},
		[]string{"result"},
	)

	activePollers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chat_active_pollers",
			Help: "Board pollers currently running",
		},
	)

	postsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_posts_created_total",
			Help: "Posts created through the compose forms",
		},
		[]string{"kind"},
	)
)
