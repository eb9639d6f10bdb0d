// Package observability provides metrics and tracing for the application.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "playto_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// LikesRegistered counts like registrations by target kind and outcome.
	LikesRegistered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "playto_likes_registered_total",
		Help: "Total number of like registrations by target and outcome",
	}, []string{"target", "outcome"})

	// OrphanCommentsDropped counts comments dropped from feed trees because
	// their parent no longer resolves. A rising rate is a data-quality signal.
	OrphanCommentsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "playto_orphan_comments_dropped_total",
		Help: "Total number of comments dropped during tree building because their parent was missing",
	})

	// FeedEventsDelivered counts pub/sub feed events observed by this
	// instance's subscriber, by channel kind.
	FeedEventsDelivered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "playto_feed_events_delivered_total",
		Help: "Total number of feed events delivered over pub/sub by channel kind",
	}, []string{"channel"})

	// FeedAssemblyDuration records how long assembling the full feed payload takes.
	FeedAssemblyDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "playto_feed_assembly_duration_seconds",
		Help:    "Feed assembly duration in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// LeaderboardDuration records how long computing the leaderboard takes.
	LeaderboardDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "playto_leaderboard_duration_seconds",
		Help:    "Leaderboard computation duration in seconds",
		Buckets: prometheus.DefBuckets,
	})
)
