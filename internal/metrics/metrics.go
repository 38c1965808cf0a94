// Package metrics defines the custom Prometheus metrics for the user
// management API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "usermgmt"

// UsersCreatedTotal counts successful user registrations.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users successfully registered.",
	},
)

// UsersUpdatedTotal counts successful user updates.
var UsersUpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_updated_total",
		Help:      "Total number of users successfully updated.",
	},
)

// UsersDeletedTotal counts successful user deletions.
var UsersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deleted_total",
		Help:      "Total number of users deleted.",
	},
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// UserSearchesTotal counts name-search requests.
var UserSearchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_searches_total",
		Help:      "Total number of user search requests served.",
	},
)

// CacheRequestsTotal counts user-cache lookups.
// Label:
//   - result: "hit" or "miss"
var CacheRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_requests_total",
		Help:      "Total number of user cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
