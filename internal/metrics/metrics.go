package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RegistrationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nebula_registrations_total",
		Help: "Registration attempts by outcome.",
	}, []string{"status"})

	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nebula_logins_total",
		Help: "Login attempts by outcome.",
	}, []string{"status"})

	TokenRefreshesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nebula_token_refreshes_total",
		Help: "Access-token refresh attempts by outcome.",
	}, []string{"status"})

	ShellRedirectsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nebula_shell_redirects_total",
		Help: "Unrecognized paths redirected to the default route.",
	})

	PageViewsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nebula_page_views_total",
		Help: "Shell page renders by route.",
	}, []string{"route"})
)
