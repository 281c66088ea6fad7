package progress

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Loop exit reasons recorded by loopExits.
const (
	exitStopped    = "stopped"
	exitShutdown   = "shutdown"
	exitWriteError = "write_error"
)

var (
	sessionsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "colorlabels_progress_sessions_total",
			Help: "Total number of progress sessions started",
		},
		[]string{"mode"},
	)

	framesRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "colorlabels_progress_frames_total",
			Help: "Total number of progress frames written",
		},
		[]string{"mode"},
	)

	activeSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "colorlabels_progress_active_sessions",
			Help: "Number of progress sessions currently running",
		},
	)

	loopExits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "colorlabels_progress_loop_exits_total",
			Help: "Animation loop exits by reason (stopped, shutdown, write_error)",
		},
		[]string{"reason"},
	)
)
