package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// GuardDecisions counts route guard outcomes per navigation request.
	GuardDecisions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "courier_console",
		Name:      "guard_decisions_total",
		Help:      "Route guard decisions by outcome.",
	}, []string{"outcome"})

	// BackendRequests counts calls to the backend REST API.
	BackendRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "courier_console",
		Name:      "backend_requests_total",
		Help:      "Backend API requests by method and status code (0 means transport failure).",
	}, []string{"method", "status"})

	// WorkflowOperations counts order workflow operations by result.
	WorkflowOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "courier_console",
		Name:      "order_workflow_operations_total",
		Help:      "Order workflow operations by operation and result.",
	}, []string{"operation", "result"})
)

func init() {
	prometheus.MustRegister(GuardDecisions, BackendRequests, WorkflowOperations)
}

// ObserveBackend records a finished backend request.
func ObserveBackend(method string, status int) {
	BackendRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

// ObserveWorkflow records the result of a workflow operation.
func ObserveWorkflow(operation string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	WorkflowOperations.WithLabelValues(operation, result).Inc()
}
