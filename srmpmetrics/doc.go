// Package srmpmetrics implements srmp.MetricsSink on top of
// github.com/prometheus/client_golang, so a running Solver can be observed
// without the core srmp package depending on Prometheus itself.
package srmpmetrics
