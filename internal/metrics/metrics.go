// Package metrics provides a Prometheus sink for kernel trace events.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"minikern/internal/kern"
)

// Sink counts kernel trace events in Prometheus metrics. It implements
// kern.Sink and can be fanned in next to the console renderer.
type Sink struct {
	spawns     prometheus.Counter
	dispatches prometheus.Counter
	requeues   prometheus.Counter
	idles      prometheus.Counter
	calls      *prometheus.CounterVec
}

// NewSink registers the kernel metrics with the given registerer.
func NewSink(reg prometheus.Registerer) *Sink {
	factory := promauto.With(reg)

	return &Sink{
		spawns: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "minikern",
			Subsystem: "kernel",
			Name:      "spawns_total",
			Help:      "Total number of tasks spawned",
		}),
		dispatches: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "minikern",
			Subsystem: "kernel",
			Name:      "dispatches_total",
			Help:      "Total number of tasks dispatched into the CPU slot",
		}),
		requeues: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "minikern",
			Subsystem: "kernel",
			Name:      "requeues_total",
			Help:      "Total number of preempted or yielded tasks requeued",
		}),
		idles: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "minikern",
			Subsystem: "kernel",
			Name:      "idle_total",
			Help:      "Total number of schedule decisions that found no ready task",
		}),
		calls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "minikern",
			Subsystem: "kernel",
			Name:      "calls_total",
			Help:      "Total number of kernel calls handled, by call kind",
		}, []string{"call"}),
	}
}

func (s *Sink) Record(ev kern.Event) {
	switch ev.Kind {
	case kern.EventSpawn:
		s.spawns.Inc()
	case kern.EventDispatch:
		s.dispatches.Inc()
	case kern.EventRequeue:
		s.requeues.Inc()
	case kern.EventIdle:
		s.idles.Inc()
	case kern.EventYield:
		s.calls.WithLabelValues("yield").Inc()
	case kern.EventPrint:
		s.calls.WithLabelValues("print").Inc()
	case kern.EventExit:
		s.calls.WithLabelValues("exit").Inc()
	case kern.EventBlock:
		s.calls.WithLabelValues("block").Inc()
	}
}
