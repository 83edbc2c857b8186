package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"minikern/internal/kern"
	"minikern/internal/metrics"
	"minikern/internal/script"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to the YAML config")
	flag.Parse()

	cfg := kern.Load(*configPath)

	tasks := cfg.Tasks
	if len(tasks) == 0 {
		tasks = script.Demo()
	}
	table, err := kern.BuildScripts(tasks)
	if err != nil {
		log.Fatalf("bad task scripts: %v", err)
	}

	sinks := kern.MultiSink{consoleSink{}}
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		sinks = append(sinks, metrics.NewSink(reg))
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				log.Printf("metrics server failed: %v", err)
			}
		}()
	}

	k := kern.New(cfg, table.Step, sinks)

	fmt.Println("--- Kernel Simulation Start ---")
	for _, ts := range tasks {
		k.Spawn(ts.Name, ts.Priority)
	}
	k.Schedule()

	for k.Ticks() < cfg.MaxTicks {
		fmt.Printf("\n--- TICK %d ---\n", k.Ticks()+1)
		if !k.Tick() {
			fmt.Println("[KERNEL] All tasks completed. Shutting down.")
			break
		}
		if t := k.Running(); t != nil {
			fmt.Printf("[CPU] Running: %d. PC: %d\n", t.ID, t.PC)
		}
	}

	fmt.Println("\n--- Simulation End ---")
	fmt.Printf("Total Ticks: %d\n", k.Ticks())

	fmt.Println("\n--- Final Task State ---")
	if t := k.Running(); t != nil {
		fmt.Println(t)
	}
	for _, t := range k.ReadySnapshot() {
		fmt.Println(t)
	}
	fmt.Println("\n(Note: Exited and Blocked tasks are no longer tracked in the queues.)")
}
