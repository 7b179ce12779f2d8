package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"os-scheduler/internal/replay"
	"os-scheduler/internal/report"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/schedulers"
)

var (
	processFile  string
	processNames []string
	arrivalTimes []int
	burstTimes   []int
	priorities   []int
	algorithm    string
	timeQuantum  int
	outputFormat string
	animate      bool
	interval     time.Duration
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate a process set and print the Gantt chart and statistics",
	Example: `  os-scheduler simulate --processes A,B,C --arrival 0,0,0 --burst 4,3,2 --algorithm FCFS
  os-scheduler simulate --file jobs.yaml --algorithm all --output json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		request, err := buildRequest(cmd)
		if err != nil {
			return err
		}
		return simulate(cmd.Context(), cmd.OutOrStdout(), request, cmd.Flags().Changed("interval"))
	},
}

func buildRequest(cmd *cobra.Command) (requests.ScheduleRequest, error) {
	var request requests.ScheduleRequest
	if processFile != "" {
		loaded, err := requests.LoadFile(processFile)
		if err != nil {
			return request, err
		}
		request = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("processes") {
		request.Processes = processNames
	}
	if flags.Changed("arrival") {
		request.ArrivalTimes = arrivalTimes
	}
	if flags.Changed("burst") {
		request.BurstTimes = burstTimes
	}
	if flags.Changed("priority") {
		request.Priorities = priorities
	}
	if flags.Changed("algorithm") || request.Algorithm == "" {
		request.Algorithm = algorithm
	}
	if flags.Changed("quantum") {
		q := timeQuantum
		request.TimeQuantum = &q
	}
	return request, nil
}

func simulate(ctx context.Context, w io.Writer, request requests.ScheduleRequest, intervalSet bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.EqualFold(strings.TrimSpace(request.Algorithm), "all") {
		comparison, err := schedulers.ScheduleAll(request, cfg.RoundRobinTimeQuantum)
		if err != nil {
			return err
		}
		if outputFormat == "table" {
			report.WriteComparison(w, comparison)
			return nil
		}
		return encode(w, comparison)
	}

	policy, err := schedulers.ParsePolicy(request.Algorithm)
	if err != nil {
		return err
	}
	if animate {
		pace := cfg.ReplayInterval
		if intervalSet {
			pace = interval
		}
		if err := play(ctx, w, request, policy, pace); err != nil {
			return err
		}
	}
	response, err := schedulers.Schedule(request, policy, cfg.RoundRobinTimeQuantum)
	if err != nil {
		return err
	}
	if outputFormat == "table" {
		report.Write(w, response)
		return nil
	}
	return encode(w, response)
}

func play(ctx context.Context, w io.Writer, request requests.ScheduleRequest, policy schedulers.Policy, pace time.Duration) error {
	set, err := request.ProcessSet()
	if err != nil {
		return err
	}
	sched, err := schedulers.NewScheduler(policy, request.Quantum(cfg.RoundRobinTimeQuantum))
	if err != nil {
		return err
	}
	frames, err := schedulers.Frames(set, sched)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	return replay.Play(ctx, frames, pace, func(f replay.Frame) error {
		report.WriteFrame(w, f)
		return nil
	})
}

func encode(w io.Writer, v interface{}) error {
	switch outputFormat {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown output format %q (table, json, yaml)", outputFormat)
	}
}

func init() {
	simulateCmd.Flags().StringVarP(&processFile, "file", "f", "", "YAML or JSON file with processes, arrival_times, burst_times, priorities")
	simulateCmd.Flags().StringSliceVar(&processNames, "processes", nil, "Comma-separated process names")
	simulateCmd.Flags().IntSliceVar(&arrivalTimes, "arrival", nil, "Comma-separated arrival times")
	simulateCmd.Flags().IntSliceVar(&burstTimes, "burst", nil, "Comma-separated burst times")
	simulateCmd.Flags().IntSliceVar(&priorities, "priority", nil, "Comma-separated priorities (lower is higher)")
	simulateCmd.Flags().StringVarP(&algorithm, "algorithm", "a", "FCFS", "FCFS, SJF, \"Round Robin\" (rr), Priority, or all")
	simulateCmd.Flags().IntVarP(&timeQuantum, "quantum", "q", 0, "Round Robin time quantum (defaults to the configured one)")
	simulateCmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "Output format: table, json, yaml")
	simulateCmd.Flags().BoolVar(&animate, "animate", false, "Replay the run tick by tick before printing results")
	simulateCmd.Flags().DurationVar(&interval, "interval", time.Second, "Delay between replayed ticks (overrides config)")
}
