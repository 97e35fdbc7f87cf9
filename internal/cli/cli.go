package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"os-scheduler/api"
	"os-scheduler/config"
	"os-scheduler/internal/metrics"
	"os-scheduler/internal/report"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/rpc"
	"os-scheduler/internal/schedulers"
)

const (
	outputTable = "table"
	outputJSON  = "json"

	remoteTimeout = 10 * time.Second
)

var configFile string

func BuildCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scheduler",
		Short: "CPU scheduling simulator",
		Long: `Simulates single-core CPU scheduling over a set of processes with
FCFS, SJF, SRTF, Round Robin and both priority policies, and reports the
timeline together with waiting, turnaround and utilization figures.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (default ./config.yaml when present)")

	rootCmd.AddCommand(buildSimulateCommand())
	rootCmd.AddCommand(buildServeCommand())
	rootCmd.AddCommand(buildAlgorithmsCommand())

	return rootCmd
}

type simulateOptions struct {
	file       string
	algorithm  string
	quantum    int
	all        bool
	output     string
	remoteAddr string
}

func buildSimulateCommand() *cobra.Command {
	opts := simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate a process set from a job file",
		Long:  "Read processes from a .json, .yaml or .csv file and run one algorithm, or all of them with --all. Use --remote to run on a scheduler server.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.output != outputTable && opts.output != outputJSON {
				return fmt.Errorf("unknown output format %q (use %s or %s)", opts.output, outputTable, outputJSON)
			}
			return runSimulate(cmd.Context(), cmd.OutOrStdout(), opts, cmd.Flags().Changed("algorithm"))
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "job file (.json, .yaml, .yml or .csv)")
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", string(schedulers.FirstComeFirstServe), "fcfs, sjf, srtf, rr, priority or priority-preemptive")
	cmd.Flags().IntVarP(&opts.quantum, "quantum", "q", 0, "round robin time quantum (default from config)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "run every algorithm and compare them")
	cmd.Flags().StringVarP(&opts.output, "output", "o", outputTable, "output format: table or json")
	cmd.Flags().StringVar(&opts.remoteAddr, "remote", "", "scheduler gRPC address (e.g. localhost:50051)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runSimulate(ctx context.Context, out io.Writer, opts simulateOptions, algorithmSet bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadSchedulerConfig(configFile)
	if err != nil {
		return err
	}

	request, err := requests.LoadJobs(opts.file)
	if err != nil {
		return err
	}
	if algorithmSet || request.Algorithm == "" {
		request.Algorithm = opts.algorithm
	}
	if opts.quantum > 0 {
		request.TimeQuantum = opts.quantum
	}
	request.Normalize(cfg.RoundRobinTimeQuantum)
	if err := request.Validate(); err != nil {
		return err
	}

	var results []responses.ScheduleResponse
	if opts.remoteAddr != "" {
		results, err = simulateRemote(ctx, opts.remoteAddr, request, opts.all)
	} else {
		results, err = simulateLocal(cfg, request, opts.all)
	}
	if err != nil {
		return err
	}

	if opts.output == outputJSON {
		return writeJSON(out, results, opts.all)
	}
	for _, response := range results {
		report.WriteResponse(out, response)
	}
	if opts.all {
		report.WriteComparison(out, results)
	}
	return nil
}

func simulateLocal(cfg *config.SchedulerConfig, request *requests.ScheduleRequests, all bool) ([]responses.ScheduleResponse, error) {
	scheduler := schedulers.NewScheduler(cfg.RoundRobinTimeQuantum, cfg.Verbose)
	if all {
		return scheduler.ScheduleAll(request)
	}
	response, err := scheduler.Schedule(request)
	if err != nil {
		return nil, err
	}
	return []responses.ScheduleResponse{response}, nil
}

func simulateRemote(ctx context.Context, addr string, request *requests.ScheduleRequests, all bool) ([]responses.ScheduleResponse, error) {
	conn, err := rpc.Dial(addr)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(ctx, remoteTimeout)
	defer cancel()

	client := rpc.NewClient(conn)
	algorithms := []string{request.Algorithm}
	if all {
		algorithms = algorithms[:0]
		for _, algorithm := range schedulers.Algorithms() {
			algorithms = append(algorithms, string(algorithm))
		}
	}

	results := make([]responses.ScheduleResponse, 0, len(algorithms))
	for _, algorithm := range algorithms {
		r := *request
		r.Algorithm = algorithm
		response, err := client.Simulate(ctx, &r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", algorithm, err)
		}
		results = append(results, *response)
	}
	log.Printf("received %d simulation(s) from %s\n", len(results), addr)
	return results, nil
}

func writeJSON(out io.Writer, results []responses.ScheduleResponse, all bool) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if all {
		return encoder.Encode(results)
	}
	return encoder.Encode(results[0])
}

func buildServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the scheduler HTTP and gRPC servers",
		Long:  "Serve the REST API (and /metrics when enabled) on the configured port, plus the gRPC Simulator service when grpc_port is set.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadSchedulerConfig(configFile)
			if err != nil {
				return err
			}
			return serve(cfg)
		},
	}
}

func serve(cfg *config.SchedulerConfig) error {
	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.NewCollector(prometheus.NewRegistry())
	}

	app := api.NewApp(api.NewSchedulerHandlerImpl(cfg, collector), collector)
	errCh := make(chan error, 2)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		log.Printf("HTTP server listening on %s\n", addr)
		if err := app.Listen(addr); err != nil {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	var grpcServer *grpc.Server
	if cfg.GrpcPort > 0 {
		lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GrpcPort))
		if err != nil {
			_ = app.Shutdown()
			return fmt.Errorf("failed to listen on port %d: %w", cfg.GrpcPort, err)
		}

		srv := rpc.NewGrpcServer()
		rpc.RegisterSimulatorServer(srv, rpc.NewServer(schedulers.NewScheduler(cfg.RoundRobinTimeQuantum, cfg.Verbose), collector))
		grpcServer = srv

		log.Printf("gRPC server listening on :%d\n", cfg.GrpcPort)
		go func() {
			if err := srv.Serve(lis); err != nil {
				errCh <- fmt.Errorf("grpc server: %w", err)
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var serveErr error
	select {
	case <-sigChan:
		log.Println("received shutdown signal, stopping gracefully...")
	case serveErr = <-errCh:
		log.Println("server failed:", serveErr)
	}

	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	if err := app.Shutdown(); err != nil {
		serveErr = errors.Join(serveErr, err)
	}
	return serveErr
}

func buildAlgorithmsCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "algorithms",
		Short: "List the supported scheduling algorithms",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogue := schedulers.Catalogue()
			if output == outputJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(catalogue)
			}
			report.WriteCatalogue(cmd.OutOrStdout(), catalogue)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table or json")
	return cmd
}
