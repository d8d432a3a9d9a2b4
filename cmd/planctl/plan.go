package main

import (
	"encoding/json"
	"fmt"
	"io"
	"mobile-depot-planner/internal/adapters/geojson"
	"mobile-depot-planner/internal/adapters/repositories"
	"mobile-depot-planner/internal/domain"
	"mobile-depot-planner/internal/platform/obs"
	"mobile-depot-planner/internal/services"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type planFlags struct {
	points   string
	orders   string
	params   string
	profiles string
	profile  string
	mode     string
	seed     int64
	workers  int
	logLevel string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "planctl",
		Short:         "Plan mobile-depot and courier deliveries offline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newPlanCmd(), newProfilesCmd())
	return root
}

func newPlanCmd() *cobra.Command {
	f := planFlags{}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Run the planner on a GeoJSON point file and print the plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := obs.SetupLogger(f.logLevel, "text"); err != nil {
				return err
			}
			return runPlan(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.points, "points", "", "GeoJSON FeatureCollection of points; the first one is the depot")
	cmd.Flags().StringVar(&f.orders, "orders", "", "JSON array of {id, volume} orders bound to the delivery points")
	cmd.Flags().StringVar(&f.params, "params", "", "YAML or JSON parameter file; unset fields keep their defaults")
	cmd.Flags().StringVar(&f.profiles, "profiles", "data/profiles.yaml", "YAML profile file used with --profile")
	cmd.Flags().StringVar(&f.profile, "profile", "", "Named profile to start from")
	cmd.Flags().StringVar(&f.mode, "mode", "", "dynamic, static or both; empty runs dynamic and adds static when orders are given")
	cmd.Flags().Int64Var(&f.seed, "seed", services.DefaultSearchSeed, "Clustering seed")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "Concurrent grid cells; 0 uses GOMAXPROCS")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
	_ = cmd.MarkFlagRequired("points")

	return cmd
}

func newProfilesCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the profiles of a YAML profile file",
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := repositories.LoadProfiles(path)
			if err != nil {
				return err
			}
			for _, p := range profiles {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tcouriers=%d maxTime=%.2fh\n", p.Name, p.Params.MaxCourierCount, p.Params.MaxTime)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "file", "data/profiles.yaml", "YAML profile file")
	return cmd
}

func runPlan(cmd *cobra.Command, f planFlags) error {
	raw, err := os.ReadFile(f.points)
	if err != nil {
		return fmt.Errorf("read points: %w", err)
	}
	points, err := geojson.DecodePoints(raw)
	if err != nil {
		return err
	}

	params, err := loadParameters(f)
	if err != nil {
		return err
	}

	var orders []domain.Order
	if f.orders != "" {
		if orders, err = loadOrders(f.orders); err != nil {
			return err
		}
	}

	set, err := services.PlanDeliveries(cmd.Context(), services.PlanDeliveriesRequest{
		Points: points,
		Orders: orders,
		Params: params,
		Run:    f.mode,
		Search: services.SearchOptions{Seed: f.seed, Workers: f.workers},
	}, nil)
	if err != nil {
		return err
	}

	return printPlans(cmd.OutOrStdout(), set)
}

func loadParameters(f planFlags) (domain.Parameters, error) {
	params := domain.DefaultParameters()

	if f.profile != "" {
		profiles, err := repositories.LoadProfiles(f.profiles)
		if err != nil {
			return params, err
		}
		found := false
		for _, p := range profiles {
			if p.Name == f.profile {
				params, found = p.Params, true
				break
			}
		}
		if !found {
			return params, fmt.Errorf("profile %q: %w", f.profile, domain.ErrProfileNotFound)
		}
	}

	if f.params != "" {
		b, err := os.ReadFile(f.params)
		if err != nil {
			return params, fmt.Errorf("read params: %w", err)
		}
		// YAML is a superset of JSON, so one decoder serves both formats.
		if err := yaml.Unmarshal(b, &params); err != nil {
			return params, fmt.Errorf("parse params: %v: %w", err, domain.ErrInvalidInput)
		}
	}

	return params, nil
}

func loadOrders(path string) ([]domain.Order, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read orders: %w", err)
	}

	var raw []struct {
		ID     int     `json:"id"`
		Volume float64 `json:"volume"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse orders: %v: %w", err, domain.ErrInvalidInput)
	}

	orders := make([]domain.Order, 0, len(raw))
	for _, o := range raw {
		orders = append(orders, domain.Order{ID: o.ID, Volume: o.Volume})
	}
	return orders, nil
}

func printPlans(w io.Writer, set *services.PlanSet) error {
	for _, plan := range []*domain.PlanResult{set.Dynamic, set.Static} {
		if plan == nil {
			continue
		}
		b, err := geojson.MarshalPlan(plan, nil)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, string(b)); err != nil {
			return err
		}
	}
	return nil
}
