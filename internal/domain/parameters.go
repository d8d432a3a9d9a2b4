package domain

import (
	"errors"
	"fmt"
)

// Parameters is the read-only cost and capacity configuration of one planning
// request. Rates are per hour, distances and speeds share one length unit,
// times are in hours.
type Parameters struct {
	FuelRateMobStorage    float64 `json:"fuelRateMobStorage" yaml:"fuelRateMobStorage"`
	FuelRateCourierCar    float64 `json:"fuelRateCourierCar" yaml:"fuelRateCourierCar"`
	FuelCost              float64 `json:"fuelCost" yaml:"fuelCost"`
	MobStorageRate        float64 `json:"mobStorageRate" yaml:"mobStorageRate"`
	CourierCarRate        float64 `json:"courierCarRate" yaml:"courierCarRate"`
	DriverSalary          float64 `json:"driverSalary" yaml:"driverSalary"`
	MaxCourierCount       int     `json:"maxCountCouriers" yaml:"maxCountCouriers"`
	CourierSalary         float64 `json:"courierSalary" yaml:"courierSalary"`
	CourierScooterRate    float64 `json:"courierScooterRate" yaml:"courierScooterRate"`
	EnergyConsumption     float64 `json:"energyConsumption" yaml:"energyConsumption"`
	EnergyConsumptionCost float64 `json:"energyConsumptionCost" yaml:"energyConsumptionCost"`
	MaxCourierCarCapacity float64 `json:"maxCourierCarCapacity" yaml:"maxCourierCarCapacity"`
	MaxDeliveryCapacity   float64 `json:"maxDeliveryCapacity" yaml:"maxDeliveryCapacity"`
	MaxTime               float64 `json:"maxTime" yaml:"maxTime"`
	OrderProcessingTime   float64 `json:"orderProcessingTime" yaml:"orderProcessingTime"`
	CourierScooterSpeed   float64 `json:"courierScooterSpeed" yaml:"courierScooterSpeed"`
	MobStorageSpeed       float64 `json:"mobStorageSpeed" yaml:"mobStorageSpeed"`
}

// DefaultParameters returns the reference tariff used when a request names
// no profile.
func DefaultParameters() Parameters {
	return Parameters{
		FuelRateMobStorage:    0.1,
		FuelRateCourierCar:    0.08,
		FuelCost:              50,
		MobStorageRate:        400,
		CourierCarRate:        300,
		DriverSalary:          3800,
		MaxCourierCount:       5,
		CourierSalary:         2500,
		CourierScooterRate:    10,
		EnergyConsumption:     0.5,
		EnergyConsumptionCost: 6,
		MaxCourierCarCapacity: 300,
		MaxDeliveryCapacity:   30,
		MaxTime:               12,
		OrderProcessingTime:   0.5,
		CourierScooterSpeed:   18,
		MobStorageSpeed:       60,
	}
}

// Validate rejects parameter records the cost model cannot evaluate.
func (p Parameters) Validate() error {
	var errs []error

	if p.MaxCourierCount < 1 {
		errs = append(errs, fmt.Errorf("maxCountCouriers must be at least 1, got %d", p.MaxCourierCount))
	}
	if p.CourierScooterSpeed <= 0 {
		errs = append(errs, fmt.Errorf("courierScooterSpeed must be positive, got %v", p.CourierScooterSpeed))
	}
	if p.MobStorageSpeed <= 0 {
		errs = append(errs, fmt.Errorf("mobStorageSpeed must be positive, got %v", p.MobStorageSpeed))
	}
	if p.MaxTime <= 0 {
		errs = append(errs, fmt.Errorf("maxTime must be positive, got %v", p.MaxTime))
	}
	if p.OrderProcessingTime < 0 {
		errs = append(errs, fmt.Errorf("orderProcessingTime must not be negative, got %v", p.OrderProcessingTime))
	}
	if p.MaxCourierCarCapacity < 0 || p.MaxDeliveryCapacity < 0 {
		errs = append(errs, errors.New("capacities must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validate parameters: %w: %w", ErrInvalidInput, errors.Join(errs...))
	}
	return nil
}

// Profile is a named, stored Parameters preset.
type Profile struct {
	Name   string     `json:"name" yaml:"name"`
	Params Parameters `json:"parameters" yaml:"parameters"`
}
