package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Factor is a single [0,1] impact score. It decodes defensively: JSON
// numbers and numeric strings are accepted, anything else (null, text,
// absent) resolves to 0 so that aggregation never sees garbage.
type Factor float64

// UnmarshalJSON implements tolerant decoding for a Factor
func (f *Factor) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*f = Factor(num)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if num, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil && !math.IsNaN(num) && !math.IsInf(num, 0) {
			*f = Factor(num)
			return nil
		}
	}

	*f = 0
	return nil
}

// ImpactProfile holds the sixteen sustainability impact factors shared by
// units and skills. The field set is fixed; Factors iterates them in their
// canonical order.
type ImpactProfile struct {
	CarbonFootprint      Factor `json:"opt_carbon_footprint"`
	RenewableEnergy      Factor `json:"opt_renewable_energy"`
	HVAC                 Factor `json:"opt_hvac"`
	OfficeSpace          Factor `json:"opt_office_space"`
	RemoteWork           Factor `json:"opt_remote_work"`
	WorkSchedule         Factor `json:"opt_work_schedule"`
	WaterUse             Factor `json:"opt_water_use"`
	DigitalFootprint     Factor `json:"opt_digital_footprint"`
	AICompute            Factor `json:"opt_ai_compute"`
	IoTTelemetry         Factor `json:"opt_iot_telemetry"`
	HardwareCircularity  Factor `json:"opt_hardware_circularity"`
	SupplyChainEmissions Factor `json:"opt_supply_chain_emissions"`
	LogisticsShipping    Factor `json:"opt_logistics_shipping"`
	FleetElectrification Factor `json:"opt_fleet_electrification"`
	EmployeeCommuting    Factor `json:"opt_employee_commuting"`
	MaterialWaste        Factor `json:"opt_material_waste"`
}

// ImpactFactor pairs a factor value with its identity for generic iteration
type ImpactFactor struct {
	Key   string
	Label string
	Value float64
}

// NumImpactFactors is the size of the fixed factor set
const NumImpactFactors = 16

// Factors returns all sixteen factors in canonical order
func (p ImpactProfile) Factors() []ImpactFactor {
	return []ImpactFactor{
		{Key: "opt_carbon_footprint", Label: "Carbon Footprint", Value: float64(p.CarbonFootprint)},
		{Key: "opt_renewable_energy", Label: "Renewable Energy", Value: float64(p.RenewableEnergy)},
		{Key: "opt_hvac", Label: "HVAC", Value: float64(p.HVAC)},
		{Key: "opt_office_space", Label: "Office Space", Value: float64(p.OfficeSpace)},
		{Key: "opt_remote_work", Label: "Remote Work", Value: float64(p.RemoteWork)},
		{Key: "opt_work_schedule", Label: "Work Schedule", Value: float64(p.WorkSchedule)},
		{Key: "opt_water_use", Label: "Water Use", Value: float64(p.WaterUse)},
		{Key: "opt_digital_footprint", Label: "Digital Footprint", Value: float64(p.DigitalFootprint)},
		{Key: "opt_ai_compute", Label: "AI Compute", Value: float64(p.AICompute)},
		{Key: "opt_iot_telemetry", Label: "IoT Telemetry", Value: float64(p.IoTTelemetry)},
		{Key: "opt_hardware_circularity", Label: "Hardware Circularity", Value: float64(p.HardwareCircularity)},
		{Key: "opt_supply_chain_emissions", Label: "Supply Chain Emissions", Value: float64(p.SupplyChainEmissions)},
		{Key: "opt_logistics_shipping", Label: "Logistics & Shipping", Value: float64(p.LogisticsShipping)},
		{Key: "opt_fleet_electrification", Label: "Fleet Electrification", Value: float64(p.FleetElectrification)},
		{Key: "opt_employee_commuting", Label: "Employee Commuting", Value: float64(p.EmployeeCommuting)},
		{Key: "opt_material_waste", Label: "Material Waste", Value: float64(p.MaterialWaste)},
	}
}

// MeanImpact returns the arithmetic mean over all sixteen factors.
// Non-finite values count as 0 rather than poisoning the mean.
func (p ImpactProfile) MeanImpact() float64 {
	var sum float64
	for _, f := range p.Factors() {
		if math.IsNaN(f.Value) || math.IsInf(f.Value, 0) {
			continue
		}
		sum += f.Value
	}
	return sum / NumImpactFactors
}
