// Package features maps typed request records onto the fixed-order numeric
// vectors the exported models were trained on.
package features

import "math"

// Field is one model input column. Integer fields carry coded values; they
// decode as float64 so 1.0 is accepted, and the schema rejects fractions.
type Field struct {
	Name    string
	Integer bool
}

// Names returns the field names in model order.
func Names(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Name
	}
	return out
}

// Column order is part of the model contract; do not reorder.
var (
	HealthFields = []Field{
		{Name: "age"},
		{Name: "gender", Integer: true},
		{Name: "bmi"},
		{Name: "systolic_bp"},
		{Name: "diastolic_bp"},
		{Name: "cholesterol"},
		{Name: "glucose"},
		{Name: "smoking", Integer: true},
		{Name: "physical_activity"},
		{Name: "aqi_exposure"},
		{Name: "heat_exposure"},
	}

	CarbonFields = []Field{
		{Name: "meat_meals_per_week"},
		{Name: "dairy_consumption"},
		{Name: "veg_consumption"},
		{Name: "car_km_per_week"},
		{Name: "public_transport_km"},
		{Name: "electricity_kwh"},
		{Name: "plastic_waste_kg"},
	}

	SurgeFields = []Field{
		{Name: "avg_temp"},
		{Name: "humidity"},
		{Name: "heat_index"},
		{Name: "aqi"},
		{Name: "percent_beds_occupied"},
		{Name: "percent_icu_occupied"},
		{Name: "prev_admissions"},
	}
)

type HealthInput struct {
	Age              float64 `json:"age"`
	Gender           float64 `json:"gender"`
	BMI              float64 `json:"bmi"`
	SystolicBP       float64 `json:"systolic_bp"`
	DiastolicBP      float64 `json:"diastolic_bp"`
	Cholesterol      float64 `json:"cholesterol"`
	Glucose          float64 `json:"glucose"`
	Smoking          float64 `json:"smoking"`
	PhysicalActivity float64 `json:"physical_activity"`
	AQIExposure      float64 `json:"aqi_exposure"`
	HeatExposure     float64 `json:"heat_exposure"`
}

// Vector returns the health features in HealthFields order.
func (in HealthInput) Vector() []float64 {
	return []float64{
		in.Age,
		math.Trunc(in.Gender),
		in.BMI,
		in.SystolicBP,
		in.DiastolicBP,
		in.Cholesterol,
		in.Glucose,
		math.Trunc(in.Smoking),
		in.PhysicalActivity,
		in.AQIExposure,
		in.HeatExposure,
	}
}

type CarbonInput struct {
	MeatMealsPerWeek  float64 `json:"meat_meals_per_week"`
	DairyConsumption  float64 `json:"dairy_consumption"`
	VegConsumption    float64 `json:"veg_consumption"`
	CarKmPerWeek      float64 `json:"car_km_per_week"`
	PublicTransportKm float64 `json:"public_transport_km"`
	ElectricityKWh    float64 `json:"electricity_kwh"`
	PlasticWasteKg    float64 `json:"plastic_waste_kg"`
}

// Vector returns the carbon features in CarbonFields order.
func (in CarbonInput) Vector() []float64 {
	return []float64{
		in.MeatMealsPerWeek,
		in.DairyConsumption,
		in.VegConsumption,
		in.CarKmPerWeek,
		in.PublicTransportKm,
		in.ElectricityKWh,
		in.PlasticWasteKg,
	}
}

type SurgeInput struct {
	AvgTemp             float64 `json:"avg_temp"`
	Humidity            float64 `json:"humidity"`
	HeatIndex           float64 `json:"heat_index"`
	AQI                 float64 `json:"aqi"`
	PercentBedsOccupied float64 `json:"percent_beds_occupied"`
	PercentICUOccupied  float64 `json:"percent_icu_occupied"`
	PrevAdmissions      float64 `json:"prev_admissions"`
}

// Vector returns the surge features in SurgeFields order.
func (in SurgeInput) Vector() []float64 {
	return []float64{
		in.AvgTemp,
		in.Humidity,
		in.HeatIndex,
		in.AQI,
		in.PercentBedsOccupied,
		in.PercentICUOccupied,
		in.PrevAdmissions,
	}
}
