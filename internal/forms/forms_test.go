package forms

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"herbarium/models"
)

func plantingFields() []Field {
	return []Field{
		{Name: "plantId", Label: "Plant", Kind: KindRef, Required: true},
		{Name: "plotId", Label: "Plot", Kind: KindRef},
		{Name: "plantingDate", Label: "Planting date", Kind: KindDate},
		{Name: "method", Label: "Method", Kind: KindSelect, Options: []string{"Direct sow", "Transplant"}},
		{Name: "quantityPlanted", Label: "Quantity", Kind: KindNumber},
		{Name: "spacingCm", Label: "Spacing (cm)", Kind: KindDecimal},
		{Name: "notes", Label: "Notes", Kind: KindTextarea},
	}
}

func TestBindAssignsTypedValues(t *testing.T) {
	t.Parallel()

	values := url.Values{
		"plantId":         {"5"},
		"plotId":          {"2"},
		"plantingDate":    {"2024-03-01"},
		"method":          {"Direct sow"},
		"quantityPlanted": {"10"},
		"spacingCm":       {"15.5"},
		"notes":           {"  front of the tea bed  "},
	}

	var planting models.Planting
	if err := Bind(values, plantingFields(), &planting); err != nil {
		t.Fatalf("Bind() error = %v", err)
	}

	if planting.PlantID != 5 {
		t.Fatalf("PlantID = %d, want 5", planting.PlantID)
	}
	if planting.PlotID == nil || *planting.PlotID != 2 {
		t.Fatalf("PlotID = %v, want 2", planting.PlotID)
	}
	want := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !planting.PlantingDate.Equal(want) {
		t.Fatalf("PlantingDate = %v, want %v", planting.PlantingDate, want)
	}
	if planting.QuantityPlanted != 10 {
		t.Fatalf("QuantityPlanted = %d, want 10", planting.QuantityPlanted)
	}
	if planting.SpacingCm != 15.5 {
		t.Fatalf("SpacingCm = %v, want 15.5", planting.SpacingCm)
	}
	if planting.Notes != "front of the tea bed" {
		t.Fatalf("Notes = %q, want trimmed value", planting.Notes)
	}
}

func TestBindOptionalRefStaysNil(t *testing.T) {
	t.Parallel()

	values := url.Values{"plantId": {"5"}}
	var planting models.Planting
	if err := Bind(values, plantingFields(), &planting); err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	if planting.PlotID != nil {
		t.Fatalf("PlotID = %v, want nil", planting.PlotID)
	}
}

func TestBindCollectsValidationErrors(t *testing.T) {
	t.Parallel()

	values := url.Values{
		"plantingDate":    {"March 1st"},
		"quantityPlanted": {"many"},
		"method":          {"Broadcast"},
	}

	var planting models.Planting
	err := Bind(values, plantingFields(), &planting)
	if err == nil {
		t.Fatal("expected validation errors")
	}

	var errs Errors
	if !errors.As(err, &errs) {
		t.Fatalf("error type = %T, want Errors", err)
	}

	got := map[string]bool{}
	for _, fieldErr := range errs {
		got[fieldErr.Field] = true
	}
	for _, want := range []string{"plantId", "plantingDate", "quantityPlanted", "method"} {
		if !got[want] {
			t.Fatalf("expected validation error for %q, got %v", want, errs)
		}
	}
}

func TestBindBoolCheckbox(t *testing.T) {
	t.Parallel()

	fields := []Field{
		{Name: "botanicalName", Label: "Botanical name", Kind: KindText, Required: true},
		{Name: "edible", Label: "Edible", Kind: KindBool},
	}

	var plant models.Plant
	if err := Bind(url.Values{"botanicalName": {"Calendula officinalis"}, "edible": {"on"}}, fields, &plant); err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	if !plant.Edible {
		t.Fatal("expected checked checkbox to bind true")
	}

	var unchecked models.Plant
	if err := Bind(url.Values{"botanicalName": {"Calendula officinalis"}}, fields, &unchecked); err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	if unchecked.Edible {
		t.Fatal("expected absent checkbox to bind false")
	}
}

func TestBindRejectsUnknownField(t *testing.T) {
	t.Parallel()

	var plant models.Plant
	err := Bind(url.Values{}, []Field{{Name: "noSuchColumn", Label: "Mystery", Kind: KindText}}, &plant)
	if err == nil {
		t.Fatal("expected error for unmatched field declaration")
	}
}

func TestValuesRoundTrip(t *testing.T) {
	t.Parallel()

	plotID := uint(2)
	planting := models.Planting{
		PlantID:         5,
		PlotID:          &plotID,
		PlantingDate:    time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		Method:          "Direct sow",
		QuantityPlanted: 10,
		SpacingCm:       15.5,
		Notes:           "front row",
	}

	values := Values(plantingFields(), &planting)
	if values["plantId"] != "5" {
		t.Fatalf("plantId = %q, want 5", values["plantId"])
	}
	if values["plotId"] != "2" {
		t.Fatalf("plotId = %q, want 2", values["plotId"])
	}
	if values["plantingDate"] != "2024-03-01" {
		t.Fatalf("plantingDate = %q, want 2024-03-01", values["plantingDate"])
	}
	if values["spacingCm"] != "15.5" {
		t.Fatalf("spacingCm = %q, want 15.5", values["spacingCm"])
	}
	if values["notes"] != "front row" {
		t.Fatalf("notes = %q", values["notes"])
	}
}
