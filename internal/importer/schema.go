package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// SnapshotSchema is the top-level JSON structure for a warehouse snapshot
// import: the registry, current occupancy and the inbound shipment book.
type SnapshotSchema struct {
	Warehouses []WarehouseImport     `json:"warehouses"`
	Occupancy  map[string]FlexNumber `json:"occupancy,omitempty"`
	Shipments  []ShipmentImport      `json:"shipments"`
}

// WarehouseImport defines a facility and its bin capacity.
type WarehouseImport struct {
	Name      string     `json:"name"`
	TotalBins FlexNumber `json:"total_bins"`
}

// ShipmentImport defines an inbound shipment. ArrivalWeek and BinVolume come
// from upstream spreadsheets and may be numbers, numeric strings or junk.
type ShipmentImport struct {
	OrderRef             string     `json:"order_ref"`
	DestinationWarehouse string     `json:"destination_warehouse"`
	ArrivalWeek          FlexNumber `json:"arrival_week"`
	BinVolume            FlexNumber `json:"bin_volume"`
	Status               string     `json:"status,omitempty"`
}

// FlexNumber decodes a JSON number or numeric string. Null, empty strings and
// anything unparseable decode without error to an invalid value.
type FlexNumber struct {
	Value float64
	Valid bool
}

// Num returns a valid FlexNumber holding v.
func Num(v float64) FlexNumber {
	return FlexNumber{Value: v, Valid: true}
}

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	*n = FlexNumber{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		raw = strings.TrimSpace(s)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	n.Value = v
	n.Valid = true
	return nil
}

func (n FlexNumber) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Int returns the value as an int when it is valid and whole.
func (n FlexNumber) Int() (int, bool) {
	if !n.Valid || n.Value != math.Trunc(n.Value) {
		return 0, false
	}
	return int(n.Value), true
}

// Float returns the value, or 0 when invalid.
func (n FlexNumber) Float() float64 {
	if !n.Valid {
		return 0
	}
	return n.Value
}

// LoadSnapshotSchema reads and parses a snapshot import JSON file.
func LoadSnapshotSchema(path string) (*SnapshotSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema SnapshotSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
