package fs_test

import (
	"testing"

	"github.com/parlorhq/parlor/pkg/adapters/fs"
	"github.com/parlorhq/parlor/pkg/core"
)

func sampleSnapshot() *core.Snapshot {
	snap := core.DefaultSnapshot()
	snap.Menu.Pizzas = []core.Pizza{{
		ID: 1, Name: "Margherita", Description: "Classic",
		Prices: core.PizzaPrices{Regular: 15.9, Large: 25.9, Family: 35.9},
	}}
	snap.DeliveryZones = []core.DeliveryZone{
		{Area: "KLCC", DeliveryFee: 0, MinOrder: 30, EstimatedTime: "30-40 min"},
	}
	return snap
}

func TestSerializerFor(t *testing.T) {
	if _, ok := fs.SerializerFor(".yaml").(*fs.YAMLSerializer); !ok {
		t.Error("expected a YAML serializer for .yaml")
	}
	if _, ok := fs.SerializerFor(".yml").(*fs.YAMLSerializer); !ok {
		t.Error("expected a YAML serializer for .yml")
	}
	if _, ok := fs.SerializerFor(".json").(*fs.JSONSerializer); !ok {
		t.Error("expected a JSON serializer for .json")
	}
	if _, ok := fs.SerializerFor("").(*fs.JSONSerializer); !ok {
		t.Error("expected JSON as the default serializer")
	}
}

func TestSerializerParity(t *testing.T) {
	for name, s := range map[string]fs.Serializer{
		"json": &fs.JSONSerializer{},
		"yaml": &fs.YAMLSerializer{},
	} {
		t.Run(name, func(t *testing.T) {
			snap := sampleSnapshot()

			data, err := s.Encode(snap)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			decoded, err := s.Decode(data)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}

			if len(decoded.Menu.Pizzas) != 1 {
				t.Fatalf("pizzas did not survive the round trip: %+v", decoded.Menu)
			}
			p := decoded.Menu.Pizzas[0]
			if p.Name != "Margherita" || p.Prices.Family != 35.9 {
				t.Errorf("pizza fields corrupted: %+v", p)
			}
			if len(decoded.DeliveryZones) != 1 || decoded.DeliveryZones[0].Area != "KLCC" {
				t.Errorf("zones corrupted: %+v", decoded.DeliveryZones)
			}
		})
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := (&fs.JSONSerializer{}).Decode([]byte("][")); err == nil {
		t.Error("expected invalid json to be rejected")
	}
	if _, err := (&fs.YAMLSerializer{}).Decode([]byte(":\n:\n  -")); err == nil {
		t.Error("expected invalid yaml to be rejected")
	}
}
