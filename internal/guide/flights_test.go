package guide

import (
	"reflect"
	"strings"
	"testing"
)

const sampleAccommodations = "### FLIGHTS\n\n" +
	"| Airline | Est. Price (USD) | Duration | Transit | Booking Link |\n" +
	"|:---|:---|:---|:---|:---|\n" +
	"| AirX | 500 | 10h | Direct | [Book Now](https://airx.com) |\n\n" +
	"Hotel info here"

func TestParseFlightTable(t *testing.T) {
	entries := ParseFlightTable(sampleAccommodations)
	want := []FlightEntry{{
		Airline:  "AirX",
		Price:    "500",
		Duration: "10h",
		Transit:  "Direct",
		Link:     "https://airx.com",
	}}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("got %+v, want %+v", entries, want)
	}
}

func TestParseFlightTableNoTable(t *testing.T) {
	entries := ParseFlightTable("just prose about hotels, nothing tabular")
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}

func TestParseFlightTableShortRowPadsFields(t *testing.T) {
	text := "| Airline | Price |\n|:---|:---|\n| AirY | 300 |\n"
	entries := ParseFlightTable(text)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Airline != "AirY" || e.Price != "300" || e.Duration != "" || e.Transit != "" || e.Link != "" {
		t.Errorf("short row not padded: %+v", e)
	}
}

func TestParseFlightTableRawLinkCell(t *testing.T) {
	text := "| A | B | C | D | E |\n|---|---|---|---|---|\n| AirZ | 1 | 2h | Direct | https://airz.example |\n"
	entries := ParseFlightTable(text)
	if entries[0].Link != "https://airz.example" {
		t.Errorf("cell without link pattern should pass through raw, got %q", entries[0].Link)
	}
}

func TestParseFlightTableOnlyFirstTable(t *testing.T) {
	text := sampleAccommodations + "\n\n| Other | Table |\n|---|---|\n| x | y |\n"
	entries := ParseFlightTable(text)
	if len(entries) != 1 || entries[0].Airline != "AirX" {
		t.Errorf("only the first table should be decoded, got %+v", entries)
	}
}

func TestSerializeFlightTable(t *testing.T) {
	entries := []FlightEntry{
		{Airline: "AirX", Price: "500", Duration: "10h", Transit: "Direct", Link: "https://airx.com"},
		{Airline: "[AirY](https://airy.com)", Price: "650", Duration: "14h", Transit: "1 stop in Dubai, 2h 30m", Link: "https://airy.com"},
	}
	table := SerializeFlightTable(entries, "EUR")

	if !strings.Contains(table, "| Airline | Est. Price (EUR) | Duration | Transit | Booking Link |") {
		t.Errorf("header missing currency, got %q", table)
	}
	if !strings.Contains(table, "| [AirX](https://airx.com) | 500 |") {
		t.Errorf("plain airline should be wrapped as a link, got %q", table)
	}
	if !strings.Contains(table, "| [AirY](https://airy.com) | 650 |") {
		t.Errorf("pre-linked airline should be emitted as-is, got %q", table)
	}
	if strings.Count(table, "[Book Now](") != 2 {
		t.Errorf("every row needs a fresh Book Now link, got %q", table)
	}
}

func TestSerializeFlightTableEmpty(t *testing.T) {
	if got := SerializeFlightTable(nil, "USD"); got != "" {
		t.Errorf("empty sequence should encode to empty string, got %q", got)
	}
}

func TestFlightRoundTrip(t *testing.T) {
	entries := []FlightEntry{
		{Airline: "AirX", Price: "500", Duration: "10h", Transit: "Direct", Link: "https://airx.com"},
		{Airline: "AirY", Price: "650", Duration: "14h 20m", Transit: "1 stop in Doha, 3h", Link: "https://airy.com"},
	}
	decoded := ParseFlightTable(SerializeFlightTable(entries, "USD"))

	if len(decoded) != len(entries) {
		t.Fatalf("round trip changed row count: %d -> %d", len(entries), len(decoded))
	}
	for i := range entries {
		got, want := decoded[i], entries[i]
		// airline comes back link-wrapped; the five logical values must survive
		if !strings.Contains(got.Airline, want.Airline) {
			t.Errorf("row %d airline %q lost in %q", i, want.Airline, got.Airline)
		}
		if got.Price != want.Price || got.Duration != want.Duration || got.Transit != want.Transit || got.Link != want.Link {
			t.Errorf("row %d round trip mismatch: got %+v, want %+v", i, got, want)
		}
	}
}

func TestEmbedFlightTableReplacesInPlace(t *testing.T) {
	entries := ParseFlightTable(sampleAccommodations)
	entries[0].Price = "550"

	updated := EmbedFlightTable(sampleAccommodations, entries, "USD")

	if !strings.HasPrefix(updated, "### FLIGHTS\n\n") {
		t.Errorf("text before the table was lost: %q", updated)
	}
	if !strings.HasSuffix(updated, "\n\nHotel info here") {
		t.Errorf("text after the table was lost: %q", updated)
	}
	if !strings.Contains(updated, "| 550 |") || strings.Contains(updated, "| 500 |") {
		t.Errorf("price cell not updated: %q", updated)
	}

	decoded := ParseFlightTable(updated)
	if len(decoded) != 1 || decoded[0].Price != "550" || decoded[0].Transit != "Direct" {
		t.Errorf("re-decode after embed = %+v", decoded)
	}
}

func TestEmbedFlightTablePrependsWhenAbsent(t *testing.T) {
	entries := []FlightEntry{{Airline: "AirX", Price: "500", Duration: "10h", Transit: "Direct", Link: "https://airx.com"}}
	updated := EmbedFlightTable("Hotels only, no table.", entries, "USD")

	if !strings.HasPrefix(updated, FlightTableHeading+"\n\n") {
		t.Errorf("missing prepended heading: %q", updated)
	}
	if !strings.HasSuffix(updated, "Hotels only, no table.") {
		t.Errorf("original text was lost: %q", updated)
	}
	if got := ParseFlightTable(updated); len(got) != 1 {
		t.Errorf("document should hold exactly one table after save, decoded %d rows", len(got))
	}
}

func TestEmbedFlightTableIdempotentReEmbed(t *testing.T) {
	entries := []FlightEntry{
		{Airline: "AirX", Price: "500", Duration: "10h", Transit: "Direct", Link: "https://airx.com"},
	}
	once := EmbedFlightTable(sampleAccommodations, entries, "USD")
	twice := EmbedFlightTable(once, entries, "USD")

	if once != twice {
		t.Errorf("re-embed over an already-embedded table should be stable\nonce  %q\ntwice %q", once, twice)
	}
	if !reflect.DeepEqual(ParseFlightTable(twice), ParseFlightTable(SerializeFlightTable(entries, "USD"))) {
		t.Errorf("decode after re-embed should match the encoded sequence")
	}
}
