package progress

import (
	"reflect"
	"testing"
)

func TestLedgerRoundTrip(t *testing.T) {
	l := EmptyLedger()
	l = RecordStudy(l, "Cardiology__1", true, day("2024-03-09", 10))
	l = RecordStudy(l, "Neurology__2", false, day("2024-03-10", 10))

	data, err := EncodeLedger(l)
	if err != nil {
		t.Fatal(err)
	}
	if got := DecodeLedger(data); !reflect.DeepEqual(got, l) {
		t.Fatalf("DecodeLedger = %+v, want %+v", got, l)
	}
}

func TestEncodeLedgerKeys(t *testing.T) {
	l := RecordStudy(EmptyLedger(), "q", true, day("2024-03-10", 10))
	data, err := EncodeLedger(l)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"perQuestion":{"q":{"correct":1,"incorrect":0,"last":"2024-03-10"}},"daily":{"2024-03-10":{"studied":1,"correct":1,"incorrect":0}},"streak":1,"lastStudyDate":"2024-03-10"}`
	if string(data) != want {
		t.Fatalf("encoded = %s\nwant      %s", data, want)
	}
}

func TestDecodeLedgerCorrupt(t *testing.T) {
	for _, in := range []string{"", "not json", "[]", "null", "42", `"text"`} {
		got := DecodeLedger([]byte(in))
		if !reflect.DeepEqual(got, EmptyLedger()) {
			t.Errorf("DecodeLedger(%q) = %+v, want empty ledger", in, got)
		}
	}
}

func TestDecodeLedgerKeepsGoodFields(t *testing.T) {
	in := `{"perQuestion":"broken","daily":{"2024-03-10":{"studied":2,"correct":1,"incorrect":1}},"streak":"x","lastStudyDate":"2024-03-10"}`
	got := DecodeLedger([]byte(in))

	if len(got.PerQuestion) != 0 || got.PerQuestion == nil {
		t.Errorf("PerQuestion = %v, want empty map", got.PerQuestion)
	}
	if got.Daily["2024-03-10"].StudiedCount != 2 {
		t.Errorf("Daily = %+v", got.Daily)
	}
	if got.Streak != 0 {
		t.Errorf("Streak = %d, want 0", got.Streak)
	}
	if got.LastStudyDate != "2024-03-10" {
		t.Errorf("LastStudyDate = %q", got.LastStudyDate)
	}
}

func TestDecodeLedgerNegativeStreak(t *testing.T) {
	if got := DecodeLedger([]byte(`{"streak":-3}`)); got.Streak != 0 {
		t.Fatalf("Streak = %d, want 0", got.Streak)
	}
}
