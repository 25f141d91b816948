package deck

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"

	"github.com/adamspd/medstudy/models"
)

func sampleStore() []models.Question {
	var store []models.Question
	for i := 1; i <= 6; i++ {
		cat := "Cardiology"
		if i%2 == 0 {
			cat = "Neurology"
		}
		store = append(store, models.Question{ID: fmt.Sprintf("%s__%d", cat, i), Number: i, Category: cat})
	}
	store = append(store, models.Question{ID: "Cardiology__99", Number: 99, Category: "Cardiology", UsesVisualAid: true})
	return store
}

func settings(category string, randomize bool, size int) models.SessionSettings {
	return models.SessionSettings{CategoryFilter: category, Randomize: randomize, Size: size}
}

func TestBuildSessionFiltersAndOrders(t *testing.T) {
	store := sampleStore()
	got := BuildSession(store, settings("Cardiology", false, 10), nil)
	want := []string{"Cardiology__1", "Cardiology__3", "Cardiology__5"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("ids = %v, want %v", ids(got), want)
	}
}

func TestBuildSessionAllCategoriesSkipsImages(t *testing.T) {
	got := BuildSession(sampleStore(), settings(models.AllCategories, false, 100), nil)
	if len(got) != 6 {
		t.Fatalf("len = %d, want 6", len(got))
	}
	for _, q := range got {
		if q.UsesVisualAid {
			t.Fatalf("visual aid question %s in session", q.ID)
		}
	}
}

func TestBuildSessionSize(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{3, 3},
		{0, 1},
		{-5, 1},
		{100, 6},
	}
	for _, tt := range tests {
		got := BuildSession(sampleStore(), settings(models.AllCategories, true, tt.size), rand.New(rand.NewSource(1)))
		if len(got) != tt.want {
			t.Errorf("size %d: len = %d, want %d", tt.size, len(got), tt.want)
		}
	}
}

func TestBuildSessionUnknownCategoryIsEmpty(t *testing.T) {
	if got := BuildSession(sampleStore(), settings("Dermatology", true, 10), nil); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestBuildSessionShuffleIsPermutation(t *testing.T) {
	store := sampleStore()
	before := ids(store)

	got := BuildSession(store, settings(models.AllCategories, true, 100), rand.New(rand.NewSource(42)))

	if !reflect.DeepEqual(ids(store), before) {
		t.Fatalf("store was reordered")
	}
	seen := make(map[string]bool)
	for _, q := range got {
		seen[q.ID] = true
	}
	if len(seen) != 6 {
		t.Fatalf("shuffle lost or duplicated questions: %v", ids(got))
	}

	again := BuildSession(store, settings(models.AllCategories, true, 100), rand.New(rand.NewSource(42)))
	if !reflect.DeepEqual(ids(got), ids(again)) {
		t.Fatalf("same seed gave different orders: %v vs %v", ids(got), ids(again))
	}
}

func TestCategories(t *testing.T) {
	got := Categories(sampleStore())
	want := []string{models.AllCategories, "Cardiology", "Neurology"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Categories = %v, want %v", got, want)
	}
	if got := Categories(nil); !reflect.DeepEqual(got, []string{models.AllCategories}) {
		t.Fatalf("Categories(nil) = %v", got)
	}
}

func TestCountByCategory(t *testing.T) {
	got := CountByCategory(sampleStore())
	if got["Cardiology"] != 4 || got["Neurology"] != 3 {
		t.Fatalf("counts = %v", got)
	}
}
