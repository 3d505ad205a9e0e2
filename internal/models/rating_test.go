package models

import "testing"

func TestRatingAggregateRecord(t *testing.T) {
	var r RatingAggregate
	r.Record(4)
	r.Record(5)
	r.Record(4)

	if r.Count != 3 || r.Total != 13 {
		t.Fatalf("aggregate = %+v", r)
	}
	// Vendors keep the raw mean.
	if want := 13.0 / 3.0; r.Avg != want {
		t.Errorf("avg = %v, want %v", r.Avg, want)
	}
}

func TestRatingAggregateRecordFloored(t *testing.T) {
	var r RatingAggregate
	r.RecordFloored(4)
	r.RecordFloored(5)
	r.RecordFloored(4)

	// 13/3 = 4.333..., floored to one decimal.
	if r.Avg != 4.3 {
		t.Errorf("avg = %v, want 4.3", r.Avg)
	}
}

// The two variants diverge on the same inputs. Vendors show the raw mean,
// dishes the floored one; both behaviors are load-bearing for clients.
func TestRatingVariantsDiverge(t *testing.T) {
	var vendor, dish RatingAggregate
	for _, s := range []float64{5, 4} {
		vendor.Record(s)
		dish.RecordFloored(s)
	}
	if vendor.Avg != 4.5 || dish.Avg != 4.5 {
		t.Fatalf("vendor = %v, dish = %v, want both 4.5", vendor.Avg, dish.Avg)
	}

	vendor.Record(4)
	dish.RecordFloored(4)
	if vendor.Avg == dish.Avg {
		t.Errorf("variants agree at %v, want raw %v vs floored 4.3", vendor.Avg, 13.0/3.0)
	}
	if dish.Avg != 4.3 {
		t.Errorf("dish avg = %v, want 4.3", dish.Avg)
	}
}

func TestRatingAggregateEmpty(t *testing.T) {
	var r RatingAggregate
	if r.Mean() != 0 || r.MeanFloored1() != 0 {
		t.Errorf("empty aggregate means = %v / %v, want 0", r.Mean(), r.MeanFloored1())
	}
}
