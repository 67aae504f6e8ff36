package domain

import (
	"sync"
	"testing"
)

func TestDecideMood(t *testing.T) {
	cases := []struct {
		temp int
		cond string
		want string
	}{
		{-15, "rainy", MoodExtremeWinter},
		{-11, "sunny", MoodExtremeWinter},
		{-10, "sunny", MoodCozy},
		{0, "snowy", MoodCozy},
		{9, "rainy", MoodCozy},
		{10, "sunny", MoodCasual},
		{10, "rainy", MoodRainy},
		{15, "RAINY", MoodRainy},
		{15, "Snowy", MoodSnowy},
		{40, "snowy", MoodSnowy},
		{15, "sunny", MoodCasual},
		{20, "cloudy", MoodCasual},
		{21, "sunny", MoodBreezy},
		{25, "sunny", MoodBreezy},
		{35, "sunny", MoodBreezy},
		{36, "sunny", MoodCooling},
		{40, "sunny", MoodCooling},
		{100, "sunny", MoodCooling},
		{-100, "sunny", MoodExtremeWinter},
		{25, " rainy", MoodBreezy},
	}
	for _, tc := range cases {
		if got := DecideMood(tc.temp, tc.cond); got != tc.want {
			t.Errorf("DecideMood(%d, %q) = %q want %q", tc.temp, tc.cond, got, tc.want)
		}
	}
}

func TestPlausible(t *testing.T) {
	for temp, want := range map[int]bool{-51: false, -50: true, 0: true, 50: true, 51: false} {
		if Plausible(temp) != want {
			t.Errorf("Plausible(%d) != %v", temp, want)
		}
	}
}

func TestDecideMood_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for g := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cond := []string{"RAINY", "Snowy", "sunny", "ＲＡＩＮＹ"}[g%4]
			want := map[string]string{"RAINY": MoodRainy, "Snowy": MoodSnowy, "sunny": MoodCasual, "ＲＡＩＮＹ": MoodCasual}[cond]
			for range 500 {
				if got := DecideMood(15, cond); got != want {
					t.Errorf("DecideMood(15, %q) = %q want %q", cond, got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}
