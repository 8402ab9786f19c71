// ABOUTME: Tests for StudyPlan block computation
// ABOUTME: Verifies block count, even minute split, and focus labels
package models

import (
	"math"
	"testing"
)

func TestNewStudyPlan(t *testing.T) {
	tests := []struct {
		name            string
		topic           string
		duration        int
		wantBlocks      int
		wantPerBlock    float64
	}{
		{
			name:         "40 minutes yields two 20-minute blocks",
			topic:        "longer context lab",
			duration:     40,
			wantBlocks:   2,
			wantPerBlock: 20,
		},
		{
			name:         "60 minutes yields three blocks",
			topic:        "calculus",
			duration:     60,
			wantBlocks:   3,
			wantPerBlock: 20,
		},
		{
			name:         "90 minutes splits unevenly over four blocks",
			topic:        "calculus",
			duration:     90,
			wantBlocks:   4,
			wantPerBlock: 22.5,
		},
		{
			name:         "short session is a single block",
			topic:        "intro",
			duration:     15,
			wantBlocks:   1,
			wantPerBlock: 15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := NewStudyPlan(tt.topic, tt.duration)

			if plan.Topic != tt.topic {
				t.Errorf("Topic = %q, want %q", plan.Topic, tt.topic)
			}
			if plan.DurationMinutes != tt.duration {
				t.Errorf("DurationMinutes = %d, want %d", plan.DurationMinutes, tt.duration)
			}
			if len(plan.Blocks) != tt.wantBlocks {
				t.Fatalf("len(Blocks) = %d, want %d", len(plan.Blocks), tt.wantBlocks)
			}

			var total float64
			for i, block := range plan.Blocks {
				if block.BlockNumber != i+1 {
					t.Errorf("Blocks[%d].BlockNumber = %d, want %d", i, block.BlockNumber, i+1)
				}
				if block.MinutesPerBlock != tt.wantPerBlock {
					t.Errorf("Blocks[%d].MinutesPerBlock = %v, want %v", i, block.MinutesPerBlock, tt.wantPerBlock)
				}
				total += block.MinutesPerBlock
			}

			// Block minutes always sum back to the requested duration.
			if math.Abs(total-float64(tt.duration)) > 1e-9 {
				t.Errorf("sum of block minutes = %v, want %d", total, tt.duration)
			}
		})
	}
}

func TestNewStudyPlan_FocusLabels(t *testing.T) {
	plan := NewStudyPlan("the lab materials", 40)

	want := []string{
		"Subtopic 1 of the lab materials",
		"Subtopic 2 of the lab materials",
	}
	for i, w := range want {
		if plan.Blocks[i].FocusLabel != w {
			t.Errorf("Blocks[%d].FocusLabel = %q, want %q", i, plan.Blocks[i].FocusLabel, w)
		}
	}
}
