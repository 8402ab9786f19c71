// ABOUTME: StudyPlan models a deterministic study session split into blocks
// ABOUTME: Blocks divide the duration evenly, one block per ~20 minutes
package models

import "fmt"

// PlanBlock is one focus block within a study plan.
type PlanBlock struct {
	BlockNumber     int     `json:"block"`
	MinutesPerBlock float64 `json:"minutes"`
	FocusLabel      string  `json:"focus"`
}

// StudyPlan is a deterministic plan: blockCount = max(1, duration/20) and the
// minutes are split evenly, so the block minutes always sum to the duration.
type StudyPlan struct {
	Topic           string      `json:"topic"`
	DurationMinutes int         `json:"duration"`
	Blocks          []PlanBlock `json:"blocks"`
}

// NewStudyPlan builds a plan for the topic over the given duration.
func NewStudyPlan(topic string, durationMinutes int) StudyPlan {
	blockCount := durationMinutes / 20
	if blockCount < 1 {
		blockCount = 1
	}
	perBlock := float64(durationMinutes) / float64(blockCount)

	blocks := make([]PlanBlock, blockCount)
	for i := range blocks {
		blocks[i] = PlanBlock{
			BlockNumber:     i + 1,
			MinutesPerBlock: perBlock,
			FocusLabel:      fmt.Sprintf("Subtopic %d of %s", i+1, topic),
		}
	}

	return StudyPlan{
		Topic:           topic,
		DurationMinutes: durationMinutes,
		Blocks:          blocks,
	}
}
