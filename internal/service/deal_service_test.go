package service

import (
	"testing"

	"crm-hub-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func amount(v float64) *float64 {
	return &v
}

func TestBuildPipelineBucketsByStage(t *testing.T) {
	deals := []*entity.Deal{
		{Title: "a", Stage: entity.DealStageProspecting, Amount: amount(1000)},
		{Title: "b", Stage: entity.DealStageClosedWon, Amount: amount(2000)},
		{Title: "c", Stage: entity.DealStageClosedWon, Amount: amount(500)},
	}

	buckets := BuildPipeline(deals)

	// Every stage appears exactly once, in display order, even when empty.
	assert.Len(t, buckets, len(entity.DealStages))
	for i, stage := range entity.DealStages {
		assert.Equal(t, stage, buckets[i].Stage)
	}

	byStage := make(map[entity.DealStage]entity.PipelineBucket)
	for _, b := range buckets {
		byStage[b.Stage] = b
	}

	assert.Equal(t, 1, byStage[entity.DealStageProspecting].Count)
	assert.Equal(t, 1000.0, byStage[entity.DealStageProspecting].TotalAmount)

	assert.Equal(t, 2, byStage[entity.DealStageClosedWon].Count)
	assert.Equal(t, 2500.0, byStage[entity.DealStageClosedWon].TotalAmount)

	assert.Equal(t, 0, byStage[entity.DealStageNegotiation].Count)
	assert.Equal(t, 0.0, byStage[entity.DealStageNegotiation].TotalAmount)
}

func TestBuildPipelineNilAmountCountsButAddsNothing(t *testing.T) {
	deals := []*entity.Deal{
		{Title: "priced", Stage: entity.DealStageProposal, Amount: amount(750)},
		{Title: "unpriced", Stage: entity.DealStageProposal},
	}

	buckets := BuildPipeline(deals)

	for _, b := range buckets {
		if b.Stage != entity.DealStageProposal {
			continue
		}
		assert.Equal(t, 2, b.Count)
		assert.Equal(t, 750.0, b.TotalAmount)
	}
}

func TestBuildPipelineEmpty(t *testing.T) {
	buckets := BuildPipeline(nil)

	assert.Len(t, buckets, len(entity.DealStages))
	for _, b := range buckets {
		assert.Zero(t, b.Count)
		assert.Zero(t, b.TotalAmount)
	}
}
