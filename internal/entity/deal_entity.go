package entity

import (
	"time"

	"github.com/google/uuid"
)

type DealStage string

const (
	DealStageProspecting   DealStage = "prospecting"
	DealStageQualification DealStage = "qualification"
	DealStageNeedsAnalysis DealStage = "needs_analysis"
	DealStageProposal      DealStage = "proposal"
	DealStageNegotiation   DealStage = "negotiation"
	DealStageClosedWon     DealStage = "closed_won"
	DealStageClosedLost    DealStage = "closed_lost"
)

// DealStages lists every pipeline stage in display order.
var DealStages = []DealStage{
	DealStageProspecting,
	DealStageQualification,
	DealStageNeedsAnalysis,
	DealStageProposal,
	DealStageNegotiation,
	DealStageClosedWon,
	DealStageClosedLost,
}

func (s DealStage) Valid() bool {
	for _, stage := range DealStages {
		if s == stage {
			return true
		}
	}
	return false
}

type Deal struct {
	Id          uuid.UUID
	Title       string
	Amount      *float64
	Stage       DealStage
	Probability int
	CloseDate   *time.Time
	ContactId   *uuid.UUID
	CompanyId   *uuid.UUID
	AssignedTo  *uuid.UUID
	Description string
	CreatedBy   *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   *time.Time

	// Joined display fields, populated on list reads only.
	ContactName string
	CompanyName string
}
