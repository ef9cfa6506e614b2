package packet

// PenaltyType is the closed, 18-value enumeration of penalty kinds
// issued by Event::PenaltyIssued. Out-of-range codes decode to
// PenaltyTypeUnknown.
type PenaltyType uint8

const (
	PenaltyDriveThrough PenaltyType = iota
	PenaltyStopGo
	PenaltyGridPenalty
	PenaltyPenaltyReminder
	PenaltyTimePenalty
	PenaltyWarning
	PenaltyDisqualified
	PenaltyRemovedFromFormationLap
	PenaltyParkedTooLongTimer
	PenaltyTyreRegulations
	PenaltyThisLapInvalidated
	PenaltyThisAndNextLapInvalidated
	PenaltyThisLapInvalidatedNoReason
	PenaltyThisAndNextLapInvalidatedNoReason
	PenaltyThisAndPreviousLapInvalidated
	PenaltyThisAndPreviousLapInvalidatedNoReason
	PenaltyRetired
	PenaltyBlackFlagTimer
	PenaltyUnknown PenaltyType = 255
)

func PenaltyTypeFromCode(code uint8) PenaltyType {
	if code <= uint8(PenaltyBlackFlagTimer) {
		return PenaltyType(code)
	}
	return PenaltyUnknown
}

// InfringementType is the closed, 55-value enumeration of infringement
// reasons accompanying a PenaltyIssued event. Out-of-range codes decode
// to InfringementUnknown.
type InfringementType uint8

const (
	InfringementBlockingBySlowDriving InfringementType = iota
	InfringementBlockingByWrongWayDriving
	InfringementReversingOffTheStartLine
	InfringementBigCollision
	InfringementSmallCollision
	InfringementCollisionFailedToHandBackPositionSingle
	InfringementCollisionFailedToHandBackPositionMultiple
	InfringementCornerCuttingGainedTime
	InfringementCornerCuttingOvertakeSingle
	InfringementCornerCuttingOvertakeMultiple
	InfringementCrossedPitExitLane
	InfringementIgnoringBlueFlags
	InfringementIgnoringYellowFlags
	InfringementIgnoringDriveThrough
	InfringementTooManyDriveThroughs
	InfringementDriveThroughReminderServeWithinNLaps
	InfringementDriveThroughReminderServeThisLap
	InfringementPitLaneSpeeding
	InfringementParkedForTooLong
	InfringementIgnoringTyreRegulations
	InfringementTooManyPenalties
	InfringementMultipleWarnings
	InfringementApproachingDisqualification
	InfringementTyreRegulationsSelectSingle
	InfringementTyreRegulationsSelectMultiple
	InfringementLapInvalidatedCornerCutting
	InfringementLapInvalidatedRunningWide
	InfringementCornerCuttingRanWideGainedTimeMinor
	InfringementCornerCuttingRanWideGainedTimeSignificant
	InfringementCornerCuttingRanWideGainedTimeExtreme
	InfringementLapInvalidatedWallRiding
	InfringementLapInvalidatedFlashbackUsed
	InfringementLapInvalidatedResetToTrack
	InfringementBlockingThePitlane
	InfringementJumpStart
	InfringementSafetyCarToCarCollision
	InfringementSafetyCarIllegalOvertake
	InfringementSafetyCarExceedingAllowedPace
	InfringementVirtualSafetyCarExceedingAllowedPace
	InfringementFormationLapBelowAllowedSpeed
	InfringementFormationLapParking
	InfringementRetiredMechanicalFailure
	InfringementRetiredTerminallyDamaged
	InfringementSafetyCarFallingTooFarBack
	InfringementBlackFlagTimer
	InfringementUnservedStopGoPenalty
	InfringementUnservedDriveThroughPenalty
	InfringementEngineComponentChange
	InfringementGearboxChange
	InfringementParcFermeChange
	InfringementLeagueGridPenalty
	InfringementRetryPenalty
	InfringementIllegalTimeGain
	InfringementMandatoryPitstop
	InfringementAttributeAssigned
	InfringementUnknown InfringementType = 255
)

func InfringementTypeFromCode(code uint8) InfringementType {
	if code <= uint8(InfringementAttributeAssigned) {
		return InfringementType(code)
	}
	return InfringementUnknown
}
