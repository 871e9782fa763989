package workflow

// Action is a requested operation on a travel request. Which actions are
// legal depends on the TRF's status and the actor's role; see Evaluate.
type Action string

const (
	// ActionSubmit moves a draft into the pipeline. Owning employee only.
	ActionSubmit Action = "SUBMIT"
	// ActionResubmit re-enters a revised TRF at SUBMITTED. Owning employee only.
	ActionResubmit Action = "RESUBMIT"
	// ActionVerify is the admin department's positive check on a submission.
	ActionVerify Action = "VERIFY"
	// ActionApprove advances the HoD, HR or PM stage.
	ActionApprove Action = "APPROVE"
	// ActionReject stops the pipeline. Fatal for HoD and PM, recoverable for HR.
	ActionReject Action = "REJECT"
	// ActionRevise sends the TRF back to the employee for correction.
	ActionRevise Action = "REVISE"
	// ActionProcess is GA fulfillment, the terminal success step.
	ActionProcess Action = "PROCESS"
)

// RequiresRemarks reports whether the action needs a non-empty justification.
// Submitting and resubmitting one's own request does not.
func (a Action) RequiresRemarks() bool {
	switch a {
	case ActionVerify, ActionApprove, ActionReject, ActionRevise, ActionProcess:
		return true
	}
	return false
}
