// Package workflow decides who may edit or transition a valuation record and
// which status results from each action.
//
// All rules live in the transitions table; CanEdit and CanApprove are views of it.
package workflow

import (
	"errors"
	"fmt"
	"time"

	"valuation_report/internal/domain/entities"
)

// Action is something an actor does to a record.
type Action string

const (
	ActionSave    Action = "save"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionRework  Action = "rework"
)

// ManagerActions are the actions reserved to managers and admins.
var ManagerActions = []Action{ActionApprove, ActionReject, ActionRework}

// ErrUnknownAction is returned for an action outside the transition table.
var ErrUnknownAction = errors.New("unknown workflow action")

// PermissionError reports a role/status combination that forbids an action.
type PermissionError struct {
	Role   entities.Role
	Status entities.ValuationStatus
	Action Action
}

func (e *PermissionError) Error() string {
	role := string(e.Role)
	if role == "" {
		role = "anonymous"
	}
	return fmt.Sprintf("role %q may not %s a valuation in status %q", role, e.Action, e.Status)
}

type transition struct {
	action Action
	role   entities.Role
	from   []entities.ValuationStatus // nil means any status
	to     entities.ValuationStatus
}

var managerReviewable = []entities.ValuationStatus{
	entities.ValuationStatusPending,
	entities.ValuationStatusOnProgress,
	entities.ValuationStatusRejected,
	entities.ValuationStatusRework,
}

var transitions = []transition{
	{action: ActionSave, role: entities.RoleUser, to: entities.ValuationStatusOnProgress, from: []entities.ValuationStatus{
		entities.ValuationStatusPending, entities.ValuationStatusRejected, entities.ValuationStatusRework,
	}},
	{action: ActionSave, role: entities.RoleManager, to: entities.ValuationStatusOnProgress, from: managerReviewable},
	{action: ActionSave, role: entities.RoleAdmin, to: entities.ValuationStatusOnProgress},

	{action: ActionApprove, role: entities.RoleManager, from: managerReviewable, to: entities.ValuationStatusApproved},
	{action: ActionApprove, role: entities.RoleAdmin, from: managerReviewable, to: entities.ValuationStatusApproved},
	{action: ActionReject, role: entities.RoleManager, from: managerReviewable, to: entities.ValuationStatusRejected},
	{action: ActionReject, role: entities.RoleAdmin, from: managerReviewable, to: entities.ValuationStatusRejected},
	{action: ActionRework, role: entities.RoleManager, from: managerReviewable, to: entities.ValuationStatusRework},
	{action: ActionRework, role: entities.RoleAdmin, from: managerReviewable, to: entities.ValuationStatusRework},
}

// ParseAction accepts the action names used by the HTTP layer.
func ParseAction(raw string) (Action, error) {
	switch a := Action(raw); a {
	case ActionSave, ActionApprove, ActionReject, ActionRework:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, raw)
}

// Next returns the status produced when role performs action on a record in
// status current.
func Next(role entities.Role, action Action, current entities.ValuationStatus) (entities.ValuationStatus, error) {
	known := false
	for _, t := range transitions {
		if t.action != action {
			continue
		}
		known = true
		if t.role == role && allows(t.from, current) {
			return t.to, nil
		}
	}
	if !known {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	return "", &PermissionError{Role: role, Status: current, Action: action}
}

// CanEdit reports whether role may save a record in status.
func CanEdit(role entities.Role, status entities.ValuationStatus) bool {
	_, err := Next(role, ActionSave, status)
	return err == nil
}

// CanApprove reports whether role may approve, reject or request rework on a
// record in status.
func CanApprove(role entities.Role, status entities.ValuationStatus) bool {
	for _, a := range ManagerActions {
		if _, err := Next(role, a, status); err != nil {
			return false
		}
	}
	return true
}

// ApplySave moves a record through the save transition and stamps the actor.
func ApplySave(record entities.ValuationRecord, actor entities.Actor, now time.Time) (entities.ValuationRecord, error) {
	next, err := Next(actor.Role, ActionSave, record.Status)
	if err != nil {
		return record, err
	}
	out := record.Stamp(actor, now)
	out.Status = next
	return out, nil
}

// ApplyManagerAction approves, rejects or requests rework, storing feedback.
// A *PermissionError leaves the record untouched.
func ApplyManagerAction(record entities.ValuationRecord, action Action, feedback string, actor entities.Actor, now time.Time) (entities.ValuationRecord, error) {
	if action == ActionSave {
		return record, fmt.Errorf("%w: %q is not a manager action", ErrUnknownAction, action)
	}
	if !CanApprove(actor.Role, record.Status) {
		return record, &PermissionError{Role: actor.Role, Status: record.Status, Action: action}
	}
	next, err := Next(actor.Role, action, record.Status)
	if err != nil {
		return record, err
	}
	out := record.Stamp(actor, now)
	out.Status = next
	out.ManagerFeedback = feedback
	return out, nil
}

func allows(from []entities.ValuationStatus, status entities.ValuationStatus) bool {
	if from == nil {
		return true
	}
	for _, s := range from {
		if s == status {
			return true
		}
	}
	return false
}
