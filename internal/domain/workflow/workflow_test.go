package workflow

import (
	"errors"
	"testing"
	"time"

	"valuation_report/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allRoles = []entities.Role{entities.RoleAnonymous, entities.RoleUser, entities.RoleManager, entities.RoleAdmin}

func TestCanEdit_Table(t *testing.T) {
	editable := map[entities.Role][]entities.ValuationStatus{
		entities.RoleUser: {
			entities.ValuationStatusPending, entities.ValuationStatusRejected, entities.ValuationStatusRework,
		},
		entities.RoleManager: {
			entities.ValuationStatusPending, entities.ValuationStatusRejected,
			entities.ValuationStatusOnProgress, entities.ValuationStatusRework,
		},
		entities.RoleAdmin: entities.AllValuationStatuses,
	}

	for _, role := range allRoles {
		for _, status := range entities.AllValuationStatuses {
			want := contains(editable[role], status)
			assert.Equalf(t, want, CanEdit(role, status), "CanEdit(%q, %q)", role, status)
		}
	}
}

func TestCanApprove_Table(t *testing.T) {
	reviewable := []entities.ValuationStatus{
		entities.ValuationStatusPending, entities.ValuationStatusOnProgress,
		entities.ValuationStatusRejected, entities.ValuationStatusRework,
	}

	for _, role := range allRoles {
		for _, status := range entities.AllValuationStatuses {
			want := (role == entities.RoleManager || role == entities.RoleAdmin) && contains(reviewable, status)
			assert.Equalf(t, want, CanApprove(role, status), "CanApprove(%q, %q)", role, status)
		}
	}
}

func TestNext_ResultingStatus(t *testing.T) {
	cases := []struct {
		role   entities.Role
		action Action
		from   entities.ValuationStatus
		want   entities.ValuationStatus
	}{
		{entities.RoleUser, ActionSave, entities.ValuationStatusPending, entities.ValuationStatusOnProgress},
		{entities.RoleUser, ActionSave, entities.ValuationStatusRework, entities.ValuationStatusOnProgress},
		{entities.RoleManager, ActionSave, entities.ValuationStatusOnProgress, entities.ValuationStatusOnProgress},
		{entities.RoleAdmin, ActionSave, entities.ValuationStatusApproved, entities.ValuationStatusOnProgress},
		{entities.RoleManager, ActionApprove, entities.ValuationStatusPending, entities.ValuationStatusApproved},
		{entities.RoleAdmin, ActionApprove, entities.ValuationStatusRejected, entities.ValuationStatusApproved},
		{entities.RoleManager, ActionReject, entities.ValuationStatusOnProgress, entities.ValuationStatusRejected},
		{entities.RoleAdmin, ActionRework, entities.ValuationStatusRework, entities.ValuationStatusRework},
	}
	for _, tc := range cases {
		got, err := Next(tc.role, tc.action, tc.from)
		require.NoErrorf(t, err, "%s %s from %s", tc.role, tc.action, tc.from)
		assert.Equal(t, tc.want, got)
	}
}

func TestNext_Forbidden(t *testing.T) {
	cases := []struct {
		role   entities.Role
		action Action
		from   entities.ValuationStatus
	}{
		{entities.RoleUser, ActionSave, entities.ValuationStatusOnProgress},
		{entities.RoleUser, ActionSave, entities.ValuationStatusApproved},
		{entities.RoleManager, ActionSave, entities.ValuationStatusApproved},
		{entities.RoleAnonymous, ActionSave, entities.ValuationStatusPending},
		{entities.RoleUser, ActionApprove, entities.ValuationStatusPending},
		{entities.RoleManager, ActionReject, entities.ValuationStatusApproved},
		{entities.RoleAdmin, ActionRework, entities.ValuationStatusApproved},
	}
	for _, tc := range cases {
		_, err := Next(tc.role, tc.action, tc.from)
		var permErr *PermissionError
		require.ErrorAsf(t, err, &permErr, "%s %s from %s", tc.role, tc.action, tc.from)
		assert.Equal(t, tc.action, permErr.Action)
	}
}

func TestNext_UnknownAction(t *testing.T) {
	_, err := Next(entities.RoleAdmin, Action("archive"), entities.ValuationStatusPending)
	assert.True(t, errors.Is(err, ErrUnknownAction))
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("rework")
	require.NoError(t, err)
	assert.Equal(t, ActionRework, a)

	_, err = ParseAction("delete")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestApplyManagerAction(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	admin := entities.Actor{ID: "u-9", Name: "Meera", Role: entities.RoleAdmin}
	manager := entities.Actor{ID: "u-2", Name: "Karan", Role: entities.RoleManager}

	t.Run("admin approves rejected record", func(t *testing.T) {
		rec := entities.ValuationRecord{ID: "val-1", Status: entities.ValuationStatusRejected, Fields: map[string]string{}}

		out, err := ApplyManagerAction(rec, ActionApprove, "looks good", admin, now)
		require.NoError(t, err)
		assert.Equal(t, entities.ValuationStatusApproved, out.Status)
		assert.Equal(t, "looks good", out.ManagerFeedback)
		assert.Equal(t, "Meera", out.LastUpdatedBy)
		assert.Equal(t, entities.RoleAdmin, out.LastUpdatedByRole)
		assert.Equal(t, now, out.LastUpdatedAt)
		assert.Equal(t, entities.ValuationStatusRejected, rec.Status, "input untouched")
	})

	t.Run("approved record is terminal for manager actions", func(t *testing.T) {
		rec := entities.ValuationRecord{ID: "val-1", Status: entities.ValuationStatusApproved, ManagerFeedback: "ok"}

		for _, action := range ManagerActions {
			out, err := ApplyManagerAction(rec, action, "change", manager, now)
			var permErr *PermissionError
			require.ErrorAs(t, err, &permErr)
			assert.Equal(t, rec, out)
		}
	})

	t.Run("user cannot request rework", func(t *testing.T) {
		rec := entities.ValuationRecord{ID: "val-1", Status: entities.ValuationStatusOnProgress}
		_, err := ApplyManagerAction(rec, ActionRework, "", entities.Actor{ID: "u-1", Role: entities.RoleUser}, now)
		var permErr *PermissionError
		require.ErrorAs(t, err, &permErr)
		assert.Contains(t, permErr.Error(), `role "user" may not rework`)
	})

	t.Run("save is not a manager action", func(t *testing.T) {
		rec := entities.ValuationRecord{ID: "val-1", Status: entities.ValuationStatusPending}
		_, err := ApplyManagerAction(rec, ActionSave, "", manager, now)
		assert.ErrorIs(t, err, ErrUnknownAction)
	})
}

func TestApplySave(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	user := entities.Actor{ID: "u-1", Name: "Asha", Role: entities.RoleUser}

	rec := entities.ValuationRecord{ID: "val-1", Status: entities.ValuationStatusRework, ManagerFeedback: "fix GPS"}
	out, err := ApplySave(rec, user, now)
	require.NoError(t, err)
	assert.Equal(t, entities.ValuationStatusOnProgress, out.Status)
	assert.Equal(t, "fix GPS", out.ManagerFeedback)
	assert.Equal(t, "Asha", out.LastUpdatedBy)

	_, err = ApplySave(out, user, now)
	var permErr *PermissionError
	require.ErrorAs(t, err, &permErr)
	assert.Equal(t, entities.ValuationStatusOnProgress, permErr.Status)

	_, err = ApplySave(rec, entities.Actor{}, now)
	require.ErrorAs(t, err, &permErr)
	assert.Contains(t, permErr.Error(), "anonymous")
}

func contains(list []entities.ValuationStatus, s entities.ValuationStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestValuationStatus_Valid(t *testing.T) {
	for _, s := range entities.AllValuationStatuses {
		assert.True(t, s.Valid(), "status %q", s)
	}
	assert.False(t, entities.ValuationStatus("archived").Valid())
	assert.False(t, entities.ValuationStatus("").Valid())
}
