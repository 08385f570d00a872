package automation

import (
	"context"
	"fmt"
	"strings"

	"jarayid-admin/domain/model"
)

func (h *Host) GetScripts(ctx context.Context) ([]model.ScriptFragment, error) {
	var fragments []model.ScriptFragment
	if err := h.get(ctx, "script-generation", &fragments); err != nil {
		return nil, err
	}
	return fragments, nil
}

type approvalUpdate struct {
	ApprovalStatus      model.ApprovalStatus `json:"approval_status"`
	CancellationRemarks string               `json:"cancellation_remarks,omitempty"`
	Operator            string               `json:"operator"`
}

func (h *Host) UpdateApproval(ctx context.Context, id int64, status model.ApprovalStatus, remarks, operator string) error {
	body := approvalUpdate{
		ApprovalStatus: status,
		Operator:       operator,
	}
	if status == model.ApprovalRejected {
		body.CancellationRemarks = strings.TrimSpace(remarks)
	}
	_, err := h.update(ctx, fmt.Sprintf("script-generation/%d", id), body)
	return err
}
