package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"valuation_report/internal/domain/calculator"
	"valuation_report/internal/domain/entities"
	"valuation_report/internal/domain/validation"
	"valuation_report/internal/domain/workflow"
	"valuation_report/internal/infrastructure/logger"
	"valuation_report/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IValuationUseCase exposes the valuation report workflow.
//
// Mapping to the HTTP surface:
//   - POST /valuations => CreateValuation()
//   - PUT /valuations/{id} => SaveValuation() (calculator, validation, uploads, save transition)
//   - PATCH /valuations/{id}/{approve|reject|rework} => ApplyManagerAction()
//   - GET /valuations/{id}/report => GenerateReport()

type IValuationUseCase interface {
	CreateValuation(ctx context.Context, actor entities.Actor, fields map[string]string) (entities.ValuationRecord, error)
	GetValuation(ctx context.Context, id string) (entities.ValuationRecord, error)
	ListValuations(ctx context.Context, status string) ([]entities.ValuationRecord, error)
	PreviewFieldChange(ctx context.Context, id string, actor entities.Actor, fieldKey, value string) (entities.ValuationRecord, error)
	SaveValuation(ctx context.Context, id string, actor entities.Actor, in SaveValuationInput) (entities.ValuationRecord, error)
	ApplyManagerAction(ctx context.Context, id string, actor entities.Actor, action, feedback string) (entities.ValuationRecord, error)
	Permissions(ctx context.Context, id string, actor entities.Actor) (Permissions, error)
	GenerateReport(ctx context.Context, id string, draft *entities.ValuationRecord) ([]byte, error)
}

// SaveValuationInput carries one form submission.
//
// Uploads are appended to their category, except for the bank slot which is
// replaced. RemoveURLs drops persisted attachments before new uploads are added.
type SaveValuationInput struct {
	Changes    map[string]string
	Uploads    map[entities.AttachmentCategory][]entities.Blob
	RemoveURLs []string
}

// Permissions is what the form needs to enable its buttons.
type Permissions struct {
	Status     entities.ValuationStatus `json:"status"`
	CanEdit    bool                     `json:"can_edit"`
	CanApprove bool                     `json:"can_approve"`
}

type ValuationUseCase struct {
	repo     interfaces.IValuationRepository
	store    interfaces.IAttachmentStore
	renderer interfaces.IReportRenderer
	timeout  time.Duration
	now      func() time.Time
}

var _ IValuationUseCase = (*ValuationUseCase)(nil)

func NewValuationUseCase(repo interfaces.IValuationRepository, store interfaces.IAttachmentStore, renderer interfaces.IReportRenderer, timeout time.Duration) *ValuationUseCase {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &ValuationUseCase{
		repo:     repo,
		store:    store,
		renderer: renderer,
		timeout:  timeout,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *ValuationUseCase) CreateValuation(ctx context.Context, actor entities.Actor, fields map[string]string) (entities.ValuationRecord, error) {
	if !workflow.CanEdit(actor.Role, entities.ValuationStatusPending) {
		return entities.ValuationRecord{}, &workflow.PermissionError{Role: actor.Role, Status: entities.ValuationStatusPending, Action: workflow.ActionSave}
	}

	record := entities.NewValuationRecord(uuid.NewString(), actor, u.now())
	record = calculator.Recompute(calculator.ApplyChanges(record, fields))

	rctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	created, err := u.repo.Create(rctx, record)
	if err != nil {
		logger.L().Error("[valuation][usecase] create failed", zap.String("valuation_id", record.ID), zap.Error(err))
		return entities.ValuationRecord{}, upstream("create valuation", err)
	}
	logger.L().Info("[valuation][usecase] created", zap.String("valuation_id", created.ID), zap.String("created_by", created.CreatedBy))
	return created, nil
}

func (u *ValuationUseCase) GetValuation(ctx context.Context, id string) (entities.ValuationRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ValuationRecord{}, ErrInvalidValuationID
	}
	return u.fetch(ctx, id)
}

// ListValuations returns the records in status, or every record when status is empty.
func (u *ValuationUseCase) ListValuations(ctx context.Context, status string) ([]entities.ValuationRecord, error) {
	status = strings.TrimSpace(status)
	statuses := entities.AllValuationStatuses
	if status != "" {
		s := entities.ValuationStatus(status)
		if !s.Valid() {
			return nil, ErrInvalidValuationStatus
		}
		statuses = []entities.ValuationStatus{s}
	}

	rctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	out := make([]entities.ValuationRecord, 0)
	for _, s := range statuses {
		items, err := u.repo.ListByStatus(rctx, s)
		if err != nil {
			return nil, upstream("list valuations", err)
		}
		out = append(out, items...)
	}
	return out, nil
}

// PreviewFieldChange runs the calculator on the stored record without persisting.
// Only actors allowed to edit the record in its current status may preview.
func (u *ValuationUseCase) PreviewFieldChange(ctx context.Context, id string, actor entities.Actor, fieldKey, value string) (entities.ValuationRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ValuationRecord{}, ErrInvalidValuationID
	}
	current, err := u.fetch(ctx, id)
	if err != nil {
		return entities.ValuationRecord{}, err
	}
	if !workflow.CanEdit(actor.Role, current.Status) {
		return entities.ValuationRecord{}, &workflow.PermissionError{Role: actor.Role, Status: current.Status, Action: workflow.ActionSave}
	}
	return calculator.OnFieldChange(current, strings.TrimSpace(fieldKey), value), nil
}

// SaveValuation applies a form submission. Order matters: permission check,
// calculator, validation, uploads (category by category), save transition,
// persist. Any failure leaves the stored record untouched.
func (u *ValuationUseCase) SaveValuation(ctx context.Context, id string, actor entities.Actor, in SaveValuationInput) (entities.ValuationRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ValuationRecord{}, ErrInvalidValuationID
	}

	current, err := u.fetch(ctx, id)
	if err != nil {
		return entities.ValuationRecord{}, err
	}
	if !workflow.CanEdit(actor.Role, current.Status) {
		logger.L().Warn("[valuation][usecase] save denied",
			zap.String("valuation_id", id), zap.String("role", string(actor.Role)), zap.String("status", string(current.Status)))
		return entities.ValuationRecord{}, &workflow.PermissionError{Role: actor.Role, Status: current.Status, Action: workflow.ActionSave}
	}

	draft := calculator.Recompute(calculator.ApplyChanges(current, in.Changes))
	draft = mergeAttachments(draft, in.RemoveURLs, in.Uploads)

	if err := validation.Validate(draft); err != nil {
		return entities.ValuationRecord{}, err
	}

	draft, err = u.uploadPending(ctx, draft)
	if err != nil {
		logger.L().Error("[valuation][usecase] attachment upload failed", zap.String("valuation_id", id), zap.Error(err))
		return entities.ValuationRecord{}, err
	}

	saved, err := workflow.ApplySave(draft, actor, u.now())
	if err != nil {
		return entities.ValuationRecord{}, err
	}

	persisted, err := u.persist(ctx, saved)
	if err != nil {
		return entities.ValuationRecord{}, err
	}
	logger.L().Info("[valuation][usecase] saved",
		zap.String("valuation_id", id), zap.String("status", string(persisted.Status)), zap.String("by", persisted.LastUpdatedBy))
	return persisted, nil
}

func (u *ValuationUseCase) ApplyManagerAction(ctx context.Context, id string, actor entities.Actor, action, feedback string) (entities.ValuationRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ValuationRecord{}, ErrInvalidValuationID
	}
	a, err := workflow.ParseAction(strings.ToLower(strings.TrimSpace(action)))
	if err != nil || a == workflow.ActionSave {
		return entities.ValuationRecord{}, ErrInvalidManagerAction
	}

	current, err := u.fetch(ctx, id)
	if err != nil {
		return entities.ValuationRecord{}, err
	}

	next, err := workflow.ApplyManagerAction(current, a, strings.TrimSpace(feedback), actor, u.now())
	if err != nil {
		logger.L().Warn("[valuation][usecase] manager action denied",
			zap.String("valuation_id", id), zap.String("action", string(a)), zap.String("role", string(actor.Role)), zap.Error(err))
		return entities.ValuationRecord{}, err
	}

	persisted, err := u.persist(ctx, next)
	if err != nil {
		return entities.ValuationRecord{}, err
	}
	logger.L().Info("[valuation][usecase] manager action applied",
		zap.String("valuation_id", id), zap.String("action", string(a)), zap.String("status", string(persisted.Status)))
	return persisted, nil
}

func (u *ValuationUseCase) Permissions(ctx context.Context, id string, actor entities.Actor) (Permissions, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Permissions{}, ErrInvalidValuationID
	}
	current, err := u.fetch(ctx, id)
	if err != nil {
		return Permissions{}, err
	}
	return Permissions{
		Status:     current.Status,
		CanEdit:    workflow.CanEdit(actor.Role, current.Status),
		CanApprove: workflow.CanApprove(actor.Role, current.Status),
	}, nil
}

// GenerateReport renders the stored record. The draft is used only when the
// record was never persisted (or no id is given).
func (u *ValuationUseCase) GenerateReport(ctx context.Context, id string, draft *entities.ValuationRecord) ([]byte, error) {
	id = strings.TrimSpace(id)
	if id == "" && draft == nil {
		return nil, ErrInvalidValuationID
	}

	var record entities.ValuationRecord
	if id != "" {
		current, err := u.fetch(ctx, id)
		switch {
		case err == nil:
			record = current
		case draft != nil && isNotFound(err):
			logger.L().Warn("[valuation][usecase] report falls back to unsaved draft", zap.String("valuation_id", id))
			record = calculator.Recompute(*draft)
		default:
			return nil, err
		}
	} else {
		logger.L().Warn("[valuation][usecase] report rendered from unsaved draft", zap.String("valuation_id", draft.ID))
		record = calculator.Recompute(*draft)
	}

	pdf, err := u.renderer.Generate(record)
	if err != nil {
		logger.L().Error("[valuation][usecase] report rendering failed", zap.String("valuation_id", record.ID), zap.Error(err))
		return nil, upstream("render report", err)
	}
	return pdf, nil
}

func (u *ValuationUseCase) fetch(ctx context.Context, id string) (entities.ValuationRecord, error) {
	rctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	r, err := u.repo.GetByID(rctx, id)
	if err != nil {
		return entities.ValuationRecord{}, upstream("load valuation", err)
	}
	if r.ID == "" {
		return entities.ValuationRecord{}, ErrValuationNotFound
	}
	return r, nil
}

func (u *ValuationUseCase) persist(ctx context.Context, r entities.ValuationRecord) (entities.ValuationRecord, error) {
	if r.HasLocalAttachments() {
		return entities.ValuationRecord{}, ErrUnsyncedAttachment
	}
	rctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	out, err := u.repo.Persist(rctx, r)
	if err != nil {
		logger.L().Error("[valuation][usecase] persist failed", zap.String("valuation_id", r.ID), zap.Error(err))
		return entities.ValuationRecord{}, upstream("persist valuation", err)
	}
	if out.ID == "" {
		return entities.ValuationRecord{}, ErrValuationNotFound
	}
	return out, nil
}

// uploadPending swaps every local attachment for its persisted reference, one
// store call per category, keeping slot order.
func (u *ValuationUseCase) uploadPending(ctx context.Context, r entities.ValuationRecord) (entities.ValuationRecord, error) {
	if !r.HasLocalAttachments() {
		return r, nil
	}
	out := r.Clone()
	for _, category := range entities.AttachmentCategories {
		items := out.Attachments[category]
		var blobs []entities.Blob
		var slots []int
		for i, it := range items {
			if local, ok := it.(entities.LocalAttachment); ok {
				blobs = append(blobs, local.Blob)
				slots = append(slots, i)
			}
		}
		if len(blobs) == 0 {
			continue
		}
		if u.store == nil {
			return r, upstream("upload "+string(category)+" attachments", ErrUnsyncedAttachment)
		}

		persisted, err := u.store.Upload(ctx, out.ID, category, blobs)
		if err != nil {
			return r, upstream("upload "+string(category)+" attachments", err)
		}
		if len(persisted) != len(blobs) {
			return r, ErrUnsyncedAttachment
		}
		for n, slot := range slots {
			items[slot] = persisted[n]
		}
		out.Attachments[category] = items
	}
	return out, nil
}

func mergeAttachments(r entities.ValuationRecord, removeURLs []string, uploads map[entities.AttachmentCategory][]entities.Blob) entities.ValuationRecord {
	if len(removeURLs) == 0 && len(uploads) == 0 {
		return r
	}
	out := r.Clone()
	if out.Attachments == nil {
		out.Attachments = map[entities.AttachmentCategory][]entities.Attachment{}
	}

	if len(removeURLs) > 0 {
		drop := make(map[string]struct{}, len(removeURLs))
		for _, u := range removeURLs {
			drop[strings.TrimSpace(u)] = struct{}{}
		}
		for category, items := range out.Attachments {
			kept := items[:0]
			for _, it := range items {
				if p, ok := it.(entities.PersistedAttachment); ok {
					if _, gone := drop[p.URL]; gone {
						continue
					}
				}
				kept = append(kept, it)
			}
			out.Attachments[category] = kept
		}
	}

	for category, blobs := range uploads {
		if len(blobs) == 0 {
			continue
		}
		locals := make([]entities.Attachment, 0, len(blobs))
		for _, b := range blobs {
			locals = append(locals, entities.LocalAttachment{Blob: b})
		}
		if category == entities.AttachmentCategoryBank {
			out.Attachments[category] = locals
			continue
		}
		out.Attachments[category] = append(out.Attachments[category], locals...)
	}
	return out
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrValuationNotFound)
}
