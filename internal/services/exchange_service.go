package services

import (
	"Coldbox/internal/compliance"
	"Coldbox/internal/config"
	"Coldbox/internal/lifecycle"
	"Coldbox/internal/models"
	"Coldbox/internal/repository"
	"Coldbox/internal/validation"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Submission is one filled-in exchange form.
type Submission struct {
	BoxModelID          string
	OrderNumber         string
	PackagedOn          time.Time
	MedicineTemperature *float64
	IceTemperature      *float64
	Operator            *string
	SubmissionKey       *string
	LabelPhoto          *multipart.FileHeader
	MedicinePhoto       *multipart.FileHeader
	IcePhoto            *multipart.FileHeader
	// SubmittedAt replaces the clock as finalization time when set.
	SubmittedAt *time.Time
}

type SubmissionResult struct {
	Record *models.ExchangeRecord
	Report compliance.Report
	// Duplicate is set when the submission key matched an existing record,
	// which is returned unchanged.
	Duplicate bool
}

type ExchangeService interface {
	Submit(ctx context.Context, submission Submission) (*SubmissionResult, error)
	GetExchange(ctx context.Context, id uint) (*models.ExchangeRecord, error)
	ListExchanges(ctx context.Context, filter repository.ExchangeFilter) ([]models.ExchangeRecord, error)
	UpdateOperator(ctx context.Context, id uint, operator *string) (*models.ExchangeRecord, error)
	CheckCompliance(ctx context.Context, boxModelID string, medicineTemp, iceTemp *float64) (compliance.Report, error)
}

type exchangeServiceImpl struct {
	recordRepo      repository.ExchangeRecordRepository
	boxModelService BoxModelService
	photoService    PhotoService
	lifecycle       *lifecycle.Lifecycle
	metrics         *MetricsService
	logService      LogService
	configuration   *config.Configuration
}

func NewExchangeService(
	recordRepo repository.ExchangeRecordRepository,
	boxModelService BoxModelService,
	photoService PhotoService,
	recordLifecycle *lifecycle.Lifecycle,
	metrics *MetricsService,
	logService LogService,
	configuration *config.Configuration,
) ExchangeService {
	return &exchangeServiceImpl{
		recordRepo:      recordRepo,
		boxModelService: boxModelService,
		photoService:    photoService,
		lifecycle:       recordLifecycle,
		metrics:         metrics,
		logService:      logService,
		configuration:   configuration,
	}
}

// Submit validates, stores the photos, finalizes and persists one exchange.
// Field problems come back as validation.Errors; an identifier outside the
// catalog aborts with validation.ErrUnknownBoxModel before anything else.
func (s *exchangeServiceImpl) Submit(ctx context.Context, submission Submission) (*SubmissionResult, error) {
	if submission.SubmissionKey != nil {
		existing, err := s.recordRepo.FindBySubmissionKey(ctx, *submission.SubmissionKey)
		if err == nil {
			s.metrics.Submission(OutcomeDuplicate)
			return s.duplicateResult(existing), nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	boxModelID := strings.TrimSpace(submission.BoxModelID)
	if boxModelID != "" {
		if _, err := s.boxModelService.GetBoxModel(ctx, boxModelID); err != nil {
			s.metrics.Submission(OutcomeRejected)
			return nil, err
		}
	}

	draft := s.draftFrom(submission, boxModelID)
	errs := lifecycle.ValidateForPersistence(draft)

	report := compliance.Evaluate(boxModelID, draft.MedicineTemperature, draft.IceTemperature)
	for _, issue := range report.Issues() {
		// a malformed reading is already reported once, and a range is
		// meaningless until a box model is chosen
		if issue.Kind != validation.KindOutOfRange || len(errs.ForField(issue.Field)) > 0 || boxModelID == "" {
			continue
		}
		s.metrics.OutOfRange(issue.Field, boxModelID)
		if s.configuration.Compliance.RejectNonCompliant {
			errs = append(errs, issue)
		}
	}
	if len(errs) > 0 {
		lifecycle.SortByField(errs)
		s.metrics.Submission(OutcomeRejected)
		s.logService.Log.WithFields(logrus.Fields{
			"order":     draft.OrderNumber,
			"box_model": boxModelID,
			"errors":    errs.Error(),
		}).Info("exchange submission rejected")
		return nil, errs
	}

	if err := s.storePhotos(ctx, draft, submission); err != nil {
		s.metrics.Submission(OutcomeFailed)
		return nil, err
	}

	var applied bool
	if submission.SubmittedAt != nil {
		_, applied = s.lifecycle.FinalizeAt(draft, submission.SubmittedAt.UTC())
	} else {
		_, applied = s.lifecycle.Finalize(draft)
	}
	if !applied {
		s.logService.Log.WithField("order", draft.OrderNumber).Warn(validation.ErrAlreadyFinalized.Error())
	}

	if err := s.recordRepo.Create(ctx, draft); err != nil {
		if errors.Is(err, repository.ErrDuplicate) && submission.SubmissionKey != nil {
			existing, findErr := s.recordRepo.FindBySubmissionKey(ctx, *submission.SubmissionKey)
			if findErr != nil {
				return nil, fmt.Errorf("failed to load concurrent submission: %w", findErr)
			}
			s.metrics.Submission(OutcomeDuplicate)
			return s.duplicateResult(existing), nil
		}
		s.metrics.Submission(OutcomeFailed)
		return nil, fmt.Errorf("failed to create exchange record: %w", err)
	}

	if err := s.photoService.AttachPhotos(ctx, draft.ID, draft.LabelPhoto, draft.MedicinePhoto, draft.IcePhoto); err != nil {
		s.logService.Log.WithFields(logrus.Fields{
			"record": draft.ID,
			"error":  err.Error(),
		}).Error("failed to attach photos")
	}

	outcome := OutcomeAccepted
	if !report.Compliant() {
		outcome = OutcomeFlagged
	}
	s.metrics.Submission(outcome)
	s.logService.Log.WithFields(logrus.Fields{
		"record":            draft.ID,
		"order":             draft.OrderNumber,
		"box_model":         boxModelID,
		"compliant":         report.Compliant(),
		"finalized_at":      draft.FinalizedAt,
		"acclimation_start": draft.AcclimationStartedAt,
	}).Info("exchange recorded")

	return &SubmissionResult{Record: draft, Report: report}, nil
}

func (s *exchangeServiceImpl) duplicateResult(record *models.ExchangeRecord) *SubmissionResult {
	return &SubmissionResult{
		Record:    record,
		Report:    compliance.Evaluate(record.BoxModelID, record.MedicineTemperature, record.IceTemperature),
		Duplicate: true,
	}
}

func (s *exchangeServiceImpl) draftFrom(submission Submission, boxModelID string) *models.ExchangeRecord {
	draft := &models.ExchangeRecord{
		BoxModelID:          boxModelID,
		OrderNumber:         strings.TrimSpace(submission.OrderNumber),
		PackagedOn:          submission.PackagedOn,
		LabelPhoto:          pendingRef(submission.LabelPhoto),
		MedicinePhoto:       pendingRef(submission.MedicinePhoto),
		IcePhoto:            pendingRef(submission.IcePhoto),
		MedicineTemperature: submission.MedicineTemperature,
		IceTemperature:      submission.IceTemperature,
		Operator:            trimmed(submission.Operator),
		SubmissionKey:       trimmed(submission.SubmissionKey),
		State:               models.StateDraft,
	}
	if !draft.PackagedOn.IsZero() {
		y, m, d := draft.PackagedOn.Date()
		draft.PackagedOn = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return draft
}

// storePhotos replaces the pending references of draft with storage keys.
func (s *exchangeServiceImpl) storePhotos(ctx context.Context, draft *models.ExchangeRecord, submission Submission) error {
	uploads := []struct {
		kind   models.PhotoKind
		header *multipart.FileHeader
		ref    *string
	}{
		{models.PhotoLabel, submission.LabelPhoto, &draft.LabelPhoto},
		{models.PhotoMedicineTemperature, submission.MedicinePhoto, &draft.MedicinePhoto},
		{models.PhotoIceTemperature, submission.IcePhoto, &draft.IcePhoto},
	}
	for _, upload := range uploads {
		photo, err := s.photoService.StorePhoto(ctx, upload.kind, upload.header)
		if err != nil {
			return fmt.Errorf("failed to store %s photo: %w", upload.kind, err)
		}
		*upload.ref = photo.Key
	}
	return nil
}

func (s *exchangeServiceImpl) GetExchange(ctx context.Context, id uint) (*models.ExchangeRecord, error) {
	return s.recordRepo.FindByID(ctx, id)
}

func (s *exchangeServiceImpl) ListExchanges(ctx context.Context, filter repository.ExchangeFilter) ([]models.ExchangeRecord, error) {
	return s.recordRepo.List(ctx, filter)
}

func (s *exchangeServiceImpl) UpdateOperator(ctx context.Context, id uint, operator *string) (*models.ExchangeRecord, error) {
	operator = trimmed(operator)
	if operator != nil && len([]rune(*operator)) > lifecycle.MaxOperatorLength {
		return nil, validation.Errors{validation.Malformed(lifecycle.FieldOperator,
			fmt.Sprintf("must be at most %d characters", lifecycle.MaxOperatorLength))}
	}
	if err := s.recordRepo.UpdateOperator(ctx, id, operator); err != nil {
		return nil, err
	}
	return s.recordRepo.FindByID(ctx, id)
}

func (s *exchangeServiceImpl) CheckCompliance(ctx context.Context, boxModelID string, medicineTemp, iceTemp *float64) (compliance.Report, error) {
	if _, err := s.boxModelService.GetBoxModel(ctx, boxModelID); err != nil {
		return compliance.Report{}, err
	}
	return compliance.Evaluate(boxModelID, medicineTemp, iceTemp), nil
}

// pendingRef stands in for the storage key until the photo is uploaded, so
// presence can be validated before anything is written.
func pendingRef(fileHeader *multipart.FileHeader) string {
	if fileHeader == nil {
		return ""
	}
	if fileHeader.Filename != "" {
		return fileHeader.Filename
	}
	return "pending"
}

func trimmed(value *string) *string {
	if value == nil {
		return nil
	}
	v := strings.TrimSpace(*value)
	if v == "" {
		return nil
	}
	return &v
}
