package mapper

import (
	"Coldbox/internal/compliance"
	"Coldbox/internal/dto"
	"Coldbox/internal/models"
)

const (
	packagedOnLayout = "2006-01-02"
	photoRoute       = "/photos/"
)

func ToExchangeRecordDTO(record *models.ExchangeRecord) *dto.ExchangeRecordDTO {
	report := compliance.Evaluate(record.BoxModelID, record.MedicineTemperature, record.IceTemperature)

	recordDTO := &dto.ExchangeRecordDTO{
		ID:                   record.ID,
		BoxModelID:           record.BoxModelID,
		OrderNumber:          record.OrderNumber,
		PackagedOn:           record.PackagedOn.UTC().Format(packagedOnLayout),
		MedicineTemperature:  record.MedicineTemperature,
		IceTemperature:       record.IceTemperature,
		MedicineRange:        report.Medicine.Range.String(),
		IceRange:             report.Ice.Range.String(),
		Compliant:            report.Compliant(),
		Status:               dto.StatusConforming,
		State:                string(record.State),
		FinalizedAt:          record.FinalizedAt.UTC(),
		AcclimationStartedAt: record.AcclimationStartedAt.UTC(),
		Operator:             record.Operator,
		SubmissionKey:        record.SubmissionKey,
		Photos: dto.PhotosDTO{
			Label:               photoURL(record.LabelPhoto),
			MedicineTemperature: photoURL(record.MedicinePhoto),
			IceTemperature:      photoURL(record.IcePhoto),
		},
		CreatedAt: record.CreatedAt,
	}
	if !recordDTO.Compliant {
		recordDTO.Status = dto.StatusOutOfRange
		for _, issue := range report.Issues() {
			recordDTO.Warnings = append(recordDTO.Warnings, issue.Error())
		}
	}
	return recordDTO
}

func ToExchangeRecordDTOs(records []models.ExchangeRecord) []dto.ExchangeRecordDTO {
	recordDTOs := make([]dto.ExchangeRecordDTO, 0, len(records))
	for i := range records {
		recordDTOs = append(recordDTOs, *ToExchangeRecordDTO(&records[i]))
	}
	return recordDTOs
}

func photoURL(key string) string {
	if key == "" {
		return ""
	}
	return photoRoute + key
}
