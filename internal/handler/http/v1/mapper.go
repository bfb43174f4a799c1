package v1

import "github.com/shenikar/checkin_system/internal/models"

// DTOToEmployeeModel converts a registration request into the domain model.
// The password travels separately so it never lands on the model in plaintext.
func DTOToEmployeeModel(dto RegisterRequest) *models.Employee {
	return &models.Employee{
		Name:   dto.Name,
		Email:  dto.Email,
		Mobile: dto.Mobile,
		Grade:  dto.Grade,
	}
}

// ModelToLocationResponse converts a domain location into the response DTO.
func ModelToLocationResponse(model *models.Location) *LocationResponse {
	return &LocationResponse{
		ID:        model.ID,
		Name:      model.Name,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
	}
}

// ModelsToLocationResponses converts a slice of locations into response DTOs.
func ModelsToLocationResponses(locations []*models.Location) []*LocationResponse {
	responses := make([]*LocationResponse, len(locations))
	for i, model := range locations {
		responses[i] = ModelToLocationResponse(model)
	}
	return responses
}

// ModelToCheckinRecordResponse converts a history row into the response DTO.
func ModelToCheckinRecordResponse(model *models.CheckinRecord) *CheckinRecordResponse {
	return &CheckinRecordResponse{
		CheckinTime:  model.CheckinTime,
		LocationName: model.LocationName,
	}
}

// ModelsToCheckinRecordResponses converts a slice of history rows into response DTOs.
func ModelsToCheckinRecordResponses(records []*models.CheckinRecord) []*CheckinRecordResponse {
	responses := make([]*CheckinRecordResponse, len(records))
	for i, model := range records {
		responses[i] = ModelToCheckinRecordResponse(model)
	}
	return responses
}
