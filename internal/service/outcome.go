package service

import "github.com/shiftlog/portal-auth/models"

func authenticated(role models.Role, companyID string, fields map[models.SessionKey]string) models.Outcome {
	return models.Outcome{
		Status:    models.OutcomeAuthenticated,
		Role:      role,
		CompanyID: companyID,
		Fields:    fields,
	}
}

func rejected(reason string) models.Outcome {
	return models.Outcome{Status: models.OutcomeRejected, Reason: reason}
}

func failed(cause error) models.Outcome {
	return models.Outcome{Status: models.OutcomeFailed, Cause: cause}
}
