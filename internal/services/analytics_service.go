package services

import (
	"context"
	"fmt"

	"github.com/you/clinicsvc/domain"
)

// AnalyticsServiceImpl implements domain.AnalyticsService
type AnalyticsServiceImpl struct {
	patientRepo domain.PatientRepository
	tokenSvc    domain.TokenService
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(patientRepo domain.PatientRepository, tokenSvc domain.TokenService) domain.AnalyticsService {
	return &AnalyticsServiceImpl{
		patientRepo: patientRepo,
		tokenSvc:    tokenSvc,
	}
}

// Dashboard implements domain.AnalyticsService
func (s *AnalyticsServiceImpl) Dashboard(ctx context.Context, token string) (*domain.DashboardAnalytics, error) {
	doctorID, err := resolveCaller(s.tokenSvc, token)
	if err != nil {
		return nil, err
	}

	patients, err := s.patientRepo.FindByDoctor(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load patients: %w", err)
	}

	return Summarize(patients), nil
}

// Summarize aggregates risk and disease counts. Risk levels outside
// high/medium/low only count toward the total.
func Summarize(patients []*domain.Patient) *domain.DashboardAnalytics {
	analytics := &domain.DashboardAnalytics{
		TotalPatients:       len(patients),
		DiseaseDistribution: make(map[string]int),
	}

	for _, p := range patients {
		switch {
		case p.HasRiskLevel(domain.RiskHigh):
			analytics.HighRiskPatients++
		case p.HasRiskLevel(domain.RiskMedium):
			analytics.MediumRiskPatients++
		case p.HasRiskLevel(domain.RiskLow):
			analytics.LowRiskPatients++
		}

		if p.Disease != nil && *p.Disease != "" {
			analytics.DiseaseDistribution[*p.Disease]++
		}
	}

	analytics.RiskTrends = map[string]int{
		domain.RiskHigh:   analytics.HighRiskPatients,
		domain.RiskMedium: analytics.MediumRiskPatients,
		domain.RiskLow:    analytics.LowRiskPatients,
	}

	return analytics
}
