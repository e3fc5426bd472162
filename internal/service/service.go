package service

import (
	"github.com/weatherintel/backend/internal/domain"
)

// AnalysisRepository is re-exported from domain for convenience
type AnalysisRepository = domain.AnalysisRepository
