package mapper

import (
	"encoding/json"

	"bloompath-be/internal/entity"
	"bloompath-be/internal/model"
	"bloompath-be/pkg/scoring"

	"gorm.io/datatypes"
)

type ScreeningMapper struct{}

func NewScreeningMapper() *ScreeningMapper {
	return &ScreeningMapper{}
}

func (m *ScreeningMapper) ToEntity(s *model.EPDSScreening) *entity.EPDSScreening {
	if s == nil {
		return nil
	}
	var items []int
	if len(s.ItemScores) > 0 {
		_ = json.Unmarshal(s.ItemScores, &items)
	}
	return &entity.EPDSScreening{
		Id:         s.Id,
		UserId:     s.UserId,
		TotalScore: s.TotalScore,
		ItemScores: items,
		RiskLevel:  scoring.RiskLevel(s.RiskLevel),
		AiInsight:  s.AiInsight,
		CreatedAt:  s.CreatedAt,
	}
}

func (m *ScreeningMapper) ToModel(s *entity.EPDSScreening) *model.EPDSScreening {
	if s == nil {
		return nil
	}
	raw, _ := json.Marshal(s.ItemScores)
	return &model.EPDSScreening{
		Id:         s.Id,
		UserId:     s.UserId,
		TotalScore: s.TotalScore,
		ItemScores: datatypes.JSON(raw),
		RiskLevel:  string(s.RiskLevel),
		AiInsight:  s.AiInsight,
		CreatedAt:  s.CreatedAt,
	}
}

func (m *ScreeningMapper) ToEntities(screenings []*model.EPDSScreening) []*entity.EPDSScreening {
	entities := make([]*entity.EPDSScreening, len(screenings))
	for i, s := range screenings {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
