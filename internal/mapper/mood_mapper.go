package mapper

import (
	"encoding/json"

	"bloompath-be/internal/entity"
	"bloompath-be/internal/model"

	"gorm.io/datatypes"
)

type MoodMapper struct{}

func NewMoodMapper() *MoodMapper {
	return &MoodMapper{}
}

func (m *MoodMapper) ToEntity(e *model.MoodEntry) *entity.MoodEntry {
	if e == nil {
		return nil
	}
	var emotions []string
	if len(e.Emotions) > 0 {
		// A decode failure leaves emotions empty rather than dropping the
		// whole entry.
		_ = json.Unmarshal(e.Emotions, &emotions)
	}
	return &entity.MoodEntry{
		Id:        e.Id,
		UserId:    e.UserId,
		Score:     e.Score,
		Emotions:  emotions,
		Notes:     e.Notes,
		AiInsight: e.AiInsight,
		CreatedAt: e.CreatedAt,
	}
}

func (m *MoodMapper) ToModel(e *entity.MoodEntry) *model.MoodEntry {
	if e == nil {
		return nil
	}
	emotions := e.Emotions
	if emotions == nil {
		emotions = []string{}
	}
	raw, _ := json.Marshal(emotions)
	return &model.MoodEntry{
		Id:        e.Id,
		UserId:    e.UserId,
		Score:     e.Score,
		Emotions:  datatypes.JSON(raw),
		Notes:     e.Notes,
		AiInsight: e.AiInsight,
		CreatedAt: e.CreatedAt,
	}
}

func (m *MoodMapper) ToEntities(entries []*model.MoodEntry) []*entity.MoodEntry {
	entities := make([]*entity.MoodEntry, len(entries))
	for i, e := range entries {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
