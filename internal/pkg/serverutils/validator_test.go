package serverutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRequest(t *testing.T) {
	type req struct {
		Name       string `validate:"required,max=255"`
		ItemScores []int  `validate:"required,len=10,dive,min=0,max=3"`
	}

	valid := req{
		Name:       "Amina",
		ItemScores: []int{0, 1, 2, 3, 0, 1, 2, 3, 0, 1},
	}
	assert.NoError(t, ValidateRequest(valid))

	t.Run("missing field reports tag", func(t *testing.T) {
		err := ValidateRequest(req{ItemScores: valid.ItemScores})
		if assert.Error(t, err) {
			httpErr, ok := err.(*HttpError)
			if assert.True(t, ok) {
				assert.Equal(t, 400, httpErr.Code)
				assert.Contains(t, httpErr.Message, "Name failed on 'required'")
			}
		}
	})

	t.Run("out of range item is rejected", func(t *testing.T) {
		bad := valid
		bad.ItemScores = []int{0, 1, 2, 3, 0, 1, 2, 3, 0, 4}
		err := ValidateRequest(bad)
		if assert.Error(t, err) {
			assert.Contains(t, err.Error(), "failed on 'max'")
		}
	})

	t.Run("wrong length is rejected", func(t *testing.T) {
		bad := valid
		bad.ItemScores = []int{0, 1, 2}
		err := ValidateRequest(bad)
		if assert.Error(t, err) {
			assert.Contains(t, err.Error(), "failed on 'len'")
		}
	})
}
