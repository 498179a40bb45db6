package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/apicore/core/model"
)

func TestResponse(t *testing.T) {
	t.Parallel()

	t.Run("success has code zero", func(t *testing.T) {
		t.Parallel()

		resp := model.Success()
		assert.Equal(t, model.CodeSuccess, resp.Code)
		assert.True(t, resp.IsSuccess())
	})

	t.Run("echo paging", func(t *testing.T) {
		t.Parallel()

		resp := &model.Response{}
		resp.EchoPaging(&model.Request{Page: 2, PerPage: 10}, 42)
		assert.Equal(t, 2, resp.Page)
		assert.Equal(t, 10, resp.PerPage)
		assert.Equal(t, int64(42), resp.Total)

		resp.EchoPaging(nil, 7)
		assert.Equal(t, int64(7), resp.Total)
	})

	t.Run("error response embeds base", func(t *testing.T) {
		t.Parallel()

		resp := model.NewError(5, "Exception", "raw detail")
		var responder model.Responder = resp
		assert.Equal(t, 5, responder.ResponseBase().Code)
		assert.False(t, resp.IsSuccess())
		assert.Equal(t, "Exception", resp.Message)
		assert.Equal(t, "raw detail", resp.Description)
	})
}
