package ginutil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParamInt64(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "id", Value: "9007199254740993"}, {Key: "bad", Value: "x1"}}

	id, err := ParamInt64(c, "id")
	assert.NoError(t, err)
	assert.Equal(t, int64(9007199254740993), id)

	_, err = ParamInt64(c, "bad")
	assert.Error(t, err)
}

func TestQueryTrimmed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/x?q=%20%E3%83%AD%E3%83%83%E3%82%AF%20", nil)

	assert.Equal(t, "ロック", QueryTrimmed(c, "q"))
	assert.Equal(t, "", QueryTrimmed(c, "missing"))
}
