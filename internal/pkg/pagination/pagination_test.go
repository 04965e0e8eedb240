package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func queryFor(target string) Query {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return FromContext(c)
}

func TestFromContext(t *testing.T) {
	assert.Equal(t, Query{Page: 1, Size: 10}, queryFor("/"))
	assert.Equal(t, Query{Page: 3, Size: 20}, queryFor("/?page=3&size=20"))
	assert.Equal(t, Query{Page: 1, Size: 10}, queryFor("/?page=-2&size=0"))
	assert.Equal(t, Query{Page: 1, Size: MaxSize}, queryFor("/?page=x&size=1000"))
}

func TestMeta(t *testing.T) {
	m := Meta(Query{Page: 2, Size: 10}, 25)
	assert.Equal(t, 3, m.TotalPage)
	assert.True(t, m.HasNextPage)
	assert.Equal(t, 10, Query{Page: 2, Size: 10}.Offset())

	last := Meta(Query{Page: 3, Size: 10}, 25)
	assert.False(t, last.HasNextPage)

	empty := Meta(Query{Page: 1, Size: 10}, 0)
	assert.Zero(t, empty.TotalPage)
	assert.False(t, empty.HasNextPage)
}
